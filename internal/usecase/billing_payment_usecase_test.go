package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"healthathome/internal/domain/entities"
	mock_interfaces "healthathome/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

func approvedProforma(total string) entities.Proforma {
	return entities.Proforma{
		ID:             "pf-1",
		PacienteNombre: "Ana Quispe",
		Status:         entities.ProformaStatusAprobada,
		Total:          decimal.RequireFromString(total),
	}
}

const validMPPayload = `{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`

func TestBillingPaymentUseCase_CreateAndApprove_Validations(t *testing.T) {
	ctx := context.Background()

	t.Run("empty proforma id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		if _, err := uc.CreateAndApprove(ctx, " ", json.RawMessage(`{}`)); !errors.Is(err, ErrInvalidPaymentProformaID) {
			t.Fatalf("expected ErrInvalidPaymentProformaID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		if _, err := uc.CreateAndApprove(ctx, "pf-1", nil); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(`{`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(validMPPayload)); !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_ProformaChecks(t *testing.T) {
	ctx := context.Background()

	t.Run("proforma repo returns error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, proformas, gateway, PaymentOptions{})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(entities.Proforma{}, errors.New("db"))

		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(validMPPayload)); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("proforma not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, proformas, gateway, PaymentOptions{})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(entities.Proforma{}, nil)

		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(validMPPayload)); !errors.Is(err, ErrProformaNotFound) {
			t.Fatalf("expected ErrProformaNotFound, got %v", err)
		}
	})

	t.Run("proforma not approved, even in mock mode", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		uc := NewBillingPaymentUseCase(nil, proformas, nil, PaymentOptions{MockMode: true})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(entities.Proforma{ID: "pf-1", Status: entities.ProformaStatusPendiente}, nil)

		if _, err := uc.CreateAndApprove(ctx, "pf-1", nil); !errors.Is(err, ErrProformaNotApproved) {
			t.Fatalf("expected ErrProformaNotApproved, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_PayloadValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, proformas, gateway, PaymentOptions{})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("540"), nil)

		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("missing payer without sandbox email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, proformas, gateway, PaymentOptions{})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("540"), nil)

		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(`{"payment_method_id":"visa"}`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("json array payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(nil, proformas, gateway, PaymentOptions{})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("540"), nil)

		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(`[1,2]`)); !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, proformas, gateway, PaymentOptions{})

			proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("10"), nil)
			repo.EXPECT().ListByProformaID(gomock.Any(), "pf-1").Return(nil, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			if _, err := uc.CreateAndApprove(context.Background(), "pf-1", json.RawMessage(validMPPayload)); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, proformas, gateway, PaymentOptions{})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("10"), nil)
		repo.EXPECT().ListByProformaID(gomock.Any(), "pf-1").Return(nil, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		if _, err := uc.CreateAndApprove(context.Background(), "pf-1", json.RawMessage(validMPPayload)); err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_CreateAndApprove_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusAprobado, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusRechazado, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPendiente, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusAprobado, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, proformas, gateway, PaymentOptions{SandboxPayerEmail: "sandbox@test.com"})

			proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("540.456"), nil)
			repo.EXPECT().ListByProformaID(gomock.Any(), "pf-1").Return([]entities.BillingPayment{
				{ID: "pay-0", ProformaID: "pf-1", Status: entities.PaymentStatusRechazado},
			}, nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "pf-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Proforma pf-1 - Ana Quispe" {
						t.Fatalf("description not set: %v", body["description"])
					}
					if body["transaction_amount"] != float64(540.46) {
						t.Fatalf("transaction_amount should come from the proforma, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" || payer["type"] != "customer" {
						t.Fatalf("expected sandbox payer defaults, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.BillingPayment{})).DoAndReturn(
				func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
					if p.ID != "pay-1" || p.ProformaID != "pf-1" || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if !p.Amount.Equal(decimal.RequireFromString("540.456")) || p.Date.IsZero() {
						t.Fatalf("unexpected amount/date: %+v", p)
					}
					return p, nil
				},
			)

			// no payer in the request: the sandbox email fills it
			_, err := uc.CreateAndApprove(context.Background(), "pf-1", json.RawMessage(`{"payment_method_id":"visa"}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_MockMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
	proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
	uc := NewBillingPaymentUseCase(repo, proformas, nil, PaymentOptions{MockMode: true})

	proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("240"), nil)
	repo.EXPECT().ListByProformaID(gomock.Any(), "pf-1").Return(nil, nil)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
		if p.Status != entities.PaymentStatusAprobado || p.ID == "" {
			t.Fatalf("unexpected payment %+v", p)
		}
		if p.MPPayload["external_reference"] != "pf-1" || p.MPPayload["transaction_amount"] != float64(240) {
			t.Fatalf("mock response should echo the enriched request, got %v", p.MPPayload)
		}
		return p, nil
	})

	if _, err := uc.CreateAndApprove(context.Background(), "pf-1", json.RawMessage("not json")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBillingPaymentUseCase_CreateAndApprove_AlreadyPaid(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name     string
		mockMode bool
	}{
		{name: "gateway", mockMode: false},
		{name: "mock mode", mockMode: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
			proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewBillingPaymentUseCase(repo, proformas, gateway, PaymentOptions{MockMode: tc.mockMode})

			proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("540"), nil)
			repo.EXPECT().ListByProformaID(gomock.Any(), "pf-1").Return([]entities.BillingPayment{
				{ID: "p0", ProformaID: "pf-1", Status: entities.PaymentStatusRechazado},
				{ID: "p1", ProformaID: "pf-1", Status: entities.PaymentStatusAprobado},
			}, nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)
			repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

			if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(validMPPayload)); !errors.Is(err, ErrProformaAlreadyPaid) {
				t.Fatalf("expected ErrProformaAlreadyPaid, got %v", err)
			}
		})
	}

	t.Run("payment lookup error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		proformas := mock_interfaces.NewMockIProformaRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewBillingPaymentUseCase(repo, proformas, gateway, PaymentOptions{})

		proformas.EXPECT().GetByID(gomock.Any(), "pf-1").Return(approvedProforma("540"), nil)
		repo.EXPECT().ListByProformaID(gomock.Any(), "pf-1").Return(nil, errors.New("db"))

		if _, err := uc.CreateAndApprove(ctx, "pf-1", json.RawMessage(validMPPayload)); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestBillingPaymentUseCase_Queries(t *testing.T) {
	ctx := context.Background()

	t.Run("get invalid id", func(t *testing.T) {
		uc := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{})
		if _, err := uc.GetByID(ctx, ""); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		repo.EXPECT().GetByID(ctx, "pay-1").Return(entities.BillingPayment{}, nil)

		if _, err := NewBillingPaymentUseCase(repo, nil, nil, PaymentOptions{}).GetByID(ctx, "pay-1"); !errors.Is(err, ErrBillingPaymentNotFound) {
			t.Fatalf("expected ErrBillingPaymentNotFound, got %v", err)
		}
	})

	t.Run("list newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIBillingPaymentRepository(ctrl)
		base := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByProformaID(ctx, "pf-1").Return([]entities.BillingPayment{
			{ID: "a", Date: base}, {ID: "b", Date: base.Add(time.Minute)},
		}, nil)

		got, err := NewBillingPaymentUseCase(repo, nil, nil, PaymentOptions{}).ListByProformaID(ctx, "pf-1")
		if err != nil || len(got) != 2 || got[0].ID != "b" {
			t.Fatalf("unexpected %+v %v", got, err)
		}
	})

	t.Run("list invalid proforma id", func(t *testing.T) {
		if _, err := NewBillingPaymentUseCase(nil, nil, nil, PaymentOptions{}).ListByProformaID(ctx, " "); !errors.Is(err, ErrInvalidPaymentProformaID) {
			t.Fatalf("expected ErrInvalidPaymentProformaID, got %v", err)
		}
	})
}
