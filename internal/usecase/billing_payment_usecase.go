package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidPaymentID               = errors.New("invalid payment id")
	ErrInvalidPaymentProformaID       = errors.New("invalid proforma_id")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrProformaNotApproved            = errors.New("proforma not approved")
	ErrProformaAlreadyPaid            = errors.New("proforma already paid")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// PaymentOptions tunes how payments reach the provider.
//
// MockMode approves every payment without calling the gateway and accepts an
// empty or invalid payload. SandboxPayerEmail fills payer.email when the
// caller sent neither payer.id nor payer.email.
type PaymentOptions struct {
	MockMode          bool
	SandboxPayerEmail string
}

// IBillingPaymentUseCase collects the payment of an approved proforma.
type IBillingPaymentUseCase interface {
	CreateAndApprove(ctx context.Context, proformaID string, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByProformaID(ctx context.Context, proformaID string) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo      interfaces.IBillingPaymentRepository
	proformas interfaces.IProformaRepository
	gateway   interfaces.IPaymentGateway
	opts      PaymentOptions
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(repo interfaces.IBillingPaymentRepository, proformas interfaces.IProformaRepository, gateway interfaces.IPaymentGateway, opts PaymentOptions) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{repo: repo, proformas: proformas, gateway: gateway, opts: opts}
}

func (u *BillingPaymentUseCase) CreateAndApprove(ctx context.Context, proformaID string, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	proformaID = strings.TrimSpace(proformaID)
	if proformaID == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentProformaID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			log.Warn().Str("proforma_id", proformaID).Msg("[payment][usecase] invalid payload")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil && !u.opts.MockMode {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	p, err := u.proformas.GetByID(ctx, proformaID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrProformaNotFound
	}
	if p.Status != entities.ProformaStatusAprobada {
		log.Warn().Str("proforma_id", proformaID).Str("status", string(p.Status)).Msg("[payment][usecase] proforma not approved")
		return entities.BillingPayment{}, ErrProformaNotApproved
	}

	reqMap := map[string]any{}
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.BillingPayment{}, ErrInvalidMPPayload
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn().Str("proforma_id", proformaID).Msg("[payment][usecase] missing payment_method_id")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Warn().Str("proforma_id", proformaID).Msg("[payment][usecase] missing payer")
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = proformaID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Proforma %s - %s", proformaID, p.PacienteNombre)
	}
	// The amount always comes from the stored proforma.
	reqMap["transaction_amount"] = p.Total.Round(2).InexactFloat64()

	if err := u.ensureNotPaid(ctx, proformaID); err != nil {
		return entities.BillingPayment{}, err
	}

	var providerID, providerStatus string
	var providerResp json.RawMessage
	if u.opts.MockMode {
		providerID, providerStatus, providerResp, err = mockProviderResponse(reqMap)
		if err != nil {
			return entities.BillingPayment{}, err
		}
		log.Info().Str("proforma_id", proformaID).Msg("[payment][usecase] mock mode, gateway skipped")
	} else {
		payload, err := json.Marshal(reqMap)
		if err != nil {
			return entities.BillingPayment{}, err
		}
		providerID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Error().Err(err).Str("proforma_id", proformaID).Msg("[payment][usecase] payment gateway failed")
			return entities.BillingPayment{}, classifyGatewayError(err)
		}
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn().Err(err).Str("proforma_id", proformaID).Msg("[payment][usecase] provider response is not an object")
	}

	payment := entities.BillingPayment{
		ID:           providerID,
		ProformaID:   proformaID,
		Amount:       p.Total,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}

	created, err := u.repo.Create(ctx, payment)
	if err != nil {
		log.Error().Err(err).Str("proforma_id", proformaID).Str("payment_id", payment.ID).Msg("[payment][usecase] payment repository create failed")
		return entities.BillingPayment{}, err
	}
	log.Info().
		Str("proforma_id", proformaID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Str("amount", created.Amount.StringFixed(2)).
		Msg("[payment][usecase] payment recorded")
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

// ListByProformaID returns payments newest first.
func (u *BillingPaymentUseCase) ListByProformaID(ctx context.Context, proformaID string) ([]entities.BillingPayment, error) {
	proformaID = strings.TrimSpace(proformaID)
	if proformaID == "" {
		return nil, ErrInvalidPaymentProformaID
	}
	items, err := u.repo.ListByProformaID(ctx, proformaID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items, nil
}

// ensureNotPaid refuses a second charge once an approved payment exists.
func (u *BillingPaymentUseCase) ensureNotPaid(ctx context.Context, proformaID string) error {
	existing, err := u.repo.ListByProformaID(ctx, proformaID)
	if err != nil {
		log.Error().Err(err).Str("proforma_id", proformaID).Msg("[payment][usecase] payment lookup failed")
		return err
	}
	for _, p := range existing {
		if p.Status == entities.PaymentStatusAprobado {
			log.Warn().Str("proforma_id", proformaID).Str("payment_id", p.ID).Msg("[payment][usecase] proforma already paid")
			return ErrProformaAlreadyPaid
		}
	}
	return nil
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		payer = map[string]any{}
		m["payer"] = payer
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.opts.SandboxPayerEmail != "" {
		payer["email"] = u.opts.SandboxPayerEmail
	}
}

func mockProviderResponse(reqMap map[string]any) (string, string, json.RawMessage, error) {
	id := "mock-" + uuid.NewString()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	resp := make(map[string]any, len(reqMap)+5)
	for k, v := range reqMap {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now
	resp["date_approved"] = now

	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprobado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRechazado
	default:
		return entities.PaymentStatusPendiente
	}
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	return strings.TrimSpace(fmt.Sprintf("%v", v)) != ""
}

// classifyGatewayError maps Mercado Pago error bodies to sentinel errors.
func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found"), strings.Contains(msg, `"code":2002`):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved"), strings.Contains(msg, `"code":2034`):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, `"error":"unauthorized"`), strings.Contains(msg, `"status":401`):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, `"error":"bad_request"`), strings.Contains(msg, `"status":400`):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
