package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "healthathome/internal/adapter/http/dto/response"
	"healthathome/internal/usecase"
	"healthathome/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// BillingPaymentHandler handles HTTP requests for proforma payments.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc}
}

// CreatePaymentByProformaID godoc
// @Summary  Charge an approved proforma
// @Tags     payments
// @Accept   json
// @Produce  json
// @Param    proforma_id path string true "Proforma ID"
// @Param    payment body request.BillingPaymentCreateRequest false "Mercado Pago payload, wrapped in mp_payload or sent as is"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /payments/{proforma_id} [post]
func (h *BillingPaymentHandler) CreatePaymentByProformaID(c *gin.Context) {
	proformaID := c.Param("proforma_id")
	log.Info().Str("proforma_id", proformaID).Msg("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		log.Warn().Err(err).Str("proforma_id", proformaID).Msg("[payment][handler] invalid payload")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateAndApprove(c.Request.Context(), proformaID, mpPayload)
	if err != nil {
		log.Warn().Err(err).Str("proforma_id", proformaID).Msg("[payment][handler] create failed")
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().
		Str("proforma_id", proformaID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Msg("[payment][handler] create success")

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// GetPaymentByProformaID godoc
// @Summary  Latest payment of a proforma
// @Tags     payments
// @Produce  json
// @Param    proforma_id path string true "Proforma ID"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /payments/{proforma_id} [get]
func (h *BillingPaymentHandler) GetPaymentByProformaID(c *gin.Context) {
	proformaID := c.Param("proforma_id")

	payments, err := h.usecase.ListByProformaID(c.Request.Context(), proformaID)
	if err != nil {
		appErr := mapBillingPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if len(payments) == 0 {
		appErr := pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	latest := payments[0]
	for _, p := range payments[1:] {
		if p.Date.After(latest.Date) {
			latest = p
		}
	}

	c.JSON(http.StatusOK, response.FromBillingPayment(latest))
}

// readMPPayload accepts {"mp_payload": {...}} or the Mercado Pago payload
// itself. An empty body is an empty payload.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapBillingPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentProformaID), errors.Is(err, usecase.ErrInvalidPaymentID),
		errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrProformaNotFound):
		return pkg.NewDomainErrorSimple("PROFORMA_NOT_FOUND", "Proforma not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProformaNotApproved):
		return pkg.NewDomainErrorSimple("PROFORMA_NOT_APPROVED", "Proforma not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrProformaAlreadyPaid):
		return pkg.NewDomainErrorSimple("PROFORMA_ALREADY_PAID", "Proforma already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrBillingPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
