package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus represents the payment processing outcome.
type PaymentStatus string

const (
	PaymentStatusPendiente PaymentStatus = "pendiente"
	PaymentStatusAprobado  PaymentStatus = "aprobado"
	PaymentStatusRechazado PaymentStatus = "rechazado"
)

// BillingPayment is a payment collected for an approved proforma.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (proforma_id-index): proforma_id
//
// MPPayloadRaw keeps the provider response body for traceability; MPPayload is
// its parsed form, kept for querying.
type BillingPayment struct {
	ID         string          `json:"id"`
	ProformaID string          `json:"proforma_id"`
	Amount     decimal.Decimal `json:"amount"`
	Date       time.Time       `json:"date"`
	Status     PaymentStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
