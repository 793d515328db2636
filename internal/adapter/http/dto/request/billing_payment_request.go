package request

import "encoding/json"

// BillingPaymentCreateRequest is the payload for the "create and process payment" route.
//
// `mp_payload` is forwarded as raw JSON so callers can use any Mercado Pago
// payment schema. The amount and external reference are always overwritten
// from the proforma.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
