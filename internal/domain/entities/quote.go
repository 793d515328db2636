package entities

import "github.com/shopspring/decimal"

// ExamQuote is the price breakdown of a proforma. It is derived on demand from
// the current exam selection and never persisted.
//
// PrecioCliente already includes RecargoUnitario once per exam. RecargoTotal
// is the configured amount, shown for display and not added again.
type ExamQuote struct {
	Examenes        []LaboratoryExam `json:"examenes"`
	PrecioOriginal  decimal.Decimal  `json:"precio_original"`
	PrecioCliente   decimal.Decimal  `json:"precio_cliente"`
	RecargoTotal    decimal.Decimal  `json:"recargo_total"`
	RecargoUnitario decimal.Decimal  `json:"recargo_unitario"`
	CostoDomicilio  decimal.Decimal  `json:"costo_domicilio"`
	TotalFinal      decimal.Decimal  `json:"total_final"`
}
