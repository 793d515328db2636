package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// QuoteLine is one exam of a quote with its catalog and client price.
type QuoteLine struct {
	Codigo         string
	Nombre         string
	PrecioCatalogo decimal.Decimal
	PrecioCliente  decimal.Decimal
}

// ProformaDocument is everything a printable proforma shows.
type ProformaDocument struct {
	Proforma     Proforma
	Quote        ExamQuote
	Lines        []QuoteLine
	FechaDisplay string
	GeneratedAt  time.Time
}
