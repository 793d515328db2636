package export

import (
	"healthathome/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type summaryLine struct {
	label  string
	amount decimal.Decimal
	total  bool
}

// summaryLines is the totals block shared by every document format.
func summaryLines(q entities.ExamQuote) []summaryLine {
	return []summaryLine{
		{label: "Precio de lista", amount: q.PrecioOriginal},
		{label: "Recargo por servicio", amount: q.RecargoTotal},
		{label: "Precio cliente", amount: q.PrecioCliente},
		{label: "Costo de domicilio", amount: q.CostoDomicilio},
		{label: "Total", amount: q.TotalFinal, total: true},
	}
}
