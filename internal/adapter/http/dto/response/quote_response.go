package response

import (
	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
)

type QuoteExamResponse struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Precio string `json:"precio"`
}

// QuoteResponse carries every amount both as a number and in display form.
type QuoteResponse struct {
	Examenes        []QuoteExamResponse `json:"examenes"`
	PrecioOriginal  float64             `json:"precio_original"`
	PrecioCliente   float64             `json:"precio_cliente"`
	RecargoTotal    float64             `json:"recargo_total"`
	RecargoUnitario float64             `json:"recargo_unitario"`
	CostoDomicilio  float64             `json:"costo_domicilio"`
	TotalFinal      float64             `json:"total_final"`
	Display         QuoteDisplay        `json:"display"`
}

type QuoteDisplay struct {
	PrecioOriginal string `json:"precio_original"`
	PrecioCliente  string `json:"precio_cliente"`
	RecargoTotal   string `json:"recargo_total"`
	CostoDomicilio string `json:"costo_domicilio"`
	TotalFinal     string `json:"total_final"`
}

func FromQuote(q entities.ExamQuote) QuoteResponse {
	examenes := make([]QuoteExamResponse, 0, len(q.Examenes))
	for _, e := range q.Examenes {
		examenes = append(examenes, QuoteExamResponse{Codigo: e.Codigo, Nombre: e.Nombre, Precio: e.Precio})
	}
	return QuoteResponse{
		Examenes:        examenes,
		PrecioOriginal:  q.PrecioOriginal.InexactFloat64(),
		PrecioCliente:   q.PrecioCliente.InexactFloat64(),
		RecargoTotal:    q.RecargoTotal.InexactFloat64(),
		RecargoUnitario: q.RecargoUnitario.InexactFloat64(),
		CostoDomicilio:  q.CostoDomicilio.InexactFloat64(),
		TotalFinal:      q.TotalFinal.InexactFloat64(),
		Display: QuoteDisplay{
			PrecioOriginal: quotation.FormatPrice(q.PrecioOriginal),
			PrecioCliente:  quotation.FormatPrice(q.PrecioCliente),
			RecargoTotal:   quotation.FormatPrice(q.RecargoTotal),
			CostoDomicilio: quotation.FormatPrice(q.CostoDomicilio),
			TotalFinal:     quotation.FormatPrice(q.TotalFinal),
		},
	}
}
