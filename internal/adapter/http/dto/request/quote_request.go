package request

import (
	"errors"

	"healthathome/internal/domain/entities"
)

var ErrAmbiguousQuoteRequest = errors.New("send either codigos or examenes, not both")

type InlineExamRequest struct {
	Codigo string `json:"codigo"`
	Nombre string `json:"nombre"`
	Precio string `json:"precio"`
}

// QuotePreviewRequest prices catalog codes or exams supplied inline.
type QuotePreviewRequest struct {
	Codigos  []string            `json:"codigos"`
	Examenes []InlineExamRequest `json:"examenes"`
}

func (r QuotePreviewRequest) Validate() error {
	if len(r.Codigos) > 0 && len(r.Examenes) > 0 {
		return ErrAmbiguousQuoteRequest
	}
	return nil
}

// IsInline reports whether the request carries its own exams.
func (r QuotePreviewRequest) IsInline() bool {
	return len(r.Examenes) > 0
}

// InlineExams keeps the request order.
func (r QuotePreviewRequest) InlineExams() []entities.LaboratoryExam {
	out := make([]entities.LaboratoryExam, 0, len(r.Examenes))
	for _, e := range r.Examenes {
		out = append(out, entities.LaboratoryExam{Codigo: e.Codigo, Nombre: e.Nombre, Precio: e.Precio, Activo: true})
	}
	return out
}
