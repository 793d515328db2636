package response

import (
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
	"healthathome/pkg/dateonly"
)

// ProformaResponse exposes the visit date three ways: canonical
// (YYYY-MM-DD), fixed DD/MM/YYYY and formatted for the configured locale.
type ProformaResponse struct {
	ID                 string    `json:"id"`
	PacienteNombre     string    `json:"paciente_nombre"`
	PacienteDocumento  string    `json:"paciente_documento,omitempty"`
	Direccion          string    `json:"direccion,omitempty"`
	CodigosExamen      []string  `json:"codigos_examen"`
	FechaVisita        string    `json:"fecha_visita"`
	FechaVisitaDisplay string    `json:"fecha_visita_display"`
	FechaVisitaLocal   string    `json:"fecha_visita_local"`
	HoraVisita         string    `json:"hora_visita"`
	Total              float64   `json:"total"`
	TotalDisplay       string    `json:"total_display"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func FromProforma(p entities.Proforma) ProformaResponse {
	codigos := p.CodigosExamen
	if codigos == nil {
		codigos = []string{}
	}
	return ProformaResponse{
		ID:                 p.ID,
		PacienteNombre:     p.PacienteNombre,
		PacienteDocumento:  p.PacienteDocumento,
		Direccion:          p.Direccion,
		CodigosExamen:      codigos,
		FechaVisita:        p.FechaVisita,
		FechaVisitaDisplay: dateonly.FormatDateOnlyDdMmYyyy(p.FechaVisita),
		FechaVisitaLocal:   dateonly.FormatDateOnly(p.FechaVisita, ""),
		HoraVisita:         p.HoraVisita,
		Total:              p.Total.InexactFloat64(),
		TotalDisplay:       quotation.FormatPrice(p.Total),
		Status:             string(p.Status),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

func FromProformas(list []entities.Proforma) []ProformaResponse {
	out := make([]ProformaResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProforma(p))
	}
	return out
}
