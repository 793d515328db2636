package request

import "healthathome/internal/usecase"

// CreateProformaRequest is the body of POST /proformas. fecha_visita accepts
// YYYY-MM-DD or an ISO timestamp; hora_visita accepts "HH:mm", "HH:mm:ss" or
// a 12-hour value such as "8:30 PM".
type CreateProformaRequest struct {
	PacienteNombre    string   `json:"paciente_nombre" binding:"required"`
	PacienteDocumento string   `json:"paciente_documento"`
	Direccion         string   `json:"direccion"`
	CodigosExamen     []string `json:"codigos_examen" binding:"required"`
	FechaVisita       string   `json:"fecha_visita" binding:"required"`
	HoraVisita        string   `json:"hora_visita" binding:"required"`
}

func (r CreateProformaRequest) ToCommand() usecase.CreateProformaCommand {
	return usecase.CreateProformaCommand{
		PacienteNombre:    r.PacienteNombre,
		PacienteDocumento: r.PacienteDocumento,
		Direccion:         r.Direccion,
		CodigosExamen:     r.CodigosExamen,
		FechaVisita:       r.FechaVisita,
		HoraVisita:        r.HoraVisita,
	}
}

type UpdateProformaExamsRequest struct {
	CodigosExamen []string `json:"codigos_examen" binding:"required"`
}
