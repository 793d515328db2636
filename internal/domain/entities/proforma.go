package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProformaStatus represents the lifecycle of a proforma.
//
// pendiente is the only state that accepts transitions; the other three are final.
type ProformaStatus string

const (
	ProformaStatusPendiente ProformaStatus = "pendiente"
	ProformaStatusAprobada  ProformaStatus = "aprobada"
	ProformaStatusRechazada ProformaStatus = "rechazada"
	ProformaStatusAnulada   ProformaStatus = "anulada"
)

// Proforma is a home-service laboratory quotation requested for a patient.
//
// Storage model (DynamoDB):
//   - PK: id
//
// FechaVisita is a date-only value (YYYY-MM-DD) and HoraVisita a wall-clock
// time (HH:mm). Total is the totalFinal agreed when the exam selection was
// last set; the breakdown itself is recomputed from CodigosExamen on demand.
type Proforma struct {
	ID                string          `json:"id"`
	PacienteNombre    string          `json:"paciente_nombre"`
	PacienteDocumento string          `json:"paciente_documento,omitempty"`
	Direccion         string          `json:"direccion,omitempty"`
	CodigosExamen     []string        `json:"codigos_examen"`
	FechaVisita       string          `json:"fecha_visita"`
	HoraVisita        string          `json:"hora_visita"`
	Total             decimal.Decimal `json:"total"`
	Status            ProformaStatus  `json:"status"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
