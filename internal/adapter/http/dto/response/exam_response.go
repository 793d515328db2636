package response

import (
	"time"

	"healthathome/internal/domain/entities"
	"healthathome/internal/domain/quotation"
)

type ExamResponse struct {
	Codigo          string    `json:"codigo"`
	Nombre          string    `json:"nombre"`
	Precio          string    `json:"precio"`
	PrecioValor     float64   `json:"precio_valor"`
	Categoria       string    `json:"categoria,omitempty"`
	Descripcion     string    `json:"descripcion,omitempty"`
	TiempoResultado string    `json:"tiempo_resultado,omitempty"`
	Preparacion     string    `json:"preparacion,omitempty"`
	Activo          bool      `json:"activo"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func FromExam(e entities.LaboratoryExam) ExamResponse {
	return ExamResponse{
		Codigo:          e.Codigo,
		Nombre:          e.Nombre,
		Precio:          e.Precio,
		PrecioValor:     quotation.ParsePrice(e.Precio).InexactFloat64(),
		Categoria:       e.Categoria,
		Descripcion:     e.Descripcion,
		TiempoResultado: e.TiempoResultado,
		Preparacion:     e.Preparacion,
		Activo:          e.Activo,
		CreatedAt:       e.CreatedAt,
		UpdatedAt:       e.UpdatedAt,
	}
}

func FromExams(exams []entities.LaboratoryExam) []ExamResponse {
	out := make([]ExamResponse, 0, len(exams))
	for _, e := range exams {
		out = append(out, FromExam(e))
	}
	return out
}

// ImportResponse summarizes a catalog file import.
type ImportResponse struct {
	Total     int                        `json:"total"`
	Imported  int                        `json:"imported"`
	Rejected  int                        `json:"rejected"`
	Resultado []entities.ImportRowResult `json:"resultado"`
}

func FromImportResults(results []entities.ImportRowResult) ImportResponse {
	res := ImportResponse{Total: len(results), Resultado: results}
	for _, r := range results {
		if r.OK {
			res.Imported++
		} else {
			res.Rejected++
		}
	}
	return res
}
