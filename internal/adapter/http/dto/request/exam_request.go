package request

import "healthathome/internal/domain/entities"

// ExamRequest is the body of catalog create and update calls. Precio accepts
// the localized form ("S/ 1,200.50") or a plain number.
type ExamRequest struct {
	Codigo          string `json:"codigo"`
	Nombre          string `json:"nombre" binding:"required"`
	Precio          string `json:"precio" binding:"required"`
	Categoria       string `json:"categoria"`
	Descripcion     string `json:"descripcion"`
	TiempoResultado string `json:"tiempo_resultado"`
	Preparacion     string `json:"preparacion"`
	Activo          *bool  `json:"activo"`
}

// ToEntity maps the request to an exam. Activo defaults to true when omitted.
func (r ExamRequest) ToEntity() entities.LaboratoryExam {
	activo := true
	if r.Activo != nil {
		activo = *r.Activo
	}
	return entities.LaboratoryExam{
		Codigo:          r.Codigo,
		Nombre:          r.Nombre,
		Precio:          r.Precio,
		Categoria:       r.Categoria,
		Descripcion:     r.Descripcion,
		TiempoResultado: r.TiempoResultado,
		Preparacion:     r.Preparacion,
		Activo:          activo,
	}
}
