package entities

import "time"

// LaboratoryExam is a priced laboratory test in the central catalog.
//
// Storage model (DynamoDB):
//   - PK: codigo
//
// Precio is kept in its localized serialization ("S/ 150.00"), which is the
// only money format the catalog accepts. Use quotation.ParsePrice to read it.
type LaboratoryExam struct {
	Codigo          string    `json:"codigo"`
	Nombre          string    `json:"nombre"`
	Precio          string    `json:"precio"`
	Categoria       string    `json:"categoria,omitempty"`
	Descripcion     string    `json:"descripcion,omitempty"`
	TiempoResultado string    `json:"tiempo_resultado,omitempty"`
	Preparacion     string    `json:"preparacion,omitempty"`
	Activo          bool      `json:"activo"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
