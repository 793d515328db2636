package interfaces

import "healthathome/internal/domain/entities"

// IDocumentRenderer turns a proforma document into a downloadable file.
type IDocumentRenderer interface {
	Render(doc entities.ProformaDocument) ([]byte, error)
	ContentType() string
	Extension() string
}
