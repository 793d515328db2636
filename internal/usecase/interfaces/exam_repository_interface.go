package interfaces

import (
	"context"

	"healthathome/internal/domain/entities"
)

// IExamRepository abstracts persistence of the laboratory exam catalog.
// Lookups return a zero exam (empty Codigo) when nothing matches.
type IExamRepository interface {
	Create(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error)
	Update(ctx context.Context, e entities.LaboratoryExam) (entities.LaboratoryExam, error)
	GetByCode(ctx context.Context, codigo string) (entities.LaboratoryExam, error)
	GetByCodes(ctx context.Context, codigos []string) ([]entities.LaboratoryExam, error)
	List(ctx context.Context) ([]entities.LaboratoryExam, error)
	Delete(ctx context.Context, codigo string) (entities.LaboratoryExam, error)
}

// ICatalogCache is a read-through cache in front of IExamRepository.
type ICatalogCache interface {
	Get(ctx context.Context, codigo string) (entities.LaboratoryExam, bool, error)
	Set(ctx context.Context, e entities.LaboratoryExam) error
	Invalidate(ctx context.Context, codigos ...string) error
}
