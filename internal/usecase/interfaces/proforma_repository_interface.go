package interfaces

import (
	"context"

	"healthathome/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// IProformaRepository abstracts DynamoDB persistence for Proforma.
//
// Conditional updates return a zero proforma when the stored status is not
// the expected one, or when the proforma does not exist.
type IProformaRepository interface {
	Create(ctx context.Context, p entities.Proforma) (entities.Proforma, error)
	GetByID(ctx context.Context, id string) (entities.Proforma, error)
	List(ctx context.Context, status entities.ProformaStatus) ([]entities.Proforma, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.ProformaStatus) (entities.Proforma, error)
	UpdateExams(ctx context.Context, id string, codigos []string, total decimal.Decimal) (entities.Proforma, error)
}
