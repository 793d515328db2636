package interfaces

import (
	"context"

	"healthathome/internal/domain/entities"
)

// IBillingPaymentRepository abstracts DynamoDB persistence for BillingPayment.

type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByProformaID(ctx context.Context, proformaID string) ([]entities.BillingPayment, error)
}
