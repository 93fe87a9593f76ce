package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IChangeOrderRepository abstracts DynamoDB persistence for ChangeOrder.
//
// ListPending feeds the expiry sweep; decisions commit through the ITxWriter.

type IChangeOrderRepository interface {
	Create(ctx context.Context, c entities.ChangeOrder) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
	ListPending(ctx context.Context) ([]entities.ChangeOrder, error)
}
