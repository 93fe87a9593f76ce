package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IBidRepository abstracts DynamoDB persistence for Bid.
//
// Bid decisions (accept/reject) are not written here: they commit through the
// ITxWriter so the job, the winning bid, the losing bids and the escrow move as
// one unit.

type IBidRepository interface {
	Create(ctx context.Context, b entities.Bid) (entities.Bid, error)
	GetByID(ctx context.Context, id string) (entities.Bid, error)
	ListByJobID(ctx context.Context, jobID string) ([]entities.Bid, error)
}
