package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IJobRepository abstracts DynamoDB persistence for Job.
//
// Update is a compare-and-swap: the write only lands if the stored status still
// equals expectedStatus; on a lost race the zero-value Job is returned with a
// nil error, matching Get semantics for "not there".

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	Update(ctx context.Context, j entities.Job, expectedStatus entities.JobStatus) (entities.Job, error)
	ListByCustomerID(ctx context.Context, customerID string) ([]entities.Job, error)
}
