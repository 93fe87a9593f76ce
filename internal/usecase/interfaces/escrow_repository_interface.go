package interfaces

import (
	"context"

	"mechmarket/internal/domain/entities"
)

// IEscrowRepository abstracts DynamoDB persistence for EscrowAccount.
//
// Accounts are only ever created and mutated through the ITxWriter; reads go
// through here. GetByJobID resolves the 1:1 job->escrow link.

type IEscrowRepository interface {
	GetByID(ctx context.Context, id string) (entities.EscrowAccount, error)
	GetByJobID(ctx context.Context, jobID string) (entities.EscrowAccount, error)
}

// IPaymentRepository abstracts DynamoDB persistence for the Payment ledger
// record mirroring an escrow account.

type IPaymentRepository interface {
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	GetByJobID(ctx context.Context, jobID string) (entities.Payment, error)
}
