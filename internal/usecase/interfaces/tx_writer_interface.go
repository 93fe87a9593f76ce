package interfaces

import (
	"context"
	"errors"

	"mechmarket/internal/domain/entities"
)

// ErrTxConflict is returned when a transactional commit loses a
// compare-and-swap race (a precondition status changed under us). Callers
// re-read and surface the business error that fits the new state.
var ErrTxConflict = errors.New("transaction conflict")

// ITxWriter commits the multi-entity mutations of the workflow atomically.
//
// Every method maps to one DynamoDB TransactWriteItems call whose condition
// expressions pin the precondition state (job still biddable, change order
// still pending, escrow still held). No caller ever observes a partial commit.

type ITxWriter interface {
	// CommitBidAcceptance writes the accepted job, the winning bid, the
	// rejected competitors and the freshly opened escrow+payment pair.
	CommitBidAcceptance(ctx context.Context, job entities.Job, accepted entities.Bid, rejected []entities.Bid, escrow entities.EscrowAccount, payment entities.Payment) error

	// CommitBidRejection writes a single rejected bid, conditioned on it
	// still being pending (it may have been accepted concurrently).
	CommitBidRejection(ctx context.Context, b entities.Bid) error

	// CommitChangeOrderDecision writes a single change order decision
	// (rejected, expired or cancelled), conditioned on it still being pending.
	CommitChangeOrderDecision(ctx context.Context, c entities.ChangeOrder) error

	// CommitChangeOrderApproval writes the approved change order, the job with
	// its increased approved amount and the increased escrow hold.
	CommitChangeOrderApproval(ctx context.Context, job entities.Job, c entities.ChangeOrder, escrow entities.EscrowAccount) error

	// CommitEscrowRelease writes the released escrow and completed payment,
	// conditioned on the escrow still being held.
	CommitEscrowRelease(ctx context.Context, escrow entities.EscrowAccount, payment entities.Payment) error

	// CommitEscrowRefund writes the refunded escrow and payment, conditioned
	// on the escrow still being held.
	CommitEscrowRefund(ctx context.Context, escrow entities.EscrowAccount, payment entities.Payment) error
}
