package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEscrowNotFound     = errors.New("escrow account not found")
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrEscrowNotHeld      = errors.New("escrow account is not held")
	ErrEscrowRefunded     = errors.New("escrow account was refunded")
	ErrEscrowReleased     = errors.New("escrow account was released")
	ErrJobNotCompleted    = errors.New("job is not completed")
	ErrJobNotRefundable   = errors.New("job is not cancelled or disputed")
	ErrEmptyRefundReason  = errors.New("empty refund reason")
	ErrPaymentGateway     = errors.New("payment gateway failure")
	ErrEscrowConflict     = errors.New("escrow changed concurrently, retry")
	ErrInvalidBidForOpen  = errors.New("escrow requires an accepted bid amount")
	ErrGatewayNotSet      = errors.New("payment gateway not configured")
)

const defaultEscrowCurrency = "BRL"

// ReleaseResult pairs the escrow account with its mirrored payment after a
// terminal transition.
type ReleaseResult struct {
	Escrow  entities.EscrowAccount
	Payment entities.Payment
}

// IEscrowManager owns EscrowAccount/Payment entities and the
// hold/release/refund state machine.

type IEscrowManager interface {
	// OpenEscrow authorizes the hold at the gateway and builds the escrow +
	// payment pair without persisting. It is invoked only from the
	// bid-acceptance transaction, never directly by a caller.
	OpenEscrow(ctx context.Context, job entities.Job, acceptedBid entities.Bid) (entities.EscrowAccount, entities.Payment, error)

	// IncreaseHold is pure: it returns the held account with the approved
	// change order amount added. Committed by the change-order approval
	// transaction.
	IncreaseHold(escrow entities.EscrowAccount, approved entities.ChangeOrder, at time.Time) (entities.EscrowAccount, error)

	Release(ctx context.Context, jobID string) (ReleaseResult, error)
	Refund(ctx context.Context, jobID string, actor entities.Actor, reason string) (ReleaseResult, error)
	GetByJobID(ctx context.Context, jobID string) (ReleaseResult, error)

	// VoidHold cancels a gateway hold best-effort after a lost commit race.
	VoidHold(ctx context.Context, escrow entities.EscrowAccount)
}

type EscrowManager struct {
	escrowRepo  interfaces.IEscrowRepository
	paymentRepo interfaces.IPaymentRepository
	jobRepo     interfaces.IJobRepository
	tx          interfaces.ITxWriter
	gateway     interfaces.IPaymentGateway
	commission  interfaces.ICommissionPolicy
	currency    string
	log         *zap.Logger
	now         func() time.Time
}

var _ IEscrowManager = (*EscrowManager)(nil)

func NewEscrowManager(
	escrowRepo interfaces.IEscrowRepository,
	paymentRepo interfaces.IPaymentRepository,
	jobRepo interfaces.IJobRepository,
	tx interfaces.ITxWriter,
	gateway interfaces.IPaymentGateway,
	commission interfaces.ICommissionPolicy,
	log *zap.Logger,
) *EscrowManager {
	if log == nil {
		log = zap.NewNop()
	}
	return &EscrowManager{
		escrowRepo:  escrowRepo,
		paymentRepo: paymentRepo,
		jobRepo:     jobRepo,
		tx:          tx,
		gateway:     gateway,
		commission:  commission,
		currency:    defaultEscrowCurrency,
		log:         log,
		now:         time.Now,
	}
}

func (m *EscrowManager) OpenEscrow(ctx context.Context, job entities.Job, acceptedBid entities.Bid) (entities.EscrowAccount, entities.Payment, error) {
	if m.gateway == nil {
		return entities.EscrowAccount{}, entities.Payment{}, ErrGatewayNotSet
	}
	if acceptedBid.Amount <= 0 {
		return entities.EscrowAccount{}, entities.Payment{}, ErrInvalidBidForOpen
	}

	fee := m.commission.PlatformFee(acceptedBid.Amount, job.Category)
	now := m.now().UTC()

	escrow := entities.EscrowAccount{
		ID:         uuid.NewString(),
		JobID:      job.ID,
		CustomerID: job.CustomerID,
		MechanicID: acceptedBid.MechanicID,
		Amount:     acceptedBid.Amount,
		Currency:   m.currency,
		Status:     entities.EscrowStatusHeld,
		ReleaseConditions: []string{
			entities.ReleaseConditionJobCompleted,
			entities.ReleaseConditionCustomerApproval,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	hold, err := m.gateway.AuthorizeAndHold(ctx, interfaces.HoldRequest{
		IdempotencyKey: escrow.ID,
		Amount:         acceptedBid.Amount,
		Currency:       m.currency,
		CustomerRef:    job.CustomerID,
		Description:    fmt.Sprintf("Escrow for job %s", job.ID),
	})
	if err != nil {
		m.log.Warn("escrow hold authorization failed",
			zap.String("job_id", job.ID),
			zap.String("escrow_id", escrow.ID),
			zap.Error(err))
		return entities.EscrowAccount{}, entities.Payment{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	escrow.HoldRef = hold.Ref

	payment := entities.Payment{
		ID:              uuid.NewString(),
		JobID:           job.ID,
		EscrowAccountID: escrow.ID,
		GrossAmount:     acceptedBid.Amount,
		PlatformFee:     fee,
		MechanicAmount:  acceptedBid.Amount - fee,
		ServiceCategory: job.Category,
		Status:          entities.PaymentStatusEscrow,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	m.log.Info("escrow opened",
		zap.String("job_id", job.ID),
		zap.String("escrow_id", escrow.ID),
		zap.Float64("amount", escrow.Amount),
		zap.Float64("platform_fee", fee))
	return escrow, payment, nil
}

func (m *EscrowManager) IncreaseHold(escrow entities.EscrowAccount, approved entities.ChangeOrder, at time.Time) (entities.EscrowAccount, error) {
	if escrow.Status != entities.EscrowStatusHeld {
		return entities.EscrowAccount{}, ErrEscrowNotHeld
	}
	escrow.Amount += approved.TotalAmount
	escrow.UpdatedAt = at.UTC()
	return escrow, nil
}

// Release converts a held escrow into a completed payment. Idempotent: an
// already-released escrow is a no-op success so callers can retry safely.
func (m *EscrowManager) Release(ctx context.Context, jobID string) (ReleaseResult, error) {
	cur, err := m.GetByJobID(ctx, jobID)
	if err != nil {
		return ReleaseResult{}, err
	}

	switch cur.Escrow.Status {
	case entities.EscrowStatusReleased:
		return cur, nil
	case entities.EscrowStatusRefunded:
		return ReleaseResult{}, ErrEscrowRefunded
	}

	job, err := m.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return ReleaseResult{}, err
	}
	if job.ID == "" {
		return ReleaseResult{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusCompleted {
		return ReleaseResult{}, ErrJobNotCompleted
	}

	if m.gateway == nil {
		return ReleaseResult{}, ErrGatewayNotSet
	}
	if _, err := m.gateway.Capture(ctx, cur.Escrow.HoldRef, cur.Escrow.ID); err != nil {
		m.log.Warn("escrow capture failed",
			zap.String("job_id", jobID),
			zap.String("escrow_id", cur.Escrow.ID),
			zap.Error(err))
		return ReleaseResult{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	now := m.now().UTC()
	escrow := cur.Escrow
	escrow.Status = entities.EscrowStatusReleased
	escrow.UpdatedAt = now
	escrow.ReleasedAt = &now

	payment := cur.Payment
	payment.Status = entities.PaymentStatusCompleted
	payment.UpdatedAt = now

	if err := m.tx.CommitEscrowRelease(ctx, escrow, payment); err != nil {
		if errors.Is(err, interfaces.ErrTxConflict) {
			// A concurrent release already landed; report its result.
			latest, rerr := m.GetByJobID(ctx, jobID)
			if rerr == nil && latest.Escrow.Status == entities.EscrowStatusReleased {
				return latest, nil
			}
			return ReleaseResult{}, ErrEscrowConflict
		}
		return ReleaseResult{}, err
	}

	m.log.Info("escrow released",
		zap.String("job_id", jobID),
		zap.String("escrow_id", escrow.ID),
		zap.Float64("amount", escrow.Amount),
		zap.Float64("mechanic_amount", payment.MechanicAmount))
	return ReleaseResult{Escrow: escrow, Payment: payment}, nil
}

// Refund returns held funds to the customer. The gateway refund must succeed
// before any local state advances; on gateway failure the escrow stays held.
func (m *EscrowManager) Refund(ctx context.Context, jobID string, actor entities.Actor, reason string) (ReleaseResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return ReleaseResult{}, ErrEmptyRefundReason
	}

	cur, err := m.GetByJobID(ctx, jobID)
	if err != nil {
		return ReleaseResult{}, err
	}
	if cur.Escrow.Status != entities.EscrowStatusHeld {
		if cur.Escrow.Status == entities.EscrowStatusRefunded {
			return cur, nil
		}
		return ReleaseResult{}, ErrEscrowReleased
	}

	job, err := m.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return ReleaseResult{}, err
	}
	if job.ID == "" {
		return ReleaseResult{}, ErrJobNotFound
	}
	// Refunds follow cancellation and belong to the job's customer; an admin
	// may also refund a live job under dispute resolution.
	if actor.Role != entities.ActorRoleAdmin {
		if actor.Role != entities.ActorRoleCustomer || actor.ID != job.CustomerID {
			return ReleaseResult{}, ErrNotAuthorized
		}
		if job.Status != entities.JobStatusCancelled {
			return ReleaseResult{}, ErrJobNotRefundable
		}
	}

	if m.gateway == nil {
		return ReleaseResult{}, ErrGatewayNotSet
	}
	if _, err := m.gateway.Refund(ctx, cur.Escrow.HoldRef, cur.Escrow.ID, reason); err != nil {
		m.log.Warn("escrow refund failed, local state unchanged",
			zap.String("job_id", jobID),
			zap.String("escrow_id", cur.Escrow.ID),
			zap.Error(err))
		return ReleaseResult{}, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	now := m.now().UTC()
	escrow := cur.Escrow
	escrow.Status = entities.EscrowStatusRefunded
	escrow.UpdatedAt = now
	escrow.RefundedAt = &now

	payment := cur.Payment
	payment.Status = entities.PaymentStatusRefunded
	payment.RefundReason = reason
	payment.UpdatedAt = now

	if err := m.tx.CommitEscrowRefund(ctx, escrow, payment); err != nil {
		if errors.Is(err, interfaces.ErrTxConflict) {
			return ReleaseResult{}, ErrEscrowConflict
		}
		return ReleaseResult{}, err
	}

	m.log.Info("escrow refunded",
		zap.String("job_id", jobID),
		zap.String("escrow_id", escrow.ID),
		zap.String("reason", reason))
	return ReleaseResult{Escrow: escrow, Payment: payment}, nil
}

func (m *EscrowManager) GetByJobID(ctx context.Context, jobID string) (ReleaseResult, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return ReleaseResult{}, ErrInvalidJobID
	}
	escrow, err := m.escrowRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return ReleaseResult{}, err
	}
	if escrow.ID == "" {
		return ReleaseResult{}, ErrEscrowNotFound
	}
	payment, err := m.paymentRepo.GetByJobID(ctx, jobID)
	if err != nil {
		return ReleaseResult{}, err
	}
	if payment.ID == "" {
		return ReleaseResult{}, ErrPaymentNotFound
	}
	return ReleaseResult{Escrow: escrow, Payment: payment}, nil
}

func (m *EscrowManager) VoidHold(ctx context.Context, escrow entities.EscrowAccount) {
	if m.gateway == nil || escrow.HoldRef == "" {
		return
	}
	if err := m.gateway.CancelHold(ctx, escrow.HoldRef, escrow.ID); err != nil {
		// Best-effort: the idempotency key lets a retried acceptance reuse
		// the hold, so a dangling one is only money briefly reserved.
		m.log.Warn("failed to void escrow hold",
			zap.String("escrow_id", escrow.ID),
			zap.String("hold_ref", escrow.HoldRef),
			zap.Error(err))
	}
}
