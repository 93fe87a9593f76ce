package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrChangeOrderNotFound = errors.New("change order not found")
	ErrInvalidChangeOrder  = errors.New("invalid change order id")
	ErrEmptyLineItems      = errors.New("change order requires line items")
	ErrInvalidLineItem     = errors.New("invalid line item")
	ErrEmptyReason         = errors.New("empty change order reason")
	ErrAlreadyDecided      = errors.New("change order already decided")
	ErrChangeOrderExpired  = errors.New("change order expired")
	ErrInvalidDecision     = errors.New("invalid decision")
)

// Decision horizons. Urgent change orders block the mechanic mid-repair, so
// they get a much shorter window.
const (
	changeOrderTTL          = 24 * time.Hour
	changeOrderImmediateTTL = 2 * time.Hour
)

// ChangeOrderDecision is the customer's verdict on a pending change order.
type ChangeOrderDecision string

const (
	DecisionApprove ChangeOrderDecision = "approve"
	DecisionReject  ChangeOrderDecision = "reject"
)

// DecideResult carries everything a change-order approval touched. Escrow and
// Job are zero-valued for rejections.
type DecideResult struct {
	ChangeOrder entities.ChangeOrder
	Job         entities.Job
	Escrow      entities.EscrowAccount
}

// IChangeOrderWorkflow owns ChangeOrder entities and the
// propose/approve/reject/expire protocol for mid-job cost changes.

type IChangeOrderWorkflow interface {
	Propose(ctx context.Context, jobID, mechanicID string, lineItems []entities.LineItem, reason string, requiresImmediateApproval bool) (entities.ChangeOrder, error)
	Decide(ctx context.Context, changeOrderID string, actor entities.Actor, decision ChangeOrderDecision) (DecideResult, error)
	Cancel(ctx context.Context, changeOrderID string, actor entities.Actor) (entities.ChangeOrder, error)
	GetChangeOrder(ctx context.Context, changeOrderID string) (entities.ChangeOrder, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)

	// SweepExpired flips every pending change order past its horizon to
	// expired. Safe to run concurrently with Decide: the pending-status
	// condition means whichever commit lands first wins.
	SweepExpired(ctx context.Context) (int, error)
}

type ChangeOrderWorkflow struct {
	coRepo     interfaces.IChangeOrderRepository
	jobRepo    interfaces.IJobRepository
	escrowRepo interfaces.IEscrowRepository
	tx         interfaces.ITxWriter
	escrow     IEscrowManager
	log        *zap.Logger
	now        func() time.Time
}

var _ IChangeOrderWorkflow = (*ChangeOrderWorkflow)(nil)

func NewChangeOrderWorkflow(
	coRepo interfaces.IChangeOrderRepository,
	jobRepo interfaces.IJobRepository,
	escrowRepo interfaces.IEscrowRepository,
	tx interfaces.ITxWriter,
	escrow IEscrowManager,
	log *zap.Logger,
) *ChangeOrderWorkflow {
	if log == nil {
		log = zap.NewNop()
	}
	return &ChangeOrderWorkflow{
		coRepo:     coRepo,
		jobRepo:    jobRepo,
		escrowRepo: escrowRepo,
		tx:         tx,
		escrow:     escrow,
		log:        log,
		now:        time.Now,
	}
}

func (w *ChangeOrderWorkflow) Propose(ctx context.Context, jobID, mechanicID string, lineItems []entities.LineItem, reason string, requiresImmediateApproval bool) (entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	mechanicID = strings.TrimSpace(mechanicID)
	reason = strings.TrimSpace(reason)
	if jobID == "" {
		return entities.ChangeOrder{}, ErrInvalidJobID
	}
	if mechanicID == "" {
		return entities.ChangeOrder{}, ErrInvalidMechanicID
	}
	if reason == "" {
		return entities.ChangeOrder{}, ErrEmptyReason
	}
	if len(lineItems) == 0 {
		return entities.ChangeOrder{}, ErrEmptyLineItems
	}
	for _, li := range lineItems {
		if strings.TrimSpace(li.Description) == "" || li.Quantity <= 0 || li.UnitPrice <= 0 {
			return entities.ChangeOrder{}, ErrInvalidLineItem
		}
	}

	job, err := w.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if job.ID == "" {
		return entities.ChangeOrder{}, ErrJobNotFound
	}
	if job.Status != entities.JobStatusInProgress {
		return entities.ChangeOrder{}, ErrJobNotInProgress
	}
	if job.AssignedMechanicID != mechanicID {
		return entities.ChangeOrder{}, ErrNotAuthorized
	}

	now := w.now().UTC()
	ttl := changeOrderTTL
	if requiresImmediateApproval {
		ttl = changeOrderImmediateTTL
	}

	c := entities.ChangeOrder{
		ID:                        uuid.NewString(),
		JobID:                     jobID,
		MechanicID:                mechanicID,
		CustomerID:                job.CustomerID,
		Reason:                    reason,
		LineItems:                 lineItems,
		TotalAmount:               entities.SumLineItems(lineItems),
		RequiresImmediateApproval: requiresImmediateApproval,
		Status:                    entities.ChangeOrderStatusPending,
		ExpiresAt:                 now.Add(ttl),
		CreatedAt:                 now,
	}

	created, err := w.coRepo.Create(ctx, c)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	w.log.Info("change order proposed",
		zap.String("change_order_id", created.ID),
		zap.String("job_id", jobID),
		zap.Float64("total_amount", created.TotalAmount),
		zap.Time("expires_at", created.ExpiresAt))
	return created, nil
}

// Decide applies the customer's verdict. A decision after the horizon lazily
// flips the order to expired and reports ErrChangeOrderExpired instead of
// honoring it.
func (w *ChangeOrderWorkflow) Decide(ctx context.Context, changeOrderID string, actor entities.Actor, decision ChangeOrderDecision) (DecideResult, error) {
	if decision != DecisionApprove && decision != DecisionReject {
		return DecideResult{}, ErrInvalidDecision
	}

	c, err := w.GetChangeOrder(ctx, changeOrderID)
	if err != nil {
		return DecideResult{}, err
	}
	if actor.Role != entities.ActorRoleCustomer || actor.ID != c.CustomerID {
		return DecideResult{}, ErrNotAuthorized
	}
	switch c.Status {
	case entities.ChangeOrderStatusPending:
	case entities.ChangeOrderStatusExpired:
		return DecideResult{}, ErrChangeOrderExpired
	default:
		return DecideResult{}, ErrAlreadyDecided
	}

	now := w.now().UTC()
	if c.IsExpiredAt(now) {
		w.expire(ctx, c, now)
		return DecideResult{}, ErrChangeOrderExpired
	}

	if decision == DecisionReject {
		c.Status = entities.ChangeOrderStatusRejected
		c.DecidedAt = &now
		if err := w.tx.CommitChangeOrderDecision(ctx, c); err != nil {
			return DecideResult{}, w.mapDecisionConflict(ctx, c.ID, err)
		}
		w.log.Info("change order rejected",
			zap.String("change_order_id", c.ID),
			zap.String("job_id", c.JobID))
		return DecideResult{ChangeOrder: c}, nil
	}

	job, err := w.jobRepo.GetByID(ctx, c.JobID)
	if err != nil {
		return DecideResult{}, err
	}
	if job.ID == "" {
		return DecideResult{}, ErrJobNotFound
	}
	escrow, err := w.escrowRepo.GetByJobID(ctx, c.JobID)
	if err != nil {
		return DecideResult{}, err
	}
	if escrow.ID == "" {
		return DecideResult{}, ErrEscrowNotFound
	}

	increased, err := w.escrow.IncreaseHold(escrow, c, now)
	if err != nil {
		return DecideResult{}, err
	}

	c.Status = entities.ChangeOrderStatusApproved
	c.DecidedAt = &now
	job.AdditionalApprovedAmount += c.TotalAmount
	job.UpdatedAt = now

	if err := w.tx.CommitChangeOrderApproval(ctx, job, c, increased); err != nil {
		return DecideResult{}, w.mapDecisionConflict(ctx, c.ID, err)
	}

	w.log.Info("change order approved",
		zap.String("change_order_id", c.ID),
		zap.String("job_id", c.JobID),
		zap.Float64("total_amount", c.TotalAmount),
		zap.Float64("escrow_amount", increased.Amount))
	return DecideResult{ChangeOrder: c, Job: job, Escrow: increased}, nil
}

// Cancel is the mechanic withdrawing their own pending change order.
func (w *ChangeOrderWorkflow) Cancel(ctx context.Context, changeOrderID string, actor entities.Actor) (entities.ChangeOrder, error) {
	c, err := w.GetChangeOrder(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if actor.Role != entities.ActorRoleMechanic || actor.ID != c.MechanicID {
		return entities.ChangeOrder{}, ErrNotAuthorized
	}
	if c.Status != entities.ChangeOrderStatusPending {
		return entities.ChangeOrder{}, ErrAlreadyDecided
	}

	now := w.now().UTC()
	c.Status = entities.ChangeOrderStatusCancelled
	c.DecidedAt = &now
	if err := w.tx.CommitChangeOrderDecision(ctx, c); err != nil {
		return entities.ChangeOrder{}, w.mapDecisionConflict(ctx, c.ID, err)
	}
	w.log.Info("change order cancelled",
		zap.String("change_order_id", c.ID),
		zap.String("job_id", c.JobID))
	return c, nil
}

func (w *ChangeOrderWorkflow) GetChangeOrder(ctx context.Context, changeOrderID string) (entities.ChangeOrder, error) {
	changeOrderID = strings.TrimSpace(changeOrderID)
	if changeOrderID == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrder
	}
	c, err := w.coRepo.GetByID(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if c.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return c, nil
}

func (w *ChangeOrderWorkflow) ListByJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return w.coRepo.ListByJobID(ctx, jobID)
}

func (w *ChangeOrderWorkflow) SweepExpired(ctx context.Context) (int, error) {
	pending, err := w.coRepo.ListPending(ctx)
	if err != nil {
		return 0, err
	}

	now := w.now().UTC()
	swept := 0
	for _, c := range pending {
		if !c.IsExpiredAt(now) {
			continue
		}
		if w.expire(ctx, c, now) {
			swept++
		}
	}
	if swept > 0 {
		w.log.Info("expired change orders swept", zap.Int("count", swept))
	}
	return swept, nil
}

// expire flips a pending change order to expired. A conflict means a
// concurrent decision or sweep got there first, which is fine either way.
func (w *ChangeOrderWorkflow) expire(ctx context.Context, c entities.ChangeOrder, at time.Time) bool {
	c.Status = entities.ChangeOrderStatusExpired
	decidedAt := at
	c.DecidedAt = &decidedAt
	if err := w.tx.CommitChangeOrderDecision(ctx, c); err != nil {
		if !errors.Is(err, interfaces.ErrTxConflict) {
			w.log.Warn("failed to expire change order",
				zap.String("change_order_id", c.ID),
				zap.Error(err))
		}
		return false
	}
	return true
}

// mapDecisionConflict re-reads a change order after a lost commit race and
// reports the error matching its current state.
func (w *ChangeOrderWorkflow) mapDecisionConflict(ctx context.Context, changeOrderID string, err error) error {
	if !errors.Is(err, interfaces.ErrTxConflict) {
		return err
	}
	latest, rerr := w.coRepo.GetByID(ctx, changeOrderID)
	if rerr == nil && latest.Status == entities.ChangeOrderStatusExpired {
		return ErrChangeOrderExpired
	}
	return ErrAlreadyDecided
}
