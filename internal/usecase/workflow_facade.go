package usecase

import (
	"context"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// Lifecycle event types emitted by the facade.
const (
	EventJobCreated           = "job_created"
	EventJobStatusChanged     = "job_status_changed"
	EventJobNoteAdded         = "job_note_added"
	EventJobPhotoAdded        = "job_photo_added"
	EventBidSubmitted         = "bid_submitted"
	EventBidAccepted          = "bid_accepted"
	EventBidRejected          = "bid_rejected"
	EventChangeOrderProposed  = "change_order_proposed"
	EventChangeOrderApproved  = "change_order_approved"
	EventChangeOrderRejected  = "change_order_rejected"
	EventChangeOrderCancelled = "change_order_cancelled"
	EventEscrowReleased       = "escrow_released"
	EventEscrowRefunded       = "escrow_refunded"
)

// IWorkflowFacade is the single entry point API callers use. It serializes
// all mutations per job and emits lifecycle notifications after successful
// commits.

type IWorkflowFacade interface {
	CreateJob(ctx context.Context, draft JobDraft) (entities.Job, error)
	GetJob(ctx context.Context, jobID string) (entities.Job, error)
	GetJobTimeline(ctx context.Context, jobID string) ([]entities.TimelineEntry, error)
	TransitionJobStatus(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, description string) (entities.Job, error)
	AppendJobNote(ctx context.Context, jobID string, actor entities.Actor, text string) (entities.Job, error)
	AppendJobPhoto(ctx context.Context, jobID string, actor entities.Actor, url, caption string) (entities.Job, error)

	SubmitBid(ctx context.Context, jobID, mechanicID string, amount float64, kind entities.BidKind, estimatedHours float64, message string) (entities.Bid, error)
	AcceptBid(ctx context.Context, bidID string, actor entities.Actor) (AcceptBidResult, error)
	RejectBid(ctx context.Context, bidID string, actor entities.Actor) (entities.Bid, error)
	ListBidsByJob(ctx context.Context, jobID string) ([]entities.Bid, error)

	ProposeChangeOrder(ctx context.Context, jobID, mechanicID string, lineItems []entities.LineItem, reason string, requiresImmediateApproval bool) (entities.ChangeOrder, error)
	DecideChangeOrder(ctx context.Context, changeOrderID string, actor entities.Actor, decision ChangeOrderDecision) (DecideResult, error)
	CancelChangeOrder(ctx context.Context, changeOrderID string, actor entities.Actor) (entities.ChangeOrder, error)
	ListChangeOrdersByJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error)
	SweepExpiredChangeOrders(ctx context.Context) (int, error)

	ReleaseEscrow(ctx context.Context, jobID string) (ReleaseResult, error)
	RefundEscrow(ctx context.Context, jobID string, actor entities.Actor, reason string) (ReleaseResult, error)
	GetEscrowByJob(ctx context.Context, jobID string) (ReleaseResult, error)
}

type WorkflowFacade struct {
	jobs         IJobLedger
	bids         IBidRegistry
	escrow       IEscrowManager
	changeOrders IChangeOrderWorkflow
	emitter      interfaces.INotificationEmitter
	log          *zap.Logger
	locks        *jobLockTable
}

var _ IWorkflowFacade = (*WorkflowFacade)(nil)

func NewWorkflowFacade(
	jobs IJobLedger,
	bids IBidRegistry,
	escrow IEscrowManager,
	changeOrders IChangeOrderWorkflow,
	emitter interfaces.INotificationEmitter,
	log *zap.Logger,
) *WorkflowFacade {
	if log == nil {
		log = zap.NewNop()
	}
	return &WorkflowFacade{
		jobs:         jobs,
		bids:         bids,
		escrow:       escrow,
		changeOrders: changeOrders,
		emitter:      emitter,
		log:          log,
		locks:        newJobLockTable(),
	}
}

func (f *WorkflowFacade) emit(ctx context.Context, eventType string, payload map[string]interface{}) {
	if f.emitter == nil {
		return
	}
	f.emitter.Emit(ctx, eventType, payload)
}

func (f *WorkflowFacade) CreateJob(ctx context.Context, draft JobDraft) (entities.Job, error) {
	job, err := f.jobs.CreateJob(ctx, draft)
	if err != nil {
		return entities.Job{}, err
	}
	f.emit(ctx, EventJobCreated, map[string]interface{}{
		"job_id":      job.ID,
		"customer_id": job.CustomerID,
		"category":    job.Category,
		"urgency":     string(job.Urgency),
	})
	return job, nil
}

func (f *WorkflowFacade) GetJob(ctx context.Context, jobID string) (entities.Job, error) {
	return f.jobs.GetJob(ctx, jobID)
}

func (f *WorkflowFacade) GetJobTimeline(ctx context.Context, jobID string) ([]entities.TimelineEntry, error) {
	job, err := f.jobs.GetJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	return f.jobs.DeriveTimeline(job), nil
}

func (f *WorkflowFacade) TransitionJobStatus(ctx context.Context, jobID string, target entities.JobStatus, actor entities.Actor, description string) (entities.Job, error) {
	lock := f.locks.forJob(jobID)
	lock.Lock()
	defer lock.Unlock()

	job, err := f.jobs.Transition(ctx, jobID, target, actor, description)
	if err != nil {
		return entities.Job{}, err
	}
	f.emit(ctx, EventJobStatusChanged, map[string]interface{}{
		"job_id":     job.ID,
		"status":     string(job.Status),
		"actor_id":   actor.ID,
		"actor_role": string(actor.Role),
	})
	return job, nil
}

func (f *WorkflowFacade) AppendJobNote(ctx context.Context, jobID string, actor entities.Actor, text string) (entities.Job, error) {
	lock := f.locks.forJob(jobID)
	lock.Lock()
	defer lock.Unlock()

	job, err := f.jobs.AppendNote(ctx, jobID, actor, text)
	if err != nil {
		return entities.Job{}, err
	}
	f.emit(ctx, EventJobNoteAdded, map[string]interface{}{
		"job_id":   job.ID,
		"actor_id": actor.ID,
	})
	return job, nil
}

func (f *WorkflowFacade) AppendJobPhoto(ctx context.Context, jobID string, actor entities.Actor, url, caption string) (entities.Job, error) {
	lock := f.locks.forJob(jobID)
	lock.Lock()
	defer lock.Unlock()

	job, err := f.jobs.AppendPhoto(ctx, jobID, actor, url, caption)
	if err != nil {
		return entities.Job{}, err
	}
	f.emit(ctx, EventJobPhotoAdded, map[string]interface{}{
		"job_id":   job.ID,
		"actor_id": actor.ID,
	})
	return job, nil
}

func (f *WorkflowFacade) SubmitBid(ctx context.Context, jobID, mechanicID string, amount float64, kind entities.BidKind, estimatedHours float64, message string) (entities.Bid, error) {
	lock := f.locks.forJob(jobID)
	lock.Lock()
	defer lock.Unlock()

	bid, err := f.bids.SubmitBid(ctx, jobID, mechanicID, amount, kind, estimatedHours, message)
	if err != nil {
		return entities.Bid{}, err
	}
	f.emit(ctx, EventBidSubmitted, map[string]interface{}{
		"bid_id":      bid.ID,
		"job_id":      bid.JobID,
		"mechanic_id": bid.MechanicID,
		"amount":      bid.Amount,
	})
	return bid, nil
}

func (f *WorkflowFacade) AcceptBid(ctx context.Context, bidID string, actor entities.Actor) (AcceptBidResult, error) {
	// Resolve the bid first so the lock covers the right job.
	bid, err := f.bids.GetBid(ctx, bidID)
	if err != nil {
		return AcceptBidResult{}, err
	}
	lock := f.locks.forJob(bid.JobID)
	lock.Lock()
	defer lock.Unlock()

	res, err := f.bids.AcceptBid(ctx, bidID, actor)
	if err != nil {
		return AcceptBidResult{}, err
	}
	f.emit(ctx, EventBidAccepted, map[string]interface{}{
		"bid_id":      res.Bid.ID,
		"job_id":      res.Job.ID,
		"mechanic_id": res.Bid.MechanicID,
		"amount":      res.Bid.Amount,
		"escrow_id":   res.Escrow.ID,
	})
	return res, nil
}

func (f *WorkflowFacade) RejectBid(ctx context.Context, bidID string, actor entities.Actor) (entities.Bid, error) {
	bid, err := f.bids.GetBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	lock := f.locks.forJob(bid.JobID)
	lock.Lock()
	defer lock.Unlock()

	rejected, err := f.bids.RejectBid(ctx, bidID, actor)
	if err != nil {
		return entities.Bid{}, err
	}
	f.emit(ctx, EventBidRejected, map[string]interface{}{
		"bid_id":      rejected.ID,
		"job_id":      rejected.JobID,
		"mechanic_id": rejected.MechanicID,
	})
	return rejected, nil
}

func (f *WorkflowFacade) ListBidsByJob(ctx context.Context, jobID string) ([]entities.Bid, error) {
	return f.bids.ListByJob(ctx, jobID)
}

func (f *WorkflowFacade) ProposeChangeOrder(ctx context.Context, jobID, mechanicID string, lineItems []entities.LineItem, reason string, requiresImmediateApproval bool) (entities.ChangeOrder, error) {
	lock := f.locks.forJob(jobID)
	lock.Lock()
	defer lock.Unlock()

	c, err := f.changeOrders.Propose(ctx, jobID, mechanicID, lineItems, reason, requiresImmediateApproval)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	f.emit(ctx, EventChangeOrderProposed, map[string]interface{}{
		"change_order_id": c.ID,
		"job_id":          c.JobID,
		"total_amount":    c.TotalAmount,
		"expires_at":      c.ExpiresAt,
	})
	return c, nil
}

func (f *WorkflowFacade) DecideChangeOrder(ctx context.Context, changeOrderID string, actor entities.Actor, decision ChangeOrderDecision) (DecideResult, error) {
	c, err := f.changeOrders.GetChangeOrder(ctx, changeOrderID)
	if err != nil {
		return DecideResult{}, err
	}
	lock := f.locks.forJob(c.JobID)
	lock.Lock()
	defer lock.Unlock()

	res, err := f.changeOrders.Decide(ctx, changeOrderID, actor, decision)
	if err != nil {
		return DecideResult{}, err
	}

	event := EventChangeOrderRejected
	if res.ChangeOrder.Status == entities.ChangeOrderStatusApproved {
		event = EventChangeOrderApproved
	}
	f.emit(ctx, event, map[string]interface{}{
		"change_order_id": res.ChangeOrder.ID,
		"job_id":          res.ChangeOrder.JobID,
		"total_amount":    res.ChangeOrder.TotalAmount,
	})
	return res, nil
}

func (f *WorkflowFacade) CancelChangeOrder(ctx context.Context, changeOrderID string, actor entities.Actor) (entities.ChangeOrder, error) {
	c, err := f.changeOrders.GetChangeOrder(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	lock := f.locks.forJob(c.JobID)
	lock.Lock()
	defer lock.Unlock()

	cancelled, err := f.changeOrders.Cancel(ctx, changeOrderID, actor)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	f.emit(ctx, EventChangeOrderCancelled, map[string]interface{}{
		"change_order_id": cancelled.ID,
		"job_id":          cancelled.JobID,
	})
	return cancelled, nil
}

func (f *WorkflowFacade) ListChangeOrdersByJob(ctx context.Context, jobID string) ([]entities.ChangeOrder, error) {
	return f.changeOrders.ListByJob(ctx, jobID)
}

func (f *WorkflowFacade) SweepExpiredChangeOrders(ctx context.Context) (int, error) {
	return f.changeOrders.SweepExpired(ctx)
}

func (f *WorkflowFacade) ReleaseEscrow(ctx context.Context, jobID string) (ReleaseResult, error) {
	lock := f.locks.forJob(jobID)
	lock.Lock()
	defer lock.Unlock()

	res, err := f.escrow.Release(ctx, jobID)
	if err != nil {
		return ReleaseResult{}, err
	}
	f.emit(ctx, EventEscrowReleased, map[string]interface{}{
		"job_id":          res.Escrow.JobID,
		"escrow_id":       res.Escrow.ID,
		"amount":          res.Escrow.Amount,
		"mechanic_amount": res.Payment.MechanicAmount,
	})
	return res, nil
}

func (f *WorkflowFacade) RefundEscrow(ctx context.Context, jobID string, actor entities.Actor, reason string) (ReleaseResult, error) {
	lock := f.locks.forJob(jobID)
	lock.Lock()
	defer lock.Unlock()

	res, err := f.escrow.Refund(ctx, jobID, actor, reason)
	if err != nil {
		return ReleaseResult{}, err
	}
	f.emit(ctx, EventEscrowRefunded, map[string]interface{}{
		"job_id":    res.Escrow.JobID,
		"escrow_id": res.Escrow.ID,
		"amount":    res.Escrow.Amount,
		"reason":    reason,
	})
	return res, nil
}

func (f *WorkflowFacade) GetEscrowByJob(ctx context.Context, jobID string) (ReleaseResult, error) {
	return f.escrow.GetByJobID(ctx, jobID)
}
