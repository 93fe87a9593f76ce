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
	ErrBidNotFound        = errors.New("bid not found")
	ErrInvalidBidID       = errors.New("invalid bid id")
	ErrInvalidBidAmount   = errors.New("invalid bid amount")
	ErrInvalidBidKind     = errors.New("invalid bid kind")
	ErrInvalidBidHours    = errors.New("hourly bid requires estimated hours")
	ErrInvalidMechanicID  = errors.New("invalid mechanic id")
	ErrJobNotBiddable     = errors.New("job is not available for bidding")
	ErrBidAlreadyDecided  = errors.New("bid already decided")
	ErrOwnJobBid          = errors.New("customer cannot bid on own job")
)

// AcceptBidResult is everything the acceptance transaction committed.
type AcceptBidResult struct {
	Job     entities.Job
	Bid     entities.Bid
	Escrow  entities.EscrowAccount
	Payment entities.Payment
}

// IBidRegistry owns Bid entities and the accept/reject protocol against a Job.

type IBidRegistry interface {
	SubmitBid(ctx context.Context, jobID, mechanicID string, amount float64, kind entities.BidKind, estimatedHours float64, message string) (entities.Bid, error)
	AcceptBid(ctx context.Context, bidID string, actor entities.Actor) (AcceptBidResult, error)
	RejectBid(ctx context.Context, bidID string, actor entities.Actor) (entities.Bid, error)
	GetBid(ctx context.Context, bidID string) (entities.Bid, error)
	ListByJob(ctx context.Context, jobID string) ([]entities.Bid, error)
}

type BidRegistry struct {
	bidRepo interfaces.IBidRepository
	jobRepo interfaces.IJobRepository
	tx      interfaces.ITxWriter
	ledger  IJobLedger
	escrow  IEscrowManager
	log     *zap.Logger
	now     func() time.Time
}

var _ IBidRegistry = (*BidRegistry)(nil)

func NewBidRegistry(
	bidRepo interfaces.IBidRepository,
	jobRepo interfaces.IJobRepository,
	tx interfaces.ITxWriter,
	ledger IJobLedger,
	escrow IEscrowManager,
	log *zap.Logger,
) *BidRegistry {
	if log == nil {
		log = zap.NewNop()
	}
	return &BidRegistry{
		bidRepo: bidRepo,
		jobRepo: jobRepo,
		tx:      tx,
		ledger:  ledger,
		escrow:  escrow,
		log:     log,
		now:     time.Now,
	}
}

func (r *BidRegistry) SubmitBid(ctx context.Context, jobID, mechanicID string, amount float64, kind entities.BidKind, estimatedHours float64, message string) (entities.Bid, error) {
	jobID = strings.TrimSpace(jobID)
	mechanicID = strings.TrimSpace(mechanicID)
	if jobID == "" {
		return entities.Bid{}, ErrInvalidJobID
	}
	if mechanicID == "" {
		return entities.Bid{}, ErrInvalidMechanicID
	}
	if amount <= 0 {
		return entities.Bid{}, ErrInvalidBidAmount
	}
	if !kind.IsValid() {
		return entities.Bid{}, ErrInvalidBidKind
	}
	if kind == entities.BidKindHourly && estimatedHours <= 0 {
		return entities.Bid{}, ErrInvalidBidHours
	}

	job, err := r.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return entities.Bid{}, err
	}
	if job.ID == "" {
		return entities.Bid{}, ErrJobNotFound
	}
	if !job.IsAvailableForBidding() {
		return entities.Bid{}, ErrJobNotBiddable
	}
	if job.CustomerID == mechanicID {
		return entities.Bid{}, ErrOwnJobBid
	}

	b := entities.Bid{
		ID:             uuid.NewString(),
		JobID:          jobID,
		MechanicID:     mechanicID,
		Amount:         amount,
		Kind:           kind,
		EstimatedHours: estimatedHours,
		Message:        strings.TrimSpace(message),
		Status:         entities.BidStatusPending,
		CreatedAt:      r.now().UTC(),
	}

	created, err := r.bidRepo.Create(ctx, b)
	if err != nil {
		return entities.Bid{}, err
	}
	r.log.Info("bid submitted",
		zap.String("bid_id", created.ID),
		zap.String("job_id", jobID),
		zap.String("mechanic_id", mechanicID),
		zap.Float64("amount", amount))
	return created, nil
}

// AcceptBid is the bid acceptance protocol: one atomic commit that accepts
// the target bid, rejects every other pending bid on the job, moves the job
// to accepted with the mechanic assigned, and opens escrow. A lost race at
// the commit surfaces as ErrJobNotBiddable, never as partial state.
func (r *BidRegistry) AcceptBid(ctx context.Context, bidID string, actor entities.Actor) (AcceptBidResult, error) {
	bid, err := r.GetBid(ctx, bidID)
	if err != nil {
		return AcceptBidResult{}, err
	}

	job, err := r.jobRepo.GetByID(ctx, bid.JobID)
	if err != nil {
		return AcceptBidResult{}, err
	}
	if job.ID == "" {
		return AcceptBidResult{}, ErrJobNotFound
	}
	if actor.Role != entities.ActorRoleCustomer || actor.ID != job.CustomerID {
		return AcceptBidResult{}, ErrNotAuthorized
	}
	if bid.Status.IsTerminal() {
		return AcceptBidResult{}, ErrBidAlreadyDecided
	}
	if !job.IsAvailableForBidding() {
		return AcceptBidResult{}, ErrJobNotBiddable
	}

	now := r.now().UTC()

	siblings, err := r.bidRepo.ListByJobID(ctx, job.ID)
	if err != nil {
		return AcceptBidResult{}, err
	}
	rejected := make([]entities.Bid, 0, len(siblings))
	for _, s := range siblings {
		if s.ID == bid.ID || s.Status != entities.BidStatusPending {
			continue
		}
		s.Status = entities.BidStatusRejected
		rejected = append(rejected, s)
	}

	accepted := bid
	accepted.Status = entities.BidStatusAccepted

	updatedJob, err := r.ledger.ApplyTransition(job, entities.JobStatusAccepted, actor, "bid accepted", now)
	if err != nil {
		return AcceptBidResult{}, err
	}
	updatedJob.AssignedMechanicID = bid.MechanicID
	updatedJob.AcceptedBidAmount = bid.Amount

	escrow, payment, err := r.escrow.OpenEscrow(ctx, updatedJob, accepted)
	if err != nil {
		return AcceptBidResult{}, err
	}

	if err := r.tx.CommitBidAcceptance(ctx, updatedJob, accepted, rejected, escrow, payment); err != nil {
		// The hold was already authorized; void it before reporting failure.
		r.escrow.VoidHold(ctx, escrow)
		if errors.Is(err, interfaces.ErrTxConflict) {
			return AcceptBidResult{}, ErrJobNotBiddable
		}
		return AcceptBidResult{}, err
	}

	r.log.Info("bid accepted",
		zap.String("bid_id", accepted.ID),
		zap.String("job_id", job.ID),
		zap.String("mechanic_id", accepted.MechanicID),
		zap.Float64("amount", accepted.Amount),
		zap.Int("rejected_bids", len(rejected)))
	return AcceptBidResult{Job: updatedJob, Bid: accepted, Escrow: escrow, Payment: payment}, nil
}

// RejectBid declines a single bid. No side effects on the job.
func (r *BidRegistry) RejectBid(ctx context.Context, bidID string, actor entities.Actor) (entities.Bid, error) {
	bid, err := r.GetBid(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}

	job, err := r.jobRepo.GetByID(ctx, bid.JobID)
	if err != nil {
		return entities.Bid{}, err
	}
	if job.ID == "" {
		return entities.Bid{}, ErrJobNotFound
	}
	if actor.Role != entities.ActorRoleCustomer || actor.ID != job.CustomerID {
		return entities.Bid{}, ErrNotAuthorized
	}
	if bid.Status.IsTerminal() {
		return entities.Bid{}, ErrBidAlreadyDecided
	}

	bid.Status = entities.BidStatusRejected
	// The pending-status condition holds the rejection off against a
	// concurrent acceptance of the same bid.
	if err := r.tx.CommitBidRejection(ctx, bid); err != nil {
		if errors.Is(err, interfaces.ErrTxConflict) {
			return entities.Bid{}, ErrBidAlreadyDecided
		}
		return entities.Bid{}, err
	}
	r.log.Info("bid rejected",
		zap.String("bid_id", bid.ID),
		zap.String("job_id", bid.JobID))
	return bid, nil
}

func (r *BidRegistry) GetBid(ctx context.Context, bidID string) (entities.Bid, error) {
	bidID = strings.TrimSpace(bidID)
	if bidID == "" {
		return entities.Bid{}, ErrInvalidBidID
	}
	b, err := r.bidRepo.GetByID(ctx, bidID)
	if err != nil {
		return entities.Bid{}, err
	}
	if b.ID == "" {
		return entities.Bid{}, ErrBidNotFound
	}
	return b, nil
}

func (r *BidRegistry) ListByJob(ctx context.Context, jobID string) ([]entities.Bid, error) {
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return nil, ErrInvalidJobID
	}
	return r.bidRepo.ListByJobID(ctx, jobID)
}
