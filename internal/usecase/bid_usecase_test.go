package usecase

import (
	"context"
	"errors"
	"testing"

	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase/interfaces"
	mock_interfaces "mechmarket/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type bidRegistryFixture struct {
	bidRepo    *mock_interfaces.MockIBidRepository
	jobRepo    *mock_interfaces.MockIJobRepository
	tx         *mock_interfaces.MockITxWriter
	gateway    *mock_interfaces.MockIPaymentGateway
	commission *mock_interfaces.MockICommissionPolicy
	registry   *BidRegistry
}

// The registry is wired with a real job ledger and a real escrow manager so
// the acceptance test exercises the full transition + escrow composition; only
// the edges (repos, gateway, tx writer) are mocked.
func newBidRegistryFixture(ctrl *gomock.Controller) bidRegistryFixture {
	f := bidRegistryFixture{
		bidRepo:    mock_interfaces.NewMockIBidRepository(ctrl),
		jobRepo:    mock_interfaces.NewMockIJobRepository(ctrl),
		tx:         mock_interfaces.NewMockITxWriter(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
		commission: mock_interfaces.NewMockICommissionPolicy(ctrl),
	}
	ledger := NewJobLedger(f.jobRepo, nil)
	escrow := NewEscrowManager(nil, nil, f.jobRepo, f.tx, f.gateway, f.commission, nil)
	f.registry = NewBidRegistry(f.bidRepo, f.jobRepo, f.tx, ledger, escrow, nil)
	return f
}

func TestBidRegistry_SubmitBid(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		r := NewBidRegistry(nil, nil, nil, nil, nil, nil)
		_, err := r.SubmitBid(context.Background(), "  ", "mech-1", 100, entities.BidKindFixed, 0, "")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})

	t.Run("invalid mechanic id", func(t *testing.T) {
		r := NewBidRegistry(nil, nil, nil, nil, nil, nil)
		_, err := r.SubmitBid(context.Background(), "job-1", " ", 100, entities.BidKindFixed, 0, "")
		if !errors.Is(err, ErrInvalidMechanicID) {
			t.Fatalf("expected ErrInvalidMechanicID, got %v", err)
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		r := NewBidRegistry(nil, nil, nil, nil, nil, nil)
		_, err := r.SubmitBid(context.Background(), "job-1", "mech-1", 0, entities.BidKindFixed, 0, "")
		if !errors.Is(err, ErrInvalidBidAmount) {
			t.Fatalf("expected ErrInvalidBidAmount, got %v", err)
		}
	})

	t.Run("invalid kind", func(t *testing.T) {
		r := NewBidRegistry(nil, nil, nil, nil, nil, nil)
		_, err := r.SubmitBid(context.Background(), "job-1", "mech-1", 100, "daily", 0, "")
		if !errors.Is(err, ErrInvalidBidKind) {
			t.Fatalf("expected ErrInvalidBidKind, got %v", err)
		}
	})

	t.Run("hourly without hours", func(t *testing.T) {
		r := NewBidRegistry(nil, nil, nil, nil, nil, nil)
		_, err := r.SubmitBid(context.Background(), "job-1", "mech-1", 100, entities.BidKindHourly, 0, "")
		if !errors.Is(err, ErrInvalidBidHours) {
			t.Fatalf("expected ErrInvalidBidHours, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		_, err := f.registry.SubmitBid(context.Background(), "job-1", "mech-1", 100, entities.BidKindFixed, 0, "")
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("job not biddable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{
			ID:         "job-1",
			CustomerID: "cust-1",
			Status:     entities.JobStatusScheduled,
		}, nil)

		_, err := f.registry.SubmitBid(context.Background(), "job-1", "mech-1", 100, entities.BidKindFixed, 0, "")
		if !errors.Is(err, ErrJobNotBiddable) {
			t.Fatalf("expected ErrJobNotBiddable, got %v", err)
		}
	})

	t.Run("own job", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{
			ID:         "job-1",
			CustomerID: "cust-1",
			Status:     entities.JobStatusPosted,
		}, nil)

		_, err := f.registry.SubmitBid(context.Background(), "job-1", "cust-1", 100, entities.BidKindFixed, 0, "")
		if !errors.Is(err, ErrOwnJobBid) {
			t.Fatalf("expected ErrOwnJobBid, got %v", err)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{
			ID:         "job-1",
			CustomerID: "cust-1",
			Status:     entities.JobStatusBidding,
		}, nil)
		f.bidRepo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) (entities.Bid, error) {
				if b.ID == "" || b.JobID != "job-1" || b.MechanicID != "mech-1" {
					t.Fatalf("unexpected bid: %+v", b)
				}
				if b.Status != entities.BidStatusPending || b.Kind != entities.BidKindHourly || b.EstimatedHours != 3 {
					t.Fatalf("unexpected bid: %+v", b)
				}
				if b.Message != "can start today" {
					t.Fatalf("expected trimmed message, got %q", b.Message)
				}
				return b, nil
			},
		)

		b, err := f.registry.SubmitBid(context.Background(), "job-1", "mech-1", 90, entities.BidKindHourly, 3, " can start today ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.CreatedAt.IsZero() {
			t.Fatalf("expected created_at")
		}
	})
}

func TestBidRegistry_AcceptBid(t *testing.T) {
	customer := entities.Actor{ID: "cust-1", Role: entities.ActorRoleCustomer}
	pendingBid := entities.Bid{
		ID:         "bid-1",
		JobID:      "job-1",
		MechanicID: "mech-1",
		Amount:     300,
		Kind:       entities.BidKindFixed,
		Status:     entities.BidStatusPending,
	}
	biddableJob := entities.Job{
		ID:         "job-1",
		CustomerID: "cust-1",
		Category:   "brakes",
		Status:     entities.JobStatusBidding,
	}

	t.Run("bid not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(entities.Bid{}, nil)

		_, err := f.registry.AcceptBid(context.Background(), "bid-1", customer)
		if !errors.Is(err, ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
	})

	t.Run("not the job owner", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pendingBid, nil)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(biddableJob, nil)

		other := entities.Actor{ID: "cust-2", Role: entities.ActorRoleCustomer}
		_, err := f.registry.AcceptBid(context.Background(), "bid-1", other)
		if !errors.Is(err, ErrNotAuthorized) {
			t.Fatalf("expected ErrNotAuthorized, got %v", err)
		}
	})

	t.Run("bid already decided", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		decided := pendingBid
		decided.Status = entities.BidStatusRejected
		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(decided, nil)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(biddableJob, nil)

		_, err := f.registry.AcceptBid(context.Background(), "bid-1", customer)
		if !errors.Is(err, ErrBidAlreadyDecided) {
			t.Fatalf("expected ErrBidAlreadyDecided, got %v", err)
		}
	})

	t.Run("job no longer biddable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		assigned := biddableJob
		assigned.Status = entities.JobStatusAccepted
		assigned.AssignedMechanicID = "mech-9"
		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pendingBid, nil)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(assigned, nil)

		_, err := f.registry.AcceptBid(context.Background(), "bid-1", customer)
		if !errors.Is(err, ErrJobNotBiddable) {
			t.Fatalf("expected ErrJobNotBiddable, got %v", err)
		}
	})

	t.Run("accept success rejects pending siblings and opens escrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		siblings := []entities.Bid{
			pendingBid,
			{ID: "bid-2", JobID: "job-1", MechanicID: "mech-2", Amount: 350, Status: entities.BidStatusPending},
			{ID: "bid-3", JobID: "job-1", MechanicID: "mech-3", Amount: 280, Status: entities.BidStatusRejected},
		}

		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pendingBid, nil)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(biddableJob, nil)
		f.bidRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return(siblings, nil)
		f.commission.EXPECT().PlatformFee(300.0, "brakes").Return(45.0)
		f.gateway.EXPECT().AuthorizeAndHold(gomock.Any(), gomock.AssignableToTypeOf(interfaces.HoldRequest{})).DoAndReturn(
			func(_ context.Context, req interfaces.HoldRequest) (interfaces.HoldHandle, error) {
				if req.Amount != 300 || req.Currency != "BRL" || req.CustomerRef != "cust-1" {
					t.Fatalf("unexpected hold request: %+v", req)
				}
				return interfaces.HoldHandle{Ref: "mp-hold-1", Status: "authorized"}, nil
			},
		)
		f.tx.EXPECT().CommitBidAcceptance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, job entities.Job, accepted entities.Bid, rejected []entities.Bid, escrow entities.EscrowAccount, payment entities.Payment) error {
				if job.Status != entities.JobStatusAccepted || job.AssignedMechanicID != "mech-1" || job.AcceptedBidAmount != 300 {
					t.Fatalf("unexpected job: %+v", job)
				}
				if accepted.Status != entities.BidStatusAccepted {
					t.Fatalf("unexpected accepted bid: %+v", accepted)
				}
				if len(rejected) != 1 || rejected[0].ID != "bid-2" || rejected[0].Status != entities.BidStatusRejected {
					t.Fatalf("unexpected rejected bids: %+v", rejected)
				}
				if escrow.Status != entities.EscrowStatusHeld || escrow.Amount != 300 || escrow.HoldRef != "mp-hold-1" {
					t.Fatalf("unexpected escrow: %+v", escrow)
				}
				if payment.PlatformFee != 45 || payment.MechanicAmount != 255 {
					t.Fatalf("unexpected payment: %+v", payment)
				}
				return nil
			},
		)

		res, err := f.registry.AcceptBid(context.Background(), "bid-1", customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Bid.Status != entities.BidStatusAccepted || res.Escrow.JobID != "job-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("commit conflict voids hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pendingBid, nil)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(biddableJob, nil)
		f.bidRepo.EXPECT().ListByJobID(gomock.Any(), "job-1").Return([]entities.Bid{pendingBid}, nil)
		f.commission.EXPECT().PlatformFee(300.0, "brakes").Return(45.0)
		f.gateway.EXPECT().AuthorizeAndHold(gomock.Any(), gomock.Any()).
			Return(interfaces.HoldHandle{Ref: "mp-hold-1"}, nil)
		f.tx.EXPECT().CommitBidAcceptance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(interfaces.ErrTxConflict)
		f.gateway.EXPECT().CancelHold(gomock.Any(), "mp-hold-1", gomock.Any()).Return(nil)

		_, err := f.registry.AcceptBid(context.Background(), "bid-1", customer)
		if !errors.Is(err, ErrJobNotBiddable) {
			t.Fatalf("expected ErrJobNotBiddable, got %v", err)
		}
	})
}

func TestBidRegistry_RejectBid(t *testing.T) {
	customer := entities.Actor{ID: "cust-1", Role: entities.ActorRoleCustomer}
	pendingBid := entities.Bid{
		ID:         "bid-1",
		JobID:      "job-1",
		MechanicID: "mech-1",
		Amount:     300,
		Status:     entities.BidStatusPending,
	}
	job := entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusBidding}

	t.Run("reject success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pendingBid, nil)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		f.tx.EXPECT().CommitBidRejection(gomock.Any(), gomock.AssignableToTypeOf(entities.Bid{})).DoAndReturn(
			func(_ context.Context, b entities.Bid) error {
				if b.Status != entities.BidStatusRejected {
					t.Fatalf("expected rejected, got %s", b.Status)
				}
				return nil
			},
		)

		b, err := f.registry.RejectBid(context.Background(), "bid-1", customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if b.Status != entities.BidStatusRejected {
			t.Fatalf("expected rejected, got %s", b.Status)
		}
	})

	t.Run("conflict means bid was decided concurrently", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newBidRegistryFixture(ctrl)

		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(pendingBid, nil)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		f.tx.EXPECT().CommitBidRejection(gomock.Any(), gomock.Any()).Return(interfaces.ErrTxConflict)

		_, err := f.registry.RejectBid(context.Background(), "bid-1", customer)
		if !errors.Is(err, ErrBidAlreadyDecided) {
			t.Fatalf("expected ErrBidAlreadyDecided, got %v", err)
		}
	})
}

func TestBidRegistry_ListByJob(t *testing.T) {
	t.Run("invalid job id", func(t *testing.T) {
		r := NewBidRegistry(nil, nil, nil, nil, nil, nil)
		_, err := r.ListByJob(context.Background(), " ")
		if !errors.Is(err, ErrInvalidJobID) {
			t.Fatalf("expected ErrInvalidJobID, got %v", err)
		}
	})
}
