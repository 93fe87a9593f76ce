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

type facadeFixture struct {
	jobRepo    *mock_interfaces.MockIJobRepository
	bidRepo    *mock_interfaces.MockIBidRepository
	coRepo     *mock_interfaces.MockIChangeOrderRepository
	escrowRepo *mock_interfaces.MockIEscrowRepository
	payRepo    *mock_interfaces.MockIPaymentRepository
	tx         *mock_interfaces.MockITxWriter
	gateway    *mock_interfaces.MockIPaymentGateway
	commission *mock_interfaces.MockICommissionPolicy
	emitter    *mock_interfaces.MockINotificationEmitter
	facade     *WorkflowFacade
}

func newFacadeFixture(ctrl *gomock.Controller) facadeFixture {
	f := facadeFixture{
		jobRepo:    mock_interfaces.NewMockIJobRepository(ctrl),
		bidRepo:    mock_interfaces.NewMockIBidRepository(ctrl),
		coRepo:     mock_interfaces.NewMockIChangeOrderRepository(ctrl),
		escrowRepo: mock_interfaces.NewMockIEscrowRepository(ctrl),
		payRepo:    mock_interfaces.NewMockIPaymentRepository(ctrl),
		tx:         mock_interfaces.NewMockITxWriter(ctrl),
		gateway:    mock_interfaces.NewMockIPaymentGateway(ctrl),
		commission: mock_interfaces.NewMockICommissionPolicy(ctrl),
		emitter:    mock_interfaces.NewMockINotificationEmitter(ctrl),
	}
	ledger := NewJobLedger(f.jobRepo, nil)
	escrow := NewEscrowManager(f.escrowRepo, f.payRepo, f.jobRepo, f.tx, f.gateway, f.commission, nil)
	bids := NewBidRegistry(f.bidRepo, f.jobRepo, f.tx, ledger, escrow, nil)
	changeOrders := NewChangeOrderWorkflow(f.coRepo, f.jobRepo, f.escrowRepo, f.tx, escrow, nil)
	f.facade = NewWorkflowFacade(ledger, bids, escrow, changeOrders, f.emitter, nil)
	return f
}

func TestWorkflowFacade_CreateJob(t *testing.T) {
	t.Run("emits job_created after commit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFacadeFixture(ctrl)

		f.jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
		)
		f.emitter.EXPECT().Emit(gomock.Any(), EventJobCreated, gomock.Any()).Do(
			func(_ context.Context, _ string, payload map[string]interface{}) {
				if payload["customer_id"] != "cust-1" || payload["category"] != "brakes" {
					t.Fatalf("unexpected payload: %+v", payload)
				}
			},
		)

		_, err := f.facade.CreateJob(context.Background(), JobDraft{
			CustomerID:  "cust-1",
			Category:    "brakes",
			Description: "squealing front brakes",
			Location:    "Sao Paulo",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no event on validation failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFacadeFixture(ctrl)

		_, err := f.facade.CreateJob(context.Background(), JobDraft{CustomerID: "cust-1"})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})
}

func TestWorkflowFacade_TransitionJobStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFacadeFixture(ctrl)

	customer := entities.Actor{ID: "cust-1", Role: entities.ActorRoleCustomer}
	job := entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusPosted}
	f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
	f.jobRepo.EXPECT().Update(gomock.Any(), gomock.Any(), entities.JobStatusPosted).DoAndReturn(
		func(_ context.Context, j entities.Job, _ entities.JobStatus) (entities.Job, error) { return j, nil },
	)
	f.emitter.EXPECT().Emit(gomock.Any(), EventJobStatusChanged, gomock.Any()).Do(
		func(_ context.Context, _ string, payload map[string]interface{}) {
			if payload["status"] != string(entities.JobStatusBidding) {
				t.Fatalf("unexpected payload: %+v", payload)
			}
		},
	)

	_, err := f.facade.TransitionJobStatus(context.Background(), "job-1", entities.JobStatusBidding, customer, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkflowFacade_SubmitBid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFacadeFixture(ctrl)

	f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{
		ID:         "job-1",
		CustomerID: "cust-1",
		Status:     entities.JobStatusPosted,
	}, nil)
	f.bidRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, b entities.Bid) (entities.Bid, error) { return b, nil },
	)
	f.emitter.EXPECT().Emit(gomock.Any(), EventBidSubmitted, gomock.Any())

	_, err := f.facade.SubmitBid(context.Background(), "job-1", "mech-1", 250, entities.BidKindFixed, 0, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkflowFacade_RejectBid(t *testing.T) {
	t.Run("resolves the bid to lock its job and emits", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFacadeFixture(ctrl)

		customer := entities.Actor{ID: "cust-1", Role: entities.ActorRoleCustomer}
		bid := entities.Bid{ID: "bid-1", JobID: "job-1", MechanicID: "mech-1", Amount: 250, Status: entities.BidStatusPending}
		job := entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusBidding}

		// Once to resolve the lock, once inside the registry.
		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(bid, nil).Times(2)
		f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(job, nil)
		f.tx.EXPECT().CommitBidRejection(gomock.Any(), gomock.Any()).Return(nil)
		f.emitter.EXPECT().Emit(gomock.Any(), EventBidRejected, gomock.Any())

		_, err := f.facade.RejectBid(context.Background(), "bid-1", customer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("no event when the bid is missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newFacadeFixture(ctrl)

		f.bidRepo.EXPECT().GetByID(gomock.Any(), "bid-1").Return(entities.Bid{}, nil)

		_, err := f.facade.RejectBid(context.Background(), "bid-1", entities.Actor{ID: "cust-1", Role: entities.ActorRoleCustomer})
		if !errors.Is(err, ErrBidNotFound) {
			t.Fatalf("expected ErrBidNotFound, got %v", err)
		}
	})
}

func TestWorkflowFacade_ReleaseEscrow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newFacadeFixture(ctrl)

	f.escrowRepo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(heldEscrow(), nil)
	f.payRepo.EXPECT().GetByJobID(gomock.Any(), "job-1").Return(escrowPayment(), nil)
	f.jobRepo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{
		ID:                 "job-1",
		CustomerID:         "cust-1",
		AssignedMechanicID: "mech-1",
		Status:             entities.JobStatusCompleted,
	}, nil)
	f.gateway.EXPECT().Capture(gomock.Any(), "mp-hold-1", "esc-1").Return(interfaces.Receipt{Ref: "mp-capture-1"}, nil)
	f.tx.EXPECT().CommitEscrowRelease(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.emitter.EXPECT().Emit(gomock.Any(), EventEscrowReleased, gomock.Any())

	_, err := f.facade.ReleaseEscrow(context.Background(), "job-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWorkflowFacade_NilEmitter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	jobRepo := mock_interfaces.NewMockIJobRepository(ctrl)
	ledger := NewJobLedger(jobRepo, nil)
	facade := NewWorkflowFacade(ledger, nil, nil, nil, nil, nil)

	jobRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, j entities.Job) (entities.Job, error) { return j, nil },
	)

	_, err := facade.CreateJob(context.Background(), JobDraft{
		CustomerID:  "cust-1",
		Category:    "brakes",
		Description: "squealing front brakes",
		Location:    "Sao Paulo",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
