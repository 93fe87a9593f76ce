package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"mechmarket/internal/adapter/http/handlers/mocks"
	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestBidHandler_SubmitBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewBidHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/bids", h.SubmitBid)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/bids", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("own job maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewBidHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/bids", h.SubmitBid)

		workflow.EXPECT().SubmitBid(gomock.Any(), "job-1", "cust-1", 250.0, entities.BidKindFixed, 0.0, "").
			Return(entities.Bid{}, usecase.ErrOwnJobBid)

		body := `{"mechanic_id":"cust-1","amount":250,"kind":"fixed"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/bids", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("submit success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewBidHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/bids", h.SubmitBid)

		workflow.EXPECT().SubmitBid(gomock.Any(), "job-1", "mech-1", 90.0, entities.BidKindHourly, 3.0, "can start today").
			Return(entities.Bid{ID: "bid-1", JobID: "job-1", MechanicID: "mech-1", Amount: 90, Kind: entities.BidKindHourly, EstimatedHours: 3, Status: entities.BidStatusPending}, nil)

		body := `{"mechanic_id":"mech-1","amount":90,"kind":"hourly","estimated_hours":3,"message":"can start today"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/bids", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp["id"] != "bid-1" || resp["status"] != "pending" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestBidHandler_AcceptBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("job no longer biddable maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewBidHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/bids/:bid_id/accept", h.AcceptBid)

		workflow.EXPECT().AcceptBid(gomock.Any(), "bid-1", entities.Actor{ID: "cust-1", Role: entities.ActorRoleCustomer}).
			Return(usecase.AcceptBidResult{}, usecase.ErrJobNotBiddable)

		body := `{"actor_id":"cust-1","actor_role":"customer"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/bids/bid-1/accept", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway failure maps to bad gateway", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewBidHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/bids/:bid_id/accept", h.AcceptBid)

		workflow.EXPECT().AcceptBid(gomock.Any(), "bid-1", gomock.Any()).
			Return(usecase.AcceptBidResult{}, usecase.ErrPaymentGateway)

		body := `{"actor_id":"cust-1","actor_role":"customer"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/bids/bid-1/accept", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})

	t.Run("accept success returns job, bid and escrow", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewBidHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/bids/:bid_id/accept", h.AcceptBid)

		workflow.EXPECT().AcceptBid(gomock.Any(), "bid-1", gomock.Any()).Return(usecase.AcceptBidResult{
			Job:    entities.Job{ID: "job-1", Status: entities.JobStatusAccepted, AssignedMechanicID: "mech-1"},
			Bid:    entities.Bid{ID: "bid-1", Status: entities.BidStatusAccepted},
			Escrow: entities.EscrowAccount{ID: "esc-1", Status: entities.EscrowStatusHeld, Amount: 300},
		}, nil)

		body := `{"actor_id":"cust-1","actor_role":"customer"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/bids/bid-1/accept", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Job    map[string]interface{} `json:"job"`
			Bid    map[string]interface{} `json:"bid"`
			Escrow map[string]interface{} `json:"escrow"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Job["id"] != "job-1" || resp.Bid["id"] != "bid-1" || resp.Escrow["id"] != "esc-1" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestBidHandler_RejectBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("already decided maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewBidHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/bids/:bid_id/reject", h.RejectBid)

		workflow.EXPECT().RejectBid(gomock.Any(), "bid-1", gomock.Any()).
			Return(entities.Bid{}, usecase.ErrBidAlreadyDecided)

		body := `{"actor_id":"cust-1","actor_role":"customer"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/bids/bid-1/reject", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
