package handlers

import (
	"bytes"
	"context"
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

func TestJobHandler_CreateJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(`{"customer_id":"cust-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("create success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs", h.CreateJob)

		workflow.EXPECT().CreateJob(gomock.Any(), gomock.AssignableToTypeOf(usecase.JobDraft{})).DoAndReturn(
			func(_ context.Context, draft usecase.JobDraft) (entities.Job, error) {
				if draft.CustomerID != "cust-1" || draft.Urgency != entities.JobUrgencyHigh {
					t.Fatalf("unexpected draft: %+v", draft)
				}
				return entities.Job{ID: "job-1", CustomerID: "cust-1", Status: entities.JobStatusPosted}, nil
			},
		)

		body := `{"customer_id":"cust-1","category":"brakes","description":"squealing front brakes","location":"Sao Paulo","urgency":"high"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewBufferString(body))
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
		if resp["id"] != "job-1" || resp["status"] != "posted" {
			t.Fatalf("unexpected response: %+v", resp)
		}
	})
}

func TestJobHandler_GetJob(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.GET("/v1/jobs/:job_id", h.GetJob)

		workflow.EXPECT().GetJob(gomock.Any(), "job-1").Return(entities.Job{}, usecase.ErrJobNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("get success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.GET("/v1/jobs/:job_id", h.GetJob)

		workflow.EXPECT().GetJob(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1", Status: entities.JobStatusBidding}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/jobs/job-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestJobHandler_TransitionStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("illegal transition maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/status", h.TransitionStatus)

		workflow.EXPECT().TransitionJobStatus(gomock.Any(), "job-1", entities.JobStatusCompleted, gomock.Any(), "").
			Return(entities.Job{}, usecase.ErrIllegalTransition)

		body := `{"actor_id":"cust-1","actor_role":"customer","status":"completed"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("unauthorized actor maps to forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/status", h.TransitionStatus)

		workflow.EXPECT().TransitionJobStatus(gomock.Any(), "job-1", entities.JobStatusCancelled, gomock.Any(), "").
			Return(entities.Job{}, usecase.ErrNotAuthorized)

		body := `{"actor_id":"mech-1","actor_role":"mechanic","status":"cancelled"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("transition success normalizes actor role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/jobs/:job_id/status", h.TransitionStatus)

		workflow.EXPECT().TransitionJobStatus(gomock.Any(), "job-1", entities.JobStatusBidding, entities.Actor{ID: "cust-1", Role: entities.ActorRoleCustomer}, "open for bids").
			Return(entities.Job{ID: "job-1", Status: entities.JobStatusBidding}, nil)

		body := `{"actor_id":"cust-1","actor_role":"Customer","status":"bidding","description":"open for bids"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/jobs/job-1/status", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestJobHandler_AppendNote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("job not in progress maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewJobHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/notes", h.AppendNote)

		workflow.EXPECT().AppendJobNote(gomock.Any(), "job-1", gomock.Any(), "replaced pads").
			Return(entities.Job{}, usecase.ErrJobNotInProgress)

		body := `{"actor_id":"mech-1","actor_role":"mechanic","text":"replaced pads"}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/notes", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}
