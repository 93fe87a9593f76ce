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

func TestChangeOrderHandler_ProposeChangeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewChangeOrderHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/change-orders", h.ProposeChangeOrder)

		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/change-orders", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job not in progress maps to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewChangeOrderHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/change-orders", h.ProposeChangeOrder)

		workflow.EXPECT().ProposeChangeOrder(gomock.Any(), "job-1", "mech-1", gomock.Any(), "cracked rotor", false).
			Return(entities.ChangeOrder{}, usecase.ErrJobNotInProgress)

		body := `{"mechanic_id":"mech-1","reason":"cracked rotor","line_items":[{"description":"rotor","quantity":1,"unit_price":120}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/change-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("propose success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewChangeOrderHandler(workflow)

		r := gin.New()
		r.POST("/v1/jobs/:job_id/change-orders", h.ProposeChangeOrder)

		workflow.EXPECT().ProposeChangeOrder(gomock.Any(), "job-1", "mech-1", []entities.LineItem{{Description: "rotor", Quantity: 1, UnitPrice: 120}}, "cracked rotor", true).
			Return(entities.ChangeOrder{ID: "co-1", JobID: "job-1", TotalAmount: 120, Status: entities.ChangeOrderStatusPending}, nil)

		body := `{"mechanic_id":"mech-1","reason":"cracked rotor","requires_immediate_approval":true,"line_items":[{"description":"rotor","quantity":1,"unit_price":120}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/jobs/job-1/change-orders", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
	})
}

func TestChangeOrderHandler_DecideChangeOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("expired maps to gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewChangeOrderHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/change-orders/:change_order_id/decision", h.DecideChangeOrder)

		workflow.EXPECT().DecideChangeOrder(gomock.Any(), "co-1", gomock.Any(), usecase.DecisionApprove).
			Return(usecase.DecideResult{}, usecase.ErrChangeOrderExpired)

		body := `{"actor_id":"cust-1","actor_role":"customer","decision":"approve"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/change-orders/co-1/decision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusGone {
			t.Fatalf("expected 410, got %d", w.Code)
		}
	})

	t.Run("decision is normalized before dispatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewChangeOrderHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/change-orders/:change_order_id/decision", h.DecideChangeOrder)

		workflow.EXPECT().DecideChangeOrder(gomock.Any(), "co-1", gomock.Any(), usecase.DecisionReject).
			Return(usecase.DecideResult{ChangeOrder: entities.ChangeOrder{ID: "co-1", Status: entities.ChangeOrderStatusRejected}}, nil)

		body := `{"actor_id":"cust-1","actor_role":"customer","decision":" Reject "}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/change-orders/co-1/decision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]interface{}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if _, ok := resp["job"]; ok {
			t.Fatalf("rejection should not carry job state: %+v", resp)
		}
	})

	t.Run("approval carries job and escrow state", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		workflow := mocks.NewMockIWorkflowFacade(ctrl)
		h := NewChangeOrderHandler(workflow)

		r := gin.New()
		r.PATCH("/v1/change-orders/:change_order_id/decision", h.DecideChangeOrder)

		workflow.EXPECT().DecideChangeOrder(gomock.Any(), "co-1", gomock.Any(), usecase.DecisionApprove).Return(usecase.DecideResult{
			ChangeOrder: entities.ChangeOrder{ID: "co-1", Status: entities.ChangeOrderStatusApproved, TotalAmount: 120},
			Job:         entities.Job{ID: "job-1", AdditionalApprovedAmount: 120},
			Escrow:      entities.EscrowAccount{ID: "esc-1", Amount: 420, Status: entities.EscrowStatusHeld},
		}, nil)

		body := `{"actor_id":"cust-1","actor_role":"customer","decision":"approve"}`
		req := httptest.NewRequest(http.MethodPatch, "/v1/change-orders/co-1/decision", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp struct {
			Job    *map[string]interface{} `json:"job"`
			Escrow *map[string]interface{} `json:"escrow"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if resp.Job == nil || resp.Escrow == nil {
			t.Fatalf("expected job and escrow in response: %s", w.Body.String())
		}
	})
}

func TestChangeOrderHandler_SweepExpiredChangeOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	workflow := mocks.NewMockIWorkflowFacade(ctrl)
	h := NewChangeOrderHandler(workflow)

	r := gin.New()
	r.POST("/v1/change-orders/sweep-expired", h.SweepExpiredChangeOrders)

	workflow.EXPECT().SweepExpiredChangeOrders(gomock.Any()).Return(3, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/change-orders/sweep-expired", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]int
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp["expired"] != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
