package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "mechmarket/internal/adapter/http/dto/request"
	response "mechmarket/internal/adapter/http/dto/response"
	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase"
	"mechmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)
)

// ChangeOrderHandler handles HTTP requests for mid-job scope changes.
type ChangeOrderHandler struct {
	workflow usecase.IWorkflowFacade
}

func NewChangeOrderHandler(workflow usecase.IWorkflowFacade) *ChangeOrderHandler {
	return &ChangeOrderHandler{workflow: workflow}
}

// ProposeChangeOrder godoc
// @Summary Propose additional work on an in-progress job
// @Tags change-orders
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param change_order body request.ProposeChangeOrderRequest true "Change order"
// @Success 201 {object} response.ChangeOrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/change-orders [post]
func (h *ChangeOrderHandler) ProposeChangeOrder(c *gin.Context) {
	var payload request.ProposeChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	order, err := h.workflow.ProposeChangeOrder(
		c.Request.Context(),
		c.Param("job_id"),
		payload.MechanicID,
		payload.ToLineItems(),
		payload.Reason,
		payload.RequiresImmediateApproval,
	)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(order))
}

// ListChangeOrdersByJob godoc
// @Summary List change orders proposed for a job
// @Tags change-orders
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {array} response.ChangeOrderResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/change-orders [get]
func (h *ChangeOrderHandler) ListChangeOrdersByJob(c *gin.Context) {
	orders, err := h.workflow.ListChangeOrdersByJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromChangeOrders(orders))
}

// DecideChangeOrder godoc
// @Summary Approve or reject a pending change order
// @Tags change-orders
// @Accept json
// @Produce json
// @Param change_order_id path string true "Change order ID"
// @Param decision body request.DecideChangeOrderRequest true "Decision"
// @Success 200 {object} response.DecideChangeOrderResponse
// @Failure 410 {object} pkg.HTTPError
// @Router /v1/change-orders/{change_order_id}/decision [patch]
func (h *ChangeOrderHandler) DecideChangeOrder(c *gin.Context) {
	var payload request.DecideChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	decision := usecase.ChangeOrderDecision(strings.ToLower(strings.TrimSpace(payload.Decision)))
	res, err := h.workflow.DecideChangeOrder(c.Request.Context(), c.Param("change_order_id"), payload.ToActor(), decision)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.DecideChangeOrderResponse{
		ChangeOrder: response.FromChangeOrder(res.ChangeOrder),
	}
	if res.ChangeOrder.Status == entities.ChangeOrderStatusApproved {
		job := response.FromJob(res.Job)
		escrow := response.FromEscrow(res.Escrow)
		resp.Job = &job
		resp.Escrow = &escrow
	}
	c.JSON(http.StatusOK, resp)
}

// CancelChangeOrder godoc
// @Summary Withdraw a pending change order
// @Tags change-orders
// @Accept json
// @Produce json
// @Param change_order_id path string true "Change order ID"
// @Param cancel body request.CancelChangeOrderRequest true "Acting mechanic"
// @Success 200 {object} response.ChangeOrderResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/change-orders/{change_order_id}/cancel [patch]
func (h *ChangeOrderHandler) CancelChangeOrder(c *gin.Context) {
	var payload request.CancelChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	order, err := h.workflow.CancelChangeOrder(c.Request.Context(), c.Param("change_order_id"), payload.ToActor())
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(order))
}

// SweepExpiredChangeOrders godoc
// @Summary Expire pending change orders past their approval horizon
// @Tags change-orders
// @Produce json
// @Success 200 {object} map[string]int
// @Router /v1/change-orders/sweep-expired [post]
func (h *ChangeOrderHandler) SweepExpiredChangeOrders(c *gin.Context) {
	expired, err := h.workflow.SweepExpiredChangeOrders(c.Request.Context())
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, gin.H{"expired": expired})
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChangeOrder),
		errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrEmptyLineItems),
		errors.Is(err, usecase.ErrInvalidLineItem),
		errors.Is(err, usecase.ErrEmptyReason),
		errors.Is(err, usecase.ErrInvalidDecision),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidMechanicID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotInProgress):
		return pkg.NewDomainErrorSimple("JOB_NOT_IN_PROGRESS", "Job is not in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyDecided):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_ALREADY_DECIDED", "Change order was already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeOrderExpired):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_EXPIRED", "Change order approval window has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrEscrowNotHeld):
		return pkg.NewDomainErrorSimple("ESCROW_NOT_HELD", "Escrow is not holding funds for this job", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
