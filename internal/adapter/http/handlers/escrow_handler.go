package handlers

import (
	"errors"
	"net/http"

	request "mechmarket/internal/adapter/http/dto/request"
	response "mechmarket/internal/adapter/http/dto/response"
	"mechmarket/internal/usecase"
	"mechmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidEscrowPayload = pkg.NewDomainErrorSimple("INVALID_ESCROW_INPUT", "Invalid escrow payload", http.StatusBadRequest)
)

// EscrowHandler handles HTTP requests for escrow settlement.
type EscrowHandler struct {
	workflow usecase.IWorkflowFacade
}

func NewEscrowHandler(workflow usecase.IWorkflowFacade) *EscrowHandler {
	return &EscrowHandler{workflow: workflow}
}

// GetEscrowByJob godoc
// @Summary Fetch the escrow account and payment for a job
// @Tags escrow
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} response.EscrowStateResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/escrow [get]
func (h *EscrowHandler) GetEscrowByJob(c *gin.Context) {
	res, err := h.workflow.GetEscrowByJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEscrowState(res.Escrow, res.Payment))
}

// ReleaseEscrow godoc
// @Summary Release held funds to the mechanic after completion
// @Tags escrow
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} response.EscrowStateResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/escrow/release [post]
func (h *EscrowHandler) ReleaseEscrow(c *gin.Context) {
	res, err := h.workflow.ReleaseEscrow(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEscrowState(res.Escrow, res.Payment))
}

// RefundEscrow godoc
// @Summary Refund held funds to the customer after cancellation
// @Tags escrow
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param refund body request.RefundEscrowRequest true "Refund reason and actor"
// @Success 200 {object} response.EscrowStateResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/escrow/refund [post]
func (h *EscrowHandler) RefundEscrow(c *gin.Context) {
	var payload request.RefundEscrowRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidEscrowPayload.HTTPStatus, errInvalidEscrowPayload.ToHTTPError())
		return
	}

	res, err := h.workflow.RefundEscrow(c.Request.Context(), c.Param("job_id"), payload.ToActor(), payload.Reason)
	if err != nil {
		appErr := mapEscrowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromEscrowState(res.Escrow, res.Payment))
}

func mapEscrowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrEmptyRefundReason):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrEscrowNotFound),
		errors.Is(err, usecase.ErrPaymentNotFound),
		errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("ESCROW_NOT_FOUND", "Escrow not found for this job", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotCompleted):
		return pkg.NewDomainErrorSimple("JOB_NOT_COMPLETED", "Job is not completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotRefundable):
		return pkg.NewDomainErrorSimple("JOB_NOT_REFUNDABLE", "Job is not in a refundable state", http.StatusConflict)
	case errors.Is(err, usecase.ErrEscrowRefunded),
		errors.Is(err, usecase.ErrEscrowReleased),
		errors.Is(err, usecase.ErrEscrowNotHeld),
		errors.Is(err, usecase.ErrEscrowConflict):
		return pkg.NewDomainErrorSimple("ESCROW_SETTLED", "Escrow funds were already settled", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
