package handlers

import (
	"errors"
	"net/http"

	request "mechmarket/internal/adapter/http/dto/request"
	response "mechmarket/internal/adapter/http/dto/response"
	"mechmarket/internal/domain/entities"
	"mechmarket/internal/usecase"
	"mechmarket/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidBidPayload = pkg.NewDomainErrorSimple("INVALID_BID_INPUT", "Invalid bid payload", http.StatusBadRequest)
)

// BidHandler handles HTTP requests for bids on service jobs.
type BidHandler struct {
	workflow usecase.IWorkflowFacade
}

func NewBidHandler(workflow usecase.IWorkflowFacade) *BidHandler {
	return &BidHandler{workflow: workflow}
}

// SubmitBid godoc
// @Summary Submit a bid on an open job
// @Tags bids
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param bid body request.SubmitBidRequest true "Bid"
// @Success 201 {object} response.BidResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/bids [post]
func (h *BidHandler) SubmitBid(c *gin.Context) {
	var payload request.SubmitBidRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.workflow.SubmitBid(
		c.Request.Context(),
		c.Param("job_id"),
		payload.MechanicID,
		payload.Amount,
		entities.BidKind(payload.Kind),
		payload.EstimatedHours,
		payload.Message,
	)
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromBid(bid))
}

// ListBidsByJob godoc
// @Summary List all bids placed on a job
// @Tags bids
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {array} response.BidResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/bids [get]
func (h *BidHandler) ListBidsByJob(c *gin.Context) {
	bids, err := h.workflow.ListBidsByJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromBids(bids))
}

// AcceptBid godoc
// @Summary Accept a bid, assigning the mechanic and opening escrow
// @Tags bids
// @Accept json
// @Produce json
// @Param bid_id path string true "Bid ID"
// @Param decision body request.BidDecisionRequest true "Acting customer"
// @Success 200 {object} response.AcceptBidResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/bids/{bid_id}/accept [patch]
func (h *BidHandler) AcceptBid(c *gin.Context) {
	var payload request.BidDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	res, err := h.workflow.AcceptBid(c.Request.Context(), c.Param("bid_id"), payload.ToActor())
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AcceptBidResponse{
		Job:    response.FromJob(res.Job),
		Bid:    response.FromBid(res.Bid),
		Escrow: response.FromEscrow(res.Escrow),
	})
}

// RejectBid godoc
// @Summary Reject a pending bid
// @Tags bids
// @Accept json
// @Produce json
// @Param bid_id path string true "Bid ID"
// @Param decision body request.BidDecisionRequest true "Acting customer"
// @Success 200 {object} response.BidResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/bids/{bid_id}/reject [patch]
func (h *BidHandler) RejectBid(c *gin.Context) {
	var payload request.BidDecisionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidBidPayload.HTTPStatus, errInvalidBidPayload.ToHTTPError())
		return
	}

	bid, err := h.workflow.RejectBid(c.Request.Context(), c.Param("bid_id"), payload.ToActor())
	if err != nil {
		appErr := mapBidError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBid(bid))
}

func mapBidError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBidID),
		errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrInvalidBidAmount),
		errors.Is(err, usecase.ErrInvalidBidKind),
		errors.Is(err, usecase.ErrInvalidBidHours),
		errors.Is(err, usecase.ErrInvalidMechanicID),
		errors.Is(err, usecase.ErrInvalidActor):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrBidNotFound):
		return pkg.NewDomainErrorSimple("BID_NOT_FOUND", "Bid not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOwnJobBid):
		return pkg.NewDomainErrorSimple("OWN_JOB_BID", "Customers cannot bid on their own jobs", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobNotBiddable):
		return pkg.NewDomainErrorSimple("JOB_NOT_BIDDABLE", "Job is not open for bidding", http.StatusConflict)
	case errors.Is(err, usecase.ErrBidAlreadyDecided):
		return pkg.NewDomainErrorSimple("BID_ALREADY_DECIDED", "Bid was already decided", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentGateway):
		return pkg.NewDomainError("PAYMENT_GATEWAY_ERROR", "Payment provider rejected the operation", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
