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
	errInvalidJobPayload = pkg.NewDomainErrorSimple("INVALID_JOB_INPUT", "Invalid job payload", http.StatusBadRequest)
)

// JobHandler handles HTTP requests for service jobs and their lifecycle.
type JobHandler struct {
	workflow usecase.IWorkflowFacade
}

func NewJobHandler(workflow usecase.IWorkflowFacade) *JobHandler {
	return &JobHandler{workflow: workflow}
}

// CreateJob godoc
// @Summary Post a new service job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job body request.CreateJobRequest true "Job draft"
// @Success 201 {object} response.JobResponse
// @Failure 400 {object} pkg.HTTPError
// @Router /v1/jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var payload request.CreateJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.workflow.CreateJob(c.Request.Context(), usecase.JobDraft{
		CustomerID:    payload.CustomerID,
		Category:      payload.Category,
		Description:   payload.Description,
		Location:      payload.Location,
		Urgency:       entities.JobUrgency(payload.Urgency),
		EstimatedCost: payload.EstimatedCost,
	})
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromJob(job))
}

// GetJob godoc
// @Summary Fetch a job by id
// @Tags jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {object} response.JobResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.workflow.GetJob(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromJob(job))
}

// GetJobTimeline godoc
// @Summary Fetch the chronological status timeline of a job
// @Tags jobs
// @Produce json
// @Param job_id path string true "Job ID"
// @Success 200 {array} response.TimelineEntryResponse
// @Failure 404 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/timeline [get]
func (h *JobHandler) GetJobTimeline(c *gin.Context) {
	timeline, err := h.workflow.GetJobTimeline(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(timeline))
}

// TransitionStatus godoc
// @Summary Move a job to a new lifecycle status
// @Tags jobs
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param transition body request.TransitionJobRequest true "Target status and actor"
// @Success 200 {object} response.JobResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/status [patch]
func (h *JobHandler) TransitionStatus(c *gin.Context) {
	var payload request.TransitionJobRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.workflow.TransitionJobStatus(
		c.Request.Context(),
		c.Param("job_id"),
		entities.JobStatus(payload.Status),
		payload.ToActor(),
		payload.Description,
	)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// AppendNote godoc
// @Summary Append a note to an in-progress job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param note body request.JobNoteRequest true "Note"
// @Success 200 {object} response.JobResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/notes [post]
func (h *JobHandler) AppendNote(c *gin.Context) {
	var payload request.JobNoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.workflow.AppendJobNote(c.Request.Context(), c.Param("job_id"), payload.ToActor(), payload.Text)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

// AppendPhoto godoc
// @Summary Append a photo to an in-progress job
// @Tags jobs
// @Accept json
// @Produce json
// @Param job_id path string true "Job ID"
// @Param photo body request.JobPhotoRequest true "Photo"
// @Success 200 {object} response.JobResponse
// @Failure 409 {object} pkg.HTTPError
// @Router /v1/jobs/{job_id}/photos [post]
func (h *JobHandler) AppendPhoto(c *gin.Context) {
	var payload request.JobPhotoRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidJobPayload.HTTPStatus, errInvalidJobPayload.ToHTTPError())
		return
	}

	job, err := h.workflow.AppendJobPhoto(c.Request.Context(), c.Param("job_id"), payload.ToActor(), payload.URL, payload.Caption)
	if err != nil {
		appErr := mapJobError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromJob(job))
}

func mapJobError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidJobID),
		errors.Is(err, usecase.ErrMissingField),
		errors.Is(err, usecase.ErrInvalidUrgency),
		errors.Is(err, usecase.ErrInvalidActor),
		errors.Is(err, usecase.ErrInvalidCostValue),
		errors.Is(err, usecase.ErrEmptyNote),
		errors.Is(err, usecase.ErrEmptyPhotoURL):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotAuthorized):
		return pkg.NewDomainErrorSimple("NOT_AUTHORIZED", "Actor is not allowed to perform this action", http.StatusForbidden)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrIllegalTransition),
		errors.Is(err, usecase.ErrJobNotInProgress):
		return pkg.NewDomainErrorSimple("ILLEGAL_TRANSITION", "Job status does not allow this action", http.StatusConflict)
	case errors.Is(err, usecase.ErrTransitionConflict):
		return pkg.NewDomainErrorSimple("TRANSITION_CONFLICT", "Job changed concurrently, retry", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
