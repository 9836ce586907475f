package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/pkg/middleware"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/internal/utils"
	"github.com/fleetline/dispatch/services/dispatch"
)

// JobHandler handles HTTP requests for the job lifecycle
type JobHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewJobHandler creates a new job handler
func NewJobHandler(dispatchUC dispatch.DispatchUC) *JobHandler {
	return &JobHandler{dispatchUC: dispatchUC}
}

// ListJobs returns jobs scoped by the caller's role
func (h *JobHandler) ListJobs(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}

	jobs, err := h.dispatchUC.ListJobs(c.Request().Context(), caller)
	if err != nil {
		logger.Error("Failed to list jobs",
			logger.ErrorField(err),
			logger.String("user_id", caller.UserID))
		return utils.InternalServerErrorResponse(c, "Failed to list jobs")
	}
	return c.JSON(http.StatusOK, jobs)
}

// CreateJob creates a new delivery job
func (h *JobHandler) CreateJob(c echo.Context) error {
	var req models.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Missing required fields")
	}
	if err := c.Validate(&req); err != nil {
		return utils.BadRequestResponse(c, "Missing required fields")
	}

	job, err := h.dispatchUC.CreateJob(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, dispatch.ErrValidation) {
			return utils.BadRequestResponse(c, "Missing required fields")
		}
		logger.Error("Failed to create job",
			logger.ErrorField(err),
			logger.String("customer", req.CustomerName))
		return utils.InternalServerErrorResponse(c, "Failed to create job")
	}

	return c.JSON(http.StatusCreated, job)
}

// UpdateJobStatus transitions a job's status
func (h *JobHandler) UpdateJobStatus(c echo.Context) error {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}

	jobID := c.Param("id")

	var req models.UpdateJobStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid status")
	}

	job, err := h.dispatchUC.UpdateJobStatus(c.Request().Context(), jobID, req.Status, caller)
	if err != nil {
		switch {
		case errors.Is(err, dispatch.ErrValidation):
			return utils.BadRequestResponse(c, "Invalid status")
		case errors.Is(err, dispatch.ErrNotFound):
			return utils.NotFoundResponse(c, "Job not found")
		case errors.Is(err, dispatch.ErrForbidden):
			return utils.ForbiddenResponse(c, "You can only update your assigned jobs")
		}
		logger.Error("Failed to update job status",
			logger.ErrorField(err),
			logger.String("job_id", jobID),
			logger.String("user_id", caller.UserID))
		return utils.InternalServerErrorResponse(c, "Failed to update job status")
	}

	return c.JSON(http.StatusOK, job)
}
