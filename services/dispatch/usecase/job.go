package usecase

import (
	"context"
	"fmt"

	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
)

// ListJobs returns all jobs for an admin caller and only the caller's
// assigned jobs for a driver caller.
func (u *DispatchUC) ListJobs(ctx context.Context, caller *models.CallerIdentity) ([]*models.Job, error) {
	if caller.Role == models.RoleAdmin {
		return u.repo.ListJobs(ctx)
	}
	return u.repo.ListJobsByDriver(ctx, caller.UserID)
}

// CreateJob creates a new delivery job in Pending status. The assigned
// driver id is stored as given; referential integrity is not enforced.
func (u *DispatchUC) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	if req.CustomerName == "" || req.PickupAddress == "" || req.DropoffAddress == "" || req.Price <= 0 {
		return nil, fmt.Errorf("missing required fields: %w", dispatch.ErrValidation)
	}

	job := &models.Job{
		CustomerName:     req.CustomerName,
		PickupAddress:    req.PickupAddress,
		DropoffAddress:   req.DropoffAddress,
		Price:            req.Price,
		Status:           models.JobStatusPending,
		AssignedDriverID: req.AssignedDriverID,
	}

	if err := u.repo.CreateJob(ctx, job); err != nil {
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	if _, err := u.repo.AppendActivity(ctx, fmt.Sprintf("New job created for %s", job.CustomerName)); err != nil {
		return nil, fmt.Errorf("failed to record job creation: %w", err)
	}

	logger.Info("Job created",
		logger.String("job_id", job.ID),
		logger.String("customer", job.CustomerName),
		logger.Float64("price", job.Price))

	return job, nil
}

// UpdateJobStatus transitions a job's status. Transitions are unrestricted;
// driver callers may only touch jobs assigned to them, admins bypass the
// ownership check. The job is left unmutated on any failure.
func (u *DispatchUC) UpdateJobStatus(ctx context.Context, jobID string, status models.JobStatus, caller *models.CallerIdentity) (*models.Job, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q: %w", status, dispatch.ErrValidation)
	}

	job, err := u.repo.GetJob(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	if caller.Role == models.RoleDriver && job.AssignedDriverID != caller.UserID {
		return nil, fmt.Errorf("job %s not assigned to caller: %w", jobID, dispatch.ErrForbidden)
	}

	updated, err := u.repo.UpdateJobStatus(ctx, jobID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to update job status: %w", err)
	}

	if _, err := u.repo.AppendActivity(ctx, fmt.Sprintf("Job #%s status updated to %s by %s", jobID, status, caller.Name)); err != nil {
		return nil, fmt.Errorf("failed to record status update: %w", err)
	}

	logger.Info("Job status updated",
		logger.String("job_id", jobID),
		logger.String("status", string(status)),
		logger.String("updated_by", caller.UserID))

	return updated, nil
}
