package dispatch

import (
	"context"

	"github.com/fleetline/dispatch/internal/pkg/models"
)

// DispatchUC is the dispatch usecase interface
type DispatchUC interface {
	// authentication
	Login(ctx context.Context, email, password string) (*models.AuthResponse, error)
	ResolveCaller(ctx context.Context, userID string) (*models.CallerIdentity, error)

	// driver management
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
	CreateDriver(ctx context.Context, name string) (*models.Driver, error)

	// job lifecycle
	ListJobs(ctx context.Context, caller *models.CallerIdentity) ([]*models.Job, error)
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, jobID string, status models.JobStatus, caller *models.CallerIdentity) (*models.Job, error)

	// activity log
	ListActivity(ctx context.Context, limit int) ([]*models.ActivityLogEntry, error)
}
