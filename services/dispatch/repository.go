package dispatch

import (
	"context"

	"github.com/fleetline/dispatch/internal/pkg/models"
)

// DispatchRepo is the domain store: users, drivers, jobs, and the activity
// log. Every method is atomic; implementations must be safe for concurrent
// use so handler goroutines stay serialized over shared state.
type DispatchRepo interface {
	// identity store
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	GetUserByCredentials(ctx context.Context, email, password string) (*models.User, error)

	// drivers
	ListDrivers(ctx context.Context) ([]*models.Driver, error)
	CreateDriver(ctx context.Context, driver *models.Driver) error

	// jobs
	ListJobs(ctx context.Context) ([]*models.Job, error)
	ListJobsByDriver(ctx context.Context, driverID string) ([]*models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error)
	CreateJob(ctx context.Context, job *models.Job) error

	// activity log
	AppendActivity(ctx context.Context, message string) (*models.ActivityLogEntry, error)
	ListActivity(ctx context.Context, limit int) ([]*models.ActivityLogEntry, error)
}
