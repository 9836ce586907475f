package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
)

// DispatchRepo is the in-memory domain store. All state is process-local and
// discarded on restart. A single mutex serializes every operation; Go's
// handler goroutines would otherwise race on id generation and job mutation.
type DispatchRepo struct {
	mu       sync.Mutex
	users    []*models.User
	drivers  []*models.Driver
	jobs     []*models.Job
	activity []*models.ActivityLogEntry
}

// NewDispatchRepo creates the store loaded with the demo seed data
func NewDispatchRepo() *DispatchRepo {
	r := &DispatchRepo{}
	r.seed()
	return r
}

// Stats returns the record counts for startup reporting
func (r *DispatchRepo) Stats() (users, drivers, jobs, activity int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users), len(r.drivers), len(r.jobs), len(r.activity)
}

// GetUserByID retrieves a user by id
func (r *DispatchRepo) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID == id {
			user := *u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", id, dispatch.ErrNotFound)
}

// GetUserByCredentials retrieves a user by exact email and password match.
// The demo identity store compares plaintext credentials.
func (r *DispatchRepo) GetUserByCredentials(ctx context.Context, email, password string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == email && u.Password == password {
			user := *u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, dispatch.ErrNotFound)
}

// ListDrivers returns all drivers in insertion order
func (r *DispatchRepo) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	drivers := make([]*models.Driver, 0, len(r.drivers))
	for _, d := range r.drivers {
		driver := *d
		drivers = append(drivers, &driver)
	}
	return drivers, nil
}

// CreateDriver assigns a fresh id and appends the driver to the store
func (r *DispatchRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	driver.ID = uuid.New().String()
	if driver.Status == "" {
		driver.Status = models.DriverStatusActive
	}

	stored := *driver
	r.drivers = append(r.drivers, &stored)
	return nil
}

// ListJobs returns all jobs in insertion order
func (r *DispatchRepo) ListJobs(ctx context.Context) ([]*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := make([]*models.Job, 0, len(r.jobs))
	for _, j := range r.jobs {
		job := *j
		jobs = append(jobs, &job)
	}
	return jobs, nil
}

// ListJobsByDriver returns the jobs assigned to the given driver id
func (r *DispatchRepo) ListJobsByDriver(ctx context.Context, driverID string) ([]*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	jobs := make([]*models.Job, 0)
	for _, j := range r.jobs {
		if j.AssignedDriverID == driverID {
			job := *j
			jobs = append(jobs, &job)
		}
	}
	return jobs, nil
}

// GetJob retrieves a job by id
func (r *DispatchRepo) GetJob(ctx context.Context, id string) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.jobs {
		if j.ID == id {
			job := *j
			return &job, nil
		}
	}
	return nil, fmt.Errorf("job %s: %w", id, dispatch.ErrNotFound)
}

// UpdateJobStatus mutates a job's status in place and returns the updated job
func (r *DispatchRepo) UpdateJobStatus(ctx context.Context, id string, status models.JobStatus) (*models.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, j := range r.jobs {
		if j.ID == id {
			j.Status = status
			job := *j
			return &job, nil
		}
	}
	return nil, fmt.Errorf("job %s: %w", id, dispatch.ErrNotFound)
}

// CreateJob assigns a fresh id and creation time and appends the job
func (r *DispatchRepo) CreateJob(ctx context.Context, job *models.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	job.ID = uuid.New().String()
	job.CreatedAt = time.Now()

	stored := *job
	r.jobs = append(r.jobs, &stored)
	return nil
}

// AppendActivity prepends a new entry to the activity log, evicting the
// oldest entry once the log exceeds its capacity.
func (r *DispatchRepo) AppendActivity(ctx context.Context, message string) (*models.ActivityLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry := &models.ActivityLogEntry{
		ID:        uuid.New().String(),
		Message:   message,
		Timestamp: time.Now(),
	}

	r.activity = append([]*models.ActivityLogEntry{entry}, r.activity...)
	if len(r.activity) > models.ActivityLogCapacity {
		r.activity = r.activity[:models.ActivityLogCapacity]
	}

	result := *entry
	return &result, nil
}

// ListActivity returns the most recent entries, newest first
func (r *DispatchRepo) ListActivity(ctx context.Context, limit int) ([]*models.ActivityLogEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = models.DefaultActivityLimit
	}
	if limit > len(r.activity) {
		limit = len(r.activity)
	}

	entries := make([]*models.ActivityLogEntry, 0, limit)
	for _, e := range r.activity[:limit] {
		entry := *e
		entries = append(entries, &entry)
	}
	return entries, nil
}
