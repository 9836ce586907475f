package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
)

func TestNewDispatchRepo_SeedData(t *testing.T) {
	repo := NewDispatchRepo()

	users, drivers, jobs, activity := repo.Stats()
	assert.Equal(t, 2, users)
	assert.Equal(t, 3, drivers)
	assert.Equal(t, 4, jobs)
	assert.Equal(t, 6, activity)
}

func TestGetUserByCredentials(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	user, err := repo.GetUserByCredentials(ctx, "admin@demo.com", "admin123")
	assert.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, models.RoleAdmin, user.Role)

	_, err = repo.GetUserByCredentials(ctx, "admin@demo.com", "wrong")
	assert.True(t, errors.Is(err, dispatch.ErrNotFound))

	_, err = repo.GetUserByCredentials(ctx, "nobody@demo.com", "admin123")
	assert.True(t, errors.Is(err, dispatch.ErrNotFound))
}

func TestCreateDriver_AssignsIDAndDefaults(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	driver := &models.Driver{Name: "New Driver"}
	assert.NoError(t, repo.CreateDriver(ctx, driver))
	assert.NotEmpty(t, driver.ID)
	assert.Equal(t, models.DriverStatusActive, driver.Status)

	other := &models.Driver{Name: "Another Driver"}
	assert.NoError(t, repo.CreateDriver(ctx, other))
	assert.NotEqual(t, driver.ID, other.ID)

	drivers, err := repo.ListDrivers(ctx)
	assert.NoError(t, err)
	assert.Len(t, drivers, 5)
}

func TestListJobsByDriver(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	jobs, err := repo.ListJobsByDriver(ctx, "2")
	assert.NoError(t, err)
	assert.Len(t, jobs, 3)
	for _, j := range jobs {
		assert.Equal(t, "2", j.AssignedDriverID)
	}

	jobs, err = repo.ListJobsByDriver(ctx, "999")
	assert.NoError(t, err)
	assert.Empty(t, jobs)
}

func TestUpdateJobStatus(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	updated, err := repo.UpdateJobStatus(ctx, "4", models.JobStatusInProgress)
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, updated.Status)

	job, err := repo.GetJob(ctx, "4")
	assert.NoError(t, err)
	assert.Equal(t, models.JobStatusInProgress, job.Status)

	_, err = repo.UpdateJobStatus(ctx, "unknown", models.JobStatusCompleted)
	assert.True(t, errors.Is(err, dispatch.ErrNotFound))
}

func TestCreateJob_AssignsIDAndCreatedAt(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	job := &models.Job{
		CustomerName:   "Acme",
		PickupAddress:  "A",
		DropoffAddress: "B",
		Price:          10,
		Status:         models.JobStatusPending,
	}
	assert.NoError(t, repo.CreateJob(ctx, job))
	assert.NotEmpty(t, job.ID)
	assert.False(t, job.CreatedAt.IsZero())

	stored, err := repo.GetJob(ctx, job.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Acme", stored.CustomerName)
}

func TestAppendActivity_NewestFirst(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	entry, err := repo.AppendActivity(ctx, "first new entry")
	assert.NoError(t, err)
	assert.NotEmpty(t, entry.ID)

	_, err = repo.AppendActivity(ctx, "second new entry")
	assert.NoError(t, err)

	entries, err := repo.ListActivity(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "second new entry", entries[0].Message)
	assert.Equal(t, "first new entry", entries[1].Message)
}

func TestAppendActivity_EvictsOldestAtCapacity(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	for i := 0; i < models.ActivityLogCapacity+10; i++ {
		_, err := repo.AppendActivity(ctx, fmt.Sprintf("entry %d", i))
		assert.NoError(t, err)
	}

	entries, err := repo.ListActivity(ctx, models.ActivityLogCapacity+50)
	assert.NoError(t, err)
	assert.Len(t, entries, models.ActivityLogCapacity)

	// Seed entries and the earliest appended entries are evicted; the most
	// recent append is at the head.
	assert.Equal(t, fmt.Sprintf("entry %d", models.ActivityLogCapacity+9), entries[0].Message)
	for _, e := range entries {
		assert.NotEqual(t, "Server started - demo data loaded", e.Message)
	}
}

func TestListActivity_DefaultLimit(t *testing.T) {
	repo := NewDispatchRepo()
	ctx := context.Background()

	// Grow the log past the default limit
	for i := 0; i < models.DefaultActivityLimit+20; i++ {
		_, err := repo.AppendActivity(ctx, fmt.Sprintf("entry %d", i))
		assert.NoError(t, err)
	}

	entries, err := repo.ListActivity(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, models.DefaultActivityLimit)

	entries, err = repo.ListActivity(ctx, -5)
	assert.NoError(t, err)
	assert.Len(t, entries, models.DefaultActivityLimit)
}
