package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
)

func TestCreateDriver_Success(t *testing.T) {
	uc, repo := newTestUC()
	ctx := context.Background()

	driver, err := uc.CreateDriver(ctx, "Alex Kim")
	assert.NoError(t, err)
	assert.NotEmpty(t, driver.ID)
	assert.Equal(t, models.DriverStatusActive, driver.Status)

	entries, err := repo.ListActivity(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, "Admin created new driver: Alex Kim", entries[0].Message)
}

func TestCreateDriver_BlankName(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	for _, name := range []string{"", "   "} {
		_, err := uc.CreateDriver(ctx, name)
		assert.True(t, errors.Is(err, dispatch.ErrValidation))
	}
}

func TestListDrivers(t *testing.T) {
	uc, _ := newTestUC()

	drivers, err := uc.ListDrivers(context.Background())
	assert.NoError(t, err)
	assert.Len(t, drivers, 3)
}

func TestListActivity_DefaultsLimit(t *testing.T) {
	uc, _ := newTestUC()
	ctx := context.Background()

	entries, err := uc.ListActivity(ctx, 0)
	assert.NoError(t, err)
	assert.Len(t, entries, 6) // seed entries only

	entries, err = uc.ListActivity(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
}
