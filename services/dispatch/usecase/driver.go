package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/fleetline/dispatch/internal/pkg/logger"
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
)

// ListDrivers returns all drivers
func (u *DispatchUC) ListDrivers(ctx context.Context) ([]*models.Driver, error) {
	return u.repo.ListDrivers(ctx)
}

// CreateDriver registers a new driver with active status
func (u *DispatchUC) CreateDriver(ctx context.Context, name string) (*models.Driver, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("driver name required: %w", dispatch.ErrValidation)
	}

	driver := &models.Driver{
		Name:   name,
		Status: models.DriverStatusActive,
	}

	if err := u.repo.CreateDriver(ctx, driver); err != nil {
		return nil, fmt.Errorf("failed to create driver: %w", err)
	}

	if _, err := u.repo.AppendActivity(ctx, fmt.Sprintf("Admin created new driver: %s", driver.Name)); err != nil {
		return nil, fmt.Errorf("failed to record driver creation: %w", err)
	}

	logger.Info("Driver created",
		logger.String("driver_id", driver.ID),
		logger.String("name", driver.Name))

	return driver, nil
}
