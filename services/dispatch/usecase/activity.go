package usecase

import (
	"context"

	"github.com/fleetline/dispatch/internal/pkg/models"
)

// ListActivity returns the most recent activity entries, newest first.
// Non-positive limits fall back to the default.
func (u *DispatchUC) ListActivity(ctx context.Context, limit int) ([]*models.ActivityLogEntry, error) {
	return u.repo.ListActivity(ctx, limit)
}
