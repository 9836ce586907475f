package usecase

import (
	"github.com/fleetline/dispatch/internal/pkg/models"
	"github.com/fleetline/dispatch/services/dispatch"
)

// DispatchUC implements the dispatch usecase interface
type DispatchUC struct {
	repo dispatch.DispatchRepo
	cfg  *models.Config
}

// NewDispatchUC creates a new dispatch usecase instance
func NewDispatchUC(repo dispatch.DispatchRepo, cfg *models.Config) *DispatchUC {
	return &DispatchUC{
		repo: repo,
		cfg:  cfg,
	}
}
