package repository

import (
	"time"

	"github.com/fleetline/dispatch/internal/pkg/models"
)

// seed loads the demo data set. Driver "2" deliberately shares its id with
// the driver-role user so that account sees the jobs assigned to it.
func (r *DispatchRepo) seed() {
	now := time.Now()

	r.users = []*models.User{
		{
			ID:       "1",
			Name:     "Dispatch Admin",
			Email:    "admin@demo.com",
			Password: "admin123",
			Role:     models.RoleAdmin,
		},
		{
			ID:       "2",
			Name:     "John Driver",
			Email:    "driver@demo.com",
			Password: "driver123",
			Role:     models.RoleDriver,
		},
	}

	r.drivers = []*models.Driver{
		{ID: "2", Name: "John Driver", Status: models.DriverStatusActive},
		{ID: "3", Name: "Sarah Martinez", Status: models.DriverStatusActive},
		{ID: "4", Name: "Mike Johnson", Status: models.DriverStatusOffline},
	}

	r.jobs = []*models.Job{
		{
			ID:               "1",
			CustomerName:     "ABC Corporation",
			PickupAddress:    "123 Main St, Dallas, TX 75201",
			DropoffAddress:   "456 Commerce Ave, Dallas, TX 75202",
			Price:            45.00,
			Status:           models.JobStatusInProgress,
			AssignedDriverID: "2",
			CreatedAt:        now.Add(-2 * time.Hour),
		},
		{
			ID:               "2",
			CustomerName:     "Tech Solutions Inc",
			PickupAddress:    "789 Business Blvd, Dallas, TX 75203",
			DropoffAddress:   "321 Market St, Dallas, TX 75204",
			Price:            62.50,
			Status:           models.JobStatusPending,
			AssignedDriverID: "2",
			CreatedAt:        now.Add(-1 * time.Hour),
		},
		{
			ID:               "3",
			CustomerName:     "Global Logistics",
			PickupAddress:    "555 Industrial Way, Dallas, TX 75205",
			DropoffAddress:   "777 Warehouse Rd, Dallas, TX 75206",
			Price:            89.00,
			Status:           models.JobStatusCompleted,
			AssignedDriverID: "2",
			CreatedAt:        now.Add(-5 * time.Hour),
		},
		{
			ID:             "4",
			CustomerName:   "Retail Express",
			PickupAddress:  "999 Storefront Ln, Dallas, TX 75207",
			DropoffAddress: "111 Delivery Dr, Dallas, TX 75208",
			Price:          35.75,
			Status:         models.JobStatusPending,
			CreatedAt:      now.Add(-30 * time.Minute),
		},
	}

	r.activity = []*models.ActivityLogEntry{
		{ID: "6", Message: "Job #3 status updated to Completed by John Driver", Timestamp: now.Add(-1 * time.Hour)},
		{ID: "5", Message: "New job created for Tech Solutions Inc", Timestamp: now.Add(-1 * time.Hour)},
		{ID: "4", Message: "Job #1 status updated to In Progress by John Driver", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "3", Message: "Job #1 assigned to John Driver", Timestamp: now.Add(-4 * time.Hour)},
		{ID: "2", Message: "New job created for ABC Corporation", Timestamp: now.Add(-5 * time.Hour)},
		{ID: "1", Message: "Server started - demo data loaded", Timestamp: now.Add(-6 * time.Hour)},
	}
}
