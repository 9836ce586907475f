package models

import "time"

// JobStatus represents the status of a delivery job
type JobStatus string

const (
	JobStatusPending    JobStatus = "Pending"
	JobStatusInProgress JobStatus = "In Progress"
	JobStatusCompleted  JobStatus = "Completed"
)

// Valid reports whether the status is one of the known job statuses
func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusPending, JobStatusInProgress, JobStatusCompleted:
		return true
	}
	return false
}

// Job represents a delivery job. Status transitions are unrestricted;
// assignedDriverId is not checked against the driver table at write time.
type Job struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customerName"`
	PickupAddress    string    `json:"pickupAddress"`
	DropoffAddress   string    `json:"dropoffAddress"`
	Price            float64   `json:"price"`
	Status           JobStatus `json:"status"`
	AssignedDriverID string    `json:"assignedDriverId,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
}

// CreateJobRequest is the payload for creating a delivery job
type CreateJobRequest struct {
	CustomerName     string  `json:"customerName" validate:"required"`
	PickupAddress    string  `json:"pickupAddress" validate:"required"`
	DropoffAddress   string  `json:"dropoffAddress" validate:"required"`
	Price            float64 `json:"price" validate:"required,gt=0"`
	AssignedDriverID string  `json:"assignedDriverId"`
}

// UpdateJobStatusRequest is the payload for a job status transition
type UpdateJobStatusRequest struct {
	Status JobStatus `json:"status"`
}
