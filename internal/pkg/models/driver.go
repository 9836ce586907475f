package models

// DriverStatus represents the availability of a driver
type DriverStatus string

const (
	DriverStatusActive  DriverStatus = "active"
	DriverStatusOffline DriverStatus = "offline"
)

// Driver represents a driver record in the domain store. A driver id may
// coincide with a user id by seed-data convention so that a driver account
// sees the jobs assigned to it; the two entities are not formally linked.
type Driver struct {
	ID     string       `json:"id"`
	Name   string       `json:"name"`
	Status DriverStatus `json:"status"`
}

// CreateDriverRequest is the payload for registering a new driver
type CreateDriverRequest struct {
	Name string `json:"name" validate:"required"`
}
