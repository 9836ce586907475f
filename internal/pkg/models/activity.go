package models

import "time"

// ActivityLogCapacity bounds the activity log; the oldest entry is evicted
// once the log grows past this size.
const ActivityLogCapacity = 100

// DefaultActivityLimit is the number of entries returned when a caller does
// not ask for a specific limit.
const DefaultActivityLimit = 50

// ActivityLogEntry is an append-only record of a notable state change
type ActivityLogEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}
