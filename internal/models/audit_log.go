package models

import (
	"time"
)

// AuditLog represents one append-only audit record for a sweepstake
type AuditLog struct {
	// ID is the unique identifier for the record
	ID string

	// SweepstakeID is the sweepstake the record belongs to
	SweepstakeID string

	// Event is a short machine-readable event name (e.g. "draw_settled")
	Event string

	// Detail is a human-readable description of what happened
	Detail string

	// Timestamp is when the record was appended
	Timestamp time.Time
}
