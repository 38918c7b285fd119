package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Participant represents one entry in a sweepstake
type Participant struct {
	// ID is the unique identifier for this entry within the sweepstake
	ID string

	// SweepstakeID is the ID of the sweepstake the entry belongs to
	SweepstakeID string

	// UserID is the ID of the user who owns the entry
	UserID string

	// EntryFee is the amount the user paid to enter
	EntryFee decimal.Decimal

	// JoinedAt is when the entry was created; immutable, it feeds the draw seed
	JoinedAt time.Time
}
