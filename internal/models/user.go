package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account that can join sweepstakes
type User struct {
	// ID is the unique identifier for the user
	ID string

	// Name is the display name of the user
	Name string

	// Balance is the user's current spendable balance
	Balance decimal.Decimal

	// CreatedAt is when the user was created
	CreatedAt time.Time

	// UpdatedAt is when the user was last updated
	UpdatedAt time.Time
}
