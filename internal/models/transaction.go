package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents why a balance movement happened
type TransactionType string

const (
	// TransactionTypeEntryFee records a debit for joining a sweepstake
	TransactionTypeEntryFee TransactionType = "ENTRY_FEE"

	// TransactionTypeEntryRefund records a credit for leaving or a cancellation
	TransactionTypeEntryRefund TransactionType = "ENTRY_REFUND"

	// TransactionTypePrizePayout records the winner's prize credit
	TransactionTypePrizePayout TransactionType = "PRIZE_PAYOUT"

	// TransactionTypeHouseFee records the house's cut of a settled draw
	TransactionTypeHouseFee TransactionType = "HOUSE_FEE"
)

// Transaction represents a single balance movement
type Transaction struct {
	// ID is the unique identifier for the transaction
	ID string

	// UserID is the user whose balance moved; empty for house fee records
	UserID string

	// SweepstakeID is the sweepstake the movement belongs to
	SweepstakeID string

	// Type is the reason for the movement
	Type TransactionType

	// Amount is the absolute amount moved
	Amount decimal.Decimal

	// Timestamp is when the movement was recorded
	Timestamp time.Time
}
