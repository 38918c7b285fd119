package sweepstake

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fairdraw/sweepstakes/internal/common/clock"
	"github.com/fairdraw/sweepstakes/internal/common/uuid"
	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/fairdraw/sweepstakes/internal/repositories/store"
	"github.com/fairdraw/sweepstakes/internal/services/notifier"
)

// Config holds configuration for the sweepstake service
type Config struct {
	// DefaultHouseFeeRate is applied when a sweepstake is created without an
	// explicit rate (reference value: 0.05)
	DefaultHouseFeeRate decimal.Decimal

	// Repository dependencies
	Store store.Repository

	// Service dependencies
	Notifier      notifier.Service
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// CreateSweepstakeInput contains parameters for creating a sweepstake
type CreateSweepstakeInput struct {
	Title           string
	MaxParticipants int
	EntryFee        decimal.Decimal

	// HouseFeeRate overrides the configured default when positive
	HouseFeeRate decimal.Decimal

	StartTime time.Time
	EndTime   time.Time
}

// CreateSweepstakeOutput contains the created sweepstake
type CreateSweepstakeOutput struct {
	Sweepstake *models.Sweepstake
}

// GetSweepstakeInput contains parameters for fetching a sweepstake
type GetSweepstakeInput struct {
	SweepstakeID string
}

// GetSweepstakeOutput contains the fetched sweepstake
type GetSweepstakeOutput struct {
	Sweepstake *models.Sweepstake
}

// ListSweepstakesInput contains parameters for listing sweepstakes
type ListSweepstakesInput struct {
	// Status filters the listing; empty lists every status
	Status models.SweepstakeStatus
}

// ListSweepstakesOutput contains the listed sweepstakes
type ListSweepstakesOutput struct {
	Sweepstakes []*models.Sweepstake
}

// JoinSweepstakeInput contains parameters for joining a sweepstake
type JoinSweepstakeInput struct {
	SweepstakeID string
	UserID       string
}

// JoinSweepstakeOutput contains the result of joining
type JoinSweepstakeOutput struct {
	Sweepstake    *models.Sweepstake
	ParticipantID string

	// CapReached indicates the join filled the sweepstake and flagged it for
	// an immediate draw
	CapReached bool
}

// LeaveSweepstakeInput contains parameters for withdrawing an entry
type LeaveSweepstakeInput struct {
	SweepstakeID string
	UserID       string
}

// LeaveSweepstakeOutput contains the result of withdrawing
type LeaveSweepstakeOutput struct {
	Sweepstake *models.Sweepstake
}

// ActivateSweepstakeInput contains parameters for activating a sweepstake
type ActivateSweepstakeInput struct {
	SweepstakeID string
}

// ActivateSweepstakeOutput contains the activated sweepstake
type ActivateSweepstakeOutput struct {
	Sweepstake *models.Sweepstake
}

// MarkForDrawInput contains parameters for flagging an immediate draw
type MarkForDrawInput struct {
	SweepstakeID string

	// From is the status the sweepstake is expected to be in
	From models.SweepstakeStatus
}

// MarkForDrawOutput contains the flagged sweepstake
type MarkForDrawOutput struct {
	Sweepstake *models.Sweepstake
}

// DrawAndSettleInput contains parameters for executing and settling a draw
type DrawAndSettleInput struct {
	SweepstakeID string
}

// DrawAndSettleOutput contains the settled draw
type DrawAndSettleOutput struct {
	Sweepstake   *models.Sweepstake
	Result       *draw.Result
	WinnerUserID string
	PrizeAmount  decimal.Decimal
	FeeAmount    decimal.Decimal
}

// CancelSweepstakeInput contains parameters for cancelling a sweepstake
type CancelSweepstakeInput struct {
	SweepstakeID string

	// Reason is recorded in the audit log
	Reason string
}

// CancelSweepstakeOutput contains the result of cancelling
type CancelSweepstakeOutput struct {
	Sweepstake    *models.Sweepstake
	RefundedCount int
}

// GetAuditReportInput contains parameters for generating an audit report
type GetAuditReportInput struct {
	SweepstakeID string
}

// GetAuditReportOutput contains the publishable report
type GetAuditReportOutput struct {
	Report *draw.Report
}

// CreateUserInput contains parameters for creating a user
type CreateUserInput struct {
	Name string

	// OpeningBalance is the user's starting balance
	OpeningBalance decimal.Decimal
}

// CreateUserOutput contains the created user
type CreateUserOutput struct {
	User *models.User
}

// GetUserInput contains parameters for fetching a user
type GetUserInput struct {
	UserID string
}

// GetUserOutput contains the user and their transaction history
type GetUserOutput struct {
	User         *models.User
	Transactions []*models.Transaction
}
