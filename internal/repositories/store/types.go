package store

import (
	"time"

	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/shopspring/decimal"
)

type SaveSweepstakeInput struct {
	Sweepstake *models.Sweepstake
}

type GetSweepstakeInput struct {
	SweepstakeID string
}

type GetSweepstakesByStatusInput struct {
	Status models.SweepstakeStatus
}

type GetSweepstakesByStatusOutput struct {
	Sweepstakes []*models.Sweepstake
}

type SaveUserInput struct {
	User *models.User
}

type GetUserInput struct {
	UserID string
}

type JoinSweepstakeInput struct {
	SweepstakeID string

	// Participant is the fully built entry record; its JoinedAt feeds the
	// draw seed and is immutable once stored
	Participant *models.Participant

	Now time.Time
}

type JoinSweepstakeOutput struct {
	Sweepstake *models.Sweepstake

	// CapReached is true when this join filled the sweepstake and flipped it
	// to DRAWING
	CapReached bool
}

type LeaveSweepstakeInput struct {
	SweepstakeID string
	UserID       string
	Now          time.Time
}

type LeaveSweepstakeOutput struct {
	Sweepstake *models.Sweepstake
}

type UpdateSweepstakeStatusInput struct {
	SweepstakeID string

	// From guards the transition; the stored status must match it
	From models.SweepstakeStatus

	To models.SweepstakeStatus

	// CollapseEndTime moves EndTime to Now when the transition happens before
	// the scheduled end (the cap-reached draw path)
	CollapseEndTime bool

	Now time.Time
}

type SettleDrawInput struct {
	SweepstakeID string

	// Result is the output of the draw executor; its winner, seed, hash and
	// proof are written verbatim
	Result *draw.Result

	Now time.Time
}

type SettleDrawOutput struct {
	Sweepstake *models.Sweepstake

	// PrizeAmount is the amount credited to the winner
	PrizeAmount decimal.Decimal

	// FeeAmount is the house fee recorded for the draw
	FeeAmount decimal.Decimal

	// WinnerUserID is the owner of the winning entry
	WinnerUserID string
}

type CancelSweepstakeInput struct {
	SweepstakeID string

	// Reason is recorded in the audit log
	Reason string

	Now time.Time
}

type CancelSweepstakeOutput struct {
	Sweepstake *models.Sweepstake

	// RefundedCount is the number of participants refunded
	RefundedCount int
}

type GetTransactionsByUserInput struct {
	UserID string
}

type GetTransactionsBySweepstakeInput struct {
	SweepstakeID string
}

type GetAuditLogsInput struct {
	SweepstakeID string
}
