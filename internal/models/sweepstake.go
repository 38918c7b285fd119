package models

import (
	"time"

	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/shopspring/decimal"
)

// SweepstakeStatus represents the current state of a sweepstake
type SweepstakeStatus string

const (
	// SweepstakeStatusScheduled indicates a sweepstake that has not started yet
	// or does not have enough participants to run a draw
	SweepstakeStatusScheduled SweepstakeStatus = "SCHEDULED"

	// SweepstakeStatusActive indicates a sweepstake accepting participants
	SweepstakeStatusActive SweepstakeStatus = "ACTIVE"

	// SweepstakeStatusDrawing indicates a sweepstake flagged for immediate draw execution
	SweepstakeStatusDrawing SweepstakeStatus = "DRAWING"

	// SweepstakeStatusFinished indicates a sweepstake whose draw has completed
	SweepstakeStatusFinished SweepstakeStatus = "FINISHED"

	// SweepstakeStatusCancelled indicates a sweepstake that ended without a draw
	SweepstakeStatusCancelled SweepstakeStatus = "CANCELLED"
)

// IsTerminal returns true for states that allow no further transitions
func (s SweepstakeStatus) IsTerminal() bool {
	return s == SweepstakeStatusFinished || s == SweepstakeStatusCancelled
}

// IsJoinable returns true for states that accept new participants
func (s SweepstakeStatus) IsJoinable() bool {
	return s == SweepstakeStatusScheduled || s == SweepstakeStatusActive
}

// Sweepstake represents a single drawable sweepstake
type Sweepstake struct {
	// ID is the unique identifier for the sweepstake
	ID string

	// Title is the display name of the sweepstake
	Title string

	// Status is the current state of the sweepstake
	Status SweepstakeStatus

	// MaxParticipants is the participant cap; reaching it triggers an immediate draw
	MaxParticipants int

	// EntryFee is the amount debited from a user when they join
	EntryFee decimal.Decimal

	// HouseFeeRate is the fraction of the pot kept by the house (e.g. 0.05)
	HouseFeeRate decimal.Decimal

	// StartTime is when the sweepstake opens for its draw window
	StartTime time.Time

	// EndTime is when the sweepstake expires and is drawn or cancelled
	EndTime time.Time

	// Participants contains the entries collected so far
	Participants []*Participant

	// WinnerParticipantID is set exactly once, atomically with Seed, Hash,
	// Proof and Status=FINISHED
	WinnerParticipantID string

	// Algorithm names the commitment scheme used by the draw
	Algorithm string

	// Seed is the deterministic seed string the draw hashed
	Seed string

	// Hash is the hex-encoded SHA-256 commitment of the seed
	Hash string

	// Proof is the self-contained verification document for the draw
	Proof *draw.Proof

	// CreatedAt is when the sweepstake was created
	CreatedAt time.Time

	// UpdatedAt is when the sweepstake was last updated
	UpdatedAt time.Time
}

// PrizePool returns the amount paid to the winner: entries times entry fee,
// less the house fee.
func (s *Sweepstake) PrizePool() decimal.Decimal {
	pot := s.EntryFee.Mul(decimal.NewFromInt(int64(len(s.Participants))))
	return pot.Sub(s.HouseFee())
}

// HouseFee returns the portion of the pot kept by the house.
func (s *Sweepstake) HouseFee() decimal.Decimal {
	pot := s.EntryFee.Mul(decimal.NewFromInt(int64(len(s.Participants))))
	return pot.Mul(s.HouseFeeRate)
}

// HasWinner reports whether the draw has already been executed and settled.
func (s *Sweepstake) HasWinner() bool {
	return s.WinnerParticipantID != ""
}

// FindParticipant returns the participant with the given ID, or nil.
func (s *Sweepstake) FindParticipant(participantID string) *Participant {
	for _, p := range s.Participants {
		if p.ID == participantID {
			return p
		}
	}
	return nil
}

// FindParticipantByUser returns the participant owned by the given user, or nil.
func (s *Sweepstake) FindParticipantByUser(userID string) *Participant {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}
