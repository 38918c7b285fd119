package notifier

import (
	"time"

	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/shopspring/decimal"
)

// Event names pushed over the websocket
const (
	EventStateChanged = "sweepstake_state_changed"
	EventFinished     = "sweepstake_finished"
)

type SweepstakeStateChangedInput struct {
	SweepstakeID string
	Status       models.SweepstakeStatus
}

type SweepstakeFinishedInput struct {
	SweepstakeID        string
	WinnerParticipantID string
	WinnerUserID        string
	PrizeAmount         decimal.Decimal
}

// event is the JSON frame broadcast to every connected client
type event struct {
	Type                string    `json:"type"`
	SweepstakeID        string    `json:"sweepstake_id"`
	Status              string    `json:"status,omitempty"`
	WinnerParticipantID string    `json:"winner_participant_id,omitempty"`
	WinnerUserID        string    `json:"winner_user_id,omitempty"`
	PrizeAmount         string    `json:"prize_amount,omitempty"`
	Timestamp           time.Time `json:"timestamp"`
}
