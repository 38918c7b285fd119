package http

import (
	"time"

	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/fairdraw/sweepstakes/internal/services/notifier"
	"github.com/fairdraw/sweepstakes/internal/services/sweepstake"
)

// Config holds configuration for the HTTP handler
type Config struct {
	// Service dependencies
	SweepstakeService sweepstake.Service

	// Hub serves websocket subscriptions; optional, the /ws route is only
	// registered when it is set
	Hub *notifier.Hub
}

type createSweepstakeRequest struct {
	Title           string    `json:"title" binding:"required"`
	MaxParticipants int       `json:"max_participants"`
	EntryFee        string    `json:"entry_fee" binding:"required"`
	HouseFeeRate    string    `json:"house_fee_rate"`
	StartTime       time.Time `json:"start_time" binding:"required"`
	EndTime         time.Time `json:"end_time" binding:"required"`
}

type createUserRequest struct {
	Name           string `json:"name" binding:"required"`
	OpeningBalance string `json:"opening_balance"`
}

type joinRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type leaveRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

type cancelRequest struct {
	Reason string `json:"reason"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type participantResponse struct {
	ID       string    `json:"id"`
	UserID   string    `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

type sweepstakeResponse struct {
	ID                  string                `json:"id"`
	Title               string                `json:"title"`
	Status              string                `json:"status"`
	MaxParticipants     int                   `json:"max_participants"`
	EntryFee            string                `json:"entry_fee"`
	HouseFeeRate        string                `json:"house_fee_rate"`
	StartTime           time.Time             `json:"start_time"`
	EndTime             time.Time             `json:"end_time"`
	Participants        []participantResponse `json:"participants"`
	WinnerParticipantID string                `json:"winner_participant_id,omitempty"`
	Algorithm           string                `json:"algorithm,omitempty"`
	Seed                string                `json:"seed,omitempty"`
	Hash                string                `json:"hash,omitempty"`
	Proof               *draw.Proof           `json:"proof,omitempty"`
	CreatedAt           time.Time             `json:"created_at"`
	UpdatedAt           time.Time             `json:"updated_at"`
}

type userResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   string    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type transactionResponse struct {
	ID           string    `json:"id"`
	SweepstakeID string    `json:"sweepstake_id"`
	Type         string    `json:"type"`
	Amount       string    `json:"amount"`
	Timestamp    time.Time `json:"timestamp"`
}

type userDetailResponse struct {
	User         userResponse          `json:"user"`
	Transactions []transactionResponse `json:"transactions"`
}

type joinResponse struct {
	Sweepstake    sweepstakeResponse `json:"sweepstake"`
	ParticipantID string             `json:"participant_id"`
	CapReached    bool               `json:"cap_reached"`
}

func toSweepstakeResponse(s *models.Sweepstake) sweepstakeResponse {
	participants := make([]participantResponse, 0, len(s.Participants))
	for _, p := range s.Participants {
		participants = append(participants, participantResponse{
			ID:       p.ID,
			UserID:   p.UserID,
			JoinedAt: p.JoinedAt,
		})
	}

	return sweepstakeResponse{
		ID:                  s.ID,
		Title:               s.Title,
		Status:              string(s.Status),
		MaxParticipants:     s.MaxParticipants,
		EntryFee:            s.EntryFee.String(),
		HouseFeeRate:        s.HouseFeeRate.String(),
		StartTime:           s.StartTime,
		EndTime:             s.EndTime,
		Participants:        participants,
		WinnerParticipantID: s.WinnerParticipantID,
		Algorithm:           s.Algorithm,
		Seed:                s.Seed,
		Hash:                s.Hash,
		Proof:               s.Proof,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Balance:   u.Balance.String(),
		CreatedAt: u.CreatedAt,
	}
}

func toTransactionResponses(transactions []*models.Transaction) []transactionResponse {
	out := make([]transactionResponse, 0, len(transactions))
	for _, t := range transactions {
		out = append(out, transactionResponse{
			ID:           t.ID,
			SweepstakeID: t.SweepstakeID,
			Type:         string(t.Type),
			Amount:       t.Amount.String(),
			Timestamp:    t.Timestamp,
		})
	}
	return out
}
