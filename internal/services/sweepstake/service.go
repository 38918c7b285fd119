package sweepstake

import (
	"context"
	"log"

	"github.com/shopspring/decimal"

	"github.com/fairdraw/sweepstakes/internal/common/clock"
	"github.com/fairdraw/sweepstakes/internal/common/uuid"
	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/fairdraw/sweepstakes/internal/repositories/store"
	"github.com/fairdraw/sweepstakes/internal/services/notifier"
)

// service implements the Service interface
type service struct {
	defaultHouseFeeRate decimal.Decimal
	store               store.Repository
	notifier            notifier.Service
	clock               clock.Clock
	uuider              uuid.UUID
}

// New creates a new sweepstake service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		defaultHouseFeeRate: cfg.DefaultHouseFeeRate,
		store:               cfg.Store,
		notifier:            cfg.Notifier,
		clock:               cfg.Clock,
		uuider:              cfg.UUIDGenerator,
	}, nil
}

// CreateSweepstake creates a new sweepstake in the SCHEDULED state
func (s *service) CreateSweepstake(ctx context.Context, input *CreateSweepstakeInput) (*CreateSweepstakeOutput, error) {
	if input == nil || input.Title == "" {
		return nil, ErrInvalidTitle
	}
	if input.EntryFee.IsNegative() {
		return nil, ErrInvalidEntryFee
	}
	if input.MaxParticipants < 0 {
		return nil, ErrInvalidCapacity
	}
	if !input.EndTime.After(input.StartTime) {
		return nil, ErrInvalidTimeWindow
	}

	houseFeeRate := input.HouseFeeRate
	if houseFeeRate.IsZero() {
		houseFeeRate = s.defaultHouseFeeRate
	}

	now := s.clock.Now()
	sweepstake := &models.Sweepstake{
		ID:              s.uuider.NewUUID(),
		Title:           input.Title,
		Status:          models.SweepstakeStatusScheduled,
		MaxParticipants: input.MaxParticipants,
		EntryFee:        input.EntryFee,
		HouseFeeRate:    houseFeeRate,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Participants:    []*models.Participant{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.store.SaveSweepstake(ctx, &store.SaveSweepstakeInput{Sweepstake: sweepstake}); err != nil {
		return nil, err
	}

	return &CreateSweepstakeOutput{Sweepstake: sweepstake}, nil
}

// GetSweepstake retrieves a sweepstake by ID
func (s *service) GetSweepstake(ctx context.Context, input *GetSweepstakeInput) (*GetSweepstakeOutput, error) {
	sweepstake, err := s.store.GetSweepstake(ctx, &store.GetSweepstakeInput{SweepstakeID: input.SweepstakeID})
	if err != nil {
		return nil, err
	}

	return &GetSweepstakeOutput{Sweepstake: sweepstake}, nil
}

// ListSweepstakes retrieves sweepstakes, optionally filtered by status
func (s *service) ListSweepstakes(ctx context.Context, input *ListSweepstakesInput) (*ListSweepstakesOutput, error) {
	statuses := []models.SweepstakeStatus{
		models.SweepstakeStatusScheduled,
		models.SweepstakeStatusActive,
		models.SweepstakeStatusDrawing,
		models.SweepstakeStatusFinished,
		models.SweepstakeStatusCancelled,
	}
	if input != nil && input.Status != "" {
		statuses = []models.SweepstakeStatus{input.Status}
	}

	sweepstakes := make([]*models.Sweepstake, 0)
	for _, status := range statuses {
		out, err := s.store.GetSweepstakesByStatus(ctx, &store.GetSweepstakesByStatusInput{Status: status})
		if err != nil {
			return nil, err
		}
		sweepstakes = append(sweepstakes, out.Sweepstakes...)
	}

	return &ListSweepstakesOutput{Sweepstakes: sweepstakes}, nil
}

// JoinSweepstake adds a user's entry to a sweepstake
func (s *service) JoinSweepstake(ctx context.Context, input *JoinSweepstakeInput) (*JoinSweepstakeOutput, error) {
	now := s.clock.Now()
	participant := &models.Participant{
		ID:       s.uuider.NewUUID(),
		UserID:   input.UserID,
		JoinedAt: now,
	}

	out, err := s.store.JoinSweepstake(ctx, &store.JoinSweepstakeInput{
		SweepstakeID: input.SweepstakeID,
		Participant:  participant,
		Now:          now,
	})
	if err != nil {
		return nil, err
	}

	// Filling the last slot is a status transition worth announcing; the
	// scheduler will pick the sweepstake up on its next tick
	if out.CapReached {
		s.notifier.SweepstakeStateChanged(ctx, &notifier.SweepstakeStateChangedInput{
			SweepstakeID: out.Sweepstake.ID,
			Status:       out.Sweepstake.Status,
		})
	}

	return &JoinSweepstakeOutput{
		Sweepstake:    out.Sweepstake,
		ParticipantID: participant.ID,
		CapReached:    out.CapReached,
	}, nil
}

// LeaveSweepstake withdraws a user's entry and refunds the fee
func (s *service) LeaveSweepstake(ctx context.Context, input *LeaveSweepstakeInput) (*LeaveSweepstakeOutput, error) {
	out, err := s.store.LeaveSweepstake(ctx, &store.LeaveSweepstakeInput{
		SweepstakeID: input.SweepstakeID,
		UserID:       input.UserID,
		Now:          s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	return &LeaveSweepstakeOutput{Sweepstake: out.Sweepstake}, nil
}

// ActivateSweepstake transitions SCHEDULED to ACTIVE
func (s *service) ActivateSweepstake(ctx context.Context, input *ActivateSweepstakeInput) (*ActivateSweepstakeOutput, error) {
	sweepstake, err := s.store.UpdateSweepstakeStatus(ctx, &store.UpdateSweepstakeStatusInput{
		SweepstakeID: input.SweepstakeID,
		From:         models.SweepstakeStatusScheduled,
		To:           models.SweepstakeStatusActive,
		Now:          s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.notifier.SweepstakeStateChanged(ctx, &notifier.SweepstakeStateChangedInput{
		SweepstakeID: sweepstake.ID,
		Status:       sweepstake.Status,
	})

	return &ActivateSweepstakeOutput{Sweepstake: sweepstake}, nil
}

// MarkForDraw flags a sweepstake for immediate draw execution
func (s *service) MarkForDraw(ctx context.Context, input *MarkForDrawInput) (*MarkForDrawOutput, error) {
	sweepstake, err := s.store.UpdateSweepstakeStatus(ctx, &store.UpdateSweepstakeStatusInput{
		SweepstakeID:    input.SweepstakeID,
		From:            input.From,
		To:              models.SweepstakeStatusDrawing,
		CollapseEndTime: true,
		Now:             s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.notifier.SweepstakeStateChanged(ctx, &notifier.SweepstakeStateChangedInput{
		SweepstakeID: sweepstake.ID,
		Status:       sweepstake.Status,
	})

	return &MarkForDrawOutput{Sweepstake: sweepstake}, nil
}

// DrawAndSettle executes the draw and settles it atomically
func (s *service) DrawAndSettle(ctx context.Context, input *DrawAndSettleInput) (*DrawAndSettleOutput, error) {
	sweepstake, err := s.store.GetSweepstake(ctx, &store.GetSweepstakeInput{SweepstakeID: input.SweepstakeID})
	if err != nil {
		return nil, err
	}

	// At-most-once guard. Expected under races between the cap-reached path
	// and the expiry path, hence a warning rather than an error. The store
	// re-checks this inside the settlement transaction; this early exit just
	// avoids pointless work.
	if sweepstake.HasWinner() {
		log.Printf("WARN: sweepstake %s already drawn, skipping", sweepstake.ID)
		return nil, store.ErrAlreadyDrawn
	}

	if len(sweepstake.Participants) == 0 {
		return nil, draw.ErrEmptyParticipantSet
	}

	entries := make([]draw.Entry, 0, len(sweepstake.Participants))
	for _, p := range sweepstake.Participants {
		entries = append(entries, draw.Entry{
			ParticipantID: p.ID,
			UserID:        p.UserID,
			JoinedAt:      p.JoinedAt,
		})
	}

	// Pure computation, no I/O; runs between transaction boundaries on data
	// already read
	result, err := draw.Execute(sweepstake.ID, entries, s.clock.Now())
	if err != nil {
		return nil, err
	}

	settled, err := s.store.SettleDraw(ctx, &store.SettleDrawInput{
		SweepstakeID: sweepstake.ID,
		Result:       result,
		Now:          s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	// Best effort; a lost notification never unwinds the settlement
	s.notifier.SweepstakeFinished(ctx, &notifier.SweepstakeFinishedInput{
		SweepstakeID:        settled.Sweepstake.ID,
		WinnerParticipantID: result.WinnerParticipantID,
		WinnerUserID:        settled.WinnerUserID,
		PrizeAmount:         settled.PrizeAmount,
	})

	return &DrawAndSettleOutput{
		Sweepstake:   settled.Sweepstake,
		Result:       result,
		WinnerUserID: settled.WinnerUserID,
		PrizeAmount:  settled.PrizeAmount,
		FeeAmount:    settled.FeeAmount,
	}, nil
}

// CancelSweepstake cancels a sweepstake and refunds every participant
func (s *service) CancelSweepstake(ctx context.Context, input *CancelSweepstakeInput) (*CancelSweepstakeOutput, error) {
	out, err := s.store.CancelSweepstake(ctx, &store.CancelSweepstakeInput{
		SweepstakeID: input.SweepstakeID,
		Reason:       input.Reason,
		Now:          s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	s.notifier.SweepstakeStateChanged(ctx, &notifier.SweepstakeStateChangedInput{
		SweepstakeID: out.Sweepstake.ID,
		Status:       out.Sweepstake.Status,
	})

	return &CancelSweepstakeOutput{
		Sweepstake:    out.Sweepstake,
		RefundedCount: out.RefundedCount,
	}, nil
}

// GetAuditReport re-verifies a finished draw and formats the audit report
func (s *service) GetAuditReport(ctx context.Context, input *GetAuditReportInput) (*GetAuditReportOutput, error) {
	sweepstake, err := s.store.GetSweepstake(ctx, &store.GetSweepstakeInput{SweepstakeID: input.SweepstakeID})
	if err != nil {
		return nil, err
	}

	if sweepstake.Status != models.SweepstakeStatusFinished || sweepstake.Proof == nil {
		return nil, ErrNotFinished
	}

	// Rebuild the draw result from the persisted record. The participant
	// snapshot is retained on the finished sweepstake; the time bucket comes
	// from the proof, never from the current clock.
	entries := make([]draw.Entry, 0, len(sweepstake.Participants))
	for _, p := range sweepstake.Participants {
		entries = append(entries, draw.Entry{
			ParticipantID: p.ID,
			UserID:        p.UserID,
			JoinedAt:      p.JoinedAt,
		})
	}

	result := &draw.Result{
		SweepstakeID:        sweepstake.ID,
		WinnerParticipantID: sweepstake.WinnerParticipantID,
		WinnerIndex:         sweepstake.Proof.WinnerIndex,
		Algorithm:           sweepstake.Algorithm,
		Seed:                sweepstake.Seed,
		Hash:                sweepstake.Hash,
		TimeBucket:          sweepstake.Proof.TimeBucket,
		Participants:        entries,
		Proof:               sweepstake.Proof,
		GeneratedAt:         sweepstake.Proof.GeneratedAt,
	}

	return &GetAuditReportOutput{
		Report: draw.NewReport(result, sweepstake.ID, s.clock.Now()),
	}, nil
}

// CreateUser creates a user account with an opening balance
func (s *service) CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error) {
	if input == nil || input.Name == "" {
		return nil, ErrInvalidUserName
	}
	if input.OpeningBalance.IsNegative() {
		return nil, ErrInvalidBalance
	}

	now := s.clock.Now()
	user := &models.User{
		ID:        s.uuider.NewUUID(),
		Name:      input.Name,
		Balance:   input.OpeningBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.SaveUser(ctx, &store.SaveUserInput{User: user}); err != nil {
		return nil, err
	}

	return &CreateUserOutput{User: user}, nil
}

// GetUser retrieves a user and their transaction history
func (s *service) GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error) {
	user, err := s.store.GetUser(ctx, &store.GetUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	transactions, err := s.store.GetTransactionsByUser(ctx, &store.GetTransactionsByUserInput{UserID: input.UserID})
	if err != nil {
		return nil, err
	}

	return &GetUserOutput{
		User:         user,
		Transactions: transactions,
	}, nil
}
