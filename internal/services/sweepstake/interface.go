package sweepstake

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fairdraw/sweepstakes/internal/services/sweepstake Service

import (
	"context"
)

// Service defines the sweepstake lifecycle operations
type Service interface {
	// CreateSweepstake creates a new sweepstake in the SCHEDULED state
	CreateSweepstake(ctx context.Context, input *CreateSweepstakeInput) (*CreateSweepstakeOutput, error)

	// GetSweepstake retrieves a sweepstake by ID
	GetSweepstake(ctx context.Context, input *GetSweepstakeInput) (*GetSweepstakeOutput, error)

	// ListSweepstakes retrieves sweepstakes, optionally filtered by status
	ListSweepstakes(ctx context.Context, input *ListSweepstakesInput) (*ListSweepstakesOutput, error)

	// JoinSweepstake adds a user's entry, debiting the entry fee atomically
	JoinSweepstake(ctx context.Context, input *JoinSweepstakeInput) (*JoinSweepstakeOutput, error)

	// LeaveSweepstake withdraws a user's entry and refunds the fee
	LeaveSweepstake(ctx context.Context, input *LeaveSweepstakeInput) (*LeaveSweepstakeOutput, error)

	// ActivateSweepstake transitions SCHEDULED to ACTIVE
	ActivateSweepstake(ctx context.Context, input *ActivateSweepstakeInput) (*ActivateSweepstakeOutput, error)

	// MarkForDraw flags a sweepstake for immediate draw execution
	MarkForDraw(ctx context.Context, input *MarkForDrawInput) (*MarkForDrawOutput, error)

	// DrawAndSettle executes the draw and settles prize, fee and audit records
	// in one atomic storage transaction. At most one call ever succeeds per
	// sweepstake.
	DrawAndSettle(ctx context.Context, input *DrawAndSettleInput) (*DrawAndSettleOutput, error)

	// CancelSweepstake cancels a sweepstake and refunds every participant
	CancelSweepstake(ctx context.Context, input *CancelSweepstakeInput) (*CancelSweepstakeOutput, error)

	// GetAuditReport re-verifies a finished draw and formats the publishable
	// audit report
	GetAuditReport(ctx context.Context, input *GetAuditReportInput) (*GetAuditReportOutput, error)

	// CreateUser creates a user account with an opening balance
	CreateUser(ctx context.Context, input *CreateUserInput) (*CreateUserOutput, error)

	// GetUser retrieves a user and their transaction history
	GetUser(ctx context.Context, input *GetUserInput) (*GetUserOutput, error)
}
