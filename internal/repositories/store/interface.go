package store

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/fairdraw/sweepstakes/internal/repositories/store Repository

import (
	"context"

	"github.com/fairdraw/sweepstakes/internal/models"
)

// Repository is the transactional storage collaborator for sweepstakes, users,
// transactions and audit logs. The multi-record operations (join, leave,
// settle, cancel) are atomic: they either apply every write or none.
type Repository interface {
	// SaveSweepstake persists a sweepstake and maintains its status index
	SaveSweepstake(ctx context.Context, input *SaveSweepstakeInput) error

	// GetSweepstake retrieves a sweepstake by ID
	GetSweepstake(ctx context.Context, input *GetSweepstakeInput) (*models.Sweepstake, error)

	// GetSweepstakesByStatus retrieves all sweepstakes currently in a status
	GetSweepstakesByStatus(ctx context.Context, input *GetSweepstakesByStatusInput) (*GetSweepstakesByStatusOutput, error)

	// SaveUser persists a user
	SaveUser(ctx context.Context, input *SaveUserInput) error

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, input *GetUserInput) (*models.User, error)

	// JoinSweepstake atomically re-checks eligibility, debits the entry fee,
	// appends the participant and records the entry transaction and audit log.
	// Reaching the participant cap flips the sweepstake to DRAWING in the same
	// transaction.
	JoinSweepstake(ctx context.Context, input *JoinSweepstakeInput) (*JoinSweepstakeOutput, error)

	// LeaveSweepstake atomically removes a user's entry and refunds the fee
	LeaveSweepstake(ctx context.Context, input *LeaveSweepstakeInput) (*LeaveSweepstakeOutput, error)

	// UpdateSweepstakeStatus performs a guarded status transition
	UpdateSweepstakeStatus(ctx context.Context, input *UpdateSweepstakeStatusInput) (*models.Sweepstake, error)

	// SettleDraw atomically writes the winner fields, credits the prize,
	// records the payout and house fee transactions and the audit log. Returns
	// ErrAlreadyDrawn without side effects when a winner is already set.
	SettleDraw(ctx context.Context, input *SettleDrawInput) (*SettleDrawOutput, error)

	// CancelSweepstake atomically refunds every participant and marks the
	// sweepstake CANCELLED
	CancelSweepstake(ctx context.Context, input *CancelSweepstakeInput) (*CancelSweepstakeOutput, error)

	// GetTransactionsByUser retrieves a user's transactions, oldest first
	GetTransactionsByUser(ctx context.Context, input *GetTransactionsByUserInput) ([]*models.Transaction, error)

	// GetTransactionsBySweepstake retrieves a sweepstake's transactions, oldest first
	GetTransactionsBySweepstake(ctx context.Context, input *GetTransactionsBySweepstakeInput) ([]*models.Transaction, error)

	// GetAuditLogs retrieves a sweepstake's audit records, oldest first
	GetAuditLogs(ctx context.Context, input *GetAuditLogsInput) ([]*models.AuditLog, error)
}
