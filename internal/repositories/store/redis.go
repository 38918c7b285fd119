package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	sweepstakeKeyPrefix  = "sweepstake:"
	userKeyPrefix        = "user:"
	transactionKeyPrefix = "txn:"
	auditLogKeyPrefix    = "audit:"

	// Index keys
	statusIndexPrefix          = "sweepstakes:status:" // + status -> set of sweepstake IDs
	userTxnIndexPrefix         = "user_txns:"          // + user ID -> zset of transaction IDs
	sweepstakeTxnIndexPrefix   = "sweepstake_txns:"    // + sweepstake ID -> zset of transaction IDs
	sweepstakeAuditIndexPrefix = "sweepstake_audit:"   // + sweepstake ID -> zset of audit log IDs
)

// maxTxRetries bounds how often an optimistic transaction is retried after a
// WATCH conflict before the conflict is surfaced to the caller.
const maxTxRetries = 5

// Define errors
var (
	// ErrSweepstakeNotFound is returned when a sweepstake is not found
	ErrSweepstakeNotFound = errors.New("sweepstake not found")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyDrawn is returned when a settlement is attempted on a
	// sweepstake that already has a winner
	ErrAlreadyDrawn = errors.New("sweepstake has already been drawn")

	// ErrInsufficientBalance is returned when a user cannot afford the entry fee
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrSweepstakeFull is returned when the participant cap has been reached
	ErrSweepstakeFull = errors.New("sweepstake is at maximum capacity")

	// ErrAlreadyJoined is returned when a user already holds an entry
	ErrAlreadyJoined = errors.New("user already joined this sweepstake")

	// ErrParticipantNotFound is returned when a referenced entry does not exist
	ErrParticipantNotFound = errors.New("participant not found")

	// ErrInvalidState is returned when an operation is not valid for the
	// sweepstake's current status
	ErrInvalidState = errors.New("invalid sweepstake state")

	// ErrTxConflict is returned when an optimistic transaction kept losing
	// WATCH races beyond the retry budget
	ErrTxConflict = errors.New("storage transaction conflict")
)

// allStatuses is used to maintain the per-status index sets on every save.
var allStatuses = []models.SweepstakeStatus{
	models.SweepstakeStatusScheduled,
	models.SweepstakeStatusActive,
	models.SweepstakeStatusDrawing,
	models.SweepstakeStatusFinished,
	models.SweepstakeStatusCancelled,
}

// Config holds configuration for the Redis store repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed store repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func sweepstakeKey(id string) string {
	return fmt.Sprintf("%s%s", sweepstakeKeyPrefix, id)
}

func userKey(id string) string {
	return fmt.Sprintf("%s%s", userKeyPrefix, id)
}

func transactionKey(id string) string {
	return fmt.Sprintf("%s%s", transactionKeyPrefix, id)
}

func auditLogKey(id string) string {
	return fmt.Sprintf("%s%s", auditLogKeyPrefix, id)
}

func statusIndexKey(status models.SweepstakeStatus) string {
	return fmt.Sprintf("%s%s", statusIndexPrefix, status)
}

// getSweepstake reads a sweepstake through either the plain client or an open
// transaction.
func getSweepstake(ctx context.Context, c redis.Cmdable, sweepstakeID string) (*models.Sweepstake, error) {
	data, err := c.Get(ctx, sweepstakeKey(sweepstakeID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrSweepstakeNotFound
		}
		return nil, fmt.Errorf("failed to get sweepstake: %w", err)
	}

	var sweepstake models.Sweepstake
	if err := json.Unmarshal([]byte(data), &sweepstake); err != nil {
		return nil, fmt.Errorf("failed to unmarshal sweepstake: %w", err)
	}

	return &sweepstake, nil
}

// getUser reads a user through either the plain client or an open transaction.
func getUser(ctx context.Context, c redis.Cmdable, userID string) (*models.User, error) {
	data, err := c.Get(ctx, userKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal([]byte(data), &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}

	return &user, nil
}

// writeSweepstake queues the sweepstake JSON write and the status index
// maintenance onto a pipeline.
func writeSweepstake(ctx context.Context, pipe redis.Pipeliner, sweepstake *models.Sweepstake) error {
	data, err := json.Marshal(sweepstake)
	if err != nil {
		return fmt.Errorf("failed to marshal sweepstake: %w", err)
	}

	pipe.Set(ctx, sweepstakeKey(sweepstake.ID), data, 0)

	for _, status := range allStatuses {
		if status == sweepstake.Status {
			pipe.SAdd(ctx, statusIndexKey(status), sweepstake.ID)
		} else {
			pipe.SRem(ctx, statusIndexKey(status), sweepstake.ID)
		}
	}

	return nil
}

// writeUser queues the user JSON write onto a pipeline.
func writeUser(ctx context.Context, pipe redis.Pipeliner, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}

	pipe.Set(ctx, userKey(user.ID), data, 0)
	return nil
}

// writeTransaction queues a transaction record and its index entries onto a
// pipeline.
func writeTransaction(ctx context.Context, pipe redis.Pipeliner, txn *models.Transaction) error {
	data, err := json.Marshal(txn)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}

	pipe.Set(ctx, transactionKey(txn.ID), data, 0)

	member := redis.Z{
		Score:  float64(txn.Timestamp.UnixNano()),
		Member: txn.ID,
	}
	if txn.UserID != "" {
		pipe.ZAdd(ctx, fmt.Sprintf("%s%s", userTxnIndexPrefix, txn.UserID), member)
	}
	if txn.SweepstakeID != "" {
		pipe.ZAdd(ctx, fmt.Sprintf("%s%s", sweepstakeTxnIndexPrefix, txn.SweepstakeID), member)
	}

	return nil
}

// writeAuditLog queues an audit record and its index entry onto a pipeline.
func writeAuditLog(ctx context.Context, pipe redis.Pipeliner, record *models.AuditLog) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal audit log: %w", err)
	}

	pipe.Set(ctx, auditLogKey(record.ID), data, 0)
	pipe.ZAdd(ctx, fmt.Sprintf("%s%s", sweepstakeAuditIndexPrefix, record.SweepstakeID), redis.Z{
		Score:  float64(record.Timestamp.UnixNano()),
		Member: record.ID,
	})

	return nil
}

// SaveSweepstake persists a sweepstake to Redis
func (r *redisRepository) SaveSweepstake(ctx context.Context, input *SaveSweepstakeInput) error {
	if input == nil || input.Sweepstake == nil {
		return errors.New("input and sweepstake cannot be nil")
	}

	pipe := r.client.Pipeline()
	if err := writeSweepstake(ctx, pipe, input.Sweepstake); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save sweepstake: %w", err)
	}

	return nil
}

// GetSweepstake retrieves a sweepstake by ID from Redis
func (r *redisRepository) GetSweepstake(ctx context.Context, input *GetSweepstakeInput) (*models.Sweepstake, error) {
	if input == nil || input.SweepstakeID == "" {
		return nil, errors.New("input and sweepstake ID cannot be empty")
	}

	return getSweepstake(ctx, r.client, input.SweepstakeID)
}

// GetSweepstakesByStatus retrieves all sweepstakes in a status from Redis
func (r *redisRepository) GetSweepstakesByStatus(ctx context.Context, input *GetSweepstakesByStatusInput) (*GetSweepstakesByStatusOutput, error) {
	if input == nil || input.Status == "" {
		return nil, errors.New("input and status cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, statusIndexKey(input.Status)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get sweepstake IDs for status %s: %w", input.Status, err)
	}

	if len(ids) == 0 {
		return &GetSweepstakesByStatusOutput{
			Sweepstakes: []*models.Sweepstake{},
		}, nil
	}

	// Fetch all sweepstakes in one round trip
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))
	for _, id := range ids {
		commands[id] = pipe.Get(ctx, sweepstakeKey(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get sweepstakes: %w", err)
	}

	sweepstakes := make([]*models.Sweepstake, 0, len(ids))
	for id, cmd := range commands {
		data, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Deleted between reading the index and fetching the record
				continue
			}
			return nil, fmt.Errorf("failed to get sweepstake %s: %w", id, err)
		}

		var sweepstake models.Sweepstake
		if err := json.Unmarshal([]byte(data), &sweepstake); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sweepstake %s: %w", id, err)
		}

		sweepstakes = append(sweepstakes, &sweepstake)
	}

	return &GetSweepstakesByStatusOutput{
		Sweepstakes: sweepstakes,
	}, nil
}

// SaveUser persists a user to Redis
func (r *redisRepository) SaveUser(ctx context.Context, input *SaveUserInput) error {
	if input == nil || input.User == nil {
		return errors.New("input and user cannot be nil")
	}

	pipe := r.client.Pipeline()
	if err := writeUser(ctx, pipe, input.User); err != nil {
		return err
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	return nil
}

// GetUser retrieves a user by ID from Redis
func (r *redisRepository) GetUser(ctx context.Context, input *GetUserInput) (*models.User, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	return getUser(ctx, r.client, input.UserID)
}

// withTxRetry runs an optimistic transaction over a fixed key set, retrying
// WATCH conflicts. Business errors returned by fn are not retried.
func (r *redisRepository) withTxRetry(ctx context.Context, keys []string, fn func(tx *redis.Tx) error) error {
	for attempt := 0; attempt < maxTxRetries; attempt++ {
		err := r.client.Watch(ctx, fn, keys...)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		return err
	}
	return ErrTxConflict
}

// JoinSweepstake atomically adds an entry to a sweepstake
func (r *redisRepository) JoinSweepstake(ctx context.Context, input *JoinSweepstakeInput) (*JoinSweepstakeOutput, error) {
	if input == nil || input.Participant == nil {
		return nil, errors.New("input and participant cannot be nil")
	}
	if input.SweepstakeID == "" || input.Participant.UserID == "" {
		return nil, errors.New("sweepstake ID and user ID cannot be empty")
	}

	var output *JoinSweepstakeOutput

	keys := []string{sweepstakeKey(input.SweepstakeID), userKey(input.Participant.UserID)}
	err := r.withTxRetry(ctx, keys, func(tx *redis.Tx) error {
		sweepstake, err := getSweepstake(ctx, tx, input.SweepstakeID)
		if err != nil {
			return err
		}

		if !sweepstake.Status.IsJoinable() {
			return ErrInvalidState
		}

		if sweepstake.MaxParticipants > 0 && len(sweepstake.Participants) >= sweepstake.MaxParticipants {
			return ErrSweepstakeFull
		}

		if sweepstake.FindParticipantByUser(input.Participant.UserID) != nil {
			return ErrAlreadyJoined
		}

		user, err := getUser(ctx, tx, input.Participant.UserID)
		if err != nil {
			return err
		}

		if user.Balance.LessThan(sweepstake.EntryFee) {
			return ErrInsufficientBalance
		}

		participant := *input.Participant
		participant.SweepstakeID = sweepstake.ID
		participant.EntryFee = sweepstake.EntryFee

		user.Balance = user.Balance.Sub(sweepstake.EntryFee)
		user.UpdatedAt = input.Now

		sweepstake.Participants = append(sweepstake.Participants, &participant)
		sweepstake.UpdatedAt = input.Now

		// Filling the last slot flags the sweepstake for an immediate draw;
		// the end time collapses to now.
		capReached := sweepstake.MaxParticipants > 0 && len(sweepstake.Participants) >= sweepstake.MaxParticipants
		if capReached {
			sweepstake.Status = models.SweepstakeStatusDrawing
			sweepstake.EndTime = input.Now
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := writeSweepstake(ctx, pipe, sweepstake); err != nil {
				return err
			}
			if err := writeUser(ctx, pipe, user); err != nil {
				return err
			}
			if err := writeTransaction(ctx, pipe, &models.Transaction{
				ID:           uuid.New().String(),
				UserID:       user.ID,
				SweepstakeID: sweepstake.ID,
				Type:         models.TransactionTypeEntryFee,
				Amount:       sweepstake.EntryFee,
				Timestamp:    input.Now,
			}); err != nil {
				return err
			}
			return writeAuditLog(ctx, pipe, &models.AuditLog{
				ID:           uuid.New().String(),
				SweepstakeID: sweepstake.ID,
				Event:        "participant_joined",
				Detail:       fmt.Sprintf("user %s joined as participant %s", user.ID, participant.ID),
				Timestamp:    input.Now,
			})
		})
		if err != nil {
			return err
		}

		output = &JoinSweepstakeOutput{
			Sweepstake: sweepstake,
			CapReached: capReached,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// LeaveSweepstake atomically removes an entry and refunds the fee
func (r *redisRepository) LeaveSweepstake(ctx context.Context, input *LeaveSweepstakeInput) (*LeaveSweepstakeOutput, error) {
	if input == nil || input.SweepstakeID == "" || input.UserID == "" {
		return nil, errors.New("input, sweepstake ID and user ID cannot be empty")
	}

	var output *LeaveSweepstakeOutput

	keys := []string{sweepstakeKey(input.SweepstakeID), userKey(input.UserID)}
	err := r.withTxRetry(ctx, keys, func(tx *redis.Tx) error {
		sweepstake, err := getSweepstake(ctx, tx, input.SweepstakeID)
		if err != nil {
			return err
		}

		// Withdrawal is only possible before the draw is flagged
		if !sweepstake.Status.IsJoinable() {
			return ErrInvalidState
		}

		participant := sweepstake.FindParticipantByUser(input.UserID)
		if participant == nil {
			return ErrParticipantNotFound
		}

		user, err := getUser(ctx, tx, input.UserID)
		if err != nil {
			return err
		}

		remaining := make([]*models.Participant, 0, len(sweepstake.Participants)-1)
		for _, p := range sweepstake.Participants {
			if p.ID != participant.ID {
				remaining = append(remaining, p)
			}
		}
		sweepstake.Participants = remaining
		sweepstake.UpdatedAt = input.Now

		user.Balance = user.Balance.Add(participant.EntryFee)
		user.UpdatedAt = input.Now

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := writeSweepstake(ctx, pipe, sweepstake); err != nil {
				return err
			}
			if err := writeUser(ctx, pipe, user); err != nil {
				return err
			}
			if err := writeTransaction(ctx, pipe, &models.Transaction{
				ID:           uuid.New().String(),
				UserID:       user.ID,
				SweepstakeID: sweepstake.ID,
				Type:         models.TransactionTypeEntryRefund,
				Amount:       participant.EntryFee,
				Timestamp:    input.Now,
			}); err != nil {
				return err
			}
			return writeAuditLog(ctx, pipe, &models.AuditLog{
				ID:           uuid.New().String(),
				SweepstakeID: sweepstake.ID,
				Event:        "participant_left",
				Detail:       fmt.Sprintf("user %s withdrew participant %s", user.ID, participant.ID),
				Timestamp:    input.Now,
			})
		})
		if err != nil {
			return err
		}

		output = &LeaveSweepstakeOutput{
			Sweepstake: sweepstake,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return output, nil
}

// UpdateSweepstakeStatus performs a guarded status transition
func (r *redisRepository) UpdateSweepstakeStatus(ctx context.Context, input *UpdateSweepstakeStatusInput) (*models.Sweepstake, error) {
	if input == nil || input.SweepstakeID == "" {
		return nil, errors.New("input and sweepstake ID cannot be empty")
	}

	var updated *models.Sweepstake

	keys := []string{sweepstakeKey(input.SweepstakeID)}
	err := r.withTxRetry(ctx, keys, func(tx *redis.Tx) error {
		sweepstake, err := getSweepstake(ctx, tx, input.SweepstakeID)
		if err != nil {
			return err
		}

		if sweepstake.Status != input.From {
			return ErrInvalidState
		}

		sweepstake.Status = input.To
		if input.CollapseEndTime && input.Now.Before(sweepstake.EndTime) {
			sweepstake.EndTime = input.Now
		}
		sweepstake.UpdatedAt = input.Now

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if err := writeSweepstake(ctx, pipe, sweepstake); err != nil {
				return err
			}
			return writeAuditLog(ctx, pipe, &models.AuditLog{
				ID:           uuid.New().String(),
				SweepstakeID: sweepstake.ID,
				Event:        "status_changed",
				Detail:       fmt.Sprintf("status changed from %s to %s", input.From, input.To),
				Timestamp:    input.Now,
			})
		})
		if err != nil {
			return err
		}

		updated = sweepstake
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// SettleDraw atomically writes the winner fields and settles the prize
func (r *redisRepository) SettleDraw(ctx context.Context, input *SettleDrawInput) (*SettleDrawOutput, error) {
	if input == nil || input.Result == nil {
		return nil, errors.New("input and result cannot be nil")
	}
	if input.SweepstakeID == "" {
		return nil, errors.New("sweepstake ID cannot be empty")
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		// Resolve the winner's user key before opening the transaction; the
		// participant set cannot change once the sweepstake left the joinable
		// states, and the WATCH below re-checks everything regardless.
		current, err := getSweepstake(ctx, r.client, input.SweepstakeID)
		if err != nil {
			return nil, err
		}

		if current.HasWinner() {
			return nil, ErrAlreadyDrawn
		}

		winner := current.FindParticipant(input.Result.WinnerParticipantID)
		if winner == nil {
			return nil, ErrParticipantNotFound
		}

		var output *SettleDrawOutput

		keys := []string{sweepstakeKey(input.SweepstakeID), userKey(winner.UserID)}
		err = r.client.Watch(ctx, func(tx *redis.Tx) error {
			sweepstake, err := getSweepstake(ctx, tx, input.SweepstakeID)
			if err != nil {
				return err
			}

			// The at-most-once guard: re-checked inside the same transaction
			// that writes the winner fields, so a concurrent settlement either
			// aborts here or invalidates this WATCH.
			if sweepstake.HasWinner() || sweepstake.Status == models.SweepstakeStatusFinished {
				return ErrAlreadyDrawn
			}
			if sweepstake.Status == models.SweepstakeStatusCancelled {
				return ErrInvalidState
			}

			participant := sweepstake.FindParticipant(input.Result.WinnerParticipantID)
			if participant == nil {
				return ErrParticipantNotFound
			}

			user, err := getUser(ctx, tx, participant.UserID)
			if err != nil {
				return err
			}

			prize := sweepstake.PrizePool()
			fee := sweepstake.HouseFee()

			sweepstake.WinnerParticipantID = input.Result.WinnerParticipantID
			sweepstake.Algorithm = input.Result.Algorithm
			sweepstake.Seed = input.Result.Seed
			sweepstake.Hash = input.Result.Hash
			sweepstake.Proof = input.Result.Proof
			sweepstake.Status = models.SweepstakeStatusFinished
			sweepstake.UpdatedAt = input.Now

			user.Balance = user.Balance.Add(prize)
			user.UpdatedAt = input.Now

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if err := writeSweepstake(ctx, pipe, sweepstake); err != nil {
					return err
				}
				if err := writeUser(ctx, pipe, user); err != nil {
					return err
				}
				if err := writeTransaction(ctx, pipe, &models.Transaction{
					ID:           uuid.New().String(),
					UserID:       user.ID,
					SweepstakeID: sweepstake.ID,
					Type:         models.TransactionTypePrizePayout,
					Amount:       prize,
					Timestamp:    input.Now,
				}); err != nil {
					return err
				}
				if err := writeTransaction(ctx, pipe, &models.Transaction{
					ID:           uuid.New().String(),
					SweepstakeID: sweepstake.ID,
					Type:         models.TransactionTypeHouseFee,
					Amount:       fee,
					Timestamp:    input.Now,
				}); err != nil {
					return err
				}
				return writeAuditLog(ctx, pipe, &models.AuditLog{
					ID:           uuid.New().String(),
					SweepstakeID: sweepstake.ID,
					Event:        "draw_settled",
					Detail:       fmt.Sprintf("participant %s won %s (house fee %s, algorithm %s)", participant.ID, prize.String(), fee.String(), input.Result.Algorithm),
					Timestamp:    input.Now,
				})
			})
			if err != nil {
				return err
			}

			output = &SettleDrawOutput{
				Sweepstake:   sweepstake,
				PrizeAmount:  prize,
				FeeAmount:    fee,
				WinnerUserID: participant.UserID,
			}
			return nil
		}, keys...)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return output, nil
	}

	return nil, ErrTxConflict
}

// CancelSweepstake atomically refunds every entry and cancels the sweepstake
func (r *redisRepository) CancelSweepstake(ctx context.Context, input *CancelSweepstakeInput) (*CancelSweepstakeOutput, error) {
	if input == nil || input.SweepstakeID == "" {
		return nil, errors.New("input and sweepstake ID cannot be empty")
	}

	for attempt := 0; attempt < maxTxRetries; attempt++ {
		// The refunded user keys must be watched, so resolve them from a
		// pre-read; a participant change in between invalidates the WATCH on
		// the sweepstake key and we come around again.
		current, err := getSweepstake(ctx, r.client, input.SweepstakeID)
		if err != nil {
			return nil, err
		}

		if current.Status.IsTerminal() {
			return nil, ErrInvalidState
		}

		keys := []string{sweepstakeKey(input.SweepstakeID)}
		for _, p := range current.Participants {
			keys = append(keys, userKey(p.UserID))
		}

		var output *CancelSweepstakeOutput

		err = r.client.Watch(ctx, func(tx *redis.Tx) error {
			sweepstake, err := getSweepstake(ctx, tx, input.SweepstakeID)
			if err != nil {
				return err
			}

			if sweepstake.Status.IsTerminal() {
				return ErrInvalidState
			}
			if sweepstake.HasWinner() {
				return ErrAlreadyDrawn
			}
			if len(sweepstake.Participants) != len(current.Participants) {
				// Participant set moved under us; the WATCH would fail at
				// EXEC anyway, bail out to re-resolve the user keys
				return redis.TxFailedErr
			}

			users := make([]*models.User, 0, len(sweepstake.Participants))
			for _, p := range sweepstake.Participants {
				user, err := getUser(ctx, tx, p.UserID)
				if err != nil {
					return err
				}
				user.Balance = user.Balance.Add(p.EntryFee)
				user.UpdatedAt = input.Now
				users = append(users, user)
			}

			sweepstake.Status = models.SweepstakeStatusCancelled
			sweepstake.UpdatedAt = input.Now

			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				if err := writeSweepstake(ctx, pipe, sweepstake); err != nil {
					return err
				}
				for i, user := range users {
					if err := writeUser(ctx, pipe, user); err != nil {
						return err
					}
					if err := writeTransaction(ctx, pipe, &models.Transaction{
						ID:           uuid.New().String(),
						UserID:       user.ID,
						SweepstakeID: sweepstake.ID,
						Type:         models.TransactionTypeEntryRefund,
						Amount:       sweepstake.Participants[i].EntryFee,
						Timestamp:    input.Now,
					}); err != nil {
						return err
					}
				}
				return writeAuditLog(ctx, pipe, &models.AuditLog{
					ID:           uuid.New().String(),
					SweepstakeID: sweepstake.ID,
					Event:        "sweepstake_cancelled",
					Detail:       input.Reason,
					Timestamp:    input.Now,
				})
			})
			if err != nil {
				return err
			}

			output = &CancelSweepstakeOutput{
				Sweepstake:    sweepstake,
				RefundedCount: len(users),
			}
			return nil
		}, keys...)

		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return output, nil
	}

	return nil, ErrTxConflict
}

// getRecordsByIndex fetches the records listed in a zset index, oldest first.
func (r *redisRepository) getRecordsByIndex(ctx context.Context, indexKey string, keyFn func(string) string) ([]string, error) {
	ids, err := r.client.ZRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read index %s: %w", indexKey, err)
	}

	if len(ids) == 0 {
		return []string{}, nil
	}

	pipe := r.client.Pipeline()
	commands := make([]*redis.StringCmd, len(ids))
	for i, id := range ids {
		commands[i] = pipe.Get(ctx, keyFn(id))
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to fetch records: %w", err)
	}

	records := make([]string, 0, len(ids))
	for _, cmd := range commands {
		data, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				continue
			}
			return nil, fmt.Errorf("failed to fetch record: %w", err)
		}
		records = append(records, data)
	}

	return records, nil
}

// GetTransactionsByUser retrieves a user's transactions from Redis
func (r *redisRepository) GetTransactionsByUser(ctx context.Context, input *GetTransactionsByUserInput) ([]*models.Transaction, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	return r.getTransactions(ctx, fmt.Sprintf("%s%s", userTxnIndexPrefix, input.UserID))
}

// GetTransactionsBySweepstake retrieves a sweepstake's transactions from Redis
func (r *redisRepository) GetTransactionsBySweepstake(ctx context.Context, input *GetTransactionsBySweepstakeInput) ([]*models.Transaction, error) {
	if input == nil || input.SweepstakeID == "" {
		return nil, errors.New("input and sweepstake ID cannot be empty")
	}

	return r.getTransactions(ctx, fmt.Sprintf("%s%s", sweepstakeTxnIndexPrefix, input.SweepstakeID))
}

func (r *redisRepository) getTransactions(ctx context.Context, indexKey string) ([]*models.Transaction, error) {
	records, err := r.getRecordsByIndex(ctx, indexKey, transactionKey)
	if err != nil {
		return nil, err
	}

	transactions := make([]*models.Transaction, 0, len(records))
	for _, data := range records {
		var txn models.Transaction
		if err := json.Unmarshal([]byte(data), &txn); err != nil {
			return nil, fmt.Errorf("failed to unmarshal transaction: %w", err)
		}
		transactions = append(transactions, &txn)
	}

	return transactions, nil
}

// GetAuditLogs retrieves a sweepstake's audit records from Redis
func (r *redisRepository) GetAuditLogs(ctx context.Context, input *GetAuditLogsInput) ([]*models.AuditLog, error) {
	if input == nil || input.SweepstakeID == "" {
		return nil, errors.New("input and sweepstake ID cannot be empty")
	}

	records, err := r.getRecordsByIndex(ctx, fmt.Sprintf("%s%s", sweepstakeAuditIndexPrefix, input.SweepstakeID), auditLogKey)
	if err != nil {
		return nil, err
	}

	logs := make([]*models.AuditLog, 0, len(records))
	for _, data := range records {
		var record models.AuditLog
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal audit log: %w", err)
		}
		logs = append(logs, &record)
	}

	return logs, nil
}
