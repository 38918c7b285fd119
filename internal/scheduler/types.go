package scheduler

import (
	"time"

	"github.com/fairdraw/sweepstakes/internal/common/clock"
	"github.com/fairdraw/sweepstakes/internal/services/sweepstake"
)

const (
	// defaultSweepInterval is how often the sweep job runs
	defaultSweepInterval = 30 * time.Second

	// defaultRetryBackoff is how long a failed settlement waits before the
	// sweep retries it
	defaultRetryBackoff = 60 * time.Second

	// minParticipantsToActivate is the entry count required before a scheduled
	// sweepstake opens for its active phase
	minParticipantsToActivate = 2
)

// Config holds configuration for the scheduler
type Config struct {
	// SweepInterval overrides the default sweep cadence when positive
	SweepInterval time.Duration

	// RetryBackoff overrides the default settlement retry delay when positive
	RetryBackoff time.Duration

	// Service dependencies
	SweepstakeService sweepstake.Service
	Clock             clock.Clock
}
