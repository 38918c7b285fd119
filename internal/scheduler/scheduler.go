package scheduler

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"github.com/fairdraw/sweepstakes/internal/common/clock"
	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/fairdraw/sweepstakes/internal/repositories/store"
	"github.com/fairdraw/sweepstakes/internal/services/sweepstake"
)

// SchedulerError is a custom error type for scheduler errors
type SchedulerError string

// Error implements the error interface
func (e SchedulerError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig  SchedulerError = "config cannot be nil"
	ErrNilService SchedulerError = "sweepstake service cannot be nil"
	ErrNilClock   SchedulerError = "clock cannot be nil"
)

// Scheduler drives sweepstake lifecycle transitions off a single polling
// sweep. There are no per-sweepstake timers: the stored state plus the
// current time decide everything, so a restart needs no recovery step.
type Scheduler struct {
	svc           sweepstake.Service
	clock         clock.Clock
	sweepInterval time.Duration
	retryBackoff  time.Duration

	cron gocron.Scheduler

	// nextAttempt delays retries for sweepstakes whose settlement failed.
	// In-memory on purpose: entries reset on restart and the next sweep
	// simply tries again.
	mu          sync.Mutex
	nextAttempt map[string]time.Time
}

// New creates a new scheduler
func New(cfg *Config) (*Scheduler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SweepstakeService == nil {
		return nil, ErrNilService
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	sweepInterval := cfg.SweepInterval
	if sweepInterval <= 0 {
		sweepInterval = defaultSweepInterval
	}
	retryBackoff := cfg.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}

	return &Scheduler{
		svc:           cfg.SweepstakeService,
		clock:         cfg.Clock,
		sweepInterval: sweepInterval,
		retryBackoff:  retryBackoff,
		nextAttempt:   make(map[string]time.Time),
	}, nil
}

// Start registers the sweep job and starts the polling loop
func (s *Scheduler) Start(ctx context.Context) error {
	cron, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.cron = cron

	_, err = s.cron.NewJob(
		gocron.DurationJob(s.sweepInterval),
		gocron.NewTask(func() { s.RunSweep(ctx) }),
		gocron.WithName("sweepstake_sweeper"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}

	s.cron.Start()
	log.Printf("scheduler started, sweeping every %s", s.sweepInterval)

	return nil
}

// Stop shuts the polling loop down. Pending retry state is discarded; the
// next sweep after a restart recomputes it from storage.
func (s *Scheduler) Stop() error {
	if s.cron == nil {
		return nil
	}

	return s.cron.Shutdown()
}

// RunSweep executes one sweep pass over every non-terminal sweepstake
func (s *Scheduler) RunSweep(ctx context.Context) {
	now := s.clock.Now()

	s.sweepScheduled(ctx, now)
	s.sweepActive(ctx, now)
	s.sweepDrawing(ctx, now)
}

func (s *Scheduler) listByStatus(ctx context.Context, status models.SweepstakeStatus) []*models.Sweepstake {
	out, err := s.svc.ListSweepstakes(ctx, &sweepstake.ListSweepstakesInput{Status: status})
	if err != nil {
		log.Printf("ERROR: sweep failed to list %s sweepstakes: %v", status, err)
		return nil
	}

	return out.Sweepstakes
}

func (s *Scheduler) sweepScheduled(ctx context.Context, now time.Time) {
	for _, sw := range s.listByStatus(ctx, models.SweepstakeStatusScheduled) {
		count := len(sw.Participants)

		if !now.Before(sw.EndTime) {
			// Expired before ever activating. Anyone who joined still gets
			// a draw; an empty sweepstake gets cancelled.
			if count == 0 {
				s.cancelEmpty(ctx, sw.ID)
			} else {
				s.markForDraw(ctx, sw.ID, models.SweepstakeStatusScheduled)
			}
			continue
		}

		if !now.Before(sw.StartTime) && count >= minParticipantsToActivate {
			if _, err := s.svc.ActivateSweepstake(ctx, &sweepstake.ActivateSweepstakeInput{
				SweepstakeID: sw.ID,
			}); err != nil && !errors.Is(err, store.ErrInvalidState) {
				log.Printf("ERROR: failed to activate sweepstake %s: %v", sw.ID, err)
			}
		}
	}
}

func (s *Scheduler) sweepActive(ctx context.Context, now time.Time) {
	for _, sw := range s.listByStatus(ctx, models.SweepstakeStatusActive) {
		count := len(sw.Participants)

		// Joins normally flip the status when the cap fills; this covers
		// sweepstakes persisted before that rule applied
		capReached := sw.MaxParticipants > 0 && count >= sw.MaxParticipants

		if capReached || !now.Before(sw.EndTime) {
			if count == 0 {
				s.cancelEmpty(ctx, sw.ID)
			} else {
				s.markForDraw(ctx, sw.ID, models.SweepstakeStatusActive)
			}
		}
	}
}

func (s *Scheduler) sweepDrawing(ctx context.Context, now time.Time) {
	for _, sw := range s.listByStatus(ctx, models.SweepstakeStatusDrawing) {
		if !s.due(sw.ID, now) {
			continue
		}

		_, err := s.svc.DrawAndSettle(ctx, &sweepstake.DrawAndSettleInput{SweepstakeID: sw.ID})
		switch {
		case err == nil:
			s.clearBackoff(sw.ID)
		case errors.Is(err, store.ErrAlreadyDrawn):
			// Lost a race with another settlement path; nothing to redo
			s.clearBackoff(sw.ID)
		case errors.Is(err, draw.ErrEmptyParticipantSet):
			// Nothing to draw from and nothing to refund; retrying cannot help
			s.clearBackoff(sw.ID)
			s.cancelEmpty(ctx, sw.ID)
		default:
			log.Printf("ERROR: failed to settle sweepstake %s, retrying in %s: %v", sw.ID, s.retryBackoff, err)
			s.setBackoff(sw.ID, now.Add(s.retryBackoff))
		}
	}
}

func (s *Scheduler) markForDraw(ctx context.Context, id string, from models.SweepstakeStatus) {
	_, err := s.svc.MarkForDraw(ctx, &sweepstake.MarkForDrawInput{
		SweepstakeID: id,
		From:         from,
	})
	// ErrInvalidState means another actor transitioned it first
	if err != nil && !errors.Is(err, store.ErrInvalidState) {
		log.Printf("ERROR: failed to mark sweepstake %s for draw: %v", id, err)
	}
}

func (s *Scheduler) cancelEmpty(ctx context.Context, id string) {
	_, err := s.svc.CancelSweepstake(ctx, &sweepstake.CancelSweepstakeInput{
		SweepstakeID: id,
		Reason:       "expired with no participants",
	})
	if err != nil && !errors.Is(err, store.ErrInvalidState) {
		log.Printf("ERROR: failed to cancel empty sweepstake %s: %v", id, err)
	}
}

func (s *Scheduler) due(id string, now time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, ok := s.nextAttempt[id]

	return !ok || !now.Before(next)
}

func (s *Scheduler) setBackoff(id string, next time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextAttempt[id] = next
}

func (s *Scheduler) clearBackoff(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.nextAttempt, id)
}
