package scheduler

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	clockMocks "github.com/fairdraw/sweepstakes/internal/common/clock/mocks"
	"github.com/fairdraw/sweepstakes/internal/draw"
	"github.com/fairdraw/sweepstakes/internal/models"
	"github.com/fairdraw/sweepstakes/internal/repositories/store"
	"github.com/fairdraw/sweepstakes/internal/services/sweepstake"
	svcMocks "github.com/fairdraw/sweepstakes/internal/services/sweepstake/mocks"
)

type SchedulerTestSuite struct {
	suite.Suite
	mockCtrl  *gomock.Controller
	mockSvc   *svcMocks.MockService
	mockClock *clockMocks.MockClock

	scheduler *Scheduler
	ctx       context.Context

	// now backs the mock clock so tests can advance time
	now time.Time
}

func (s *SchedulerTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSvc = svcMocks.NewMockService(s.mockCtrl)
	s.mockClock = clockMocks.NewMockClock(s.mockCtrl)

	s.ctx = context.Background()
	s.now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.mockClock.EXPECT().Now().DoAndReturn(func() time.Time { return s.now }).AnyTimes()

	scheduler, err := New(&Config{
		RetryBackoff:      60 * time.Second,
		SweepstakeService: s.mockSvc,
		Clock:             s.mockClock,
	})
	s.Require().NoError(err)
	s.scheduler = scheduler
}

func (s *SchedulerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSchedulerTestSuite(t *testing.T) {
	suite.Run(t, new(SchedulerTestSuite))
}

func (s *SchedulerTestSuite) TestNewValidatesConfig() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{Clock: s.mockClock})
	s.ErrorIs(err, ErrNilService)

	_, err = New(&Config{SweepstakeService: s.mockSvc})
	s.ErrorIs(err, ErrNilClock)
}

// expectList stubs one ListSweepstakes call per status with the given results
func (s *SchedulerTestSuite) expectList(status models.SweepstakeStatus, sweepstakes ...*models.Sweepstake) {
	s.mockSvc.EXPECT().
		ListSweepstakes(s.ctx, &sweepstake.ListSweepstakesInput{Status: status}).
		Return(&sweepstake.ListSweepstakesOutput{Sweepstakes: sweepstakes}, nil)
}

func (s *SchedulerTestSuite) expectEmptySweep() {
	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing)
}

func (s *SchedulerTestSuite) newSweepstake(status models.SweepstakeStatus, participants int, start, end time.Time) *models.Sweepstake {
	sw := &models.Sweepstake{
		ID:        "sweep-1",
		Title:     "Weekly Draw",
		Status:    status,
		StartTime: start,
		EndTime:   end,
	}
	for i := 0; i < participants; i++ {
		sw.Participants = append(sw.Participants, &models.Participant{
			ID:       fmt.Sprintf("p-%d", i+1),
			UserID:   fmt.Sprintf("user-%d", i+1),
			JoinedAt: start,
		})
	}
	return sw
}

func (s *SchedulerTestSuite) TestActivatesStartedSweepstake() {
	sw := s.newSweepstake(models.SweepstakeStatusScheduled, 2, s.now.Add(-time.Minute), s.now.Add(time.Hour))

	s.expectList(models.SweepstakeStatusScheduled, sw)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing)

	s.mockSvc.EXPECT().
		ActivateSweepstake(s.ctx, &sweepstake.ActivateSweepstakeInput{SweepstakeID: sw.ID}).
		Return(&sweepstake.ActivateSweepstakeOutput{Sweepstake: sw}, nil)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestDoesNotActivateBelowMinimumEntries() {
	sw := s.newSweepstake(models.SweepstakeStatusScheduled, 1, s.now.Add(-time.Minute), s.now.Add(time.Hour))

	s.expectList(models.SweepstakeStatusScheduled, sw)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestDoesNotActivateBeforeStart() {
	sw := s.newSweepstake(models.SweepstakeStatusScheduled, 3, s.now.Add(time.Minute), s.now.Add(time.Hour))

	s.expectList(models.SweepstakeStatusScheduled, sw)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestExpiredScheduledWithEntriesMarksForDraw() {
	sw := s.newSweepstake(models.SweepstakeStatusScheduled, 1, s.now.Add(-2*time.Hour), s.now.Add(-time.Minute))

	s.expectList(models.SweepstakeStatusScheduled, sw)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing)

	s.mockSvc.EXPECT().
		MarkForDraw(s.ctx, &sweepstake.MarkForDrawInput{
			SweepstakeID: sw.ID,
			From:         models.SweepstakeStatusScheduled,
		}).
		Return(&sweepstake.MarkForDrawOutput{Sweepstake: sw}, nil)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestExpiredScheduledEmptyCancels() {
	sw := s.newSweepstake(models.SweepstakeStatusScheduled, 0, s.now.Add(-2*time.Hour), s.now.Add(-time.Minute))

	s.expectList(models.SweepstakeStatusScheduled, sw)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing)

	s.mockSvc.EXPECT().
		CancelSweepstake(s.ctx, &sweepstake.CancelSweepstakeInput{
			SweepstakeID: sw.ID,
			Reason:       "expired with no participants",
		}).
		Return(&sweepstake.CancelSweepstakeOutput{Sweepstake: sw}, nil)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestExpiredActiveMarksForDraw() {
	sw := s.newSweepstake(models.SweepstakeStatusActive, 2, s.now.Add(-2*time.Hour), s.now.Add(-time.Minute))

	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive, sw)
	s.expectList(models.SweepstakeStatusDrawing)

	s.mockSvc.EXPECT().
		MarkForDraw(s.ctx, &sweepstake.MarkForDrawInput{
			SweepstakeID: sw.ID,
			From:         models.SweepstakeStatusActive,
		}).
		Return(&sweepstake.MarkForDrawOutput{Sweepstake: sw}, nil)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestFullActiveMarksForDrawBeforeExpiry() {
	sw := s.newSweepstake(models.SweepstakeStatusActive, 3, s.now.Add(-time.Hour), s.now.Add(time.Hour))
	sw.MaxParticipants = 3

	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive, sw)
	s.expectList(models.SweepstakeStatusDrawing)

	s.mockSvc.EXPECT().
		MarkForDraw(s.ctx, &sweepstake.MarkForDrawInput{
			SweepstakeID: sw.ID,
			From:         models.SweepstakeStatusActive,
		}).
		Return(&sweepstake.MarkForDrawOutput{Sweepstake: sw}, nil)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestDrawingSettles() {
	sw := s.newSweepstake(models.SweepstakeStatusDrawing, 2, s.now.Add(-2*time.Hour), s.now.Add(-time.Minute))

	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing, sw)

	s.mockSvc.EXPECT().
		DrawAndSettle(s.ctx, &sweepstake.DrawAndSettleInput{SweepstakeID: sw.ID}).
		Return(&sweepstake.DrawAndSettleOutput{Sweepstake: sw}, nil)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestSettlementFailureBacksOff() {
	sw := s.newSweepstake(models.SweepstakeStatusDrawing, 2, s.now.Add(-2*time.Hour), s.now.Add(-time.Minute))

	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing, sw)
	s.mockSvc.EXPECT().
		DrawAndSettle(s.ctx, &sweepstake.DrawAndSettleInput{SweepstakeID: sw.ID}).
		Return(nil, fmt.Errorf("redis unavailable"))
	s.scheduler.RunSweep(s.ctx)

	// Within the backoff window the sweep must not retry
	s.now = s.now.Add(30 * time.Second)
	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing, sw)
	s.scheduler.RunSweep(s.ctx)

	// Past the backoff window it retries and succeeds
	s.now = s.now.Add(31 * time.Second)
	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing, sw)
	s.mockSvc.EXPECT().
		DrawAndSettle(s.ctx, &sweepstake.DrawAndSettleInput{SweepstakeID: sw.ID}).
		Return(&sweepstake.DrawAndSettleOutput{Sweepstake: sw}, nil)
	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestAlreadyDrawnClearsBackoff() {
	sw := s.newSweepstake(models.SweepstakeStatusDrawing, 2, s.now.Add(-2*time.Hour), s.now.Add(-time.Minute))

	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing, sw)
	s.mockSvc.EXPECT().
		DrawAndSettle(s.ctx, &sweepstake.DrawAndSettleInput{SweepstakeID: sw.ID}).
		Return(nil, fmt.Errorf("redis unavailable"))
	s.scheduler.RunSweep(s.ctx)

	s.now = s.now.Add(2 * time.Minute)
	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing, sw)
	s.mockSvc.EXPECT().
		DrawAndSettle(s.ctx, &sweepstake.DrawAndSettleInput{SweepstakeID: sw.ID}).
		Return(nil, store.ErrAlreadyDrawn)
	s.scheduler.RunSweep(s.ctx)

	s.scheduler.mu.Lock()
	defer s.scheduler.mu.Unlock()
	s.Empty(s.scheduler.nextAttempt)
}

func (s *SchedulerTestSuite) TestEmptyParticipantSetCancelsInsteadOfRetrying() {
	sw := s.newSweepstake(models.SweepstakeStatusDrawing, 0, s.now.Add(-2*time.Hour), s.now.Add(-time.Minute))

	s.expectList(models.SweepstakeStatusScheduled)
	s.expectList(models.SweepstakeStatusActive)
	s.expectList(models.SweepstakeStatusDrawing, sw)

	s.mockSvc.EXPECT().
		DrawAndSettle(s.ctx, &sweepstake.DrawAndSettleInput{SweepstakeID: sw.ID}).
		Return(nil, draw.ErrEmptyParticipantSet)
	s.mockSvc.EXPECT().
		CancelSweepstake(s.ctx, &sweepstake.CancelSweepstakeInput{
			SweepstakeID: sw.ID,
			Reason:       "expired with no participants",
		}).
		Return(&sweepstake.CancelSweepstakeOutput{Sweepstake: sw}, nil)

	s.scheduler.RunSweep(s.ctx)
}

func (s *SchedulerTestSuite) TestEmptySweepDoesNothing() {
	s.expectEmptySweep()
	s.scheduler.RunSweep(s.ctx)
}
