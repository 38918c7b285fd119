package notifier

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/fairdraw/sweepstakes/internal/services/notifier Service

import "context"

// Service is the fire-and-forget broadcast collaborator. Calls are best
// effort and return nothing: a failed notification must never affect the
// transaction that triggered it.
type Service interface {
	// SweepstakeStateChanged announces a status transition
	SweepstakeStateChanged(ctx context.Context, input *SweepstakeStateChangedInput)

	// SweepstakeFinished announces a settled draw and its winner
	SweepstakeFinished(ctx context.Context, input *SweepstakeFinishedInput)
}
