package notifier

import "context"

// Noop implements the Service interface by doing nothing. Useful for wiring
// the service layer without a websocket hub, e.g. in offline tooling.
type Noop struct{}

// NewNoop creates a no-op notifier
func NewNoop() *Noop {
	return &Noop{}
}

// SweepstakeStateChanged does nothing
func (n *Noop) SweepstakeStateChanged(ctx context.Context, input *SweepstakeStateChangedInput) {}

// SweepstakeFinished does nothing
func (n *Noop) SweepstakeFinished(ctx context.Context, input *SweepstakeFinishedInput) {}
