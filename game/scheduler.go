package game

import (
	"context"
	"time"
)

// Scheduler calls Step at a fixed cadence, independent of client I/O
type Scheduler struct {
	Interval time.Duration
	Step     func()
}

// NewScheduler creates a scheduler that runs step every interval
func NewScheduler(interval time.Duration, step func()) *Scheduler {
	if interval <= 0 {
		interval = UpdateInterval
	}
	return &Scheduler{Interval: interval, Step: step}
}

// Run fires Step on every tick until ctx is cancelled
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}
