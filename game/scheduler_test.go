package game

import (
	"context"
	"testing"
	"time"
)

func TestSchedulerRunsStepUntilCancelled(t *testing.T) {
	ticks := make(chan struct{}, 16)
	s := NewScheduler(time.Millisecond, func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	for i := 0; i < 3; i++ {
		select {
		case <-ticks:
		case <-time.After(2 * time.Second):
			t.Fatalf("Expected tick %d within 2s", i+1)
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after cancel")
	}
}

func TestSchedulerDefaultInterval(t *testing.T) {
	s := NewScheduler(0, func() {})
	if s.Interval != UpdateInterval {
		t.Errorf("Expected default interval %v, got %v", UpdateInterval, s.Interval)
	}
}

func TestCommandKindString(t *testing.T) {
	tests := map[CommandKind]string{
		CommandJoin:     "join",
		CommandMove:     "move",
		CommandLeave:    "leave",
		CommandKind(99): "unknown",
	}
	for kind, want := range tests {
		if got := kind.String(); got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	}
}
