package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/finlit-games/financial-island/server/internal/platform/logger"
)

func waitForDay(s *Session, day int, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if s.Day() >= day {
			return true
		}
		time.Sleep(time.Millisecond)
	}
	return false
}

func TestTickerAdvancesDays(t *testing.T) {
	s := newTestSession(t)
	ticker := NewTicker(s, 5*time.Millisecond, logger.NewNop())
	defer ticker.Stop()

	go ticker.Start(context.Background())

	assert.True(t, waitForDay(s, 3, 2*time.Second), "ticker never advanced the day")
}

func TestTickerStopHaltsTicks(t *testing.T) {
	s := newTestSession(t)
	ticker := NewTicker(s, 5*time.Millisecond, logger.NewNop())

	done := make(chan struct{})
	go func() {
		ticker.Start(context.Background())
		close(done)
	}()

	waitForDay(s, 2, 2*time.Second)
	ticker.Stop()
	ticker.Stop() // safe to repeat

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker loop did not exit after Stop")
	}

	day := s.Day()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, day, s.Day(), "no ticks after Stop")
}

func TestTickerStopsOnContextCancel(t *testing.T) {
	s := newTestSession(t)
	ticker := NewTicker(s, time.Hour, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ticker.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ticker loop did not exit on context cancel")
	}
}
