package engine

import (
	"context"
	"sync"
	"time"

	"github.com/finlit-games/financial-island/server/internal/platform/logger"
)

// Ticker advances the session one day per fixed wall-clock interval. It is
// owned by the session's lifetime and must be stopped (or its context
// cancelled) on teardown so no tick mutates state after the engine is no
// longer observed.
type Ticker struct {
	session  *Session
	interval time.Duration
	logger   *logger.Logger
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewTicker creates a day-advance timer for the session.
func NewTicker(session *Session, interval time.Duration, log *logger.Logger) *Ticker {
	return &Ticker{
		session:  session,
		interval: interval,
		logger:   log,
		stopChan: make(chan struct{}),
	}
}

// Start begins the loop. Call in a goroutine.
func (t *Ticker) Start(ctx context.Context) {
	t.logger.Info("Day ticker started.")

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			t.logger.Info("Day ticker stopped by context.")
			return
		case <-t.stopChan:
			t.logger.Info("Day ticker stopped manually.")
			return
		case <-ticker.C:
			t.session.AdvanceDay()
		}
	}
}

// Stop halts the ticker. Safe to call more than once.
func (t *Ticker) Stop() {
	t.stopOnce.Do(func() {
		close(t.stopChan)
	})
}
