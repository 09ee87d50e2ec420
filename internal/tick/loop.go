package tick

import (
	"context"
	"log/slog"
	"time"
)

// DefaultInterval is the tick period used when the config leaves it zero.
const DefaultInterval = 100 * time.Millisecond

// Loop drives a Queue from a wall-clock ticker.
type Loop struct {
	queue    *Queue
	interval time.Duration
	ticker   *time.Ticker
	stopCh   chan struct{}
}

// NewLoop creates a tick loop over the given queue.
func NewLoop(queue *Queue, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{
		queue:    queue,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Queue returns the queue the loop drives.
func (l *Loop) Queue() *Queue {
	return l.queue
}

// Start starts the tick loop (blocks until context is canceled)
func (l *Loop) Start(ctx context.Context) error {
	l.ticker = time.NewTicker(l.interval)
	defer l.ticker.Stop()

	slog.Info("tick loop started", "interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("tick loop stopping")
			return ctx.Err()

		case <-l.stopCh:
			slog.Info("tick loop stopped")
			return nil

		case now := <-l.ticker.C:
			l.queue.RunDue(now)
		}
	}
}

// Stop stops the tick loop
func (l *Loop) Stop() {
	close(l.stopCh)
}
