package workers

import (
	"context"
	"log/slog"
	"time"

	"topic-lab/dialog"
)

// SessionJanitor sweeps the session store for dialogs abandoned mid-step.
// The store also evicts lazily on lookup; the sweep keeps memory bounded
// for participants who never come back.
type SessionJanitor struct {
	log      *slog.Logger
	sessions *dialog.Store
	interval time.Duration
}

func NewSessionJanitor(log *slog.Logger, sessions *dialog.Store, interval time.Duration) *SessionJanitor {
	return &SessionJanitor{log: log, sessions: sessions, interval: interval}
}

func (w *SessionJanitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if evicted := w.sessions.EvictIdle(); evicted > 0 {
				w.log.Info("Idle sessions evicted", "count", evicted)
			}
		}
	}
}
