package workers

import (
	"context"
	"log/slog"
	"time"

	"topic-lab/observability"
)

// HealthMonitor logs one process snapshot per interval.
type HealthMonitor struct {
	log        *slog.Logger
	monitoring *observability.MonitoringManager
	interval   time.Duration
}

func NewHealthMonitor(log *slog.Logger, monitoring *observability.MonitoringManager, interval time.Duration) *HealthMonitor {
	return &HealthMonitor{log: log, monitoring: monitoring, interval: interval}
}

func (w *HealthMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			w.monitoring.Log(w.monitoring.Snapshot())
		}
	}
}
