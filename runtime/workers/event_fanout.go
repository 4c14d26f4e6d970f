package workers

import (
	"context"
	"log/slog"

	"topic-lab/contract"
	"topic-lab/domain/event"
)

// EventFanout broadcasts domain events to the in-process sinks.
//
// Best-effort fan-out: no delivery, ordering, durability or retry
// guarantees. It feeds side effects (audit trail, telemetry), never core
// domain logic.
type EventFanout struct {
	log    *slog.Logger
	events chan event.DomainEvent
	sinks  []contract.EventSink
}

func NewEventFanout(log *slog.Logger, events chan event.DomainEvent) *EventFanout {
	return &EventFanout{log: log, events: events}
}

func (w *EventFanout) Add(sinks ...contract.EventSink) *EventFanout {
	w.sinks = append(w.sinks, sinks...)
	return w
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case evt := <-w.events:
			w.fanout(evt)
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fanout")
			return nil
		}
	}
}

// fanout hands the event to every sink in turn. Sinks are expected to be
// fast; a slow sink stalls its siblings, not the services.
func (w *EventFanout) fanout(evt event.DomainEvent) {
	for _, sink := range w.sinks {
		sink.Consume(evt)
	}
}
