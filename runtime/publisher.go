// Package runtime hosts the process plumbing around the dialog engine: the
// inbound dispatcher with its per-participant mailboxes, and the channel
// publisher feeding the event fanout.
package runtime

import (
	"log/slog"

	"topic-lab/domain/event"
)

// ChannelPublisher pushes domain events into the fanout pipeline without
// ever blocking the caller. A full buffer drops the event with a log line;
// the store stays the source of truth, events only feed side effects.
type ChannelPublisher struct {
	log    *slog.Logger
	events chan event.DomainEvent
}

func NewChannelPublisher(log *slog.Logger, buffer int) *ChannelPublisher {
	return &ChannelPublisher{
		log:    log,
		events: make(chan event.DomainEvent, buffer),
	}
}

func (p *ChannelPublisher) Publish(e event.DomainEvent) {
	select {
	case p.events <- e:
	default:
		p.log.Warn("Event pipeline full, event dropped", "action", e.Action())
	}
}

// Events exposes the channel for the fanout worker.
func (p *ChannelPublisher) Events() chan event.DomainEvent { return p.events }

// Depth reports the current backlog, for the monitor.
func (p *ChannelPublisher) Depth() int { return len(p.events) }
