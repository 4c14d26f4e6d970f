// Package sink holds the event consumers fed by the fanout worker. Sinks
// observe completed operations; none of them may influence one.
package sink

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/repositories"
)

const appendTimeout = 5 * time.Second

// AuditSink turns every domain event into one append-only interaction row.
// A failed append is logged and lost; the audit trail is an observation of
// the system, not part of it.
type AuditSink struct {
	log          *slog.Logger
	interactions repositories.IInteractionRepository
}

func NewAuditSink(log *slog.Logger, interactions repositories.IInteractionRepository) *AuditSink {
	return &AuditSink{log: log, interactions: interactions}
}

func (s *AuditSink) Consume(evt event.DomainEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	err := s.interactions.Append(ctx, domain.Interaction{
		Actor:   evt.Actor(),
		Role:    evt.ActorRole(),
		Action:  evt.Action(),
		TopicID: evt.TopicID(),
		Details: details(evt),
		At:      evt.OccurredAt(),
	})
	if err != nil {
		s.log.Error("Audit append failed", "action", evt.Action(), "error", err)
	}
}

func details(evt event.DomainEvent) string {
	switch e := evt.(type) {
	case event.TopicAuthored:
		return fmt.Sprintf("%s [%s]", e.Title, strings.Join(e.Keywords, ", "))
	case event.TopicReserved:
		return e.Title
	case event.TopicDetached:
		return e.Title
	case event.TopicApproved:
		return e.Title
	case event.TopicReleased:
		return e.Title
	case event.ReservationRequested:
		return e.Title
	case event.SearchPerformed:
		return fmt.Sprintf("%q (%d hits)", e.Query, e.Hits)
	default:
		return ""
	}
}
