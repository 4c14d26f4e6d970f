//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"topic-lab/domain"
	"topic-lab/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// EventSink consumes domain events published after core operations.
// Sinks must never block the publisher for long; slow work is buffered
// or done on the sink's own goroutine.
type EventSink interface {
	Consume(e event.DomainEvent)
}

// EventPublisher is the non-blocking exit point services use to announce
// completed operations. A full pipeline drops the event with a log line;
// the store stays the source of truth, events only feed side effects.
type EventPublisher interface {
	Publish(e event.DomainEvent)
}

// EventHandler processes one attributed inbound utterance and returns the
// outbound messages it produced. The dialog engine is the one real
// implementation.
type EventHandler interface {
	HandleEvent(ctx context.Context, id domain.Identity, text string) ([]domain.Message, error)
}

// Notifier is the outbound boundary toward the transport. The core never
// talks to the network itself; it hands finished messages to this port.
type Notifier interface {
	Notify(ctx context.Context, msg domain.Message) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "<nil>"
	}
	t := reflect.TypeOf(w)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
