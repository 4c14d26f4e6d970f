package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"topic-lab/domain"
)

type handlerFunc func(ctx context.Context, id domain.Identity, text string) ([]domain.Message, error)

func (f handlerFunc) HandleEvent(ctx context.Context, id domain.Identity, text string) ([]domain.Message, error) {
	return f(ctx, id, text)
}

type notifierFunc func(ctx context.Context, msg domain.Message) error

func (f notifierFunc) Notify(ctx context.Context, msg domain.Message) error {
	return f(ctx, msg)
}

func TestDispatcher(t *testing.T) {
	log := slog.Default()
	discard := notifierFunc(func(context.Context, domain.Message) error { return nil })

	t.Run("should process one participant's events strictly in order", func(t *testing.T) {
		req := require.New(t)

		const total = 50
		var mu sync.Mutex
		var seen []string
		done := make(chan struct{})

		handler := handlerFunc(func(_ context.Context, _ domain.Identity, text string) ([]domain.Message, error) {
			mu.Lock()
			seen = append(seen, text)
			if len(seen) == total {
				close(done)
			}
			mu.Unlock()
			return nil, nil
		})

		d := NewDispatcher(log, handler, discard, total, total)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = d.Run(ctx) }()

		for i := range total {
			req.True(d.Submit(InboundEvent{From: "student-42", Text: fmt.Sprintf("%d", i), At: time.Now()}))
		}

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			req.Fail("events not drained in time")
		}

		mu.Lock()
		defer mu.Unlock()
		for i, text := range seen {
			req.Equal(fmt.Sprintf("%d", i), text)
		}
	})

	t.Run("should let distinct participants proceed in parallel", func(t *testing.T) {
		req := require.New(t)

		// The first participant's handler blocks until the second one has
		// run; only cross-participant parallelism can unblock it.
		release := make(chan struct{})
		firstDone := make(chan struct{})

		handler := handlerFunc(func(_ context.Context, id domain.Identity, _ string) ([]domain.Message, error) {
			switch id {
			case "student-1":
				<-release
				close(firstDone)
			case "student-2":
				close(release)
			}
			return nil, nil
		})

		d := NewDispatcher(log, handler, discard, 8, 8)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = d.Run(ctx) }()

		req.True(d.Submit(InboundEvent{From: "student-1", Text: "first", At: time.Now()}))
		req.True(d.Submit(InboundEvent{From: "student-2", Text: "second", At: time.Now()}))

		select {
		case <-firstDone:
		case <-time.After(2 * time.Second):
			req.Fail("participants were serialized against each other")
		}
	})

	t.Run("should deliver every reply through the notifier", func(t *testing.T) {
		req := require.New(t)

		handler := handlerFunc(func(_ context.Context, id domain.Identity, _ string) ([]domain.Message, error) {
			return []domain.Message{
				{To: id, Text: "for the sender"},
				{To: "teacher-1", Text: "for the supervisor"},
			}, nil
		})

		var mu sync.Mutex
		var delivered []domain.Message
		done := make(chan struct{})
		notifier := notifierFunc(func(_ context.Context, msg domain.Message) error {
			mu.Lock()
			delivered = append(delivered, msg)
			if len(delivered) == 2 {
				close(done)
			}
			mu.Unlock()
			return nil
		})

		d := NewDispatcher(log, handler, notifier, 8, 8)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = d.Run(ctx) }()

		req.True(d.Submit(InboundEvent{From: "student-42", Text: "hello", At: time.Now()}))

		select {
		case <-done:
		case <-time.After(2 * time.Second):
			req.Fail("replies not delivered in time")
		}

		mu.Lock()
		defer mu.Unlock()
		req.Equal(domain.Identity("student-42"), delivered[0].To)
		req.Equal(domain.Identity("teacher-1"), delivered[1].To)
	})

	t.Run("should shed events instead of blocking a full intake", func(t *testing.T) {
		req := require.New(t)

		handler := handlerFunc(func(context.Context, domain.Identity, string) ([]domain.Message, error) {
			return nil, nil
		})
		d := NewDispatcher(log, handler, discard, 1, 1)
		// Not running: the intake keeps exactly one event.
		req.True(d.Submit(InboundEvent{From: "student-1", Text: "kept", At: time.Now()}))
		req.False(d.Submit(InboundEvent{From: "student-1", Text: "shed", At: time.Now()}))
		req.Equal(1, d.QueueDepth())
	})
}
