package sink

import (
	"sync"
	"sync/atomic"

	"topic-lab/domain/event"
)

// TelemetrySink keeps in-memory counters per action. It exists for the
// monitor's snapshot line and costs one map lookup per event.
type TelemetrySink struct {
	total uint64

	mu        sync.Mutex
	perAction map[string]uint64
}

func NewTelemetrySink() *TelemetrySink {
	return &TelemetrySink{perAction: make(map[string]uint64)}
}

func (s *TelemetrySink) Consume(evt event.DomainEvent) {
	atomic.AddUint64(&s.total, 1)

	s.mu.Lock()
	s.perAction[evt.Action()]++
	s.mu.Unlock()
}

func (s *TelemetrySink) Total() uint64 {
	return atomic.LoadUint64(&s.total)
}

// Counts returns a copy of the per-action counters.
func (s *TelemetrySink) Counts() map[string]uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]uint64, len(s.perAction))
	for action, n := range s.perAction {
		out[action] = n
	}
	return out
}
