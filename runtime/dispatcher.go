package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"topic-lab/contract"
	"topic-lab/domain"
)

// InboundEvent is one raw utterance from the transport, already attributed
// to a participant.
type InboundEvent struct {
	From domain.Identity
	Text string
	At   time.Time
}

const mailboxIdleExit = 2 * time.Minute

// Stats receives the dispatcher's throughput counters. All methods must be
// safe for concurrent use.
type Stats interface {
	IncrEventsHandled()
	IncrMessagesSent()
	IncrEventsDropped()
	IncrErrorCount()
}

// Dispatcher routes inbound events into per-participant mailboxes. Events
// of one participant are processed strictly in arrival order by a single
// goroutine; distinct participants proceed in parallel. A mailbox with no
// traffic for a while retires itself.
type Dispatcher struct {
	log         *slog.Logger
	engine      contract.EventHandler
	notifier    contract.Notifier
	inbound     chan InboundEvent
	mailboxSize int
	stats       Stats

	mu    sync.Mutex
	boxes map[domain.Identity]chan InboundEvent
	wg    sync.WaitGroup
}

func NewDispatcher(log *slog.Logger, engine contract.EventHandler, notifier contract.Notifier, buffer, mailboxSize int) *Dispatcher {
	return &Dispatcher{
		log:         log,
		engine:      engine,
		notifier:    notifier,
		inbound:     make(chan InboundEvent, buffer),
		mailboxSize: mailboxSize,
		boxes:       make(map[domain.Identity]chan InboundEvent),
	}
}

// WithStats attaches throughput counters. Call before Run.
func (d *Dispatcher) WithStats(s Stats) *Dispatcher {
	d.stats = s
	return d
}

// Submit hands an inbound event to the dispatcher. It never blocks the
// transport: a full intake buffer sheds the event with a log line.
func (d *Dispatcher) Submit(ev InboundEvent) bool {
	select {
	case d.inbound <- ev:
		return true
	default:
		d.log.Warn("Intake buffer full, event dropped", "participant", ev.From)
		if d.stats != nil {
			d.stats.IncrEventsDropped()
		}
		return false
	}
}

// Run consumes the intake buffer until the context is done, then waits for
// every mailbox to drain.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			d.wg.Wait()
			return nil
		case ev := <-d.inbound:
			d.route(ctx, ev)
		}
	}
}

// route drops the event into its participant's mailbox, creating the
// mailbox on first contact. The send is non-blocking: one flooding
// participant overflows their own box, never the intake.
func (d *Dispatcher) route(ctx context.Context, ev InboundEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	box, ok := d.boxes[ev.From]
	if !ok {
		box = make(chan InboundEvent, d.mailboxSize)
		d.boxes[ev.From] = box
		d.wg.Add(1)
		go d.serve(ctx, ev.From, box)
	}

	select {
	case box <- ev:
	default:
		d.log.Warn("Mailbox full, event dropped", "participant", ev.From)
		if d.stats != nil {
			d.stats.IncrEventsDropped()
		}
	}
}

// serve is the per-participant loop. Serialization is the whole point:
// every ordering guarantee the dialog engine relies on comes from here.
func (d *Dispatcher) serve(ctx context.Context, id domain.Identity, box chan InboundEvent) {
	defer d.wg.Done()

	idle := time.NewTimer(mailboxIdleExit)
	defer idle.Stop()

	for {
		select {
		case <-ctx.Done():
			d.retire(id)
			return
		case ev := <-box:
			d.handle(ctx, ev)
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(mailboxIdleExit)
		case <-idle.C:
			// Retire only if nothing raced in while the timer fired.
			d.mu.Lock()
			if len(box) == 0 {
				delete(d.boxes, id)
				d.mu.Unlock()
				return
			}
			d.mu.Unlock()
			idle.Reset(mailboxIdleExit)
		}
	}
}

func (d *Dispatcher) retire(id domain.Identity) {
	d.mu.Lock()
	delete(d.boxes, id)
	d.mu.Unlock()
}

// handle runs one event through the engine and pushes the replies out. A
// failure stays scoped to this one event.
func (d *Dispatcher) handle(ctx context.Context, ev InboundEvent) {
	messages, err := d.engine.HandleEvent(ctx, ev.From, ev.Text)
	if err != nil {
		d.log.Error("Event handling failed", "participant", ev.From, "error", err)
		if d.stats != nil {
			d.stats.IncrErrorCount()
		}
	}
	if d.stats != nil {
		d.stats.IncrEventsHandled()
	}
	for _, msg := range messages {
		if err := d.notifier.Notify(ctx, msg); err != nil {
			d.log.Error("Notify failed", "participant", msg.To, "error", err)
			if d.stats != nil {
				d.stats.IncrErrorCount()
			}
			continue
		}
		if d.stats != nil {
			d.stats.IncrMessagesSent()
		}
	}
}

// QueueDepth reports the intake backlog, for the monitor.
func (d *Dispatcher) QueueDepth() int { return len(d.inbound) }

// Mailboxes reports how many participants currently have a live mailbox.
func (d *Dispatcher) Mailboxes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.boxes)
}
