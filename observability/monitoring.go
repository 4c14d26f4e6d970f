package observability

import (
	"log/slog"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Gauges are sampled on snapshot; the owning components expose them as
// closures so the monitor never reaches into their locks directly.
type Gauges struct {
	LiveSessions    func() int
	PendingRequests func() int
	IntakeDepth     func() int
	EventDepth      func() int
	LiveMailboxes   func() int
}

// Snapshot is one observation of the process, counters plus sampled gauges.
type Snapshot struct {
	EventsHandled   uint64
	MessagesSent    uint64
	EventsDropped   uint64
	Errors          uint64
	LiveSessions    int
	PendingRequests int
	IntakeDepth     int
	EventDepth      int
	LiveMailboxes   int
	AllocMemMb      uint64
	NumGC           uint32
	RssMb           uint64
	CPUPercent      float64
	At              time.Time
}

// MonitoringManager keeps the process counters and samples the gauges.
type MonitoringManager struct {
	log    *slog.Logger
	gauges Gauges
	proc   *process.Process

	eventsHandled uint64
	messagesSent  uint64
	eventsDropped uint64
	errorCount    uint64
}

func NewMonitoringManager(log *slog.Logger, gauges Gauges) *MonitoringManager {
	p, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		log.Warn("Process self-stats unavailable", "error", err)
		p = nil
	}
	return &MonitoringManager{log: log, gauges: gauges, proc: p}
}

func (mm *MonitoringManager) IncrEventsHandled() { atomic.AddUint64(&mm.eventsHandled, 1) }
func (mm *MonitoringManager) IncrMessagesSent()  { atomic.AddUint64(&mm.messagesSent, 1) }
func (mm *MonitoringManager) IncrEventsDropped() { atomic.AddUint64(&mm.eventsDropped, 1) }
func (mm *MonitoringManager) IncrErrorCount()    { atomic.AddUint64(&mm.errorCount, 1) }

func (mm *MonitoringManager) Snapshot() Snapshot {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	s := Snapshot{
		EventsHandled: atomic.LoadUint64(&mm.eventsHandled),
		MessagesSent:  atomic.LoadUint64(&mm.messagesSent),
		EventsDropped: atomic.LoadUint64(&mm.eventsDropped),
		Errors:        atomic.LoadUint64(&mm.errorCount),
		AllocMemMb:    mem.Alloc / 1024 / 1024,
		NumGC:         mem.NumGC,
		At:            time.Now(),
	}
	if g := mm.gauges.LiveSessions; g != nil {
		s.LiveSessions = g()
	}
	if g := mm.gauges.PendingRequests; g != nil {
		s.PendingRequests = g()
	}
	if g := mm.gauges.IntakeDepth; g != nil {
		s.IntakeDepth = g()
	}
	if g := mm.gauges.EventDepth; g != nil {
		s.EventDepth = g()
	}
	if g := mm.gauges.LiveMailboxes; g != nil {
		s.LiveMailboxes = g()
	}
	if mm.proc != nil {
		if rss, err := mm.proc.MemoryInfo(); err == nil && rss != nil {
			s.RssMb = rss.RSS / 1024 / 1024
		}
		if cpu, err := mm.proc.CPUPercent(); err == nil {
			s.CPUPercent = cpu
		}
	}
	return s
}

// Log writes one snapshot line; the monitor worker calls it on its tick.
func (mm *MonitoringManager) Log(s Snapshot) {
	mm.log.Info("Process snapshot",
		"events_handled", s.EventsHandled,
		"messages_sent", s.MessagesSent,
		"events_dropped", s.EventsDropped,
		"errors", s.Errors,
		"live_sessions", s.LiveSessions,
		"pending_requests", s.PendingRequests,
		"intake_depth", s.IntakeDepth,
		"event_depth", s.EventDepth,
		"live_mailboxes", s.LiveMailboxes,
		"alloc_mem_mb", s.AllocMemMb,
		"num_gc", s.NumGC,
		"rss_mb", s.RssMb,
		"cpu_percent", s.CPUPercent,
	)
}
