package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"topic-lab/dialog"
	"topic-lab/domain"
	"topic-lab/internal"
	"topic-lab/observability"
	"topic-lab/projection"
	"topic-lab/repositories"
	"topic-lab/runtime"
	"topic-lab/runtime/workers"
	"topic-lab/services"
	"topic-lab/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the process lifecycle, and
// centralizes error reporting, so every defer executes before exit.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Database (Postgres)
	pool, err := pgxpool.New(ctx, config.DatabaseURL)
	if err != nil {
		return fmt.Errorf("database pool: %w", err)
	}
	defer func() {
		log.Info("Closing Postgres pool...")
		pool.Close()
	}()
	if err := repositories.InitSchema(ctx, pool); err != nil {
		return fmt.Errorf("schema init: %w", err)
	}

	// 4. Repositories
	topicRepo := repositories.NewTopicRepository(pool)
	participantRepo := repositories.NewParticipantRepository(pool)
	departmentRepo := repositories.NewDepartmentRepository(pool)
	categoryRepo := repositories.NewCategoryRepository(pool)
	interactionRepo := repositories.NewInteractionRepository(pool)
	searchLogRepo := repositories.NewSearchLogRepository(pool)
	analyticsRepo := repositories.NewAnalyticsRepository(pool)

	// 5. Event pipeline & outbound boundary
	publisher := runtime.NewChannelPublisher(log, config.BufferSize)
	notifier := newConsoleNotifier(os.Stdout)

	// 6. Services & projection
	topicService := services.NewTopicService(topicRepo, publisher, log)
	participantService := services.NewParticipantService(
		participantRepo, topicRepo, config.TeacherCodeHash, publisher, log)
	handshakeService := services.NewHandshakeService(
		topicRepo, participantRepo, notifier, publisher, log)
	reporter := projection.NewReporter(analyticsRepo, searchLogRepo, config.PopularQueryLimit)

	// 7. Dialog engine & dispatcher
	sessions := dialog.NewStore(config.SessionIdleTimeout)
	engine := dialog.NewEngine(
		sessions,
		participantService,
		topicService,
		handshakeService,
		topicRepo,
		departmentRepo,
		categoryRepo,
		searchLogRepo,
		reporter,
		publisher,
		dialog.Settings{ListLimit: config.FreeTopicLimit, SearchLimit: config.SearchLimit},
		log,
	)
	dispatcher := runtime.NewDispatcher(log, engine, notifier, config.BufferSize, config.MailboxSize)

	// 8. Sinks & workers
	telemetry := sink.NewTelemetrySink()
	fanout := workers.NewEventFanout(log, publisher.Events()).
		Add(sink.NewAuditSink(log, interactionRepo), telemetry)

	monitoring := observability.NewMonitoringManager(log, observability.Gauges{
		LiveSessions:    sessions.Len,
		PendingRequests: handshakeService.PendingCount,
		IntakeDepth:     dispatcher.QueueDepth,
		EventDepth:      publisher.Depth,
		LiveMailboxes:   dispatcher.Mailboxes,
	})
	dispatcher.WithStats(monitoring)

	sup := workers.NewSupervisor(log)
	sup.Add(
		dispatcher,
		fanout,
		workers.NewSessionJanitor(log, sessions, config.JanitorInterval),
		workers.NewHealthMonitor(log, monitoring, config.MetricInterval),
	)

	// 9. Console intake: one "identity: text" line per inbound event.
	go readStdin(ctx, dispatcher, log.Warn)

	log.Info("Topic lab started", "at", time.Now().UTC())
	sup.Run(ctx)
	log.Info("Program stopped cleanly")
	return nil
}

func readStdin(ctx context.Context, dispatcher *runtime.Dispatcher, warn func(string, ...any)) {
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		identity, text, found := strings.Cut(scanner.Text(), ":")
		if !found || strings.TrimSpace(identity) == "" {
			warn("Malformed line, expected \"identity: text\"")
			continue
		}
		dispatcher.Submit(runtime.InboundEvent{
			From: domain.Identity(strings.TrimSpace(identity)),
			Text: strings.TrimSpace(text),
			At:   time.Now().UTC(),
		})
	}
}
