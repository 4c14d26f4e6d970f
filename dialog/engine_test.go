package dialog

import (
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"go.uber.org/mock/gomock"

	"topic-lab/auth"
	"topic-lab/domain/event"
	"topic-lab/mocks"
	"topic-lab/projection"
	"topic-lab/services"
)

const testAccessCode = "prof-2024"

// fixtures wires a real engine over mocked repositories; the services in
// between are thin enough to test through.
type fixtures struct {
	engine       *Engine
	sessions     *Store
	handshake    *services.HandshakeService
	topics       *mocks.MockITopicRepository
	participants *mocks.MockIParticipantRepository
	departments  *mocks.MockIDepartmentRepository
	categories   *mocks.MockICategoryRepository
	searches     *mocks.MockISearchLogRepository
	analytics    *mocks.MockIAnalyticsRepository
	notifier     *mocks.MockNotifier
	publisher    *mocks.MockEventPublisher
	published    []event.DomainEvent
}

func newFixtures(t *testing.T) *fixtures {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := logs.GetLoggerFromLevel(slog.LevelError)

	fx := &fixtures{
		topics:       mocks.NewMockITopicRepository(ctrl),
		participants: mocks.NewMockIParticipantRepository(ctrl),
		departments:  mocks.NewMockIDepartmentRepository(ctrl),
		categories:   mocks.NewMockICategoryRepository(ctrl),
		searches:     mocks.NewMockISearchLogRepository(ctrl),
		analytics:    mocks.NewMockIAnalyticsRepository(ctrl),
		notifier:     mocks.NewMockNotifier(ctrl),
		publisher:    mocks.NewMockEventPublisher(ctrl),
	}
	fx.publisher.EXPECT().Publish(gomock.Any()).
		Do(func(e event.DomainEvent) { fx.published = append(fx.published, e) }).
		AnyTimes()

	hash, err := auth.HashAccessCode(testAccessCode)
	if err != nil {
		t.Fatalf("hashing access code: %v", err)
	}

	participantService := services.NewParticipantService(fx.participants, fx.topics, hash, fx.publisher, log)
	topicService := services.NewTopicService(fx.topics, fx.publisher, log)
	fx.handshake = services.NewHandshakeService(fx.topics, fx.participants, fx.notifier, fx.publisher, log)
	reporter := projection.NewReporter(fx.analytics, fx.searches, 5)

	fx.sessions = NewStore(time.Minute)
	fx.engine = NewEngine(
		fx.sessions,
		participantService,
		topicService,
		fx.handshake,
		fx.topics,
		fx.departments,
		fx.categories,
		fx.searches,
		reporter,
		fx.publisher,
		Settings{ListLimit: 10, SearchLimit: 20},
		log,
	)
	return fx
}
