package sink

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/mocks"
)

func TestAuditSink(t *testing.T) {
	log := slog.Default()

	t.Run("should turn a reservation event into one audit row", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		interactions := mocks.NewMockIInteractionRepository(ctrl)
		s := NewAuditSink(log, interactions)

		evt := event.NewTopicReserved("student-42", 11, "Graph sharding")
		interactions.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i domain.Interaction) error {
				req.Equal(domain.Identity("student-42"), i.Actor)
				req.Equal(domain.RoleStudent, i.Role)
				req.Equal(domain.ActionReserved, i.Action)
				req.NotNil(i.TopicID)
				req.Equal(int64(11), *i.TopicID)
				req.Equal("Graph sharding", i.Details)
				return nil
			})

		s.Consume(evt)
	})

	t.Run("should record keywords for an authored topic", func(t *testing.T) {
		req := require.New(t)
		ctrl := gomock.NewController(t)
		interactions := mocks.NewMockIInteractionRepository(ctrl)
		s := NewAuditSink(log, interactions)

		evt := event.NewTopicAuthored("teacher-1", domain.RoleTeacher, 9, "Cache warmup strategies", []string{"cache", "latency"})
		interactions.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, i domain.Interaction) error {
				req.Equal(domain.ActionTopicAuthored, i.Action)
				req.Contains(i.Details, "cache, latency")
				return nil
			})

		s.Consume(evt)
	})

	t.Run("should swallow a failed append", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		interactions := mocks.NewMockIInteractionRepository(ctrl)
		s := NewAuditSink(log, interactions)

		interactions.EXPECT().
			Append(gomock.Any(), gomock.Any()).
			Return(context.DeadlineExceeded)

		// Nothing to assert beyond not panicking; the loss is logged.
		s.Consume(event.NewAccountDeleted("student-42", domain.RoleStudent))
	})
}

func TestTelemetrySink(t *testing.T) {
	req := require.New(t)
	s := NewTelemetrySink()

	s.Consume(event.NewTopicReserved("student-42", 11, "Graph sharding"))
	s.Consume(event.NewTopicReserved("student-7", 12, "Latency budgets"))
	s.Consume(event.NewAccountDeleted("student-42", domain.RoleStudent))

	req.Equal(uint64(3), s.Total())
	counts := s.Counts()
	req.Equal(uint64(2), counts[domain.ActionReserved])
	req.Equal(uint64(1), counts[domain.ActionDeleted])
}
