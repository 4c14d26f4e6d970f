package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"topic-lab/domain"
	"topic-lab/errors"
	"topic-lab/mocks"
)

func TestHandshakeService(t *testing.T) {
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelError)

	teacher := domain.Teacher{ID: 3, Identity: "teacher-1", Name: "Prof. Orlov", DepartmentID: 7}
	student := domain.Student{ID: 5, Identity: "student-42", Name: "Ivan Petrov", DepartmentID: 7}
	teacherID := int64(3)
	topic := domain.Topic{ID: 11, Title: "Graph sharding", Status: domain.StatusFree, TeacherID: &teacherID, DepartmentID: 7}

	type fixture struct {
		svc          *HandshakeService
		topics       *mocks.MockITopicRepository
		participants *mocks.MockIParticipantRepository
		notifier     *mocks.MockNotifier
		publisher    *mocks.MockEventPublisher
	}

	newFixture := func(t *testing.T) *fixture {
		ctrl := gomock.NewController(t)
		fx := &fixture{
			topics:       mocks.NewMockITopicRepository(ctrl),
			participants: mocks.NewMockIParticipantRepository(ctrl),
			notifier:     mocks.NewMockNotifier(ctrl),
			publisher:    mocks.NewMockEventPublisher(ctrl),
		}
		fx.publisher.EXPECT().Publish(gomock.Any()).AnyTimes()
		fx.svc = NewHandshakeService(fx.topics, fx.participants, fx.notifier, fx.publisher, log)
		return fx
	}

	// request registers a pending handshake and extracts its request id
	// from the decision keys offered to the teacher.
	request := func(t *testing.T, fx *fixture) uuid.UUID {
		t.Helper()
		req := require.New(t)

		var requestID uuid.UUID
		fx.participants.EXPECT().GetTeacherByID(ctx, teacherID).Return(teacher, nil)
		fx.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) error {
				req.Len(msg.Options, 2)
				id, err := uuid.Parse(msg.Options[0].Key[len(ApprovePrefix):])
				req.NoError(err)
				requestID = id
				return nil
			})
		req.NoError(fx.svc.Request(ctx, student, topic))
		return requestID
	}

	t.Run("should refuse requests for unsupervised topics", func(t *testing.T) {
		req := require.New(t)
		fx := newFixture(t)

		unsupervised := topic
		unsupervised.TeacherID = nil
		err := fx.svc.Request(ctx, student, unsupervised)
		req.ErrorIs(err, errors.ErrTopicUnavailable)
	})

	t.Run("should keep a declined request open for a later approval", func(t *testing.T) {
		req := require.New(t)
		fx := newFixture(t)
		requestID := request(t, fx)

		// Decline twice: both notify the student, neither touches the row.
		fx.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) error {
				req.Equal(student.Identity, msg.To)
				req.Contains(msg.Text, "declined")
				return nil
			}).
			Times(2)
		for range 2 {
			title, err := fx.svc.Decline(ctx, teacher, requestID)
			req.NoError(err)
			req.Equal(topic.Title, title)
		}
		req.Equal(1, fx.svc.PendingCount())

		// The teacher changes their mind; the request still resolves.
		studentID := int64(5)
		closed := topic
		closed.Status = domain.StatusClosed
		closed.StudentID = &studentID
		fx.participants.EXPECT().GetStudentByIdentity(ctx, student.Identity).Return(student, nil)
		fx.topics.EXPECT().ApproveForStudent(ctx, int64(11), int64(3), int64(5)).Return(closed, nil)
		fx.notifier.EXPECT().Notify(ctx, gomock.Any()).Return(nil)

		title, err := fx.svc.Approve(ctx, teacher, requestID)
		req.NoError(err)
		req.Equal(topic.Title, title)
		req.Equal(0, fx.svc.PendingCount())
	})

	t.Run("should mark the decision stale when the student vanished", func(t *testing.T) {
		req := require.New(t)
		fx := newFixture(t)
		requestID := request(t, fx)

		fx.participants.EXPECT().
			GetStudentByIdentity(ctx, student.Identity).
			Return(domain.Student{}, errors.ErrNotRegistered)

		title, err := fx.svc.Approve(ctx, teacher, requestID)
		req.ErrorIs(err, errors.ErrStaleDecision)
		req.Equal(topic.Title, title)
		req.Equal(0, fx.svc.PendingCount())
	})

	t.Run("should reject a decision from a different teacher", func(t *testing.T) {
		req := require.New(t)
		fx := newFixture(t)
		requestID := request(t, fx)

		impostor := domain.Teacher{ID: 8, Identity: "teacher-8", Name: "Dr. Sokolov"}
		_, err := fx.svc.Approve(ctx, impostor, requestID)
		req.ErrorIs(err, errors.ErrUnknownRequest)
		req.Equal(1, fx.svc.PendingCount())
	})
}
