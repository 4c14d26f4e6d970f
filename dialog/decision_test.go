package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"topic-lab/domain"
	"topic-lab/errors"
)

func TestHandshakeDecisions(t *testing.T) {
	ctx := context.Background()

	teacherIdentity := domain.Identity("teacher-1")
	studentIdentity := domain.Identity("student-42")
	teacher := domain.Teacher{ID: 3, Identity: teacherIdentity, Name: "Prof. Orlov", DepartmentID: 7}
	student := domain.Student{ID: 5, Identity: studentIdentity, Name: "Ivan Petrov", DepartmentID: 7}
	teacherID := int64(3)
	topic := domain.Topic{ID: 11, Title: "Graph sharding", Status: domain.StatusFree, TeacherID: &teacherID, DepartmentID: 7}

	// request registers the pending handshake and captures the decision
	// options sent to the teacher.
	request := func(t *testing.T, fx *fixtures) []domain.Option {
		t.Helper()
		req := require.New(t)

		var options []domain.Option
		fx.participants.EXPECT().GetTeacherByID(ctx, teacherID).Return(teacher, nil)
		fx.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) error {
				req.Equal(teacherIdentity, msg.To)
				options = msg.Options
				return nil
			})
		req.NoError(fx.handshake.Request(ctx, student, topic))
		req.Len(options, 2)
		return options
	}

	t.Run("should close the topic for the requesting student on approval", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		options := request(t, fx)

		studentID := int64(5)
		closed := topic
		closed.Status = domain.StatusClosed
		closed.StudentID = &studentID

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, teacherIdentity).Return(teacher, nil)
		fx.participants.EXPECT().GetStudentByIdentity(ctx, studentIdentity).Return(student, nil)
		fx.topics.EXPECT().ApproveForStudent(ctx, int64(11), int64(3), int64(5)).Return(closed, nil)
		fx.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) error {
				req.Equal(studentIdentity, msg.To)
				req.Contains(msg.Text, "Graph sharding")
				return nil
			})

		msgs, err := fx.engine.HandleEvent(ctx, teacherIdentity, options[0].Key)
		req.NoError(err)
		req.Contains(msgs[0].Text, "now reserved")
	})

	t.Run("should decline without touching the topic", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		options := request(t, fx)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, teacherIdentity).Return(teacher, nil)
		fx.notifier.EXPECT().
			Notify(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, msg domain.Message) error {
				req.Equal(studentIdentity, msg.To)
				return nil
			})

		msgs, err := fx.engine.HandleEvent(ctx, teacherIdentity, options[1].Key)
		req.NoError(err)
		req.Contains(msgs[0].Text, "declined")
	})

	t.Run("should call out a stale approval explicitly", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		options := request(t, fx)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, teacherIdentity).Return(teacher, nil)
		fx.participants.EXPECT().GetStudentByIdentity(ctx, studentIdentity).Return(student, nil)
		fx.topics.EXPECT().
			ApproveForStudent(ctx, int64(11), int64(3), int64(5)).
			Return(domain.Topic{}, errors.ErrTopicUnavailable)

		msgs, err := fx.engine.HandleEvent(ctx, teacherIdentity, options[0].Key)
		req.NoError(err)
		req.Contains(msgs[0].Text, "changed since this request was made")
		req.Equal(0, fx.handshake.PendingCount())
	})

	t.Run("should reject decisions from anyone but a teacher", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		options := request(t, fx)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, studentIdentity).Return(domain.Teacher{}, errors.ErrNotRegistered)
		msgs, err := fx.engine.HandleEvent(ctx, studentIdentity, options[0].Key)
		req.NoError(err)
		req.Contains(msgs[0].Text, "Only teachers")
	})

	t.Run("should report an unknown request reference", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, teacherIdentity).Return(teacher, nil)
		msgs, err := fx.engine.HandleEvent(ctx, teacherIdentity,
			"approve:00000000-0000-0000-0000-000000000000")
		req.NoError(err)
		req.Contains(msgs[0].Text, "no longer pending")
	})
}
