package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"topic-lab/domain"
	"topic-lab/errors"
	"topic-lab/repositories"
)

func TestRegistration(t *testing.T) {
	ctx := context.Background()

	t.Run("should walk a student through the whole registration", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		id := domain.Identity("student-42")

		// Unknown participant sending /start begins registration.
		fx.participants.EXPECT().GetStudentByIdentity(ctx, id).Return(domain.Student{}, errors.ErrNotRegistered)
		fx.participants.EXPECT().GetTeacherByIdentity(ctx, id).Return(domain.Teacher{}, errors.ErrNotRegistered)
		msgs, err := fx.engine.HandleEvent(ctx, id, "/start")
		req.NoError(err)
		req.Len(msgs, 1)
		req.Len(msgs[0].Options, 2)

		msgs, err = fx.engine.HandleEvent(ctx, id, "Student")
		req.NoError(err)
		req.Contains(msgs[0].Text, "name")

		msgs, err = fx.engine.HandleEvent(ctx, id, "Ivan Petrov")
		req.NoError(err)
		req.Contains(msgs[0].Text, "email")

		// An invalid email keeps the dialog on the same step.
		msgs, err = fx.engine.HandleEvent(ctx, id, "not-an-email")
		req.NoError(err)
		req.Contains(msgs[0].Text, "Try again")

		msgs, err = fx.engine.HandleEvent(ctx, id, "ivan@example.com")
		req.NoError(err)
		req.Contains(msgs[0].Text, "phone")

		msgs, err = fx.engine.HandleEvent(ctx, id, "skip")
		req.NoError(err)
		req.Contains(msgs[0].Text, "group")

		fx.departments.EXPECT().List(ctx).Return([]domain.Department{{ID: 7, Name: "Computer Science"}}, nil)
		msgs, err = fx.engine.HandleEvent(ctx, id, "ИВТ-21")
		req.NoError(err)
		req.Len(msgs[0].Options, 1)

		fx.departments.EXPECT().GetByID(ctx, int64(7)).Return(domain.Department{ID: 7, Name: "Computer Science"}, nil)
		fx.participants.EXPECT().
			CreateStudent(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, s repositories.NewStudent) (int64, error) {
				req.Equal(id, s.Identity)
				req.Equal("Ivan Petrov", s.Name)
				req.NotNil(s.Email)
				req.Equal("ivan@example.com", *s.Email)
				req.Nil(s.Phone)
				req.Equal("ИВТ-21", s.Group)
				req.Equal(int64(7), s.DepartmentID)
				return 1, nil
			})
		msgs, err = fx.engine.HandleEvent(ctx, id, "Computer Science")
		req.NoError(err)
		req.Contains(msgs[0].Text, "Registration complete")
		req.Equal(0, fx.sessions.Len())
	})

	t.Run("should demand the access code from a teacher", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		id := domain.Identity("teacher-1")

		fx.participants.EXPECT().GetStudentByIdentity(ctx, id).Return(domain.Student{}, errors.ErrNotRegistered)
		fx.participants.EXPECT().GetTeacherByIdentity(ctx, id).Return(domain.Teacher{}, errors.ErrNotRegistered)
		_, err := fx.engine.HandleEvent(ctx, id, "/start")
		req.NoError(err)

		msgs, err := fx.engine.HandleEvent(ctx, id, "Teacher")
		req.NoError(err)
		req.Contains(msgs[0].Text, "access code")

		msgs, err = fx.engine.HandleEvent(ctx, id, "wrong-code")
		req.NoError(err)
		req.Contains(msgs[0].Text, "Wrong access code")

		msgs, err = fx.engine.HandleEvent(ctx, id, testAccessCode)
		req.NoError(err)
		req.Contains(msgs[0].Text, "name")
	})

	t.Run("should cancel from any step", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		id := domain.Identity("student-7")

		fx.participants.EXPECT().GetStudentByIdentity(ctx, id).Return(domain.Student{}, errors.ErrNotRegistered)
		fx.participants.EXPECT().GetTeacherByIdentity(ctx, id).Return(domain.Teacher{}, errors.ErrNotRegistered)
		_, err := fx.engine.HandleEvent(ctx, id, "/start")
		req.NoError(err)

		_, err = fx.engine.HandleEvent(ctx, id, "Student")
		req.NoError(err)

		msgs, err := fx.engine.HandleEvent(ctx, id, "cancel")
		req.NoError(err)
		req.Contains(msgs[0].Text, "cancelled")
		req.Equal(0, fx.sessions.Len())
	})

	t.Run("should restart cleanly when the department vanished mid-dialog", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)
		id := domain.Identity("student-9")

		fx.engine.startRegistration(id)
		_, err := fx.engine.HandleEvent(ctx, id, "Student")
		req.NoError(err)
		_, err = fx.engine.HandleEvent(ctx, id, "Anna Ivanova")
		req.NoError(err)
		_, err = fx.engine.HandleEvent(ctx, id, "skip")
		req.NoError(err)
		_, err = fx.engine.HandleEvent(ctx, id, "skip")
		req.NoError(err)
		fx.departments.EXPECT().List(ctx).Return([]domain.Department{{ID: 3, Name: "Mathematics"}}, nil)
		_, err = fx.engine.HandleEvent(ctx, id, "ИВТ-21")
		req.NoError(err)

		fx.departments.EXPECT().GetByID(ctx, int64(3)).Return(domain.Department{}, errors.ErrNotFound)
		msgs, err := fx.engine.HandleEvent(ctx, id, "Mathematics")
		req.NoError(err)
		req.Contains(msgs[0].Text, "no longer exists")
		req.Equal(0, fx.sessions.Len())
	})
}
