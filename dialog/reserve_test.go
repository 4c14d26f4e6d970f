package dialog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"topic-lab/domain"
	"topic-lab/errors"
)

func TestReserve(t *testing.T) {
	ctx := context.Background()
	id := domain.Identity("student-42")
	student := domain.Student{ID: 5, Identity: id, Name: "Ivan Petrov", Group: "ИВТ-21", DepartmentID: 7}

	free := []domain.Topic{
		{ID: 1, Title: "Graph sharding", Status: domain.StatusFree, DepartmentID: 7},
		{ID: 2, Title: "Cache warmup strategies", Status: domain.StatusFree, DepartmentID: 7},
	}

	t.Run("should reserve a free topic end to end", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, id).Return(domain.Teacher{}, errors.ErrNotRegistered)
		fx.participants.EXPECT().GetStudentByIdentity(ctx, id).Return(student, nil).Times(2)
		fx.topics.EXPECT().ListFreeUnsupervised(ctx, int64(7), 10).Return(free, nil)

		msgs, err := fx.engine.HandleEvent(ctx, id, "free topics")
		req.NoError(err)
		req.Len(msgs[0].Options, 2)

		studentID := int64(5)
		reserved := free[0]
		reserved.Status = domain.StatusReserved
		reserved.StudentID = &studentID
		fx.topics.EXPECT().Reserve(ctx, int64(1), int64(5)).Return(reserved, nil)

		msgs, err = fx.engine.HandleEvent(ctx, id, "Graph sharding")
		req.NoError(err)
		req.Equal("Topic «Graph sharding» successfully reserved.", msgs[0].Text)
		req.Equal(0, fx.sessions.Len())
	})

	t.Run("should report a lost race without mutating anything", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, id).Return(domain.Teacher{}, errors.ErrNotRegistered)
		fx.participants.EXPECT().GetStudentByIdentity(ctx, id).Return(student, nil).Times(2)
		fx.topics.EXPECT().ListFreeUnsupervised(ctx, int64(7), 10).Return(free, nil)

		_, err := fx.engine.HandleEvent(ctx, id, "free topics")
		req.NoError(err)

		fx.topics.EXPECT().Reserve(ctx, int64(2), int64(5)).Return(domain.Topic{}, errors.ErrTopicUnavailable)
		msgs, err := fx.engine.HandleEvent(ctx, id, "Cache warmup strategies")
		req.NoError(err)
		req.Contains(msgs[0].Text, "no longer available")
	})

	t.Run("should refuse a second topic for the same student", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, id).Return(domain.Teacher{}, errors.ErrNotRegistered)
		fx.participants.EXPECT().GetStudentByIdentity(ctx, id).Return(student, nil).Times(2)
		fx.topics.EXPECT().ListFreeUnsupervised(ctx, int64(7), 10).Return(free, nil)

		_, err := fx.engine.HandleEvent(ctx, id, "free topics")
		req.NoError(err)

		fx.topics.EXPECT().Reserve(ctx, int64(1), int64(5)).Return(domain.Topic{}, errors.ErrStudentHasTopic)
		msgs, err := fx.engine.HandleEvent(ctx, id, "Graph sharding")
		req.NoError(err)
		req.Contains(msgs[0].Text, "already have a reserved topic")
	})

	t.Run("should keep the dialog alive on an unlisted answer", func(t *testing.T) {
		req := require.New(t)
		fx := newFixtures(t)

		fx.participants.EXPECT().GetTeacherByIdentity(ctx, id).Return(domain.Teacher{}, errors.ErrNotRegistered)
		fx.participants.EXPECT().GetStudentByIdentity(ctx, id).Return(student, nil)
		fx.topics.EXPECT().ListFreeUnsupervised(ctx, int64(7), 10).Return(free, nil)

		_, err := fx.engine.HandleEvent(ctx, id, "free topics")
		req.NoError(err)

		msgs, err := fx.engine.HandleEvent(ctx, id, "Quantum gardening")
		req.NoError(err)
		req.Contains(msgs[0].Text, "pick one of the listed topics")
		req.Equal(1, fx.sessions.Len())
	})
}
