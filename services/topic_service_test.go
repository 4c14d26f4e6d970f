package services

import (
	"context"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/errors"
	"topic-lab/mocks"
	"topic-lab/repositories"
)

func TestTopicService(t *testing.T) {
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelError)
	student := domain.Student{ID: 5, Identity: "student-42", Name: "Ivan Petrov", DepartmentID: 7}
	teacher := domain.Teacher{ID: 3, Identity: "teacher-1", Name: "Prof. Orlov", DepartmentID: 7}

	newService := func(t *testing.T) (*TopicService, *mocks.MockITopicRepository, *mocks.MockEventPublisher) {
		ctrl := gomock.NewController(t)
		topics := mocks.NewMockITopicRepository(ctrl)
		publisher := mocks.NewMockEventPublisher(ctrl)
		return NewTopicService(topics, publisher, log), topics, publisher
	}

	t.Run("should publish a reservation event on success", func(t *testing.T) {
		req := require.New(t)
		svc, topics, publisher := newService(t)

		studentID := int64(5)
		reserved := domain.Topic{ID: 1, Title: "Graph sharding", Status: domain.StatusReserved, StudentID: &studentID}
		topics.EXPECT().Reserve(ctx, int64(1), int64(5)).Return(reserved, nil)
		publisher.EXPECT().
			Publish(gomock.Any()).
			Do(func(e event.DomainEvent) {
				req.Equal(domain.ActionReserved, e.Action())
				req.Equal(student.Identity, e.Actor())
			})

		got, err := svc.Reserve(ctx, student, 1)
		req.NoError(err)
		req.Equal(reserved, got)
	})

	t.Run("should pass conflicts through untouched and publish nothing", func(t *testing.T) {
		req := require.New(t)
		svc, topics, publisher := newService(t)

		topics.EXPECT().Reserve(ctx, int64(1), int64(5)).Return(domain.Topic{}, errors.ErrTopicUnavailable)
		topics.EXPECT().Reserve(ctx, int64(2), int64(5)).Return(domain.Topic{}, errors.ErrStudentHasTopic)
		publisher.EXPECT().Publish(gomock.Any()).Times(0)

		_, err := svc.Reserve(ctx, student, 1)
		req.ErrorIs(err, errors.ErrTopicUnavailable)
		_, err = svc.Reserve(ctx, student, 2)
		req.ErrorIs(err, errors.ErrStudentHasTopic)
	})

	t.Run("should author a supervised topic for a teacher", func(t *testing.T) {
		req := require.New(t)
		svc, topics, publisher := newService(t)

		teacherID := int64(3)
		in := AuthorInput{
			Title:        "Cache warmup strategies",
			Keywords:     []string{"cache", "latency"},
			DepartmentID: 7,
			TeacherID:    &teacherID,
		}
		topics.EXPECT().
			Insert(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, nt repositories.NewTopic) (int64, error) {
				req.Equal(in.Title, nt.Title)
				req.Equal(&teacherID, nt.TeacherID)
				req.Nil(nt.ProposedBy)
				return 9, nil
			})
		publisher.EXPECT().Publish(gomock.Any())

		id, err := svc.Author(ctx, teacher.Identity, domain.RoleTeacher, in)
		req.NoError(err)
		req.Equal(int64(9), id)
	})

	t.Run("should report detaching a topic the student does not hold", func(t *testing.T) {
		req := require.New(t)
		svc, topics, publisher := newService(t)

		topics.EXPECT().Detach(ctx, int64(4), int64(5)).Return(domain.Topic{}, errors.ErrTopicNotOwned)
		publisher.EXPECT().Publish(gomock.Any()).Times(0)

		_, err := svc.Detach(ctx, student, 4)
		req.ErrorIs(err, errors.ErrTopicNotOwned)
	})

	t.Run("should publish a release event for the teacher", func(t *testing.T) {
		req := require.New(t)
		svc, topics, publisher := newService(t)

		released := domain.Topic{ID: 4, Title: "Graph sharding", Status: domain.StatusFree}
		topics.EXPECT().Release(ctx, int64(4), int64(3)).Return(released, nil)
		publisher.EXPECT().
			Publish(gomock.Any()).
			Do(func(e event.DomainEvent) {
				req.Equal(domain.ActionReleased, e.Action())
			})

		got, err := svc.Release(ctx, teacher, 4)
		req.NoError(err)
		req.Equal(released, got)
	})
}
