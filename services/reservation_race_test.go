package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/errors"
	"topic-lab/repositories"
)

// racyTopicStore reproduces the store's conditional-update semantics in
// memory: each transition checks its precondition and applies its write
// under one lock, like a single UPDATE statement does.
type racyTopicStore struct {
	repositories.ITopicRepository

	mu     sync.Mutex
	topics map[int64]*domain.Topic
	held   map[int64]int64
}

func newRacyTopicStore(topics ...domain.Topic) *racyTopicStore {
	s := &racyTopicStore{
		topics: make(map[int64]*domain.Topic),
		held:   make(map[int64]int64),
	}
	for _, t := range topics {
		cp := t
		s.topics[t.ID] = &cp
	}
	return s
}

func (s *racyTopicStore) Reserve(_ context.Context, topicID, studentID int64) (domain.Topic, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.topics[topicID]
	if !ok || t.Status != domain.StatusFree {
		return domain.Topic{}, errors.ErrTopicUnavailable
	}
	if _, taken := s.held[studentID]; taken {
		return domain.Topic{}, errors.ErrStudentHasTopic
	}
	sid := studentID
	t.Status = domain.StatusReserved
	t.StudentID = &sid
	s.held[studentID] = topicID
	return *t, nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(event.DomainEvent) {}

func TestReserveUnderContention(t *testing.T) {
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelError)

	t.Run("should hand one topic to exactly one of many students", func(t *testing.T) {
		req := require.New(t)
		store := newRacyTopicStore(domain.Topic{ID: 1, Title: "Graph sharding", Status: domain.StatusFree})
		svc := NewTopicService(store, nopPublisher{}, log)

		const contenders = 64
		results := make([]error, contenders)
		var wg sync.WaitGroup
		for i := range contenders {
			wg.Add(1)
			go func() {
				defer wg.Done()
				student := domain.Student{
					ID:       int64(i + 1),
					Identity: domain.Identity(fmt.Sprintf("student-%d", i+1)),
				}
				_, results[i] = svc.Reserve(ctx, student, 1)
			}()
		}
		wg.Wait()

		winners := 0
		for _, err := range results {
			switch err {
			case nil:
				winners++
			case errors.ErrTopicUnavailable:
			default:
				req.FailNowf("unexpected error", "%v", err)
			}
		}
		req.Equal(1, winners)

		final := store.topics[1]
		req.Equal(domain.StatusReserved, final.Status)
		req.True(final.Consistent())
	})

	t.Run("should hand one student at most one of many topics", func(t *testing.T) {
		req := require.New(t)

		const boardSize = 16
		board := make([]domain.Topic, 0, boardSize)
		for i := range boardSize {
			board = append(board, domain.Topic{
				ID:     int64(i + 1),
				Title:  fmt.Sprintf("Topic %d", i+1),
				Status: domain.StatusFree,
			})
		}
		store := newRacyTopicStore(board...)
		svc := NewTopicService(store, nopPublisher{}, log)
		student := domain.Student{ID: 5, Identity: "student-42"}

		results := make([]error, boardSize)
		var wg sync.WaitGroup
		for i := range boardSize {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, results[i] = svc.Reserve(ctx, student, int64(i+1))
			}()
		}
		wg.Wait()

		winners := 0
		for _, err := range results {
			switch err {
			case nil:
				winners++
			case errors.ErrStudentHasTopic:
			default:
				req.FailNowf("unexpected error", "%v", err)
			}
		}
		req.Equal(1, winners)

		reserved := 0
		for _, topic := range store.topics {
			if topic.Status == domain.StatusReserved {
				reserved++
			}
		}
		req.Equal(1, reserved)
	})
}
