package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"topic-lab/contract"
	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/errors"
	"topic-lab/repositories"
)

// Decision tokens the transport echoes back when the teacher picks one of
// the two inline actions. Everything after the prefix is the request ID.
const (
	ApprovePrefix = "approve:"
	DeclinePrefix = "decline:"
)

type pendingRequest struct {
	TopicID    int64
	TopicTitle string
	Student    domain.Identity
	Teacher    domain.Identity
}

// HandshakeService correlates a student's claim on a supervised topic with
// the owning teacher's later decision. Requests are process-local and never
// expire; a decision may land arbitrarily late, in which case the store's
// conditional update, not the request registry, decides whether it still
// applies.
type HandshakeService struct {
	mu      sync.Mutex
	pending map[uuid.UUID]pendingRequest

	topics       repositories.ITopicRepository
	participants repositories.IParticipantRepository
	notifier     contract.Notifier
	events       contract.EventPublisher
	log          *slog.Logger
}

func NewHandshakeService(
	topics repositories.ITopicRepository,
	participants repositories.IParticipantRepository,
	notifier contract.Notifier,
	events contract.EventPublisher,
	log *slog.Logger,
) *HandshakeService {
	return &HandshakeService{
		pending:      make(map[uuid.UUID]pendingRequest),
		topics:       topics,
		participants: participants,
		notifier:     notifier,
		events:       events,
		log:          log,
	}
}

// Request registers the student's claim and notifies the owning teacher
// with the two mutually exclusive decision actions. The topic is not
// mutated; it stays free until the teacher approves.
func (s *HandshakeService) Request(ctx context.Context, student domain.Student, topic domain.Topic) error {
	if !topic.Supervised() {
		return errors.ErrTopicUnavailable
	}
	teacher, err := s.teacherByID(ctx, *topic.TeacherID)
	if err != nil {
		return err
	}

	id := uuid.New()
	s.mu.Lock()
	s.pending[id] = pendingRequest{
		TopicID:    topic.ID,
		TopicTitle: topic.Title,
		Student:    student.Identity,
		Teacher:    teacher.Identity,
	}
	s.mu.Unlock()

	msg := domain.Message{
		To:   teacher.Identity,
		Text: fmt.Sprintf("Student %s asks to take the topic «%s».", student.Name, topic.Title),
		Options: []domain.Option{
			{Key: ApprovePrefix + id.String(), Label: "Approve"},
			{Key: DeclinePrefix + id.String(), Label: "Decline"},
		},
	}
	if err := s.notifier.Notify(ctx, msg); err != nil {
		return err
	}
	s.events.Publish(event.NewReservationRequested(student.Identity, topic.ID, topic.Title))
	return nil
}

// Approve applies the lifecycle approval for the specific correlated
// student, resolved by identity at decision time rather than from any
// session state. A topic that was claimed, released to another student, or
// deleted since the request makes the decision stale: nothing is written
// and ErrStaleDecision tells the caller to report that explicitly instead
// of a false confirmation.
func (s *HandshakeService) Approve(ctx context.Context, teacher domain.Teacher, requestID uuid.UUID) (string, error) {
	req, ok := s.lookup(requestID)
	if !ok || req.Teacher != teacher.Identity {
		return "", errors.ErrUnknownRequest
	}

	student, err := s.participants.GetStudentByIdentity(ctx, req.Student)
	if err != nil {
		s.drop(requestID)
		return req.TopicTitle, errors.ErrStaleDecision
	}

	t, err := s.topics.ApproveForStudent(ctx, req.TopicID, teacher.ID, student.ID)
	switch err {
	case nil:
	case errors.ErrTopicUnavailable, errors.ErrStudentHasTopic:
		s.drop(requestID)
		return req.TopicTitle, errors.ErrStaleDecision
	default:
		return "", err
	}

	s.drop(requestID)
	s.events.Publish(event.NewTopicApproved(teacher.Identity, t.ID, t.Title))
	if err := s.notifier.Notify(ctx, domain.Message{
		To:   req.Student,
		Text: fmt.Sprintf("Your request for the topic «%s» was approved.", t.Title),
	}); err != nil {
		s.log.Warn("approval notification failed", "student", req.Student, "error", err)
	}
	return t.Title, nil
}

// Decline notifies the student and mutates nothing. The request stays
// registered: repeated declines are harmless and the teacher may still
// approve later.
func (s *HandshakeService) Decline(ctx context.Context, teacher domain.Teacher, requestID uuid.UUID) (string, error) {
	req, ok := s.lookup(requestID)
	if !ok || req.Teacher != teacher.Identity {
		return "", errors.ErrUnknownRequest
	}

	s.events.Publish(event.NewReservationDeclined(teacher.Identity, req.TopicID))
	return req.TopicTitle, s.notifier.Notify(ctx, domain.Message{
		To:   req.Student,
		Text: fmt.Sprintf("The teacher declined your request for the topic «%s».", req.TopicTitle),
	})
}

// PendingCount is exposed for monitoring.
func (s *HandshakeService) PendingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

func (s *HandshakeService) lookup(id uuid.UUID) (pendingRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, ok := s.pending[id]
	return req, ok
}

func (s *HandshakeService) drop(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, id)
}

func (s *HandshakeService) teacherByID(ctx context.Context, teacherID int64) (domain.Teacher, error) {
	t, err := s.participants.GetTeacherByID(ctx, teacherID)
	if err != nil {
		return domain.Teacher{}, errors.ErrNotFound
	}
	return t, nil
}
