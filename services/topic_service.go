package services

import (
	"context"
	"log/slog"

	"topic-lab/contract"
	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/repositories"
)

// TopicService is the lifecycle engine. It owns every status transition a
// dialog can ask for and publishes a domain event for each completed one.
// The conditional statements live in the repository; this layer adds role
// checks and the event/audit exhaust, nothing else touches topic state.
type TopicService struct {
	topics repositories.ITopicRepository
	events contract.EventPublisher
	log    *slog.Logger
}

func NewTopicService(topics repositories.ITopicRepository, events contract.EventPublisher, log *slog.Logger) *TopicService {
	return &TopicService{topics: topics, events: events, log: log}
}

type AuthorInput struct {
	Title        string
	Description  *string
	Keywords     []string
	DepartmentID int64
	// Exactly one of the two is set, depending on who authors the topic.
	// A teacher-authored topic is born pre-approved and supervised; a
	// student-authored one is an unowned proposal awaiting approval.
	TeacherID  *int64
	ProposedBy *int64
}

func (s *TopicService) Author(ctx context.Context, actor domain.Identity, role domain.Role, in AuthorInput) (int64, error) {
	id, err := s.topics.Insert(ctx, repositories.NewTopic{
		Title:        in.Title,
		Description:  in.Description,
		Keywords:     in.Keywords,
		TeacherID:    in.TeacherID,
		ProposedBy:   in.ProposedBy,
		DepartmentID: in.DepartmentID,
	})
	if err != nil {
		return 0, err
	}
	s.events.Publish(event.NewTopicAuthored(actor, role, id, in.Title, in.Keywords))
	return id, nil
}

// Reserve claims a free topic for the student. Conflicts come back as
// ErrTopicUnavailable (lost the race) or ErrStudentHasTopic (the requester
// already holds one); neither mutates anything.
func (s *TopicService) Reserve(ctx context.Context, student domain.Student, topicID int64) (domain.Topic, error) {
	t, err := s.topics.Reserve(ctx, topicID, student.ID)
	if err != nil {
		return domain.Topic{}, err
	}
	s.events.Publish(event.NewTopicReserved(student.Identity, t.ID, t.Title))
	return t, nil
}

// ApproveProposal closes a student-authored proposal under the approving
// teacher. Zero rows means another teacher got there first or the proposal
// vanished.
func (s *TopicService) ApproveProposal(ctx context.Context, teacher domain.Teacher, topicID int64) (domain.Topic, error) {
	t, err := s.topics.ApproveProposal(ctx, topicID, teacher.ID)
	if err != nil {
		return domain.Topic{}, err
	}
	s.events.Publish(event.NewTopicApproved(teacher.Identity, t.ID, t.Title))
	return t, nil
}

// Detach releases the student's own topic back to free. Detaching a topic
// the student does not hold is a no-op reported as ErrTopicNotOwned.
func (s *TopicService) Detach(ctx context.Context, student domain.Student, topicID int64) (domain.Topic, error) {
	t, err := s.topics.Detach(ctx, topicID, student.ID)
	if err != nil {
		return domain.Topic{}, err
	}
	s.events.Publish(event.NewTopicDetached(student.Identity, t.ID, t.Title))
	return t, nil
}

// Release is the teacher-side unreservation of an owned topic.
func (s *TopicService) Release(ctx context.Context, teacher domain.Teacher, topicID int64) (domain.Topic, error) {
	t, err := s.topics.Release(ctx, topicID, teacher.ID)
	if err != nil {
		return domain.Topic{}, err
	}
	s.events.Publish(event.NewTopicReleased(teacher.Identity, t.ID, t.Title))
	return t, nil
}
