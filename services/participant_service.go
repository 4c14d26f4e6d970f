package services

import (
	"context"
	"log/slog"

	"topic-lab/auth"
	"topic-lab/contract"
	"topic-lab/domain"
	"topic-lab/domain/event"
	"topic-lab/errors"
	"topic-lab/repositories"
)

// ParticipantService commits registration dialogs, resolves identities and
// handles account deletion with its per-role topic cascade.
type ParticipantService struct {
	participants   repositories.IParticipantRepository
	topics         repositories.ITopicRepository
	accessCodeHash string
	events         contract.EventPublisher
	log            *slog.Logger
}

func NewParticipantService(
	participants repositories.IParticipantRepository,
	topics repositories.ITopicRepository,
	accessCodeHash string,
	events contract.EventPublisher,
	log *slog.Logger,
) *ParticipantService {
	return &ParticipantService{
		participants:   participants,
		topics:         topics,
		accessCodeHash: accessCodeHash,
		events:         events,
		log:            log,
	}
}

type RegistrationInput struct {
	Identity     domain.Identity
	Role         domain.Role
	Name         string
	Email        *string
	Phone        *string
	Group        string // students only
	DepartmentID int64
}

// VerifyAccessCode checks a candidate teacher code against the configured
// digest. A wrong code is a validation failure, not an error.
func (s *ParticipantService) VerifyAccessCode(code string) (bool, error) {
	return auth.VerifyAccessCode(code, s.accessCodeHash)
}

// Register commits a completed registration dialog. A duplicate identity
// surfaces as ErrAlreadyRegistered, which makes a retried terminal
// transition a no-op rather than a second account.
func (s *ParticipantService) Register(ctx context.Context, in RegistrationInput) error {
	var err error
	switch in.Role {
	case domain.RoleTeacher:
		_, err = s.participants.CreateTeacher(ctx, repositories.NewTeacher{
			Identity:     in.Identity,
			Name:         in.Name,
			Email:        in.Email,
			Phone:        in.Phone,
			DepartmentID: in.DepartmentID,
		})
	default:
		_, err = s.participants.CreateStudent(ctx, repositories.NewStudent{
			Identity:     in.Identity,
			Name:         in.Name,
			Email:        in.Email,
			Phone:        in.Phone,
			Group:        in.Group,
			DepartmentID: in.DepartmentID,
		})
	}
	if err != nil {
		return err
	}
	s.events.Publish(event.NewParticipantRegistered(in.Identity, in.Role))
	return nil
}

// WhoIs resolves the role of an identity, or ErrNotRegistered.
func (s *ParticipantService) WhoIs(ctx context.Context, id domain.Identity) (domain.Role, error) {
	if _, err := s.participants.GetStudentByIdentity(ctx, id); err == nil {
		return domain.RoleStudent, nil
	} else if err != errors.ErrNotRegistered {
		return "", err
	}
	if _, err := s.participants.GetTeacherByIdentity(ctx, id); err == nil {
		return domain.RoleTeacher, nil
	} else if err != errors.ErrNotRegistered {
		return "", err
	}
	return "", errors.ErrNotRegistered
}

func (s *ParticipantService) Student(ctx context.Context, id domain.Identity) (domain.Student, error) {
	return s.participants.GetStudentByIdentity(ctx, id)
}

func (s *ParticipantService) Teacher(ctx context.Context, id domain.Identity) (domain.Teacher, error) {
	return s.participants.GetTeacherByIdentity(ctx, id)
}

func (s *ParticipantService) StudentByID(ctx context.Context, studentID int64) (domain.Student, error) {
	return s.participants.GetStudentByID(ctx, studentID)
}

// DeleteAccount removes the participant and cascades to their topics: a
// student's proposals are deleted and their held topic freed, a teacher's
// supervised topics are deleted.
func (s *ParticipantService) DeleteAccount(ctx context.Context, id domain.Identity) (domain.Role, error) {
	if student, err := s.participants.GetStudentByIdentity(ctx, id); err == nil {
		if err := s.topics.DeleteByStudent(ctx, student.ID); err != nil {
			return "", err
		}
		if err := s.participants.DeleteStudent(ctx, student.ID); err != nil {
			return "", err
		}
		s.events.Publish(event.NewAccountDeleted(id, domain.RoleStudent))
		return domain.RoleStudent, nil
	}

	teacher, err := s.participants.GetTeacherByIdentity(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.topics.DeleteByTeacher(ctx, teacher.ID); err != nil {
		return "", err
	}
	if err := s.participants.DeleteTeacher(ctx, teacher.ID); err != nil {
		return "", err
	}
	s.events.Publish(event.NewAccountDeleted(id, domain.RoleTeacher))
	return domain.RoleTeacher, nil
}

func (s *ParticipantService) Roster(ctx context.Context) ([]repositories.RosterEntry, error) {
	return s.participants.Roster(ctx)
}

func (s *ParticipantService) Profile(ctx context.Context, role domain.Role, id int64) (domain.Profile, error) {
	return s.participants.GetProfile(ctx, role, id)
}
