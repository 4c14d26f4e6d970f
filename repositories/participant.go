//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_participant_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"topic-lab/domain"
	"topic-lab/errors"
)

type IParticipantRepository interface {
	GetStudentByIdentity(ctx context.Context, id domain.Identity) (domain.Student, error)
	GetTeacherByIdentity(ctx context.Context, id domain.Identity) (domain.Teacher, error)
	GetTeacherByID(ctx context.Context, teacherID int64) (domain.Teacher, error)
	GetStudentByID(ctx context.Context, studentID int64) (domain.Student, error)
	CreateStudent(ctx context.Context, s NewStudent) (int64, error)
	CreateTeacher(ctx context.Context, t NewTeacher) (int64, error)
	DeleteStudent(ctx context.Context, studentID int64) error
	DeleteTeacher(ctx context.Context, teacherID int64) error
	Roster(ctx context.Context) ([]RosterEntry, error)
	GetProfile(ctx context.Context, role domain.Role, id int64) (domain.Profile, error)
}

type NewStudent struct {
	Identity     domain.Identity
	Name         string
	Email        *string
	Phone        *string
	Group        string
	DepartmentID int64
}

type NewTeacher struct {
	Identity     domain.Identity
	Name         string
	Email        *string
	Phone        *string
	DepartmentID int64
}

// RosterEntry is one selectable line of the profile-view dialog.
type RosterEntry struct {
	Role domain.Role
	ID   int64
	Name string
}

type ParticipantRepository struct {
	pool *pgxpool.Pool
}

func NewParticipantRepository(pool *pgxpool.Pool) IParticipantRepository {
	return &ParticipantRepository{pool: pool}
}

func (r *ParticipantRepository) GetStudentByIdentity(ctx context.Context, id domain.Identity) (domain.Student, error) {
	var s domain.Student
	err := r.pool.QueryRow(ctx, `
		SELECT student_id, identity, name, email, phone, group_name, department_id, created_at
		  FROM students
		 WHERE identity = $1
	`, string(id)).Scan(&s.ID, &s.Identity, &s.Name, &s.Email, &s.Phone, &s.Group, &s.DepartmentID, &s.CreatedAt)
	if isNoRows(err) {
		return domain.Student{}, errors.ErrNotRegistered
	}
	return s, err
}

func (r *ParticipantRepository) GetTeacherByIdentity(ctx context.Context, id domain.Identity) (domain.Teacher, error) {
	var t domain.Teacher
	err := r.pool.QueryRow(ctx, `
		SELECT teacher_id, identity, name, email, phone, department_id, created_at
		  FROM teachers
		 WHERE identity = $1
	`, string(id)).Scan(&t.ID, &t.Identity, &t.Name, &t.Email, &t.Phone, &t.DepartmentID, &t.CreatedAt)
	if isNoRows(err) {
		return domain.Teacher{}, errors.ErrNotRegistered
	}
	return t, err
}

func (r *ParticipantRepository) GetTeacherByID(ctx context.Context, teacherID int64) (domain.Teacher, error) {
	var t domain.Teacher
	err := r.pool.QueryRow(ctx, `
		SELECT teacher_id, identity, name, email, phone, department_id, created_at
		  FROM teachers
		 WHERE teacher_id = $1
	`, teacherID).Scan(&t.ID, &t.Identity, &t.Name, &t.Email, &t.Phone, &t.DepartmentID, &t.CreatedAt)
	if isNoRows(err) {
		return domain.Teacher{}, errors.ErrNotFound
	}
	return t, err
}

func (r *ParticipantRepository) GetStudentByID(ctx context.Context, studentID int64) (domain.Student, error) {
	var s domain.Student
	err := r.pool.QueryRow(ctx, `
		SELECT student_id, identity, name, email, phone, group_name, department_id, created_at
		  FROM students
		 WHERE student_id = $1
	`, studentID).Scan(&s.ID, &s.Identity, &s.Name, &s.Email, &s.Phone, &s.Group, &s.DepartmentID, &s.CreatedAt)
	if isNoRows(err) {
		return domain.Student{}, errors.ErrNotFound
	}
	return s, err
}

// CreateStudent inserts a fresh student row. A duplicated identity or email
// maps to ErrAlreadyRegistered, which also makes a retried terminal dialog
// transition harmless.
func (r *ParticipantRepository) CreateStudent(ctx context.Context, s NewStudent) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO students (identity, name, email, phone, group_name, department_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING student_id
	`, string(s.Identity), s.Name, s.Email, s.Phone, s.Group, s.DepartmentID).Scan(&id)
	if isUniqueViolation(err) {
		return 0, errors.ErrAlreadyRegistered
	}
	if err != nil {
		return 0, fmt.Errorf("create student: %w", err)
	}
	return id, nil
}

func (r *ParticipantRepository) CreateTeacher(ctx context.Context, t NewTeacher) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO teachers (identity, name, email, phone, department_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING teacher_id
	`, string(t.Identity), t.Name, t.Email, t.Phone, t.DepartmentID).Scan(&id)
	if isUniqueViolation(err) {
		return 0, errors.ErrAlreadyRegistered
	}
	if err != nil {
		return 0, fmt.Errorf("create teacher: %w", err)
	}
	return id, nil
}

func (r *ParticipantRepository) DeleteStudent(ctx context.Context, studentID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM students WHERE student_id = $1`, studentID)
	return err
}

func (r *ParticipantRepository) DeleteTeacher(ctx context.Context, teacherID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM teachers WHERE teacher_id = $1`, teacherID)
	return err
}

// Roster lists every participant, teachers first, for the profile dialog.
func (r *ParticipantRepository) Roster(ctx context.Context) ([]RosterEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT 'teacher' AS role, teacher_id AS id, name FROM teachers
		UNION ALL
		SELECT 'student' AS role, student_id AS id, name FROM students
		ORDER BY role DESC, name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []RosterEntry
	for rows.Next() {
		var e RosterEntry
		if err := rows.Scan(&e.Role, &e.ID, &e.Name); err != nil {
			return nil, err
		}
		roster = append(roster, e)
	}
	return roster, rows.Err()
}

func (r *ParticipantRepository) GetProfile(ctx context.Context, role domain.Role, id int64) (domain.Profile, error) {
	var (
		p   domain.Profile
		err error
	)
	p.Role = role
	switch role {
	case domain.RoleTeacher:
		err = r.pool.QueryRow(ctx, `
			SELECT t.name, t.email, t.phone,
			       (SELECT title FROM topics WHERE teacher_id = t.teacher_id LIMIT 1)
			  FROM teachers t
			 WHERE t.teacher_id = $1
		`, id).Scan(&p.Name, &p.Email, &p.Phone, &p.TopicTitle)
	default:
		err = r.pool.QueryRow(ctx, `
			SELECT s.name, s.email, s.phone,
			       (SELECT title FROM topics WHERE student_id = s.student_id LIMIT 1)
			  FROM students s
			 WHERE s.student_id = $1
		`, id).Scan(&p.Name, &p.Email, &p.Phone, &p.TopicTitle)
	}
	if isNoRows(err) {
		return domain.Profile{}, errors.ErrNotFound
	}
	return p, err
}
