//go:generate go run go.uber.org/mock/mockgen -source=topic.go -destination=../mocks/mock_topic_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"topic-lab/domain"
	"topic-lab/errors"
)

// ITopicRepository is the single home of every conditional topic statement.
// Callers never build their own UPDATE; all lifecycle transitions funnel
// through these operations so the status/ownership invariant cannot be
// broken from a call site.
type ITopicRepository interface {
	Insert(ctx context.Context, t NewTopic) (int64, error)
	GetByID(ctx context.Context, id int64) (domain.Topic, error)

	// Conditional transitions. Zero affected rows maps to
	// errors.ErrTopicUnavailable (claims) or errors.ErrTopicNotOwned
	// (detach/release); a one-topic-per-student collision maps to
	// errors.ErrStudentHasTopic.
	Reserve(ctx context.Context, topicID, studentID int64) (domain.Topic, error)
	ApproveProposal(ctx context.Context, topicID, teacherID int64) (domain.Topic, error)
	ApproveForStudent(ctx context.Context, topicID, teacherID, studentID int64) (domain.Topic, error)
	Detach(ctx context.Context, topicID, studentID int64) (domain.Topic, error)
	Release(ctx context.Context, topicID, teacherID int64) (domain.Topic, error)

	ListFreeUnsupervised(ctx context.Context, departmentID int64, limit int) ([]domain.Topic, error)
	ListFreeSupervised(ctx context.Context, limit int) ([]domain.Topic, error)
	ListProposals(ctx context.Context, limit int) ([]domain.TopicCard, error)
	ListByStudent(ctx context.Context, studentID int64) ([]domain.Topic, error)
	ListByTeacher(ctx context.Context, teacherID int64) ([]domain.Topic, error)

	ListFreeCards(ctx context.Context, limit int) ([]domain.TopicCard, error)
	ListCards(ctx context.Context, limit int) ([]domain.TopicCard, error)
	SearchByTitle(ctx context.Context, term string, limit int) ([]domain.TopicCard, error)
	SearchByTeacher(ctx context.Context, name string, limit int) ([]domain.TopicCard, error)
	ListByCategory(ctx context.Context, categoryID int64) ([]domain.TopicCard, error)

	DeleteByStudent(ctx context.Context, studentID int64) error
	DeleteByTeacher(ctx context.Context, teacherID int64) error
}

type NewTopic struct {
	Title        string
	Description  *string
	Keywords     []string
	TeacherID    *int64
	ProposedBy   *int64
	DepartmentID int64
}

type TopicRepository struct {
	pool *pgxpool.Pool
}

func NewTopicRepository(pool *pgxpool.Pool) ITopicRepository {
	return &TopicRepository{pool: pool}
}

const topicColumns = `topic_id, title, description, keywords, status, teacher_id, student_id, proposed_by, department_id`

func scanTopic(row pgx.Row) (domain.Topic, error) {
	var t domain.Topic
	err := row.Scan(
		&t.ID,
		&t.Title,
		&t.Description,
		&t.Keywords,
		&t.Status,
		&t.TeacherID,
		&t.StudentID,
		&t.ProposedBy,
		&t.DepartmentID,
	)
	return t, err
}

func (r *TopicRepository) Insert(ctx context.Context, t NewTopic) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO topics (title, description, keywords, status, teacher_id, proposed_by, department_id)
		VALUES ($1, $2, $3, 'free', $4, $5, $6)
		RETURNING topic_id
	`, t.Title, t.Description, t.Keywords, t.TeacherID, t.ProposedBy, t.DepartmentID).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert topic: %w", err)
	}
	return id, nil
}

func (r *TopicRepository) GetByID(ctx context.Context, id int64) (domain.Topic, error) {
	t, err := scanTopic(r.pool.QueryRow(ctx, `
		SELECT `+topicColumns+` FROM topics WHERE topic_id = $1
	`, id))
	if isNoRows(err) {
		return domain.Topic{}, errors.ErrNotFound
	}
	return t, err
}

// Reserve is the student self-service claim. The WHERE clause is the whole
// concurrency story: only a still-free row can flip to reserved, so of N
// concurrent attempts exactly one sees a row come back. The partial unique
// index on student_id rejects a second topic for the same student even when
// two reservations race on different rows.
func (r *TopicRepository) Reserve(ctx context.Context, topicID, studentID int64) (domain.Topic, error) {
	t, err := scanTopic(r.pool.QueryRow(ctx, `
		UPDATE topics
		   SET status = 'reserved', student_id = $1
		 WHERE topic_id = $2
		   AND status = 'free'
		   AND NOT EXISTS (SELECT 1 FROM topics WHERE student_id = $1)
		RETURNING `+topicColumns, studentID, topicID))
	switch {
	case isNoRows(err):
		return domain.Topic{}, errors.ErrTopicUnavailable
	case isUniqueViolation(err):
		return domain.Topic{}, errors.ErrStudentHasTopic
	case err != nil:
		return domain.Topic{}, fmt.Errorf("reserve topic %d: %w", topicID, err)
	}
	return t, nil
}

// ApproveProposal closes a student-authored, still-unowned proposal. The
// proposer recorded at authoring time becomes the holder in the same
// statement, so the closed row never lacks a student.
func (r *TopicRepository) ApproveProposal(ctx context.Context, topicID, teacherID int64) (domain.Topic, error) {
	t, err := scanTopic(r.pool.QueryRow(ctx, `
		UPDATE topics
		   SET status = 'closed', teacher_id = $1, student_id = proposed_by
		 WHERE topic_id = $2
		   AND status = 'free'
		   AND student_id IS NULL
		   AND proposed_by IS NOT NULL
		RETURNING `+topicColumns, teacherID, topicID))
	switch {
	case isNoRows(err):
		return domain.Topic{}, errors.ErrTopicUnavailable
	case isUniqueViolation(err):
		return domain.Topic{}, errors.ErrStudentHasTopic
	case err != nil:
		return domain.Topic{}, fmt.Errorf("approve proposal %d: %w", topicID, err)
	}
	return t, nil
}

// ApproveForStudent resolves a handshake decision. The teacher must still
// own the row and it must still be free; anything else means the topic
// moved on since the request and the decision is stale.
func (r *TopicRepository) ApproveForStudent(ctx context.Context, topicID, teacherID, studentID int64) (domain.Topic, error) {
	t, err := scanTopic(r.pool.QueryRow(ctx, `
		UPDATE topics
		   SET status = 'closed', student_id = $1
		 WHERE topic_id = $2
		   AND teacher_id = $3
		   AND status = 'free'
		   AND student_id IS NULL
		RETURNING `+topicColumns, studentID, topicID, teacherID))
	switch {
	case isNoRows(err):
		return domain.Topic{}, errors.ErrTopicUnavailable
	case isUniqueViolation(err):
		return domain.Topic{}, errors.ErrStudentHasTopic
	case err != nil:
		return domain.Topic{}, fmt.Errorf("approve topic %d for student %d: %w", topicID, studentID, err)
	}
	return t, nil
}

// Detach releases a topic held by the requesting student, whatever its
// status. Detaching a topic the student does not hold affects zero rows.
func (r *TopicRepository) Detach(ctx context.Context, topicID, studentID int64) (domain.Topic, error) {
	t, err := scanTopic(r.pool.QueryRow(ctx, `
		UPDATE topics
		   SET status = 'free', student_id = NULL
		 WHERE topic_id = $1
		   AND student_id = $2
		RETURNING `+topicColumns, topicID, studentID))
	if isNoRows(err) {
		return domain.Topic{}, errors.ErrTopicNotOwned
	}
	if err != nil {
		return domain.Topic{}, fmt.Errorf("detach topic %d: %w", topicID, err)
	}
	return t, nil
}

// Release is the teacher-side unreservation of a topic the teacher owns.
func (r *TopicRepository) Release(ctx context.Context, topicID, teacherID int64) (domain.Topic, error) {
	t, err := scanTopic(r.pool.QueryRow(ctx, `
		UPDATE topics
		   SET status = 'free', student_id = NULL
		 WHERE topic_id = $1
		   AND teacher_id = $2
		   AND student_id IS NOT NULL
		RETURNING `+topicColumns, topicID, teacherID))
	if isNoRows(err) {
		return domain.Topic{}, errors.ErrTopicNotOwned
	}
	if err != nil {
		return domain.Topic{}, fmt.Errorf("release topic %d: %w", topicID, err)
	}
	return t, nil
}

func (r *TopicRepository) ListFreeUnsupervised(ctx context.Context, departmentID int64, limit int) ([]domain.Topic, error) {
	return r.listTopics(ctx, `
		SELECT `+topicColumns+`
		  FROM topics
		 WHERE status = 'free' AND teacher_id IS NULL AND department_id = $1
		 ORDER BY title
		 LIMIT $2
	`, departmentID, limit)
}

func (r *TopicRepository) ListFreeSupervised(ctx context.Context, limit int) ([]domain.Topic, error) {
	return r.listTopics(ctx, `
		SELECT `+topicColumns+`
		  FROM topics
		 WHERE status = 'free' AND teacher_id IS NOT NULL
		 ORDER BY title
		 LIMIT $1
	`, limit)
}

func (r *TopicRepository) ListByStudent(ctx context.Context, studentID int64) ([]domain.Topic, error) {
	return r.listTopics(ctx, `
		SELECT `+topicColumns+` FROM topics WHERE student_id = $1 ORDER BY title
	`, studentID)
}

func (r *TopicRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]domain.Topic, error) {
	return r.listTopics(ctx, `
		SELECT `+topicColumns+` FROM topics WHERE teacher_id = $1 ORDER BY title
	`, teacherID)
}

func (r *TopicRepository) listTopics(ctx context.Context, sql string, args ...any) ([]domain.Topic, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []domain.Topic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, err
		}
		topics = append(topics, t)
	}
	return topics, rows.Err()
}

const cardSelect = `
	SELECT t.topic_id, t.title, t.description, t.keywords, t.status,
	       te.name AS teacher_name,
	       s.name  AS student_name
	  FROM topics t
	  LEFT JOIN teachers te ON t.teacher_id = te.teacher_id
	  LEFT JOIN students s  ON t.student_id = s.student_id
`

func (r *TopicRepository) ListProposals(ctx context.Context, limit int) ([]domain.TopicCard, error) {
	return r.listCards(ctx, cardSelect+`
		 WHERE t.status = 'free' AND t.student_id IS NULL AND t.proposed_by IS NOT NULL
		 ORDER BY t.title
		 LIMIT $1
	`, limit)
}

func (r *TopicRepository) ListFreeCards(ctx context.Context, limit int) ([]domain.TopicCard, error) {
	return r.listCards(ctx, cardSelect+`
		 WHERE t.status = 'free'
		 ORDER BY t.title
		 LIMIT $1
	`, limit)
}

func (r *TopicRepository) ListCards(ctx context.Context, limit int) ([]domain.TopicCard, error) {
	return r.listCards(ctx, cardSelect+`
		 ORDER BY t.title
		 LIMIT $1
	`, limit)
}

func (r *TopicRepository) SearchByTitle(ctx context.Context, term string, limit int) ([]domain.TopicCard, error) {
	return r.listCards(ctx, cardSelect+`
		 WHERE t.title ILIKE '%' || $1 || '%'
		 ORDER BY t.title
		 LIMIT $2
	`, term, limit)
}

func (r *TopicRepository) SearchByTeacher(ctx context.Context, name string, limit int) ([]domain.TopicCard, error) {
	return r.listCards(ctx, `
		SELECT t.topic_id, t.title, t.description, t.keywords, t.status,
		       te.name AS teacher_name,
		       s.name  AS student_name
		  FROM topics t
		  JOIN teachers te ON t.teacher_id = te.teacher_id
		  LEFT JOIN students s ON t.student_id = s.student_id
		 WHERE te.name ILIKE '%' || $1 || '%'
		 ORDER BY t.title
		 LIMIT $2
	`, name, limit)
}

func (r *TopicRepository) ListByCategory(ctx context.Context, categoryID int64) ([]domain.TopicCard, error) {
	return r.listCards(ctx, cardSelect+`
		  JOIN topic_categories tc ON tc.topic_id = t.topic_id
		 WHERE tc.category_id = $1
		 ORDER BY t.title
	`, categoryID)
}

func (r *TopicRepository) listCards(ctx context.Context, sql string, args ...any) ([]domain.TopicCard, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cards []domain.TopicCard
	for rows.Next() {
		var c domain.TopicCard
		if err := rows.Scan(&c.ID, &c.Title, &c.Description, &c.Keywords, &c.Status, &c.TeacherName, &c.StudentName); err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

// DeleteByStudent removes the student's own proposals and frees any
// teacher-authored topic they were holding.
func (r *TopicRepository) DeleteByStudent(ctx context.Context, studentID int64) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
		DELETE FROM topics WHERE proposed_by = $1
	`, studentID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `
		UPDATE topics SET status = 'free', student_id = NULL WHERE student_id = $1
	`, studentID); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *TopicRepository) DeleteByTeacher(ctx context.Context, teacherID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM topics WHERE teacher_id = $1`, teacherID)
	return err
}
