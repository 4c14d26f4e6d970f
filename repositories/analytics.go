//go:generate go run go.uber.org/mock/mockgen -source=analytics.go -destination=../mocks/mock_analytics_repository.go -package=mocks
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// IAnalyticsRepository serves the teacher-only reports. All queries are
// read-only aggregations; the projection layer turns them into tables.
type IAnalyticsRepository interface {
	StudentsPerGroup(ctx context.Context) ([]Bucket, error)
	StudentsPerDepartment(ctx context.Context) ([]Bucket, error)
	StudentsWithTopic(ctx context.Context) ([]StudentTopic, error)
	StudentsWithoutTopic(ctx context.Context) ([]string, error)
}

type Bucket struct {
	Label string
	Count int64
}

type StudentTopic struct {
	Student string
	Group   string
	Topic   string
}

type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

func NewAnalyticsRepository(pool *pgxpool.Pool) IAnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

func (r *AnalyticsRepository) StudentsPerGroup(ctx context.Context) ([]Bucket, error) {
	return r.buckets(ctx, `
		SELECT group_name AS label, count(*) AS cnt
		  FROM students
		 GROUP BY group_name
		 ORDER BY cnt DESC, label
	`)
}

func (r *AnalyticsRepository) StudentsPerDepartment(ctx context.Context) ([]Bucket, error) {
	return r.buckets(ctx, `
		SELECT COALESCE(d.name, 'unassigned') AS label, count(*) AS cnt
		  FROM students s
		  LEFT JOIN departments d ON s.department_id = d.department_id
		 GROUP BY label
		 ORDER BY cnt DESC, label
	`)
}

func (r *AnalyticsRepository) buckets(ctx context.Context, sql string) ([]Bucket, error) {
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []Bucket
	for rows.Next() {
		var b Bucket
		if err := rows.Scan(&b.Label, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	return buckets, rows.Err()
}

func (r *AnalyticsRepository) StudentsWithTopic(ctx context.Context) ([]StudentTopic, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.name, s.group_name, t.title
		  FROM students s
		  JOIN topics t ON t.student_id = s.student_id
		 ORDER BY s.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []StudentTopic
	for rows.Next() {
		var st StudentTopic
		if err := rows.Scan(&st.Student, &st.Group, &st.Topic); err != nil {
			return nil, err
		}
		result = append(result, st)
	}
	return result, rows.Err()
}

func (r *AnalyticsRepository) StudentsWithoutTopic(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT s.name
		  FROM students s
		 WHERE NOT EXISTS (SELECT 1 FROM topics t WHERE t.student_id = s.student_id)
		 ORDER BY s.name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, err
		}
		names = append(names, n)
	}
	return names, rows.Err()
}
