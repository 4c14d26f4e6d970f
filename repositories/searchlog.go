//go:generate go run go.uber.org/mock/mockgen -source=searchlog.go -destination=../mocks/mock_searchlog_repository.go -package=mocks
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"topic-lab/domain"
)

type ISearchLogRepository interface {
	Append(ctx context.Context, id domain.Identity, query string) error
	Popular(ctx context.Context, limit int) ([]QueryCount, error)
}

type QueryCount struct {
	Query string
	Count int64
}

type SearchLogRepository struct {
	pool *pgxpool.Pool
}

func NewSearchLogRepository(pool *pgxpool.Pool) ISearchLogRepository {
	return &SearchLogRepository{pool: pool}
}

func (r *SearchLogRepository) Append(ctx context.Context, id domain.Identity, query string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO search_logs (identity, query) VALUES ($1, $2)
	`, string(id), query)
	return err
}

func (r *SearchLogRepository) Popular(ctx context.Context, limit int) ([]QueryCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lower(query) AS q, count(*) AS cnt
		  FROM search_logs
		 GROUP BY q
		 ORDER BY cnt DESC, q
		 LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []QueryCount
	for rows.Next() {
		var qc QueryCount
		if err := rows.Scan(&qc.Query, &qc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, qc)
	}
	return counts, rows.Err()
}
