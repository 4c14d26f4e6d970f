//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=../mocks/mock_catalog_repository.go -package=mocks
package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"topic-lab/domain"
	"topic-lab/errors"
)

// IDepartmentRepository and ICategoryRepository expose the read-only
// catalogs offered verbatim as dialog choices. The core never mutates them.
type IDepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	GetByID(ctx context.Context, id int64) (domain.Department, error)
}

type ICategoryRepository interface {
	ListTop(ctx context.Context) ([]domain.Category, error)
	ListChildren(ctx context.Context, parentID int64) ([]domain.Category, error)
}

type DepartmentRepository struct {
	pool *pgxpool.Pool
}

func NewDepartmentRepository(pool *pgxpool.Pool) IDepartmentRepository {
	return &DepartmentRepository{pool: pool}
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT department_id, name, description FROM departments ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []domain.Department
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name, &d.Description); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	return departments, rows.Err()
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (domain.Department, error) {
	var d domain.Department
	err := r.pool.QueryRow(ctx, `
		SELECT department_id, name, description FROM departments WHERE department_id = $1
	`, id).Scan(&d.ID, &d.Name, &d.Description)
	if isNoRows(err) {
		return domain.Department{}, errors.ErrNotFound
	}
	return d, err
}

type CategoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) ICategoryRepository {
	return &CategoryRepository{pool: pool}
}

func (r *CategoryRepository) ListTop(ctx context.Context) ([]domain.Category, error) {
	return r.list(ctx, `
		SELECT category_id, name, parent_id FROM categories WHERE parent_id IS NULL ORDER BY name
	`)
}

func (r *CategoryRepository) ListChildren(ctx context.Context, parentID int64) ([]domain.Category, error) {
	return r.list(ctx, `
		SELECT category_id, name, parent_id FROM categories WHERE parent_id = $1 ORDER BY name
	`, parentID)
}

func (r *CategoryRepository) list(ctx context.Context, sql string, args ...any) ([]domain.Category, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.ParentID); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}
