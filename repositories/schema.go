package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema owned by the entity store. Mirrors the board's relational layout:
// participants are split by role, topics carry status plus ownership, and
// interactions/search_logs are append-only.
//
// The partial unique index on topics(student_id) is the transactional
// backstop for the at-most-one-topic rule: two concurrent reservations by
// the same student on different topics cannot both commit.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS departments (
		department_id BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL UNIQUE,
		description   TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS students (
		student_id    BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT UNIQUE,
		phone         TEXT,
		identity      TEXT NOT NULL UNIQUE,
		group_name    TEXT NOT NULL,
		department_id BIGINT REFERENCES departments(department_id) ON DELETE SET NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS teachers (
		teacher_id    BIGSERIAL PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT UNIQUE,
		phone         TEXT,
		identity      TEXT NOT NULL UNIQUE,
		department_id BIGINT REFERENCES departments(department_id) ON DELETE SET NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS topics (
		topic_id      BIGSERIAL PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT,
		keywords      TEXT[] NOT NULL DEFAULT '{}',
		status        TEXT NOT NULL CHECK (status IN ('free', 'reserved', 'closed')),
		teacher_id    BIGINT REFERENCES teachers(teacher_id) ON DELETE SET NULL,
		student_id    BIGINT REFERENCES students(student_id) ON DELETE SET NULL,
		proposed_by   BIGINT REFERENCES students(student_id) ON DELETE SET NULL,
		department_id BIGINT NOT NULL REFERENCES departments(department_id) ON DELETE CASCADE,
		CHECK ((status = 'free') = (student_id IS NULL))
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS topics_one_per_student
		ON topics(student_id) WHERE student_id IS NOT NULL`,
	`CREATE INDEX IF NOT EXISTS topics_status_idx ON topics(status)`,
	`CREATE TABLE IF NOT EXISTS categories (
		category_id BIGSERIAL PRIMARY KEY,
		name        TEXT NOT NULL,
		parent_id   BIGINT REFERENCES categories(category_id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS topic_categories (
		topic_id    BIGINT REFERENCES topics(topic_id) ON DELETE CASCADE,
		category_id BIGINT REFERENCES categories(category_id) ON DELETE CASCADE,
		PRIMARY KEY (topic_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS interactions (
		interaction_id BIGSERIAL PRIMARY KEY,
		actor          TEXT NOT NULL,
		user_role      TEXT NOT NULL CHECK (user_role IN ('student', 'teacher')),
		action         TEXT NOT NULL,
		topic_id       BIGINT REFERENCES topics(topic_id) ON DELETE CASCADE,
		details        TEXT NOT NULL DEFAULT '',
		at             TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS search_logs (
		log_id   BIGSERIAL PRIMARY KEY,
		identity TEXT NOT NULL,
		query    TEXT NOT NULL,
		at       TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

// InitSchema creates all tables inside one transaction so a half-built
// schema never survives a failed bootstrap.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
