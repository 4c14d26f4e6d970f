//go:generate go run go.uber.org/mock/mockgen -source=interaction.go -destination=../mocks/mock_interaction_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"topic-lab/domain"
)

// IInteractionRepository is write-only from the core's perspective.
type IInteractionRepository interface {
	Append(ctx context.Context, i domain.Interaction) error
}

type InteractionRepository struct {
	pool *pgxpool.Pool
}

func NewInteractionRepository(pool *pgxpool.Pool) IInteractionRepository {
	return &InteractionRepository{pool: pool}
}

func (r *InteractionRepository) Append(ctx context.Context, i domain.Interaction) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO interactions (actor, user_role, action, topic_id, details, at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, string(i.Actor), string(i.Role), i.Action, i.TopicID, i.Details, i.At)
	if err != nil {
		return fmt.Errorf("append interaction: %w", err)
	}
	return nil
}
