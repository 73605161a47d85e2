package contract

import (
	"context"

	"feedback-forum-be/internal/entity"

	"github.com/google/uuid"
)

// UserRepository is read-only: user rows belong to the auth system, this
// service only looks them up to decorate listings.
type UserRepository interface {
	FindById(ctx context.Context, id uuid.UUID) (*entity.User, error)
	// FindByIds batches a page's worth of lookups into one query. Empty input
	// returns an empty slice without hitting the store.
	FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error)
}
