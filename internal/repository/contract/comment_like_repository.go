package contract

import (
	"context"
	"time"

	"feedback-forum-be/internal/entity"

	"github.com/google/uuid"
)

type CommentLikeRepository interface {
	Create(ctx context.Context, like *entity.CommentLike) error
	// FindActive returns the live like for the pair, nil when unliked.
	FindActive(ctx context.Context, commentId, userId uuid.UUID) (*entity.CommentLike, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	CountActive(ctx context.Context, commentId uuid.UUID) (int64, error)
}
