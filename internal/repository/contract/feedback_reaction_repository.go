package contract

import (
	"context"
	"time"

	"feedback-forum-be/internal/entity"

	"github.com/google/uuid"
)

type FeedbackReactionRepository interface {
	Create(ctx context.Context, reaction *entity.FeedbackReaction) error
	FindActive(ctx context.Context, feedbackId, userId uuid.UUID) (*entity.FeedbackReaction, error)
	// FindActiveByFeedbackIds fetches every active reaction for the id set in
	// one query; partitioning happens in the service.
	FindActiveByFeedbackIds(ctx context.Context, feedbackIds []uuid.UUID) ([]*entity.FeedbackReaction, error)
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	CountActive(ctx context.Context, feedbackId uuid.UUID) (int64, error)
}
