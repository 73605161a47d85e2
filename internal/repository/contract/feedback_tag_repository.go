package contract

import (
	"context"
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"

	"github.com/google/uuid"
)

// TaggedLink is one row of the link-to-tag join used for batch decoration.
type TaggedLink struct {
	FeedbackId uuid.UUID
	Tag        *entity.Tag
}

type FeedbackTagRepository interface {
	// CreateBatch inserts one link per tag in a single statement.
	CreateBatch(ctx context.Context, links []*entity.FeedbackTag) error
	// SoftDeleteActive soft-deletes the active link for the pair. Zero rows
	// affected means the link was already gone; that is still success.
	SoftDeleteActive(ctx context.Context, feedbackId, tagId uuid.UUID, at time.Time) (int64, error)
	// SoftDeleteAllForFeedback soft-deletes every active link of a feedback.
	SoftDeleteAllForFeedback(ctx context.Context, feedbackId uuid.UUID, at time.Time) (int64, error)
	// HardDeleteByTag removes every link row of a tag, active or not. Used
	// when the tag itself is purged.
	HardDeleteByTag(ctx context.Context, tagId uuid.UUID) (int64, error)
	// FindActiveWithTags joins active links to tag details in one query.
	// Links whose tag row is missing are dropped by the join.
	FindActiveWithTags(ctx context.Context, feedbackIds []uuid.UUID) ([]*TaggedLink, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.FeedbackTag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
