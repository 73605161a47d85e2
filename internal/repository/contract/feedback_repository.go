package contract

import (
	"context"
	"time"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"

	"github.com/google/uuid"
)

type FeedbackRepository interface {
	Create(ctx context.Context, feedback *entity.Feedback) error
	Update(ctx context.Context, feedback *entity.Feedback) error
	// SoftDelete flags the row deleted and re-stamps updated_at. Returns the
	// number of rows affected; already-deleted rows are not touched.
	SoftDelete(ctx context.Context, id uuid.UUID, at time.Time) (int64, error)
	// SoftDeleteWhere bulk-flags live rows matching the specs (moderation).
	SoftDeleteWhere(ctx context.Context, at time.Time, specs ...specification.Specification) (int64, error)
	// HardDelete removes the row permanently, deleted or not.
	HardDelete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Feedback, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Feedback, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
