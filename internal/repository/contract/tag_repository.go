package contract

import (
	"context"

	"feedback-forum-be/internal/entity"
	"feedback-forum-be/internal/repository/specification"

	"github.com/google/uuid"
)

type TagRepository interface {
	Create(ctx context.Context, tag *entity.Tag) error
	// CreateBatch inserts all tags in one statement. Empty input is a no-op.
	CreateBatch(ctx context.Context, tags []*entity.Tag) error
	Update(ctx context.Context, tag *entity.Tag) error
	// Delete is a hard delete: tags carry no soft-delete flag.
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Tag, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Tag, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
