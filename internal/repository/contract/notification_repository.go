package contract

import (
	"context"

	"feedback-forum-be/internal/model"

	"github.com/google/uuid"
)

// NotificationRepository works directly on the model: notification rows are
// write-mostly history with no domain logic worth a separate entity.
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	FindByUser(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*model.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID, userId uuid.UUID) error
	CountUnread(ctx context.Context, userId uuid.UUID) (int64, error)
}
