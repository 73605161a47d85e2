package entity

import (
	"time"

	"github.com/google/uuid"
)

type CommentLike struct {
	Id        uuid.UUID
	CommentId uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
	IsDeleted bool
}
