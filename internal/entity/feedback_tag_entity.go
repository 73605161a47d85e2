package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackTag struct {
	Id         uuid.UUID
	FeedbackId uuid.UUID
	TagId      uuid.UUID
	UserId     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}
