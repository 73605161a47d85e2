package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feedback struct {
	Id          uuid.UUID
	UserId      uuid.UUID
	FeatureId   *uuid.UUID
	Title       string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
	IsDeleted   bool
}
