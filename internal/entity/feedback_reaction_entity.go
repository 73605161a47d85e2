package entity

import (
	"time"

	"github.com/google/uuid"
)

type FeedbackReaction struct {
	Id         uuid.UUID
	FeedbackId uuid.UUID
	UserId     uuid.UUID
	CreatedAt  time.Time
	UpdatedAt  *time.Time
	DeletedAt  *time.Time
	IsDeleted  bool
}

// FeedbackReactionSummary is the per-feedback aggregate of the batch lookup.
type FeedbackReactionSummary struct {
	FeedbackId     uuid.UUID
	ReactionCount  int
	UserHasReacted bool
}
