package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackTag links a feedback post to a tag. UserId records who made the edit,
// which is independent of feedback ownership. At most one active link per
// (feedback, tag) pair is the intended invariant.
type FeedbackTag struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FeedbackId uuid.UUID      `gorm:"type:uuid;not null;index:idx_feedback_tags_feedback"`
	TagId      uuid.UUID      `gorm:"type:uuid;not null;index:idx_feedback_tags_tag"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (FeedbackTag) TableName() string {
	return "feedback_tags"
}
