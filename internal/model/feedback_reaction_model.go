package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FeedbackReaction struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	FeedbackId uuid.UUID      `gorm:"type:uuid;not null;index:idx_feedback_reactions_pair,priority:1"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_feedback_reactions_pair,priority:2"`
	CreatedAt  time.Time      `gorm:"autoCreateTime"`
	UpdatedAt  time.Time      `gorm:"autoUpdateTime"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (FeedbackReaction) TableName() string {
	return "feedback_reactions"
}
