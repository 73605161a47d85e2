package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentLike rows are never flipped in place: un-liking soft-deletes the
// active row and re-liking inserts a fresh one.
type CommentLike struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CommentId uuid.UUID      `gorm:"type:uuid;not null;index:idx_comment_likes_pair,priority:1"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index:idx_comment_likes_pair,priority:2"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
