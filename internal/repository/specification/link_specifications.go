package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByFeedbackID filters association rows belonging to one feedback post.
type ByFeedbackID struct {
	FeedbackID uuid.UUID
}

func (s ByFeedbackID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("feedback_id = ?", s.FeedbackID)
}

// ByTagID filters association rows for one tag.
type ByTagID struct {
	TagID uuid.UUID
}

func (s ByTagID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("tag_id = ?", s.TagID)
}

// ByCommentID filters like rows for one comment.
type ByCommentID struct {
	CommentID uuid.UUID
}

func (s ByCommentID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("comment_id = ?", s.CommentID)
}
