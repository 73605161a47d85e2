package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateCommentRequest struct {
	FeedbackId uuid.UUID `json:"feedback_id" validate:"required"`
	Body       string    `json:"body" validate:"required"`
}

type CommentResponse struct {
	Id           uuid.UUID     `json:"id"`
	FeedbackId   uuid.UUID     `json:"feedback_id"`
	UserId       uuid.UUID     `json:"user_id"`
	Body         string        `json:"body"`
	CreatedAt    time.Time     `json:"created_at"`
	User         *UserResponse `json:"user,omitempty"`
	LikeCount    int64         `json:"like_count"`
	UserHasLiked bool          `json:"user_has_liked"`
}

// ToggleLikeResponse: Like is set when the toggle landed on "liked" and nil
// when it landed on "unliked".
type ToggleLikeResponse struct {
	Liked bool                 `json:"liked"`
	Like  *CommentLikeResponse `json:"like"`
}

type CommentLikeResponse struct {
	Id        uuid.UUID `json:"id"`
	CommentId uuid.UUID `json:"comment_id"`
	UserId    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}
