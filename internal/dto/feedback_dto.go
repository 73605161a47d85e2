package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateFeedbackRequest struct {
	Title       string      `json:"title" validate:"required"`
	Description *string     `json:"description"`
	FeatureId   *uuid.UUID  `json:"feature_id"`
	TagIds      []uuid.UUID `json:"tag_ids"`
}

type UpdateFeedbackRequest struct {
	Id          uuid.UUID `json:"-"`
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
}

// ListFeedbackQuery carries the optional list filters. FeatureId and
// GeneralOnly are mutually exclusive: GeneralOnly explicitly selects rows
// with no feature, which is different from leaving FeatureId unset.
type ListFeedbackQuery struct {
	UserId      *uuid.UUID
	FeatureId   *uuid.UUID
	GeneralOnly bool
	Limit       *int
	Offset      *int
}

type UserResponse struct {
	Id             uuid.UUID `json:"id"`
	DisplayName    string    `json:"display_name"`
	ProfilePicture string    `json:"profile_picture,omitempty"`
}

type FeedbackResponse struct {
	Id          uuid.UUID     `json:"id"`
	UserId      uuid.UUID     `json:"user_id"`
	FeatureId   *uuid.UUID    `json:"feature_id"`
	Title       string        `json:"title"`
	Description *string       `json:"description"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   *time.Time    `json:"updated_at"`
	User        *UserResponse `json:"user,omitempty"`
	Tags        []TagResponse `json:"tags"`
}

type FeedbackPageResponse struct {
	Items []*FeedbackResponse `json:"items"`
	Count int64               `json:"count"`
}

type HasSubmittedResponse struct {
	HasSubmitted bool  `json:"has_submitted"`
	Count        int64 `json:"count"`
}

type ReactionSummaryResponse struct {
	FeedbackId     uuid.UUID `json:"feedback_id"`
	ReactionCount  int       `json:"reaction_count"`
	UserHasReacted bool      `json:"user_has_reacted"`
}
