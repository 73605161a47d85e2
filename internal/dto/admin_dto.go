package dto

import (
	"time"

	"github.com/google/uuid"
)

type BulkSoftDeleteFeedbackRequest struct {
	UserId    *uuid.UUID `json:"user_id"`
	FeatureId *uuid.UUID `json:"feature_id"`
}

type AffectedRowsResponse struct {
	Affected int64 `json:"affected"`
}

type BulkCreateTagsRequest struct {
	Tags []CreateTagRequest `json:"tags" validate:"required,min=1,dive"`
}

type BulkCreateTagsResponse struct {
	Tags  []TagResponse `json:"tags"`
	Count int           `json:"count"`
}

// AdminFeedbackResponse is the moderation view: deleted rows stay visible
// and carry their deletion timestamp.
type AdminFeedbackResponse struct {
	Id          uuid.UUID  `json:"id"`
	UserId      uuid.UUID  `json:"user_id"`
	FeatureId   *uuid.UUID `json:"feature_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
	DeletedAt   *time.Time `json:"deleted_at"`
	IsDeleted   bool       `json:"is_deleted"`
}

type AdminFeedbackPageResponse struct {
	Items []*AdminFeedbackResponse `json:"items"`
	Count int64                    `json:"count"`
}

type FeedbackTagLinkResponse struct {
	Id         uuid.UUID  `json:"id"`
	FeedbackId uuid.UUID  `json:"feedback_id"`
	TagId      uuid.UUID  `json:"tag_id"`
	UserId     uuid.UUID  `json:"user_id"`
	CreatedAt  time.Time  `json:"created_at"`
	DeletedAt  *time.Time `json:"deleted_at"`
	IsDeleted  bool       `json:"is_deleted"`
}
