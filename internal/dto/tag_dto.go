package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateTagRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
}

type UpdateTagRequest struct {
	Id          uuid.UUID `json:"-"`
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
}

type TagResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type UpdateFeedbackTagsRequest struct {
	TagIds []uuid.UUID `json:"tag_ids"`
}

type AddFeedbackTagsRequest struct {
	TagIds []uuid.UUID `json:"tag_ids" validate:"required"`
}
