package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all forum events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "FEEDBACK_CREATED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

const (
	TypeFeedbackCreated = "FEEDBACK_CREATED"
	TypeCommentCreated  = "COMMENT_CREATED"
	TypeCommentLiked    = "COMMENT_LIKED"
)

func NewFeedbackCreated(feedbackId, authorId uuid.UUID, title string) Event {
	return BaseEvent{
		Type: TypeFeedbackCreated,
		Data: map[string]interface{}{
			"feedback_id": feedbackId.String(),
			"author_id":   authorId.String(),
			"title":       title,
		},
		OccurredAt: time.Now(),
	}
}

func NewCommentCreated(commentId, feedbackId, ownerId, authorId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeCommentCreated,
		Data: map[string]interface{}{
			"comment_id":  commentId.String(),
			"feedback_id": feedbackId.String(),
			"owner_id":    ownerId.String(),
			"author_id":   authorId.String(),
		},
		OccurredAt: time.Now(),
	}
}

func NewCommentLiked(commentId, ownerId, actorId uuid.UUID) Event {
	return BaseEvent{
		Type: TypeCommentLiked,
		Data: map[string]interface{}{
			"comment_id": commentId.String(),
			"owner_id":   ownerId.String(),
			"actor_id":   actorId.String(),
		},
		OccurredAt: time.Now(),
	}
}
