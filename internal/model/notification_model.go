package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Notification stores delivered forum events (new feedback on a followed
// feature, replies, comment likes) for the in-app inbox.
type Notification struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID      `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	ActorId    *uuid.UUID     `gorm:"type:uuid"`
	TypeCode   string         `gorm:"type:varchar(50);not null"`
	EntityType string         `gorm:"type:varchar(50)"`
	EntityId   *uuid.UUID     `gorm:"type:uuid"`
	Title      string         `gorm:"type:varchar(200);not null"`
	Message    string         `gorm:"type:text;not null"`
	Metadata   datatypes.JSON `gorm:"type:jsonb"`
	IsRead     bool           `gorm:"default:false"`
	CreatedAt  time.Time      `gorm:"default:CURRENT_TIMESTAMP;index:idx_notifications_user_created,priority:2"`
}

func (Notification) TableName() string {
	return "notifications"
}
