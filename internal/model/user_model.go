package model

import (
	"time"

	"github.com/google/uuid"
)

// User is read-only in this service: rows are owned by the auth system and
// only looked up here to decorate feedback and comment lists.
type User struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey"`
	DisplayName    string    `gorm:"type:varchar(100);not null"`
	ProfilePicture string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
}

func (User) TableName() string {
	return "users"
}
