package model

import (
	"time"

	"github.com/google/uuid"
)

// Tag has no DeletedAt column: tag deletion is hard,
// only tag *associations* are soft-deleted.
type Tag struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);not null;index"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Tag) TableName() string {
	return "tags"
}
