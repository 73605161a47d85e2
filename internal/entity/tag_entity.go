package entity

import (
	"time"

	"github.com/google/uuid"
)

type Tag struct {
	Id          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}
