package entity

import (
	"time"

	"github.com/google/uuid"
)

type Feature struct {
	Id          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}
