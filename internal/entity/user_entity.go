package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID
	DisplayName    string
	ProfilePicture string
	CreatedAt      time.Time
}
