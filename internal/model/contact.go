package model

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an inbound message from the public landing page.
// Write-once: rows are never updated or deleted through the API.
type Contact struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name    string    `gorm:"not null"`
	Email   string    `gorm:"not null"`
	Phone   *string
	Message string `gorm:"not null"`

	CreatedAt time.Time
}
