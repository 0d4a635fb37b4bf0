package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records one admin mutation (create/update/delete/reactivate).
// Rows are written asynchronously by the audit dispatcher.
type AuditLog struct {
	ID       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActorID  *uuid.UUID     `gorm:"type:uuid;index"`
	Action   string         `gorm:"type:varchar(30);not null"`
	Entity   string         `gorm:"type:varchar(30);not null"`
	EntityID *uuid.UUID     `gorm:"type:uuid"`
	Metadata map[string]any `gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time `gorm:"index"`
}
