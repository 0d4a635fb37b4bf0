package model

import (
	"time"

	"github.com/google/uuid"
)

// Roles de usuario.
const (
	RoleAdmin     = "admin"
	RoleConductor = "conductor"
	RoleCliente   = "cliente"
)

// User stores platform accounts with role-based access.
// Role: "admin" | "conductor" | "cliente"
type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name     string    `gorm:"not null"`
	Email    string    `gorm:"uniqueIndex;not null"`
	Password string    `gorm:"not null"` // bcrypt hash, never serialized (DTOs omit it)
	Role     string    `gorm:"type:varchar(20);not null;default:cliente"`
	Phone    *string
	Active   bool `gorm:"not null;default:true"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
