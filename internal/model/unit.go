package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de unidad.
const (
	UnitStatusDisponible    = "disponible"
	UnitStatusEnRuta        = "en ruta"
	UnitStatusMantenimiento = "mantenimiento"
	UnitStatusInactivo      = "inactivo"
)

// Unit is a fleet vehicle. Soft delete = Status "inactivo".
type Unit struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Plate    string    `gorm:"uniqueIndex;not null"`
	Brand    string    `gorm:"not null"`
	Model    string    `gorm:"not null"`
	Capacity int       `gorm:"not null"`
	Year     int       `gorm:"not null"`
	Status   string    `gorm:"type:varchar(20);not null;default:disponible"`

	ImageURL       *string
	CurrentRouteID *uuid.UUID `gorm:"type:uuid"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
