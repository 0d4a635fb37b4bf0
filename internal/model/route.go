package model

import (
	"time"

	"github.com/google/uuid"
)

// Estados de ruta.
const (
	RouteStatusActivo     = "activo"
	RouteStatusEnCurso    = "en curso"
	RouteStatusFinalizado = "finalizado"
	RouteStatusInactivo   = "inactivo"
)

// ScheduleEntry is one departure slot of a route's weekly schedule.
type ScheduleEntry struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// Route is a named transit path between two localities.
// Soft delete = Status "inactivo"; inactive routes are excluded from every
// listing and search.
type Route struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string          `gorm:"not null"`
	Origin      string          `gorm:"not null;index"`
	Destination string          `gorm:"not null;index"`
	Stops       []string        `gorm:"serializer:json;type:jsonb"`
	Schedule    []ScheduleEntry `gorm:"serializer:json;type:jsonb"`
	DistanceKm  int             `gorm:"not null"`
	Duration    *string
	Status      string `gorm:"type:varchar(20);not null;default:activo"`

	AssignedUnitID   *uuid.UUID `gorm:"type:uuid"`
	AssignedDriverID *uuid.UUID `gorm:"type:uuid"`
	ImageURL         *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
