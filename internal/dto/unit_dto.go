package dto

import (
	"time"

	"github.com/Fercho12s/Rutas/internal/model"

	"github.com/google/uuid"
)

type CreateUnitRequest struct {
	Plate    string  `json:"plate"    validate:"required,min=3,max=20"`
	Brand    string  `json:"brand"    validate:"required,min=2,max=50"`
	Model    string  `json:"model"    validate:"required,min=1,max=50"`
	Capacity int     `json:"capacity" validate:"required,gt=0"`
	Year     int     `json:"year"     validate:"required,min=1950,max=2100"`
	Status   string  `json:"status"   validate:"omitempty,oneof=disponible 'en ruta' mantenimiento inactivo"`
	ImageURL *string `json:"imageUrl"`

	CurrentRouteID *uuid.UUID `json:"currentRouteId"`
}

type UpdateUnitRequest struct {
	Plate    string  `json:"plate"    validate:"omitempty,min=3,max=20"`
	Brand    string  `json:"brand"    validate:"omitempty,min=2,max=50"`
	Model    string  `json:"model"    validate:"omitempty,min=1,max=50"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
	Year     *int    `json:"year"     validate:"omitempty,min=1950,max=2100"`
	Status   string  `json:"status"   validate:"omitempty,oneof=disponible 'en ruta' mantenimiento inactivo"`
	ImageURL *string `json:"imageUrl"`

	CurrentRouteID *uuid.UUID `json:"currentRouteId"`
}

type UnitResponse struct {
	ID       string  `json:"id"`
	Plate    string  `json:"plate"`
	Brand    string  `json:"brand"`
	Model    string  `json:"model"`
	Capacity int     `json:"capacity"`
	Year     int     `json:"year"`
	Status   string  `json:"status"`
	ImageURL *string `json:"imageUrl"`

	CurrentRouteID *string   `json:"currentRouteId"`
	CreatedAt      time.Time `json:"createdAt"`
}

func NewUnitResponse(u *model.Unit) UnitResponse {
	resp := UnitResponse{
		ID:        u.ID.String(),
		Plate:     u.Plate,
		Brand:     u.Brand,
		Model:     u.Model,
		Capacity:  u.Capacity,
		Year:      u.Year,
		Status:    u.Status,
		ImageURL:  u.ImageURL,
		CreatedAt: u.CreatedAt,
	}
	if u.CurrentRouteID != nil {
		s := u.CurrentRouteID.String()
		resp.CurrentRouteID = &s
	}
	return resp
}

func NewUnitResponseList(units []model.Unit) []UnitResponse {
	resp := make([]UnitResponse, len(units))
	for i := range units {
		resp[i] = NewUnitResponse(&units[i])
	}
	return resp
}
