package dto

import (
	"time"

	"github.com/Fercho12s/Rutas/internal/model"

	"github.com/google/uuid"
)

type CreateRouteRequest struct {
	Title       string                `json:"title"       validate:"required,min=2,max=200"`
	Origin      string                `json:"origin"      validate:"required,min=2,max=100"`
	Destination string                `json:"destination" validate:"required,min=2,max=100"`
	Stops       []string              `json:"stops"`
	Schedule    []model.ScheduleEntry `json:"schedule"`
	DistanceKm  int                   `json:"distanceKm"  validate:"required,gt=0"`
	Duration    *string               `json:"duration"`
	Status      string                `json:"status"      validate:"omitempty,oneof=activo 'en curso' finalizado inactivo"`

	AssignedUnitID   *uuid.UUID `json:"assignedUnitId"`
	AssignedDriverID *uuid.UUID `json:"assignedDriverId"`
	ImageURL         *string    `json:"imageUrl"`
}

// UpdateRouteRequest is a partial update: nil / zero fields are left untouched.
type UpdateRouteRequest struct {
	Title       string                `json:"title"       validate:"omitempty,min=2,max=200"`
	Origin      string                `json:"origin"      validate:"omitempty,min=2,max=100"`
	Destination string                `json:"destination" validate:"omitempty,min=2,max=100"`
	Stops       []string              `json:"stops"`
	Schedule    []model.ScheduleEntry `json:"schedule"`
	DistanceKm  *int                  `json:"distanceKm"  validate:"omitempty,gt=0"`
	Duration    *string               `json:"duration"`
	Status      string                `json:"status"      validate:"omitempty,oneof=activo 'en curso' finalizado inactivo"`

	AssignedUnitID   *uuid.UUID `json:"assignedUnitId"`
	AssignedDriverID *uuid.UUID `json:"assignedDriverId"`
	ImageURL         *string    `json:"imageUrl"`
}

// SearchRoutesQuery binds the free-text search parameters.
type SearchRoutesQuery struct {
	Origin      string `form:"origin"`
	Destination string `form:"destination"`
	Page        int    `form:"page,default=1"`
}

type RouteResponse struct {
	ID          string                `json:"id"`
	Title       string                `json:"title"`
	Origin      string                `json:"origin"`
	Destination string                `json:"destination"`
	Stops       []string              `json:"stops"`
	Schedule    []model.ScheduleEntry `json:"schedule"`
	DistanceKm  int                   `json:"distanceKm"`
	Duration    *string               `json:"duration"`
	Status      string                `json:"status"`

	AssignedUnitID   *string   `json:"assignedUnitId"`
	AssignedDriverID *string   `json:"assignedDriverId"`
	ImageURL         *string   `json:"imageUrl"`
	CreatedAt        time.Time `json:"createdAt"`
}

// Pagination is the envelope shared by every paginated listing.
type Pagination struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

// NewPagination computes total pages by ceiling division.
func NewPagination(page, perPage int, total int64) Pagination {
	totalPages := int((total + int64(perPage) - 1) / int64(perPage))
	return Pagination{
		CurrentPage:  page,
		TotalPages:   totalPages,
		TotalItems:   total,
		ItemsPerPage: perPage,
	}
}

type RouteListResponse struct {
	Routes     []RouteResponse `json:"routes"`
	Pagination Pagination      `json:"pagination"`
}

type SearchRoutesResponse struct {
	Routes     []RouteResponse `json:"routes"`
	Pagination Pagination      `json:"pagination"`
	Query      SearchEcho      `json:"query"`
}

type SearchEcho struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
}

func NewRouteResponse(r *model.Route) RouteResponse {
	resp := RouteResponse{
		ID:          r.ID.String(),
		Title:       r.Title,
		Origin:      r.Origin,
		Destination: r.Destination,
		Stops:       r.Stops,
		Schedule:    r.Schedule,
		DistanceKm:  r.DistanceKm,
		Duration:    r.Duration,
		Status:      r.Status,
		ImageURL:    r.ImageURL,
		CreatedAt:   r.CreatedAt,
	}
	if resp.Stops == nil {
		resp.Stops = []string{}
	}
	if resp.Schedule == nil {
		resp.Schedule = []model.ScheduleEntry{}
	}
	if r.AssignedUnitID != nil {
		s := r.AssignedUnitID.String()
		resp.AssignedUnitID = &s
	}
	if r.AssignedDriverID != nil {
		s := r.AssignedDriverID.String()
		resp.AssignedDriverID = &s
	}
	return resp
}

func NewRouteResponseList(routes []model.Route) []RouteResponse {
	resp := make([]RouteResponse, len(routes))
	for i := range routes {
		resp[i] = NewRouteResponse(&routes[i])
	}
	return resp
}
