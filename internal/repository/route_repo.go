package repository

import (
	"context"

	"github.com/Fercho12s/Rutas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RouteRepository defines the data access contract for routes.
// Soft-deleted routes (status "inactivo") are invisible to every read.
type RouteRepository interface {
	Create(ctx context.Context, rt *model.Route) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Route, error)
	List(ctx context.Context, page, perPage int) ([]model.Route, int64, error)
	Search(ctx context.Context, origin, destination string, page, perPage int) ([]model.Route, int64, error)
	Popular(ctx context.Context, limit int) ([]model.Route, error)
	DistinctOrigins(ctx context.Context) ([]string, error)
	DistinctDestinations(ctx context.Context) ([]string, error)
	Update(ctx context.Context, rt *model.Route) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type routeRepo struct{ db *gorm.DB }

func NewRouteRepository(db *gorm.DB) RouteRepository { return &routeRepo{db: db} }

func (r *routeRepo) active(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&model.Route{}).Where("status <> ?", model.RouteStatusInactivo)
}

func (r *routeRepo) Create(ctx context.Context, rt *model.Route) error {
	return r.db.WithContext(ctx).Create(rt).Error
}

func (r *routeRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Route, error) {
	var rt model.Route
	err := r.active(ctx).Where("id = ?", id).First(&rt).Error
	return &rt, err
}

func (r *routeRepo) List(ctx context.Context, page, perPage int) ([]model.Route, int64, error) {
	var routes []model.Route
	var total int64

	if err := r.active(ctx).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.active(ctx).
		Order("created_at DESC").
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&routes).Error
	return routes, total, err
}

// Search does case-insensitive partial matching on origin OR destination,
// newest first. The same predicate drives the result page and the count so the
// pagination envelope stays consistent.
func (r *routeRepo) Search(ctx context.Context, origin, destination string, page, perPage int) ([]model.Route, int64, error) {
	var routes []model.Route
	var total int64

	match := func() *gorm.DB {
		return r.active(ctx).
			Where("origin ILIKE ? OR destination ILIKE ?", "%"+origin+"%", "%"+destination+"%")
	}

	if err := match().Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := match().
		Order("created_at DESC").
		Limit(perPage).Offset((page - 1) * perPage).
		Find(&routes).Error
	return routes, total, err
}

func (r *routeRepo) Popular(ctx context.Context, limit int) ([]model.Route, error) {
	var routes []model.Route
	err := r.active(ctx).Order("created_at DESC").Limit(limit).Find(&routes).Error
	return routes, err
}

func (r *routeRepo) DistinctOrigins(ctx context.Context) ([]string, error) {
	var origins []string
	err := r.active(ctx).Distinct("origin").Order("origin ASC").Pluck("origin", &origins).Error
	return origins, err
}

func (r *routeRepo) DistinctDestinations(ctx context.Context) ([]string, error) {
	var destinations []string
	err := r.active(ctx).Distinct("destination").Order("destination ASC").Pluck("destination", &destinations).Error
	return destinations, err
}

func (r *routeRepo) Update(ctx context.Context, rt *model.Route) error {
	return r.db.WithContext(ctx).Save(rt).Error
}

func (r *routeRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Route{}).Where("id = ?", id).
		Update("status", model.RouteStatusInactivo).Error
}

func (r *routeRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Route{}).Where("id = ?", id).
		Update("status", model.RouteStatusActivo).Error
}

func (r *routeRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.active(ctx).Count(&total).Error
	return total, err
}
