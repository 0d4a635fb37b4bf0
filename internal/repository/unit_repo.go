package repository

import (
	"context"

	"github.com/Fercho12s/Rutas/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnitRepository defines the data access contract for fleet units.
type UnitRepository interface {
	Create(ctx context.Context, u *model.Unit) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Unit, error)
	FindByPlate(ctx context.Context, plate string) (*model.Unit, error)
	List(ctx context.Context) ([]model.Unit, error)
	Update(ctx context.Context, u *model.Unit) error
	SoftDelete(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type unitRepo struct{ db *gorm.DB }

func NewUnitRepository(db *gorm.DB) UnitRepository { return &unitRepo{db: db} }

func (r *unitRepo) Create(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *unitRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).
		Where("id = ? AND status <> ?", id, model.UnitStatusInactivo).
		First(&u).Error
	return &u, err
}

func (r *unitRepo) FindByPlate(ctx context.Context, plate string) (*model.Unit, error) {
	var u model.Unit
	err := r.db.WithContext(ctx).Where("plate = ?", plate).First(&u).Error
	return &u, err
}

func (r *unitRepo) List(ctx context.Context) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Where("status <> ?", model.UnitStatusInactivo).
		Order("created_at DESC").
		Find(&units).Error
	return units, err
}

func (r *unitRepo) Update(ctx context.Context, u *model.Unit) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *unitRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Unit{}).Where("id = ?", id).
		Update("status", model.UnitStatusInactivo).Error
}

func (r *unitRepo) Reactivate(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.Unit{}).Where("id = ?", id).
		Update("status", model.UnitStatusDisponible).Error
}

func (r *unitRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Unit{}).
		Where("status <> ?", model.UnitStatusInactivo).
		Count(&total).Error
	return total, err
}
