package repository

import (
	"context"

	"github.com/Fercho12s/Rutas/internal/model"

	"gorm.io/gorm"
)

// ContactRepository is intentionally write-once: no update or delete exists.
type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]model.Contact, error)
	Count(ctx context.Context) (int64, error)
}

type contactRepo struct{ db *gorm.DB }

func NewContactRepository(db *gorm.DB) ContactRepository { return &contactRepo{db: db} }

func (r *contactRepo) Create(ctx context.Context, c *model.Contact) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *contactRepo) List(ctx context.Context) ([]model.Contact, error) {
	var contacts []model.Contact
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (r *contactRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Contact{}).Count(&total).Error
	return total, err
}
