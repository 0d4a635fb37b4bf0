package repository

import (
	"context"

	"github.com/Fercho12s/Rutas/internal/model"

	"gorm.io/gorm"
)

type AuditLogRepository interface {
	Create(ctx context.Context, a *model.AuditLog) error
	ListRecent(ctx context.Context, limit int) ([]model.AuditLog, error)
}

type auditLogRepo struct{ db *gorm.DB }

func NewAuditLogRepository(db *gorm.DB) AuditLogRepository { return &auditLogRepo{db: db} }

func (r *auditLogRepo) Create(ctx context.Context, a *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *auditLogRepo) ListRecent(ctx context.Context, limit int) ([]model.AuditLog, error) {
	var logs []model.AuditLog
	err := r.db.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
