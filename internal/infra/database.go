package infra

import (
	"fmt"

	"github.com/Fercho12s/Rutas/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (partial indexes on active rows).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies the schema. AutoMigrate covers tables, columns and the
// unique indexes declared on the models; the patches below add what it cannot.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.User{},
		&model.Route{},
		&model.Unit{},
		&model.Contact{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle.
// Each statement uses IF NOT EXISTS semantics so re-running is safe.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Search hits only non-inactive routes; partial indexes keep them small.
		`CREATE INDEX IF NOT EXISTS idx_routes_search_origin
		    ON routes (origin)
		    WHERE status <> 'inactivo'`,
		`CREATE INDEX IF NOT EXISTS idx_routes_search_destination
		    ON routes (destination)
		    WHERE status <> 'inactivo'`,
		// Driver lookup for route assignment.
		`CREATE INDEX IF NOT EXISTS idx_users_drivers
		    ON users (role)
		    WHERE role = 'conductor' AND active = true`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
