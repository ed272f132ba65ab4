package database

import (
	"fmt"

	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Ola-Segun/inventorysupabase-sub002/internal/infrastructure/repositories"
)

// Open creates a new database connection with production-ready settings
func Open(dsn string) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	}

	return gorm.Open(postgres.Open(dsn), config)
}

// AutoMigrate performs database migration for all required tables,
// including the Casbin policy table for RBAC.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&repositories.DBOrganization{},
		&repositories.DBStore{},
		&repositories.DBAccount{},
		&repositories.DBProduct{},
		&repositories.DBSale{},
		&repositories.DBSaleItem{},
		&repositories.DBInvoice{},
		&repositories.DBAuditEntry{},
	); err != nil {
		return fmt.Errorf("failed to migrate tables: %w", err)
	}

	// The adapter creates the casbin_rule table on first use.
	if _, err := gormadapter.NewAdapterByDB(db); err != nil {
		return fmt.Errorf("failed to initialize Casbin GORM adapter: %w", err)
	}

	return nil
}
