package db

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"dormhub/internal/config"
	"dormhub/internal/models"
)

// Bootstrap admin credentials, mirrored by the frontend's first-run docs.
const (
	seedAdminEmail    = "admin@local"
	seedAdminPassword = "Admin123!"
)

// Init opens the postgres connection, applies migrations and the optional
// admin seed.
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}

	if cfg.SeedAdmin {
		if err := SeedAdmin(db); err != nil {
			return nil, fmt.Errorf("admin seed failed: %w", err)
		}
	}

	return db, nil
}

// Migrate applies the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Building{},
		&models.Room{},
		&models.Bed{},
		&models.Student{},
		&models.Ticket{},
	)
}

// SeedAdmin creates the bootstrap admin account if no user with the seed
// email exists. Safe to call on every startup.
func SeedAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", seedAdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seedAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return db.Create(&models.User{
		Email:    seedAdminEmail,
		Name:     "Admin",
		Role:     models.RoleAdmin,
		Password: string(hash),
	}).Error
}
