package database

import (
	"fmt"
	"log"

	"github.com/kaushal774/jewelbill-api/internal/config"
	"github.com/kaushal774/jewelbill-api/internal/domain/entity"
	"github.com/kaushal774/jewelbill-api/pkg/utils"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.ShopProfile{},
		&entity.InventoryItem{},
		&entity.BillRecord{},
		&entity.BillItem{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the singleton shop profile and the admin account
// if they are absent. Existing rows are never overwritten.
func SeedDefaultData(db *gorm.DB, admin *config.AdminConfig) error {
	log.Println("Seeding default data...")

	var profileCount int64
	if err := db.Model(&entity.ShopProfile{}).Count(&profileCount).Error; err != nil {
		return fmt.Errorf("failed to check shop profile: %w", err)
	}
	if profileCount == 0 {
		profile := &entity.ShopProfile{
			Name:    "FAKKAD JEWELLERS",
			GSTIN:   "09BMRPS8447R1Z1",
			Address: "Madhogarh, Jalaun",
			Mobile:  "9451508591",
		}
		if err := db.Create(profile).Error; err != nil {
			return fmt.Errorf("failed to seed shop profile: %w", err)
		}
		log.Println("Seeded default shop profile")
	}

	var userCount int64
	if err := db.Model(&entity.User{}).Where("username = ?", admin.Username).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to check admin user: %w", err)
	}
	if userCount == 0 {
		hash, err := utils.HashPassword(admin.Password)
		if err != nil {
			return fmt.Errorf("failed to hash admin password: %w", err)
		}
		user := &entity.User{
			Username: admin.Username,
			Password: hash,
		}
		if err := db.Create(user).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		log.Printf("Seeded admin user %q", admin.Username)
	}

	return nil
}
