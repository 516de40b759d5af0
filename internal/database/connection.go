// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pageforge/pageforge-backend/internal/config"
	"github.com/pageforge/pageforge-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.ProductPage{},
		&models.Collection{},
		&models.Template{},
		&models.TemplateCustomization{},
		&models.ExportRecord{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",

		// Product page indexes
		"CREATE INDEX IF NOT EXISTS idx_product_pages_owner_status ON product_pages(owner_id, status)",
		"CREATE INDEX IF NOT EXISTS idx_product_pages_created_at ON product_pages(created_at DESC)",

		// Collection indexes
		"CREATE INDEX IF NOT EXISTS idx_collections_owner_type ON collections(owner_id, type)",

		// Export record indexes
		"CREATE INDEX IF NOT EXISTS idx_export_records_page ON export_records(page_id)",
		"CREATE INDEX IF NOT EXISTS idx_export_records_owner_created ON export_records(owner_id, created_at DESC)",

		// Full-text search indexes
		"CREATE INDEX IF NOT EXISTS idx_product_pages_search ON product_pages USING GIN(to_tsvector('english', title || ' ' || coalesce(description, '')))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	builtinTemplates := []models.Template{
		{
			Name:        "modern",
			Category:    "showcase",
			Description: "Bold gradients with generous whitespace",
			Layout: models.JSONBArray{
				{"id": "hero", "label": "Hero", "enabled": true},
				{"id": "gallery", "label": "Image Gallery", "enabled": true},
				{"id": "features", "label": "Feature List", "enabled": true},
				{"id": "specifications", "label": "Specifications", "enabled": true},
				{"id": "cta", "label": "Call To Action", "enabled": true},
			},
			Styling: models.JSONB{
				"primary_color":   "#6B46C1",
				"secondary_color": "#9F7AEA",
				"heading_font":    "Plus Jakarta Sans",
				"body_font":       "Inter",
			},
			IsBuiltin: true,
		},
		{
			Name:        "minimal",
			Category:    "editorial",
			Description: "Quiet typography, no decoration",
			Layout: models.JSONBArray{
				{"id": "hero", "label": "Hero", "enabled": true},
				{"id": "gallery", "label": "Image Gallery", "enabled": false},
				{"id": "features", "label": "Feature List", "enabled": true},
				{"id": "specifications", "label": "Specifications", "enabled": true},
				{"id": "cta", "label": "Call To Action", "enabled": true},
			},
			Styling: models.JSONB{
				"primary_color":   "#1A202C",
				"secondary_color": "#718096",
				"heading_font":    "Inter",
				"body_font":       "Inter",
			},
			IsBuiltin: true,
		},
		{
			Name:        "bold",
			Category:    "promotional",
			Description: "High contrast, large display type",
			Layout: models.JSONBArray{
				{"id": "hero", "label": "Hero", "enabled": true},
				{"id": "gallery", "label": "Image Gallery", "enabled": true},
				{"id": "features", "label": "Feature List", "enabled": true},
				{"id": "specifications", "label": "Specifications", "enabled": false},
				{"id": "cta", "label": "Call To Action", "enabled": true},
			},
			Styling: models.JSONB{
				"primary_color":   "#E53E3E",
				"secondary_color": "#F6AD55",
				"heading_font":    "Archivo Black",
				"body_font":       "Work Sans",
			},
			IsBuiltin: true,
		},
		{
			Name:        "classic",
			Category:    "storefront",
			Description: "Traditional storefront look",
			Layout: models.JSONBArray{
				{"id": "hero", "label": "Hero", "enabled": true},
				{"id": "gallery", "label": "Image Gallery", "enabled": true},
				{"id": "features", "label": "Feature List", "enabled": true},
				{"id": "specifications", "label": "Specifications", "enabled": true},
				{"id": "cta", "label": "Call To Action", "enabled": true},
			},
			Styling: models.JSONB{
				"primary_color":   "#2B6CB0",
				"secondary_color": "#4299E1",
				"heading_font":    "Merriweather",
				"body_font":       "Source Sans Pro",
			},
			IsBuiltin: true,
		},
	}

	for _, tmpl := range builtinTemplates {
		var count int64
		db.Model(&models.Template{}).Where("name = ? AND is_builtin = true", tmpl.Name).Count(&count)

		if count == 0 {
			if err := db.Create(&tmpl).Error; err != nil {
				log.Printf("Warning: Failed to create template %s: %v", tmpl.Name, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
