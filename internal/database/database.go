package database

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/HrEnZnAeTkTo/EventTrade/internal/models"
)

// Connect opens the postgres database. TranslateError is on so unique
// violations surface as gorm.ErrDuplicatedKey regardless of driver.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate runs the schema migration. This is the only place DDL happens;
// request handlers never touch the schema.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Tent{},
		&models.Order{},
		&models.OrderItem{},
		&models.InventoryRequest{},
		&models.Message{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Seed inserts the default accounts, sample products and sample tents on
// an empty database. Safe to call on every startup.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if userCount == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash default password: %w", err)
		}
		users := []models.User{
			{Username: "admin", Email: "admin@festival.com", PasswordHash: string(hash), Role: models.RoleAdmin},
			{Username: "courier1", Email: "courier1@festival.com", PasswordHash: string(hash), Role: models.RoleCourier},
		}
		if err := db.Create(&users).Error; err != nil {
			return fmt.Errorf("failed to seed users: %w", err)
		}
		log.Println("Default admin and courier users created")
	}

	var productCount int64
	if err := db.Model(&models.Product{}).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to count products: %w", err)
	}
	if productCount == 0 {
		products := []models.Product{
			{Name: "Neko-Active", Description: "Refreshing shower wipes", Price: decimal.RequireFromString("500.00"), StockQuantity: 1000, IsActive: true},
			{Name: "Neko-Clinic", Description: "Antibacterial shower wipes", Price: decimal.RequireFromString("2000.00"), StockQuantity: 500, IsActive: true},
			{Name: "Neko-Grill", Description: "Degreasing shower wipes", Price: decimal.RequireFromString("600.00"), StockQuantity: 800, IsActive: true},
		}
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
		log.Println("Sample products added")
	}

	var tentCount int64
	if err := db.Model(&models.Tent{}).Count(&tentCount).Error; err != nil {
		return fmt.Errorf("failed to count tents: %w", err)
	}
	if tentCount == 0 {
		tents := []models.Tent{
			{TentNumber: "A-01", LocationDescription: "First row, left side", Zone: "Zone A", Capacity: 4, IsActive: true},
			{TentNumber: "A-02", LocationDescription: "First row, center", Zone: "Zone A", Capacity: 6, IsActive: true},
			{TentNumber: "B-01", LocationDescription: "VIP area, by the main stage", Zone: "VIP", Capacity: 2, IsActive: true},
			{TentNumber: "C-01", LocationDescription: "Family area, next to the playground", Zone: "Family", Capacity: 8, IsActive: true},
		}
		if err := db.Create(&tents).Error; err != nil {
			return fmt.Errorf("failed to seed tents: %w", err)
		}
		log.Println("Sample tents added")
	}

	return nil
}
