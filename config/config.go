package config

import (
	"log"
	"os"

	"tastekart/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret signs auth tokens — read from env or fallback
var JWTSecret = []byte(GetEnv("JWT_SECRET", "tastekart_super_secret_2024"))

// AdminSignupKey gates admin-role registration
var AdminSignupKey = GetEnv("ADMIN_SIGNUP_KEY", "")

func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// LoadEnv reads .env if present; a missing file is fine in production
// where real env vars are set.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, using environment variables")
	}
}

func InitDB() {
	var err error
	DB, err = gorm.Open(sqlite.Open(GetEnv("DB_PATH", "tastekart.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	log.Println("Database connected and migrated successfully")
}

// Migrate applies the schema; tests run it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.PaymentTransaction{},
		&models.Review{},
		&models.CheckoutSession{},
	)
}
