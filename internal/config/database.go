package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet_api/internal/logger"
	"fleet_api/internal/models"
)

// MustLoadEnv loads .env (if present) and verifies the settings the
// process cannot run without: the database credentials and the token
// signing secret. Startup fails fast when any is missing.
func MustLoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	for _, key := range []string{"DB_HOST", "DB_USER", "DB_PASSWORD", "DB_NAME", "JWT_SECRET"} {
		if os.Getenv(key) == "" {
			log.Fatalf("missing required environment variable %s", key)
		}
	}
}

// InitDB opens the Postgres connection from environment variables and
// migrates the schema. The handle is returned, not stored globally, so the
// services receive it explicitly and tests can substitute their own.
func InitDB() *gorm.DB {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "fleet")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{Logger: logger.Gorm()})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Vehicle{},
		&models.Driver{},
		&models.Trip{},
		&models.MaintenanceLog{},
		&models.FuelLog{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	return db
}

// JWTSecret returns the HS256 signing key. MustLoadEnv guarantees it is
// set before any token is issued or checked.
func JWTSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
