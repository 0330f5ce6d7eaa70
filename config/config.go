package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Storage backends for uploaded images.
const (
	StorageLocal = "local"
	StorageS3    = "s3"
)

// Database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	// Server configuration
	ServerPort string

	// Token signing secret, required
	SecretKey string

	// Database configuration
	DBDriver string // sqlite or postgres
	DBPath   string // sqlite file path
	DBDSN    string // postgres connection string

	// Upload configuration
	UploadDir      string
	StorageBackend string // local or s3
	S3Bucket       string
	S3Prefix       string
	AWSRegion      string
}

// Load reads configuration from the environment, after loading a .env
// file when one is present.
func Load() (*Config, error) {
	// .env is a convenience for development, missing is fine
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "3000"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		DBDriver:       getEnv("DB_DRIVER", DriverSQLite),
		DBPath:         getEnv("DB_PATH", "data/receitas.db"),
		DBDSN:          os.Getenv("DB_DSN"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		StorageBackend: getEnv("STORAGE_BACKEND", StorageLocal),
		S3Bucket:       os.Getenv("S3_BUCKET_NAME"),
		S3Prefix:       getEnv("S3_KEY_PREFIX", "receita-images"),
		AWSRegion:      os.Getenv("AWS_REGION"),
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
