package config

import "fmt"

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks that the loaded configuration is usable before any
// component is constructed from it.
func Validate(cfg *Config) error {
	if cfg.SecretKey == "" {
		return ValidationError{Field: "SECRET_KEY", Message: "token signing secret is required"}
	}

	switch cfg.DBDriver {
	case DriverSQLite:
		if cfg.DBPath == "" {
			return ValidationError{Field: "DB_PATH", Message: "sqlite database path is required"}
		}
	case DriverPostgres:
		if cfg.DBDSN == "" {
			return ValidationError{Field: "DB_DSN", Message: "postgres connection string is required"}
		}
	default:
		return ValidationError{Field: "DB_DRIVER", Message: fmt.Sprintf("unknown driver %q", cfg.DBDriver)}
	}

	switch cfg.StorageBackend {
	case StorageLocal:
		if cfg.UploadDir == "" {
			return ValidationError{Field: "UPLOAD_DIR", Message: "uploads directory is required"}
		}
	case StorageS3:
		if cfg.S3Bucket == "" {
			return ValidationError{Field: "S3_BUCKET_NAME", Message: "bucket name is required for s3 storage"}
		}
	default:
		return ValidationError{Field: "STORAGE_BACKEND", Message: fmt.Sprintf("unknown backend %q", cfg.StorageBackend)}
	}

	return nil
}
