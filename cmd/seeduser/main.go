package main

import (
	"flag"
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/pjreceita/receitas-backend/config"
	"github.com/pjreceita/receitas-backend/internal/database"
	"github.com/pjreceita/receitas-backend/internal/service"
	"github.com/pjreceita/receitas-backend/pkg/log"
)

// Creates a user with a hashed password, for bootstrapping installs that
// predate the /register endpoint.
func main() {
	username := flag.String("username", "", "username for the new account")
	email := flag.String("email", "", "optional email")
	password := flag.String("password", "", "plaintext password, hashed before storage")
	flag.Parse()

	logger := log.NewZapLogger("seeduser", zapcore.InfoLevel)

	if *username == "" || *password == "" {
		logger.Errorw("username and password are required")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Errorw("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		logger.Errorw("failed to migrate database", "error", err)
		os.Exit(1)
	}

	auth := service.NewAuthService(db, cfg.SecretKey, logger)
	if _, err := auth.Register(*username, *email, *password); err != nil {
		logger.Errorw("failed to create user", "username", *username, "error", err)
		os.Exit(1)
	}

	logger.Infow("user created", "username", *username)
}
