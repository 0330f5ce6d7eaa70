package main

import (
	"os"

	"go.uber.org/zap/zapcore"

	"github.com/pjreceita/receitas-backend/config"
	"github.com/pjreceita/receitas-backend/internal/database"
	"github.com/pjreceita/receitas-backend/pkg/log"
)

func main() {
	logger := log.NewZapLogger("migrate", zapcore.InfoLevel)

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
		logger.Errorw("migration failed", "error", err)
		os.Exit(1)
	}

	logger.Infow("migration complete", "driver", cfg.DBDriver)
}
