package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/pjreceita/receitas-backend/config"
	"github.com/pjreceita/receitas-backend/internal/api"
	"github.com/pjreceita/receitas-backend/internal/database"
	"github.com/pjreceita/receitas-backend/internal/router"
	"github.com/pjreceita/receitas-backend/internal/server"
	"github.com/pjreceita/receitas-backend/internal/service"
	"github.com/pjreceita/receitas-backend/internal/storage"
	"github.com/pjreceita/receitas-backend/pkg/log"
)

func main() {
	logger := log.NewZapLogger("receitas", zapcore.InfoLevel)

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

	var images storage.ImageStore
	var uploadDir string
	switch cfg.StorageBackend {
	case config.StorageS3:
		images, err = storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Prefix, cfg.AWSRegion, logger)
	default:
		images, err = storage.NewDiskStore(cfg.UploadDir, logger)
		uploadDir = cfg.UploadDir
	}
	if err != nil {
		logger.Errorw("failed to set up image storage", "error", err)
		os.Exit(1)
	}

	authService := service.NewAuthService(db, cfg.SecretKey, logger)
	receitaService := service.NewReceitaService(db, logger)

	engine := router.Setup(router.Options{
		ReceitaHandler: api.NewReceitaHandler(receitaService, images, logger),
		AuthHandler:    api.NewAuthHandler(authService, logger),
		TokenValidator: authService,
		Logger:         logger,
		UploadDir:      uploadDir,
	})

	srv := server.New(engine, cfg.ServerPort, logger)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			logger.Errorw("server error", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		logger.Infow("received signal", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorw("server shutdown error", "error", err)
		os.Exit(1)
	}
	logger.Infow("server stopped")
}
