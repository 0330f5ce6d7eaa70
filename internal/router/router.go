package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pjreceita/receitas-backend/internal/api"
	"github.com/pjreceita/receitas-backend/internal/middleware"
)

// Options carries everything route registration needs.
type Options struct {
	ReceitaHandler *api.ReceitaHandler
	AuthHandler    *api.AuthHandler
	TokenValidator middleware.TokenValidator
	Logger         *zap.SugaredLogger

	// UploadDir, when non-empty, is served statically under /uploads.
	UploadDir string
}

// Setup configures the application routes. Listing stays public; the
// mutation endpoints sit behind the token gate.
func Setup(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery(opts.Logger))
	router.Use(middleware.CORS())

	if opts.UploadDir != "" {
		router.Static("/uploads", opts.UploadDir)
	}

	router.POST("/login", opts.AuthHandler.Login)
	router.POST("/register", opts.AuthHandler.Register)

	router.GET("/receitas", opts.ReceitaHandler.List)

	protected := router.Group("/receitas")
	protected.Use(middleware.AuthMiddleware(opts.TokenValidator))
	{
		protected.POST("", opts.ReceitaHandler.Create)
		protected.PUT("/:id", opts.ReceitaHandler.Update)
		protected.DELETE("/:id", opts.ReceitaHandler.Delete)
	}

	return router
}
