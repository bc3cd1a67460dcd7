package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/usersapi/internal/config"
	"github.com/polkiloo/usersapi/internal/server/http/handlers"
	"github.com/polkiloo/usersapi/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.UserFacade, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.RedirectTrailingSlash = false
	engine.RedirectFixedPath = false

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.RateLimit(cfg.RateLimit, cfg.RateBurst))
	engine.Use(middleware.DecompressBody())
	engine.Use(middleware.CompressResponse(gzip.DefaultCompression))

	userHandler := handlers.NewUserHandler(facade)

	users := engine.Group("/api/users")
	users.GET("", userHandler.List)
	users.POST("", userHandler.Create)
	users.OPTIONS("", userHandler.Options)
	users.GET("/:id", userHandler.Get)
	users.HEAD("/:id", userHandler.Head)
	users.PATCH("/:id", userHandler.Patch)
	users.DELETE("/:id", userHandler.Delete)

	return engine
}
