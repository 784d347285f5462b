package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kirkclark82/UGCC-APP/config"
	"github.com/kirkclark82/UGCC-APP/internal/api/handler"
	"github.com/kirkclark82/UGCC-APP/internal/api/middleware"
)

// Setup builds the gin engine with global middleware and all routes.
func Setup(cfg *config.Config, h *handler.Handler, logger *zap.Logger) *gin.Engine {
	if cfg.Server.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// ── global middleware ──
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	// ── health ──
	r.GET("/health", h.System.Health)

	api := r.Group("/api")
	{
		api.GET("/test", h.System.Test)

		api.POST("/register", h.Auth.Register)
		api.POST("/login", h.Auth.Login)

		api.PUT("/user/:id", h.User.Update)

		// listing and export carry no authentication
		api.GET("/registrations", h.User.List)
		api.GET("/registrations/export", h.Export.ExportRegistrations)
	}

	return r
}
