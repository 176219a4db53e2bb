package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/leixerzzz/horizonventura/internal/config"
	"github.com/leixerzzz/horizonventura/internal/handler/middleware"
)

func SetupRouter(
	cfg *config.Config,
	logger *zap.Logger,
	referralHandler *ReferralHandler,
	bookingHandler *BookingHandler,
	reviewHandler *ReviewHandler,
	userHandler *UserHandler,
) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())
	if len(cfg.CORS.AllowedOrigins) > 0 {
		r.Use(middleware.CORS(cfg.CORS))
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if cfg.Metrics.Enabled {
		path := cfg.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		r.GET(path, gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")
	{
		referrals := api.Group("/referrals")
		{
			referrals.POST("/generate", referralHandler.Generate)
			referrals.POST("/use", referralHandler.Use)
			referrals.GET("", referralHandler.List)
		}

		bookings := api.Group("/bookings")
		{
			bookings.POST("", bookingHandler.Create)
			bookings.GET("", bookingHandler.List)
			bookings.PATCH("/:id", bookingHandler.UpdateStatus)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", reviewHandler.Create)
			reviews.GET("", reviewHandler.List)
		}

		users := api.Group("/users")
		{
			users.POST("", userHandler.Create)
			users.GET("/:id", userHandler.Get)
		}
	}

	return r
}
