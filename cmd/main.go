package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/leixerzzz/horizonventura/internal/config"
	"github.com/leixerzzz/horizonventura/internal/handler"
	"github.com/leixerzzz/horizonventura/internal/model"
	"github.com/leixerzzz/horizonventura/internal/repository"
	"github.com/leixerzzz/horizonventura/internal/service"
	"github.com/leixerzzz/horizonventura/pkg/logger"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	zlog, err := logger.New(logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer zlog.Sync()

	// 3. Initialize repositories for the configured store backend
	var (
		userRepo     repository.UserRepository
		referralRepo repository.ReferralRepository
		bookingRepo  repository.BookingRepository
		reviewRepo   repository.ReviewRepository
	)
	switch cfg.Store.Backend {
	case "postgres":
		db, err := config.NewPostgresDB(cfg.Database.Postgres)
		if err != nil {
			zlog.Fatal("failed to connect to postgres", zap.Error(err))
		}
		if cfg.Database.Postgres.AutoMigrate {
			if err := model.AutoMigrate(db); err != nil {
				zlog.Fatal("failed to auto-migrate", zap.Error(err))
			}
			zlog.Info("database migration completed")
		}
		userRepo = repository.NewPGUserRepository(db)
		referralRepo = repository.NewPGReferralRepository(db)
		bookingRepo = repository.NewPGBookingRepository(db)
		reviewRepo = repository.NewPGReviewRepository(db)
	case "memory":
		userRepo = repository.NewMemoryUserRepository()
		referralRepo = repository.NewMemoryReferralRepository()
		bookingRepo = repository.NewMemoryBookingRepository(userRepo)
		reviewRepo = repository.NewMemoryReviewRepository(userRepo)
		zlog.Info("using in-memory store")
	default:
		zlog.Fatal("unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	// 4. Initialize services
	referralService := service.NewReferralService(referralRepo, userRepo)
	bookingService := service.NewBookingService(bookingRepo, userRepo)
	reviewService := service.NewReviewService(reviewRepo, userRepo)
	userService := service.NewUserService(userRepo)

	// 5. Initialize handlers
	referralHandler := handler.NewReferralHandler(referralService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reviewHandler := handler.NewReviewHandler(reviewService)
	userHandler := handler.NewUserHandler(userService)

	// 6. Setup router
	router := handler.SetupRouter(cfg, zlog, referralHandler, bookingHandler, reviewHandler, userHandler)

	// 7. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 8. Start server with graceful shutdown
	go func() {
		zlog.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	// 9. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zlog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited gracefully")
}
