package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kirkclark82/UGCC-APP/config"
	"github.com/kirkclark82/UGCC-APP/internal/api/handler"
	"github.com/kirkclark82/UGCC-APP/internal/api/router"
	"github.com/kirkclark82/UGCC-APP/internal/repository"
	"github.com/kirkclark82/UGCC-APP/internal/service"
	"github.com/kirkclark82/UGCC-APP/internal/validation"
	"github.com/kirkclark82/UGCC-APP/pkg/database"
	applogger "github.com/kirkclark82/UGCC-APP/pkg/logger"
	"github.com/kirkclark82/UGCC-APP/pkg/password"
)

func main() {
	// 1. config
	cfg, err := config.Load(os.Getenv("UGCC_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("mode", cfg.Server.Mode),
		zap.String("store", cfg.Store.Driver),
	)

	// 3. credential store
	repo, db := openStore(cfg, logger)

	// 4. Repository → Service → Handler
	hasher := password.NewBcryptHasher(cfg.Auth.BcryptCost)
	svc := service.NewService(repo, hasher, validation.New(), logger)
	h := handler.NewHandler(cfg, svc)

	// 5. routes
	engine := router.Setup(cfg, h, logger)

	// 6. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}

	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	logger.Info("server stopped")
}

// openStore selects the credential store. The returned *gorm.DB is nil for
// the in-memory store.
func openStore(cfg *config.Config, logger *zap.Logger) (*repository.Repository, *gorm.DB) {
	if cfg.Store.Driver == config.StoreMemory {
		logger.Warn("using in-memory store; registrations are lost on restart")
		return repository.NewMemoryRepository(), nil
	}

	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("get sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	return repository.NewRepository(db), db
}
