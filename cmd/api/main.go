package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/consultorio/internal/config"
	dbpkg "github.com/BruksfildServices01/consultorio/internal/db"
	"github.com/BruksfildServices01/consultorio/internal/identity"
	"github.com/BruksfildServices01/consultorio/internal/infra/storage"
	"github.com/BruksfildServices01/consultorio/internal/infra/tokenstore"
	"github.com/BruksfildServices01/consultorio/internal/logger"
	"github.com/BruksfildServices01/consultorio/internal/middleware"
	"github.com/BruksfildServices01/consultorio/internal/routes"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.Env, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	// valores monetários saem como número no JSON
	decimal.MarshalJSONWithoutQuotes = true

	db, err := dbpkg.NewDB(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var revoked identity.RevocationStore = tokenstore.NewMemoryStore()
	if cfg.RedisURL != "" {
		client, err := tokenstore.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		revoked = tokenstore.NewRedisStore(client)
	} else {
		log.Warn("REDIS_URL not set, revoked tokens are kept in memory")
	}

	var objects storage.ObjectStorage
	if cfg.AvatarUploadEnabled() {
		objects = storage.NewS3Storage(cfg)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.Recovery(log), middleware.RequestLogger(log.Named("http")))

	routes.RegisterRoutes(r, routes.Deps{
		DB:      db,
		Config:  cfg,
		Log:     log,
		Revoked: revoked,
		Storage: objects,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown", zap.Error(err))
		}
	}()

	log.Info("server running",
		zap.String("addr", cfg.Addr()),
		zap.String("db_driver", cfg.DBDriver),
		zap.Bool("avatar_upload", objects != nil),
	)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
