package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gogotex/gogotex/backend/go-comments/internal/comment/service"
	"github.com/gogotex/gogotex/backend/go-comments/internal/config"
	"github.com/gogotex/gogotex/backend/go-comments/internal/database"
	"github.com/gogotex/gogotex/backend/go-comments/internal/observability"
	"github.com/gogotex/gogotex/backend/go-comments/internal/server"
	"github.com/gogotex/gogotex/backend/go-comments/pkg/logger"
	"go.uber.org/zap"
)

func main() {
	// LOG_LEVEL is read directly so config errors are logged at the right level
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log.Level)
	log := logger.L().With(
		zap.String("service", cfg.Server.ServiceName),
		zap.String("env", cfg.Server.Environment),
	)
	log.Info("config loaded",
		zap.Bool("mongo", cfg.MongoDB.URI != ""),
		zap.Bool("metrics", cfg.Metrics.Enabled),
		zap.Bool("tracing", cfg.Tracing.Enabled),
		zap.String("log_level", logger.LevelString()),
	)

	ctx := context.Background()
	shutdownTracing, err := observability.SetupTracing(ctx,
		observability.TracingConfig{
			Enabled:          cfg.Tracing.Enabled,
			OTLPGrpcEndpoint: cfg.Tracing.Endpoint,
			Insecure:         cfg.Tracing.Insecure,
			SampleRate:       cfg.Tracing.SampleRate,
		},
		observability.ResourceConfig{ServiceName: cfg.Server.ServiceName, Environment: cfg.Server.Environment},
	)
	if err != nil {
		log.Fatal("tracing init failed", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown failed", zap.Error(err))
		}
	}()

	// Prefer the Mongo-backed store when MONGODB_URI is provided.
	var svc service.Service
	if cfg.MongoDB.URI != "" {
		client, err := database.ConnectMongoWithRetry(ctx, log, cfg.MongoDB.URI, cfg.MongoDB.Timeout, cfg.MongoDB.ConnectAttempts, time.Second)
		if err != nil {
			log.Fatal("could not connect to MongoDB", zap.Error(err))
		}
		defer func() { _ = client.Disconnect(context.Background()) }()
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		svc = service.NewMongoService(col)
		log.Info("using MongoDB comment store",
			zap.String("database", cfg.MongoDB.Database),
			zap.String("collection", cfg.MongoDB.Collection),
		)
	} else {
		log.Warn("MONGODB_URI not set; using in-memory comment store")
		svc = service.NewMemoryService()
	}

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      server.NewRouter(cfg, svc, log),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("starting comments service", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		log.Error("server shutdown failed", zap.Error(err))
	}
	log.Info("server exited")
}
