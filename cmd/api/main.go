package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/feral-file/poker-hand-logger/internal/adapter"
	"github.com/feral-file/poker-hand-logger/internal/api/server"
	"github.com/feral-file/poker-hand-logger/internal/api/shared/executor"
	"github.com/feral-file/poker-hand-logger/internal/config"
	"github.com/feral-file/poker-hand-logger/internal/logger"
	"github.com/feral-file/poker-hand-logger/internal/messaging"
	"github.com/feral-file/poker-hand-logger/internal/ratelimit"
	"github.com/feral-file/poker-hand-logger/internal/realtime"
	"github.com/feral-file/poker-hand-logger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Service:         "api",
		Tags: map[string]string{
			"service": "poker-hand-logger-api",
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Poker Hand Logger API")

	// Apply pending migrations before the store is used
	if cfg.Database.AutoMigrate {
		if err := store.MigrateUp(cfg.Database.URL(), cfg.Database.MigrationsPath); err != nil {
			logger.Fatal("Failed to apply database migrations", zap.Error(err))
		}
	}

	// Connect to database
	db, err := gorm.Open(postgres.Open(cfg.Database.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err), zap.String("host", cfg.Database.Host))
	}

	// Configure connection pool
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.Fatal("Failed to configure connection pool", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store and adapters
	dataStore := store.NewPGStore(db)
	clock := adapter.NewClock()
	jsonAdapter := adapter.NewJSON()

	// Realtime hub serving local websocket clients
	hub := realtime.NewHub(cfg.Realtime, cfg.Server.CORSOrigins, clock)
	defer hub.Close()

	// Route events through NATS when a backplane is configured so every instance sees them
	var broadcaster realtime.Broadcaster = hub
	if cfg.NATS.URL != "" {
		bus, err := messaging.NewNATSBus(ctx, cfg.NATS, adapter.NewNatsConnector(), jsonAdapter)
		if err != nil {
			logger.Fatal("Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		relay := realtime.NewRelay(bus, bus, hub, clock)
		if err := relay.Start(ctx); err != nil {
			logger.Fatal("Failed to start realtime relay", zap.Error(err))
		}
		defer relay.Close()
		broadcaster = relay
		logger.InfoCtx(ctx, "Realtime backplane enabled", zap.String("subject_prefix", cfg.NATS.SubjectPrefix))
	} else {
		logger.WarnCtx(ctx, "NATS URL not configured, realtime events stay on this instance")
	}

	// Rate limiting is disabled when no request budget is configured
	var limiter ratelimit.Limiter
	if cfg.RateLimit.Requests > 0 {
		limiter, err = ratelimit.NewLimiter(cfg.RateLimit, clock)
		if err != nil {
			logger.Fatal("Failed to create rate limiter", zap.Error(err))
		}
	}

	exec := executor.NewExecutor(dataStore, broadcaster, clock)

	// Create server config
	serverConfig := server.Config{
		Debug:        cfg.Debug,
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		CORSOrigins:  cfg.Server.CORSOrigins,
		WSPath:       cfg.Server.WSPath,
	}
	srv := server.New(serverConfig, exec, limiter, hub.ServeWS)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	// Create shutdown context with timeout (don't use canceled ctx)
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	// Shutdown server; hijacked websocket connections are closed by the hub
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error(err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
