package main

import (
	"flag"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/poker-hand-logger/internal/config"
	"github.com/feral-file/poker-hand-logger/internal/logger"
	"github.com/feral-file/poker-hand-logger/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	down       = flag.Int("down", 0, "Number of migrations to roll back instead of applying pending ones")
)

func main() {
	flag.Parse()

	config.ChdirRepoRoot()
	cfg, err := config.LoadMigrateConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	err = logger.Initialize(logger.Config{
		Debug:     cfg.Debug,
		SentryDSN: cfg.SentryDSN,
		Service:   "migrate",
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)

	if *down > 0 {
		if err := store.MigrateDown(cfg.Database.URL(), cfg.Database.MigrationsPath, *down); err != nil {
			logger.Fatal("Failed to roll back migrations", zap.Error(err), zap.Int("steps", *down))
		}
		logger.Info("Rolled back migrations", zap.Int("steps", *down))
		return
	}

	if err := store.MigrateUp(cfg.Database.URL(), cfg.Database.MigrationsPath); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
}
