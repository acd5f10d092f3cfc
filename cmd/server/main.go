// Package main - Entry point for the pcbuild persistence service
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pcbuild/adapters/tuning"
	"pcbuild/api"
	"pcbuild/core/generator"
	"pcbuild/core/pricing"
	"pcbuild/db"
	"pcbuild/db/memory"
	"pcbuild/db/postgres"
	"pcbuild/db/sqlite"
	"pcbuild/internal/config"
	"pcbuild/internal/errors"
	"pcbuild/internal/logging"
)

const version = "1.0.0"

func main() {
	cfgPath := flag.String("config", config.DefaultPath(), "Config file")
	addr := flag.String("addr", "", "Server address (overrides config and PCBUILD_ADDR)")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		logging.InitializeDefault()
	}
	defer logging.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Fatal("Server stopped", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	if cfg.Server.AdminPassword == "" {
		logging.Warn("ADMIN_PASSWORD is not set: every mutation will be rejected")
	}

	store, err := openStore(ctx, cfg.Server)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Server.Seed {
		n, err := db.Seed(ctx, store)
		if err != nil {
			return err
		}
		if n > 0 {
			logging.Info("Seeded templates", zap.Int("count", n))
		}
	}

	heuristics := generator.DefaultHeuristics()
	if path := cfg.Generator.HeuristicsPath; path != "" {
		if heuristics, err = tuning.Load(path, heuristics); err != nil {
			return err
		}
		logging.Info("Loaded heuristics", zap.String("path", path))
	}

	server := api.NewServer(version, store, cfg.Server.AdminPassword,
		api.WithHeuristics(heuristics),
		api.WithFormatter(pricing.NewFormatter(cfg.Output.Locale, cfg.Output.CurrencySuffix)),
		api.WithLogger(logging.Named("api")),
		api.WithStoreName(cfg.Server.Store),
	)

	logging.Info("pcbuild server starting",
		zap.String("version", version),
		zap.String("addr", cfg.Server.Addr),
		zap.String("store", cfg.Server.Store),
	)
	return server.ListenAndServe(ctx, cfg.Server.Addr,
		seconds(cfg.Server.ReadTimeoutSeconds, 10),
		seconds(cfg.Server.WriteTimeoutSeconds, 30),
	)
}

// openStore opens the configured backend
func openStore(ctx context.Context, cfg config.ServerConfig) (db.Store, error) {
	switch cfg.Store {
	case "", "memory":
		return memory.New(), nil
	case "sqlite":
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, errors.Config("failed to open sqlite store", err)
		}
		return s, nil
	case "postgres":
		if cfg.DatabaseURL == "" {
			return nil, errors.Config("DATABASE_URL is required for the postgres store", nil)
		}
		s, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, errors.Config("failed to open postgres store", err)
		}
		return s, nil
	default:
		return nil, errors.Config(fmt.Sprintf("unknown store %q (want memory, sqlite or postgres)", cfg.Store), nil)
	}
}

func seconds(n, fallback int) time.Duration {
	if n <= 0 {
		n = fallback
	}
	return time.Duration(n) * time.Second
}
