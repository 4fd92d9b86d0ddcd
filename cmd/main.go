package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	httpadapter "pledge-data/internal/adapter/http"
	"pledge-data/internal/adapter/memory"
	"pledge-data/internal/adapter/postgres"
	"pledge-data/internal/adapter/sqlite"
	"pledge-data/internal/adapter/system"
	"pledge-data/internal/adapter/usecase"
	"pledge-data/internal/config"
	"pledge-data/internal/config/configs"
	"pledge-data/internal/core/port"
	"pledge-data/internal/db"
)

// main loads configuration, opens the configured store (running its
// migrations when enabled), wires the use cases and serves the HTTP API
// until SIGINT or SIGTERM, then shuts down gracefully.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	var logger *slog.Logger
	{
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler).With(slog.String("env", cfg.Env))
	}

	rules, err := cfg.Business.Rules()
	if err != nil {
		logger.Error("invalid business config", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	store, closer, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("store setup error", slog.String("driver", cfg.Store.DriverName()), slog.Any("error", err))
		return
	}
	defer closer.Close()

	clock := system.Clock{}
	ids := system.UUIDGenerator{}

	ads := usecase.NewAdUseCase(store, clock, ids, rules)
	clients := usecase.NewClientUseCase(store, ads, clock, ids, logger)
	budget := usecase.NewBudgetUseCase(store, clock, ids, rules, cfg.Business.BudgetMaxRetries)
	placement := usecase.NewPlacementUseCase(ads, clients, budget, logger)

	if cfg.Store.SeedDemo {
		seeder := db.Seeder{Clients: clients, Ads: ads, Placement: placement, Budget: budget, Logger: logger}
		if err = seeder.Seed(ctx, clock.Now()); err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
	}

	handler := httpadapter.NewHandler(httpadapter.Services{
		Ads:       ads,
		Clients:   clients,
		Placement: placement,
		Budget:    budget,
		Analytics: usecase.NewAnalyticsUseCase(ads, clients, budget, clock, rules),
		Backup:    usecase.NewBackupUseCase(store, clock, logger),
	}, clock, logger)
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler: handler.Router(),
	}

	go func() {
		logger.Info("server listening",
			slog.Int("port", int(cfg.HTTP.Port)),
			slog.String("store", cfg.Store.DriverName()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// openStore builds the configured port.Store. The returned closer releases
// its connections.
func openStore(ctx context.Context, cfg config.Config, logger *slog.Logger) (port.Store, io.Closer, error) {
	switch cfg.Store.DriverName() {
	case configs.StoreMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		return memory.New(), closerFunc(func() error { return nil }), nil

	case configs.StoreSQLite:
		if cfg.SQLite.RunMigrations {
			if err := db.MigrateSQLite(cfg.SQLite.Path); err != nil {
				return nil, nil, fmt.Errorf("migrate sqlite: %w", err)
			}
			logger.Info("migrations applied successfully", slog.String("path", cfg.SQLite.Path))
		}
		s, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil

	case configs.StorePostgres:
		if cfg.Psql.RunMigrations {
			if err := db.MigratePostgres(cfg.Psql.Addr.String()); err != nil {
				return nil, nil, fmt.Errorf("migrate postgres: %w", err)
			}
			logger.Info("migrations applied successfully")
		}
		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewStore(pool), closerFunc(func() error { pool.Close(); return nil }), nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
