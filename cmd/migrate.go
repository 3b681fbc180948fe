package main

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-SportsBookingService/internal/config"
	"github.com/m04kA/SMC-SportsBookingService/migrations"
	"github.com/m04kA/SMC-SportsBookingService/pkg/logger"
	"github.com/m04kA/SMC-SportsBookingService/pkg/migrator"
)

func runMigrate(ctx context.Context, configPath, command string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.New("", cfg.Logs.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info("Running migrations: command=%s, db=%s", command, cfg.Database.DBName)
	return migrator.New(db, migrations.FS, log).Run(ctx, command)
}
