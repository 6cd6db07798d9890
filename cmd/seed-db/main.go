package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"

	schema "tour-booking-api/db"
	"tour-booking-api/internal/pkg/errs"

	pgxdecimal "github.com/jackc/pgx-shopspring-decimal"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	var databaseURL string

	flag.StringVar(&databaseURL, "database-url", "", "PostgreSQL connection URL (or DATABASE_URL env)")
	flag.Parse()

	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		slog.Error("database URL is required: set --database-url or DATABASE_URL")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, databaseURL); err != nil {
		slog.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seed completed successfully")
}

func run(ctx context.Context, databaseURL string) error {
	slog.Info("connecting to database")

	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return errs.Wrap(err, "parse database URL")
	}
	poolCfg.AfterConnect = func(_ context.Context, conn *pgx.Conn) error {
		pgxdecimal.Register(conn.TypeMap())
		return nil
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return errs.Wrap(err, "connect to database")
	}
	defer pool.Close()

	slog.Info("applying schema")

	if _, err := pool.Exec(ctx, schema.Schema); err != nil {
		return errs.Wrap(err, "apply schema")
	}

	slog.Info("inserting demo fixtures")

	if _, err := pool.Exec(ctx, schema.Seed); err != nil {
		return errs.Wrap(err, "insert demo fixtures")
	}

	return nil
}
