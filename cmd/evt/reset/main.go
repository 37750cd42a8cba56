// Command reset drops every table and sequence created by the ingester.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/metrics"
)

type config struct {
	PostgresDSN string `long:"postgres-dsn" env:"EVT_PG_POSTGRES_DSN" description:"PostgreSQL DSN" required:"true"`
	Yes         bool   `long:"yes" description:"confirm dropping all ingested data"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if !cfg.Yes {
		logger.Fatal("refusing to drop tables without --yes")
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("reset failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	repo, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		_ = repo.Close(context.Background())
	}()

	if err = repo.DropAllTables(ctx); err != nil {
		return err
	}
	if err = repo.DropAllSequences(ctx); err != nil {
		return err
	}
	logger.Info("dropped all tables and sequences")
	return nil
}
