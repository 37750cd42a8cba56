package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/chain"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/repository/postgres"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/evt/service/ingester"
	"github.com/goodnatureofminers/blockinsight7000-evtpg/internal/metrics"
)

type config struct {
	PostgresDSN        string        `long:"postgres-dsn" env:"EVT_PG_POSTGRES_DSN" description:"PostgreSQL DSN" required:"true"`
	Feed               string        `long:"feed" env:"EVT_PG_FEED" description:"path of the JSON-lines block feed, - for stdin" default:"-"`
	Follow             bool          `long:"follow" env:"EVT_PG_FOLLOW" description:"keep reading the feed as it grows"`
	MaxBlocksPerSecond int           `long:"max-blocks-per-second" env:"EVT_PG_MAX_BPS" description:"block replay throttle, 0 for unlimited" default:"0"`
	IdleSleep          time.Duration `long:"idle-sleep" env:"EVT_PG_IDLE_SLEEP" description:"wait after the followed feed runs dry" default:"1s"`
	MetricsAddr        string        `long:"metrics-addr" env:"EVT_PG_METRICS_ADDR" description:"address for metrics server" default:":2112"`
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

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("evt ingester failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	startMetricsServer(ctx, cfg.MetricsAddr, logger)

	feed, err := openFeed(cfg.Feed)
	if err != nil {
		return err
	}
	defer func() {
		_ = feed.Close()
	}()

	repo, err := postgres.NewRepository(ctx, cfg.PostgresDSN, metrics.NewPostgresRepository())
	if err != nil {
		return fmt.Errorf("init repository: %w", err)
	}
	defer func() {
		if err := repo.Close(context.Background()); err != nil {
			logger.Warn("close repository", zap.Error(err))
		}
	}()

	source := chain.NewJSONLinesSource(feed, chain.JSONLinesConfig{
		MaxBlocksPerSecond: cfg.MaxBlocksPerSecond,
		Follow:             cfg.Follow,
	})
	svc, err := ingester.NewService(
		repo,
		source,
		metrics.NewEVTIngester(),
		cfg.IdleSleep,
		logger.Named("ingester"),
	)
	if err != nil {
		return err
	}
	if err = svc.Prepare(ctx); err != nil {
		return fmt.Errorf("prepare: %w", err)
	}
	return svc.Run(ctx)
}

func openFeed(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open feed: %w", err)
	}
	return f, nil
}

func startMetricsServer(ctx context.Context, addr string, logger *zap.Logger) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("starting metrics server", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", zap.Error(err))
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown metrics server", zap.Error(err))
		}
	}()
}
