// Command fabcore opens the configured persistence substrate, hydrates the
// entity store, runs the seed/migration check, recomputes quotation cost
// roll-ups, and optionally serves Prometheus metrics until interrupted.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"fabcore/internal/costing"
	"fabcore/internal/seed"
	"fabcore/internal/store"
	"fabcore/internal/substrate"
	"fabcore/pkg/config"
)

// version is injected at build time via -ldflags.
var version = "dev"

func main() {
	cfg, err := config.Load(version)
	if err != nil {
		zap.NewExample().Fatal("configuration", zap.Error(err))
	}

	log, err := newLogger(cfg)
	if err != nil {
		zap.NewExample().Fatal("logger", zap.Error(err))
	}
	defer log.Sync() //nolint:errcheck

	if err := run(cfg, log); err != nil {
		log.Fatal("fabcore failed", zap.Error(err))
	}
}

func run(cfg *config.Config, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub, err := substrate.Open(ctx, cfg.Store.SubstrateOptions())
	if err != nil {
		return err
	}
	if closer, ok := sub.(interface{ Close() error }); ok {
		defer closer.Close() //nolint:errcheck
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	st, err := store.New(ctx, sub,
		store.WithLogger(log.Named("store")),
		store.WithMetrics(store.NewMetrics(registry)),
	)
	if err != nil {
		return err
	}
	log.Info("store hydrated",
		zap.String("driver", cfg.Store.Driver),
		zap.String("version", cfg.Version))

	if cfg.Seed.Enabled {
		ctrl := seed.New(st, seed.WithLogger(log.Named("seed")))
		seeded, err := ctrl.Ensure(ctx)
		if err != nil {
			return err
		}
		if seeded {
			log.Info("seed applied", zap.String("schema_version", seed.SchemaVersion))
		}
	}

	engine := costing.NewEngine(st, cfg.Costing, costing.WithLogger(log.Named("costing")))
	for _, q := range st.ListQuotations() {
		if _, _, err := engine.UpdateQuotationWithIntegratedData(ctx, q.ID); err != nil {
			return err
		}
	}

	if cfg.MetricsAddr == "" {
		return nil
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	srv := &http.Server{
		Addr:              cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	var zc zap.Config
	if cfg.Env == "local" {
		zc = zap.NewDevelopmentConfig()
	} else {
		zc = zap.NewProductionConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	return zc.Build()
}
