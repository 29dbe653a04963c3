package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"workstudy/internal/config"
	"workstudy/internal/engine"
	"workstudy/internal/logger"
	"workstudy/internal/observability"
	"workstudy/internal/session"
	"workstudy/internal/state"
	"workstudy/internal/store"
	"workstudy/internal/store/bolt"
	"workstudy/internal/store/file"
	"workstudy/internal/store/memory"
	"workstudy/internal/store/sqlite"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// version is stamped at build time with -ldflags "-X workstudy/cmd/swms/cmd.version=...".
var version = "dev"

// app is the core wired for one command invocation.
type app struct {
	cfg     *config.Config
	logger  *slog.Logger
	session *session.Session
	engine  *engine.Service
	metrics *observability.Metrics

	closers []func(context.Context) error
}

func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, logger: log}

	shutdownTracing, err := observability.InitTracer(ctx, observability.TracerConfig{
		ServiceName:    "swms",
		ServiceVersion: version,
		Endpoint:       cfg.OTELEndpoint,
		SampleRatio:    cfg.TraceSampleRatio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to init tracing: %w", err)
	}
	a.closers = append(a.closers, shutdownTracing)

	if cfg.Metrics {
		m, err := observability.InitMetrics()
		if err != nil {
			a.close(ctx)
			return nil, fmt.Errorf("failed to init metrics: %w", err)
		}
		a.metrics = m
		a.closers = append(a.closers, m.Shutdown)
	}

	kv, err := openKV(ctx, cfg)
	if err != nil {
		a.close(ctx)
		return nil, err
	}
	if c, ok := kv.(interface{ Close() error }); ok {
		a.closers = append(a.closers, func(context.Context) error { return c.Close() })
	}

	a.session = session.Open(ctx, kv, log)
	a.engine = engine.New(state.Open(ctx, kv, log), a.session, engine.WithLogger(log))

	if a.metrics != nil {
		a.registerGauges()
	}
	return a, nil
}

func openKV(ctx context.Context, cfg *config.Config) (store.KV, error) {
	switch cfg.StorageBackend {
	case config.StorageMemory:
		return memory.New(), nil
	case config.StorageSQLite:
		if err := ensureParentDir(cfg.SQLitePath); err != nil {
			return nil, err
		}
		s, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return s, nil
	case config.StorageBolt:
		if err := ensureParentDir(cfg.BoltPath); err != nil {
			return nil, err
		}
		s, err := bolt.Open(cfg.BoltPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open bolt store: %w", err)
		}
		return s, nil
	default:
		s, err := file.New(cfg.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to open file store: %w", err)
		}
		return s, nil
	}
}

func ensureParentDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}
	return nil
}

// registerGauges exposes the derived totals as observable gauges that are
// computed only when metrics are collected.
func (a *app) registerGauges() {
	meter := otel.Meter("workstudy/cmd/swms")
	_, err := meter.Float64ObservableGauge("swms.hours.approved.total",
		metric.WithDescription("Sum of hours over approved work logs"),
		metric.WithUnit("h"),
		metric.WithFloat64Callback(func(ctx context.Context, obs metric.Float64Observer) error {
			obs.Observe(a.engine.TotalApprovedHours())
			return nil
		}),
	)
	if err != nil {
		a.logger.Warn("failed to register approved hours gauge", "error", err)
	}

	_, err = meter.Int64ObservableGauge("swms.worklogs.pending",
		metric.WithDescription("Work logs awaiting approval"),
		metric.WithInt64Callback(func(ctx context.Context, obs metric.Int64Observer) error {
			obs.Observe(int64(len(a.engine.PendingWorkLogs())))
			return nil
		}),
	)
	if err != nil {
		a.logger.Warn("failed to register pending logs gauge", "error", err)
	}
}

func (a *app) close(ctx context.Context) {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](ctx); err != nil {
			a.logger.Warn("shutdown step failed", "error", err)
		}
	}
	a.closers = nil
}
