// Package main is the entry point for the item service. It wires all
// dependencies using samber/do v2, starts the HTTP server, and handles
// graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/samber/do/v2"

	adapthttp "github.com/jsamuelsen11/go-item-service/internal/adapters/http"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/http/middleware"

	"github.com/jsamuelsen11/go-item-service/internal/adapters/clients/catalog"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/store"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/store/memory"
	"github.com/jsamuelsen11/go-item-service/internal/adapters/store/sqlstore"
	"github.com/jsamuelsen11/go-item-service/internal/app"
	"github.com/jsamuelsen11/go-item-service/internal/platform/config"
	"github.com/jsamuelsen11/go-item-service/internal/platform/health"
	"github.com/jsamuelsen11/go-item-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/go-item-service/internal/platform/logging"
	"github.com/jsamuelsen11/go-item-service/internal/platform/messages"
	"github.com/jsamuelsen11/go-item-service/internal/platform/telemetry"
	"github.com/jsamuelsen11/go-item-service/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	seedTimeout           = 10 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logOut, closeLog := logging.NewWriter(os.Stderr, logging.FileOptions{
		Path:       cfg.Log.File.Path,
		MaxSizeMB:  cfg.Log.File.MaxSizeMB,
		MaxBackups: cfg.Log.File.MaxBackups,
		MaxAgeDays: cfg.Log.File.MaxAgeDays,
		Compress:   cfg.Log.File.Compress,
	})
	defer func() { _ = closeLog() }()

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, logOut)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := otel.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	itemStore, closeStore, err := openStore(cfg, otel.metrics, logger)
	if err != nil {
		return fmt.Errorf("opening item store: %w", err)
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error("store close error", slog.Any("error", err))
		}
	}()

	if cfg.Store.Seed {
		seedCtx, cancel := context.WithTimeout(ctx, seedTimeout)
		n, err := store.Seed(seedCtx, itemStore)
		cancel()
		if err != nil {
			return fmt.Errorf("seeding item store: %w", err)
		}
		logger.Info("seeded item store", slog.Int("count", n))
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, itemStore)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	if checker, ok := itemStore.(ports.HealthChecker); ok {
		registry.Register(checker)
	}

	logger.Info("starting item service",
		slog.String("profile", profile),
		slog.String("store", cfg.Store.Driver),
		slog.Int("port", cfg.Server.Port),
	)

	if err := server.Run(ctx, serverShutdownTimeout); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// openStore builds the item store selected by cfg.Store.Driver. The returned
// closer releases its resources.
func openStore(cfg *config.Config, metrics *telemetry.Metrics, logger *slog.Logger) (ports.ItemStore, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case "", config.DriverMemory:
		return memory.New(), noop, nil
	case config.DriverSQL:
		s, err := sqlstore.Open(cfg.Store.SQL)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverRemote:
		client := httpclient.New(&cfg.Client, catalog.PeerName, metrics, logger)
		return catalog.New(client, logger), noop, nil
	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*messages.Catalog, error) {
		return messages.NewCatalog(cfg.Messages.DefaultLocale)
	})

	do.Provide(injector, func(i do.Injector) (ports.ItemService, error) {
		itemStore := do.MustInvoke[ports.ItemStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewItemService(itemStore, metrics, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ItemHandler, error) {
		svc := do.MustInvoke[ports.ItemService](i)
		msgs := do.MustInvoke[*messages.Catalog](i)
		return handlers.NewItemHandler(svc, msgs, cfg.Server.MaxFormBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		itemH := do.MustInvoke[*handlers.ItemHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(itemH, healthH,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			chimw.Timeout(cfg.Server.RequestTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
