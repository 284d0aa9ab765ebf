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

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/zarnosh/My-E-comerce-Store/api/controllers"
	"github.com/zarnosh/My-E-comerce-Store/api/routes"
	"github.com/zarnosh/My-E-comerce-Store/internal/cart"
	"github.com/zarnosh/My-E-comerce-Store/internal/checkout"
	"github.com/zarnosh/My-E-comerce-Store/internal/notifications"
	"github.com/zarnosh/My-E-comerce-Store/internal/persistence"
	"github.com/zarnosh/My-E-comerce-Store/internal/seed"
	"github.com/zarnosh/My-E-comerce-Store/internal/store"
	"github.com/zarnosh/My-E-comerce-Store/pkg/config"
	"github.com/zarnosh/My-E-comerce-Store/pkg/db"
	"github.com/zarnosh/My-E-comerce-Store/pkg/kvstore"
	"github.com/zarnosh/My-E-comerce-Store/pkg/logger"
	"github.com/zarnosh/My-E-comerce-Store/pkg/metrics"
	"github.com/zarnosh/My-E-comerce-Store/pkg/migrate"
	"github.com/zarnosh/My-E-comerce-Store/pkg/redis"
)

// storage is the pair of key-value scopes plus whatever connections back them.
type storage struct {
	session    kvstore.Store
	persistent kvstore.Store
	closers    []io.Closer
	pingers    map[string]controllers.Pinger
}

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormatOrDefault(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	stores, err := openStorage(ctx, cfg, logg)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := kvstore.CloseAll(stores.closers...); closeErr != nil {
			logg.Error(context.Background(), "error closing storage", closeErr)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storeMetrics := metrics.NewStoreMetrics(registry)

	bridge, err := persistence.NewBridge(persistence.Params{
		Session:    stores.session,
		Persistent: stores.persistent,
		Logger:     logg,
		Metrics:    storeMetrics,
	})
	if err != nil {
		return fmt.Errorf("creating persistence bridge: %w", err)
	}

	notifier := notifications.New(notifications.Params{
		TTL:     cfg.Timers.ToastTTL,
		Logger:  logg,
		Metrics: storeMetrics,
	})
	defer notifier.Close()

	st := store.New(store.Params{
		Dataset:   seed.Dataset(),
		Persister: bridge,
		Notifier:  notifier,
		Logger:    logg,
		Metrics:   storeMetrics,
	})
	st.Hydrate(ctx)

	shoppingCart := cart.New(cart.Params{Persister: bridge, Logger: logg})
	shoppingCart.Hydrate(ctx)

	checkoutService, err := checkout.NewService(checkout.ServiceParams{
		Orders: st,
		Cart:   shoppingCart,
		Delay:  cfg.Timers.CheckoutDelay,
		Logger: logg,
	})
	if err != nil {
		return fmt.Errorf("creating checkout service: %w", err)
	}
	defer checkoutService.Close()

	handler, err := routes.NewRouter(routes.Deps{
		Config:   cfg,
		Logger:   logg,
		Store:    st,
		Cart:     shoppingCart,
		Checkout: checkoutService,
		Registry: registry,
		Backends: stores.pingers,
	})
	if err != nil {
		return fmt.Errorf("creating router: %w", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	logCtx := logg.WithFields(context.Background(), map[string]any{
		"env":        cfg.App.Env,
		"addr":       addr,
		"session":    cfg.Storage.SessionBackend,
		"persistent": cfg.Storage.PersistentBackend,
	})
	logg.Info(logCtx, "starting api server")

	server := &http.Server{Addr: addr, Handler: handler}
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logg.Info(logCtx, "shutting down api server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

// openStorage connects the configured backends for the session and
// persistent scopes.
func openStorage(ctx context.Context, cfg *config.Config, logg *logger.Logger) (*storage, error) {
	out := &storage{pingers: map[string]controllers.Pinger{}}

	switch cfg.Storage.SessionBackend {
	case config.BackendRedis:
		client, err := redis.New(ctx, cfg.Redis, logg)
		if err != nil {
			return nil, fmt.Errorf("bootstrapping redis: %w", err)
		}
		out.closers = append(out.closers, client)
		out.pingers["redis"] = client
		session, err := kvstore.NewRedis(client, kvstore.ScopeSession, cfg.Storage.SessionTTL)
		if err != nil {
			_ = kvstore.CloseAll(out.closers...)
			return nil, err
		}
		out.session = session
	default:
		out.session = kvstore.NewMemory()
	}

	switch cfg.Storage.PersistentBackend {
	case config.BackendSQL:
		client, err := db.New(ctx, cfg.DB, logg)
		if err != nil {
			_ = kvstore.CloseAll(out.closers...)
			return nil, fmt.Errorf("bootstrapping database: %w", err)
		}
		out.closers = append(out.closers, client)
		out.pingers["database"] = client
		if err := migrate.MaybeRun(ctx, cfg, logg, client); err != nil {
			_ = kvstore.CloseAll(out.closers...)
			return nil, fmt.Errorf("running migrations: %w", err)
		}
		persistent, err := kvstore.NewSQL(client.DB(), kvstore.ScopePersistent)
		if err != nil {
			_ = kvstore.CloseAll(out.closers...)
			return nil, err
		}
		out.persistent = persistent
	default:
		out.persistent = kvstore.NewMemory()
	}

	return out, nil
}
