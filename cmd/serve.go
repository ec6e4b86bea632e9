package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gocable/internal/api"
	"github.com/alexiusacademia/gocable/internal/config"
	"github.com/alexiusacademia/gocable/internal/database"
	"github.com/alexiusacademia/gocable/internal/migrations"
	"github.com/alexiusacademia/gocable/internal/redis"
	"github.com/alexiusacademia/gocable/internal/store"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the simulation record API",
	Long: `Serve the simulation record API over HTTP.

Routes:
  GET  /api/health
  POST /api/simulations        store a solved record
  GET  /api/simulations        list records, newest first (?limit=N)
  GET  /api/simulations/:id    fetch one record

Environment:
  APP_PORT          listen port (default 5000)
  STORE_DRIVER      memory | postgres (default memory)
  DATABASE_URL      PostgreSQL connection string
  MIGRATE_ON_START  apply migrations before serving (true/false)
  REDIS_URL         optional read-through cache for records
  HISTORY_CACHE_TTL_SECONDS  cache entry lifetime (default 30)`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "Listen port (overrides APP_PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logger := setup()
	defer logger.Sync()

	if servePort != "" {
		cfg.Port = servePort
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, cleanup, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Error("open store", zap.Error(err))
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(st, cfg, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("record api listening",
			zap.String("addr", srv.Addr),
			zap.String("store", cfg.StoreDriver),
			zap.String("env", cfg.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openStore selects the record store from the configuration and wraps it
// with the Redis cache when REDIS_URL is set.
func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.Store, func(), error) {
	var (
		st      store.Store
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	switch cfg.StoreDriver {
	case "memory":
		st = store.NewMemory()
	case "postgres":
		if cfg.MigrateOnStart {
			logger.Info("running migrations on startup")
			if err := migrations.Run(cfg.DatabaseURL, logger); err != nil {
				return nil, cleanup, err
			}
		}

		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, cleanup, fmt.Errorf("connect database: %w", err)
		}
		closers = append(closers, func() { db.Close() })
		st = store.NewPostgres(db)
	default:
		return nil, cleanup, fmt.Errorf("unknown STORE_DRIVER %q (want memory or postgres)", cfg.StoreDriver)
	}

	if cfg.RedisURL == "" {
		return st, cleanup, nil
	}

	rdb, err := redis.Connect(ctx, cfg.RedisURL)
	if err != nil {
		// The cache is optional
		logger.Warn("redis unavailable, serving without cache", zap.Error(err))
		return st, cleanup, nil
	}
	closers = append(closers, func() { rdb.Close() })
	logger.Info("history cache enabled", zap.Duration("ttl", cfg.HistoryCacheTTL))
	return store.NewCached(st, rdb, cfg.HistoryCacheTTL, logger), cleanup, nil
}
