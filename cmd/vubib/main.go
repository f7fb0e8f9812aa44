// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command vubib exports the VuBib catalog into a Solr index.
//
// # Commands
//
//	vubib index <solr-update-url> [--kind K] [--offset N --limit M] [--commit]
//	vubib delete <solr-update-url> [--commit]
//	vubib migrate [up|down]
//
// # Startup Sequence
//
//  1. Load configuration from environment variables.
//  2. Resolve and validate the Solr endpoint.
//  3. Initialize structured logger.
//  4. Connect to PostgreSQL (pgxpool).
//  5. Connect to Redis and take the run lock, when configured.
//  6. Run the command until it completes or a signal arrives.
//
// Individual record failures never change the exit status; only startup
// and database failures do.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/taibuivan/vubib/internal/core/agent"
	"github.com/taibuivan/vubib/internal/core/attribute"
	"github.com/taibuivan/vubib/internal/core/folder"
	"github.com/taibuivan/vubib/internal/core/publisher"
	"github.com/taibuivan/vubib/internal/core/work"
	"github.com/taibuivan/vubib/internal/core/worktype"
	"github.com/taibuivan/vubib/internal/indexer"
	"github.com/taibuivan/vubib/internal/platform/config"
	"github.com/taibuivan/vubib/internal/platform/constants"
	"github.com/taibuivan/vubib/internal/platform/ctxutil"
	pgstore "github.com/taibuivan/vubib/internal/platform/postgres"
	redisstore "github.com/taibuivan/vubib/internal/platform/redis"
	"github.com/taibuivan/vubib/internal/platform/validate"
	"github.com/taibuivan/vubib/pkg/uuid"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           constants.AppName,
	Short:         "Export the VuBib catalog into a Solr index",
	Version:       constants.AppVersion,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(indexCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(migrateCmd)
}

// # Bootstrap

// app carries the wiring shared by every command.
type app struct {
	cfg  *config.Config
	log  *slog.Logger
	pool *pgxpool.Pool
	lock *redisstore.RunLock

	// stopKeep halts the lock refresher before the lock is released.
	stopKeep func()
	closers  []func()
}

// newLogger builds the JSON logger, tagged with the application and run id.
func newLogger(debug bool, runID string) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})).With(
		slog.String("app", constants.AppName),
		slog.String("run_id", runID),
	)
	slog.SetDefault(log)
	return log
}

/*
start connects to PostgreSQL and takes the run lock of the named command.

Parameters:
  - ctx: context.Context (carries the run id)
  - cfg: *config.Config (already loaded and checked by the caller)
  - name: string (lock name, usually the command name)

Returns:
  - *app: The wired application; Close must be called
  - error: Connection or lock failures
*/
func start(ctx context.Context, cfg *config.Config, name string) (*app, error) {
	var err error

	// 1. Logger
	log := newLogger(cfg.Debug, ctxutil.GetRunID(ctx))
	log.Info("configuration_loaded",
		slog.String("command", name),
		slog.String("environment", cfg.Environment),
		slog.Int("page_size", cfg.PageSize),
	)

	a := &app{cfg: cfg, log: log}

	startupCtx, cancel := context.WithTimeout(ctx, constants.StartupTimeout)
	defer cancel()

	// 2. PostgreSQL
	a.pool, err = pgstore.NewPool(startupCtx, cfg.DatabaseURL, log)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	a.onClose(func() {
		log.Info("closing postgres pool")
		a.pool.Close()
	})

	// 3. Run lock
	if cfg.LockingEnabled() {
		rdb, err := redisstore.NewClient(startupCtx, cfg.RedisURL, log)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connect to redis: %w", err)
		}
		a.onClose(func() {
			if cerr := rdb.Close(); cerr != nil {
				log.Error("redis_close_failed", slog.Any("error", cerr))
			}
		})

		lock := redisstore.NewRunLock(rdb, name, ctxutil.GetRunID(ctx), cfg.LockTTL)
		if err := lock.Acquire(startupCtx); err != nil {
			a.Close()
			return nil, err
		}
		a.lock = lock
		a.stopKeep = lock.Keep(ctx, log)
		log.Info("run_lock_acquired", slog.String("key", lock.Key()), slog.Duration("ttl", cfg.LockTTL))
	}

	return a, nil
}

// onClose registers a cleanup step; Close runs them in reverse order.
func (a *app) onClose(fn func()) {
	a.closers = append(a.closers, fn)
}

// Close releases the run lock and every connection.
func (a *app) Close() {
	if a.stopKeep != nil {
		a.stopKeep()
		a.stopKeep = nil
	}
	if a.lock != nil {
		if err := a.lock.Release(context.Background()); err != nil {
			a.log.Error("run_lock_release_failed", slog.Any("error", err))
		}
		a.lock = nil
	}
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// repositories wires the PostgreSQL implementation of every catalog table.
func (a *app) repositories() indexer.Repositories {
	return indexer.Repositories{
		Folders:    folder.NewPostgresRepository(a.pool),
		Agents:     agent.NewPostgresRepository(a.pool),
		Works:      work.NewPostgresRepository(a.pool),
		Attributes: attribute.NewPostgresRepository(a.pool),
		Publishers: publisher.NewPostgresRepository(a.pool),
		WorkTypes:  worktype.NewPostgresRepository(a.pool),
	}
}

// signalContext returns a context cancelled on SIGINT or SIGTERM, carrying a
// fresh run id.
func signalContext() (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	return ctxutil.WithRunID(ctx, uuid.New()), stop
}

// solrURL resolves the update endpoint from the argument, falling back to
// SOLR_UPDATE_URL. A missing or non-HTTP endpoint is a startup failure.
func solrURL(args []string, fallback string) (string, error) {
	url := fallback
	if len(args) > 0 {
		url = args[0]
	}

	v := &validate.Validator{}
	v.Required("solr-update-url", url)
	if !v.HasErrors() {
		v.HTTPURL("solr-update-url", url)
	}
	return url, v.Err()
}
