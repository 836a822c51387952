// Command archiver anonymizes old rejected QaGs and archives everything
// past the configured age. Run with --once for a single pass (external
// cron), or without it to keep a cron scheduler in-process.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/agora-gouv/agora-backend/internal/adapter/postgres"
	qagrepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/qag"
	responserepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/response"
	supportrepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/support"
	thematiquerepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/thematique"
	redisadapter "github.com/agora-gouv/agora-backend/internal/adapter/redis"
	"github.com/agora-gouv/agora-backend/internal/app"
	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/config"
	"github.com/agora-gouv/agora-backend/internal/lock"
	qagservice "github.com/agora-gouv/agora-backend/internal/service/qag"
)

func main() {
	once := flag.Bool("once", false, "run a single archival pass and exit")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Evictions must reach the same store the server reads, so the
	// archiver shares the Redis backing when one is configured.
	var cacheStore cache.Store = cache.NewMemoryStore()
	var lockStore lock.Store = lock.NewMemoryStore()
	if cfg.RedisEnabled() {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			logger.Error("connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer client.Close() //nolint:errcheck
		cacheStore = redisadapter.NewCacheStore(client, cfg.Redis.KeyPrefix)
		lockStore = redisadapter.NewLockStore(client, cfg.Redis.KeyPrefix)
	}

	qagCache := cache.NewQagCache(logger, cacheStore, cfg.Cache.QagListTTL, cfg.Cache.DerivedListTTL)
	locks := lock.NewRegistry(lockStore, cfg.Moderation.LockTTL)

	svc := qagservice.NewService(
		logger,
		qagrepo.New(pool),
		responserepo.New(pool),
		thematiquerepo.New(pool),
		supportrepo.New(pool),
		qagCache,
		locks,
		postgres.NewTxManager(pool),
		cfg.Moderation.QueueSize,
	)

	run := func() error {
		runCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
		defer cancel()

		cutoff := time.Now().Add(-cfg.Archive.MaxAge)
		result, err := svc.ArchiveOld(runCtx, cutoff)
		if err != nil {
			return err
		}

		logger.Info("archival pass completed",
			slog.Int("anonymized", result.Anonymized),
			slog.Int("archived", result.Archived),
			slog.Time("cutoff", cutoff),
		)
		return nil
	}

	if *once {
		if err := run(); err != nil {
			logger.Error("archival pass failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		return
	}

	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Archive.CronSpec, func() {
		if err := run(); err != nil {
			logger.Error("archival pass failed", slog.String("error", err.Error()))
		}
	}); err != nil {
		logger.Error("invalid cron spec",
			slog.String("spec", cfg.Archive.CronSpec),
			slog.String("error", err.Error()),
		)
		os.Exit(1)
	}

	logger.Info("archiver scheduled", slog.String("spec", cfg.Archive.CronSpec))
	scheduler.Start()

	<-ctx.Done()

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
}
