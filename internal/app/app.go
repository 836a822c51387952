// Package app wires configuration, stores, services and transport into a
// running server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/agora-gouv/agora-backend/internal/adapter/postgres"
	qagrepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/qag"
	responserepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/response"
	supportrepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/support"
	thematiquerepo "github.com/agora-gouv/agora-backend/internal/adapter/postgres/thematique"
	redisadapter "github.com/agora-gouv/agora-backend/internal/adapter/redis"
	"github.com/agora-gouv/agora-backend/internal/auth"
	"github.com/agora-gouv/agora-backend/internal/cache"
	"github.com/agora-gouv/agora-backend/internal/config"
	"github.com/agora-gouv/agora-backend/internal/lock"
	qagservice "github.com/agora-gouv/agora-backend/internal/service/qag"
	supportservice "github.com/agora-gouv/agora-backend/internal/service/support"
	"github.com/agora-gouv/agora-backend/internal/transport/middleware"
	"github.com/agora-gouv/agora-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// stores, wires the services and serves HTTP until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Bool("redis", cfg.RedisEnabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	defer pool.Close()

	var (
		cacheStore cache.Store
		lockStore  lock.Store
		cachePing  pinger
	)
	if cfg.RedisEnabled() {
		client, err := redisadapter.NewClient(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close() //nolint:errcheck

		cacheStore = redisadapter.NewCacheStore(client, cfg.Redis.KeyPrefix)
		lockStore = redisadapter.NewLockStore(client, cfg.Redis.KeyPrefix)
		cachePing = redisPinger{client: client}
	} else {
		logger.Warn("redis not configured, using in-process cache and lock stores")
		cacheStore = cache.NewMemoryStore()
		lockStore = lock.NewMemoryStore()
	}

	qagCache := cache.NewQagCache(logger, cacheStore, cfg.Cache.QagListTTL, cfg.Cache.DerivedListTTL)
	locks := lock.NewRegistry(lockStore, cfg.Moderation.LockTTL)

	qags := qagrepo.New(pool)
	supports := supportrepo.New(pool)
	responses := responserepo.New(pool)
	thematiques := thematiquerepo.New(pool)

	txManager := postgres.NewTxManager(pool)

	qagSvc := qagservice.NewService(logger, qags, responses, thematiques, supports, qagCache, locks, txManager, cfg.Moderation.QueueSize)
	supportSvc := supportservice.NewService(logger, supports, qags, responses, qagCache)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTTL)

	router := rest.NewRouter(rest.Handlers{
		Qag:        rest.NewQagHandler(qagSvc, logger),
		Support:    rest.NewSupportHandler(supportSvc, logger),
		Moderation: rest.NewModerationHandler(qagSvc, logger),
		Thematique: rest.NewThematiqueHandler(qagSvc, logger),
		Health:     rest.NewHealthHandler(pool, cachePing, BuildVersion()),
	})

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter := middleware.NewRateLimiter(5 * time.Minute)
		defer limiter.Stop()
		mws = append(mws, limiter.Limit(cfg.Server.RateLimitPerMinute))
	}
	mws = append(mws, middleware.Auth(tokenValidator{manager: jwtManager}))

	handler := middleware.Chain(mws...)(router)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	return nil
}

type pinger interface {
	Ping(ctx context.Context) error
}

// tokenValidator adapts the JWT manager to the middleware interface.
type tokenValidator struct {
	manager *auth.JWTManager
}

func (v tokenValidator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	return v.manager.ValidateAccessToken(token)
}

// redisPinger adapts the go-redis status command to a plain error.
type redisPinger struct {
	client *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}
