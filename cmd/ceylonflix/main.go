// main.go — CeylonFlix catalog API.
// Serves TMDB-backed browse rows, detail pages, and search; holds the
// viewer's subscription tier; and hands off playback to the Vidking
// embed player only when the held tier covers the title.
// Port: 8094 (env: ADDR).
//
// Catalog:
//   GET /catalog/rows              — all browse rows, items annotated with required tier
//   GET /catalog/rows/{row}        — one row (trending, popular, top_rated, now_playing,
//                                    upcoming, bollywood, tamil, sinhala)
//   GET /catalog/genres            — curated genre list
//   GET /catalog/genres/{id}       — discover by genre
//   GET /catalog/movie/{id}        — movie detail + cast + similar
//   GET /catalog/tv/{id}           — show detail + seasons
//   GET /catalog/search?q=         — multi search (movies and shows)
//
// Playback:
//   GET /watch/{kind}/{id}?season=&episode=  — gate decision + embed URL
//
// Tier:
//   GET /tier                      — held tier
//   PUT /tier                      — switch tier ({"tier":"standard"})
//
// Plans:
//   GET /plans                     — plan catalog for the pricing page
//
// Ops:
//   GET /health
//   GET /system/info
//   GET /metrics
package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	goredis "github.com/redis/go-redis/v9"

	"github.com/ceylonflix/ceylonflix/internal/catalog"
	"github.com/ceylonflix/ceylonflix/internal/config"
	"github.com/ceylonflix/ceylonflix/internal/logger"
	"github.com/ceylonflix/ceylonflix/internal/metrics"
	"github.com/ceylonflix/ceylonflix/internal/playback"
	"github.com/ceylonflix/ceylonflix/internal/ratelimit"
	"github.com/ceylonflix/ceylonflix/internal/server"
	"github.com/ceylonflix/ceylonflix/internal/tierstore"
	"github.com/ceylonflix/ceylonflix/pkg/safelog"
	"github.com/ceylonflix/ceylonflix/pkg/telemetry"
)

const version = "0.3.0"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	log := logger.New(cfg.LogFormat, cfg.LogLevel)

	if err := telemetry.InitSentry(cfg.SentryDsn, version); err != nil {
		log.Warn("sentry init failed", "error", err)
	}
	defer telemetry.Flush()

	backend, cleanup, err := newTierBackend(cfg)
	if err != nil {
		return fmt.Errorf("tier backend: %w", err)
	}
	defer cleanup()

	tiers := tierstore.New(backend, log)

	if cfg.TMDBAPIKey == "" {
		log.Warn("TMDB_API_KEY not set, serving sample catalog")
	}
	cat := catalog.NewClient(cfg.TMDBAPIKey, cfg.RowCacheTTL)

	var signer *playback.Signer
	if cfg.StreamSecret != "" {
		signer = playback.NewSigner(cfg.StreamSecret, cfg.StreamTTL)
	}

	srv := server.New(log, cat, tiers, signer, version)

	var limiterStore ratelimit.Store = ratelimit.NewMemoryStore()
	if cfg.RedisURL != "" {
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("redis url: %w", err)
		}
		limiterStore = ratelimit.NewRedisStore(goredis.NewClient(opts))
	}
	limiter := ratelimit.New(limiterStore, cfg.RatePerMinute, time.Minute)

	handler := srv.Routes()
	handler = limiter.Middleware(handler)
	handler = metrics.Middleware(handler)
	handler = safelog.Middleware(safelog.New(log, "ceylonflix"))(handler)
	handler = telemetry.PanicRecoveryMiddleware()(handler)

	httpSrv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", cfg.Addr, "version", version)
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return httpSrv.Shutdown(ctx)
}

// newTierBackend builds the persistence layer the config selects. The
// returned cleanup closes any opened connections.
func newTierBackend(cfg config.Config) (tierstore.Backend, func(), error) {
	noop := func() {}
	switch cfg.TierBackend {
	case config.BackendMemory:
		return tierstore.NewMemoryBackend(), noop, nil
	case config.BackendFile:
		return tierstore.NewFileBackend(cfg.TierFile), noop, nil
	case config.BackendRedis:
		opts, err := goredis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		client := goredis.NewClient(opts)
		return tierstore.NewRedisBackend(client), func() { _ = client.Close() }, nil
	case config.BackendPostgres:
		db, err := sql.Open("postgres", cfg.PostgresURL)
		if err != nil {
			return nil, noop, err
		}
		db.SetMaxOpenConns(5)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		backend, err := tierstore.NewPostgresBackend(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return backend, func() { _ = db.Close() }, nil
	default:
		return nil, noop, fmt.Errorf("unknown tier backend %q", cfg.TierBackend)
	}
}
