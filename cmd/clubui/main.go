// Command clubui serves the form helper API of the club management pages:
// server-side masks and autosaved drafts.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/clubkit/pkg/autosave"
	"github.com/dmitrymomot/clubkit/pkg/config"
	"github.com/dmitrymomot/clubkit/pkg/formapi"
	"github.com/dmitrymomot/clubkit/pkg/httpserver"
	"github.com/dmitrymomot/clubkit/pkg/logger"
	"github.com/dmitrymomot/clubkit/pkg/redis"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	if err := config.LoadEnv(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	var (
		logCfg   logger.Config
		srvCfg   httpserver.Config
		apiCfg   formapi.Config
		redisCfg redis.Config
	)
	for _, load := range []func() error{
		func() error { return config.Load(&logCfg) },
		func() error { return config.Load(&srvCfg) },
		func() error { return config.Load(&apiCfg) },
		func() error { return config.Load(&redisCfg) },
	} {
		if err := load(); err != nil {
			return err
		}
	}

	log := logger.NewFromConfig(logCfg, logger.WithContextExtractors(formapi.RequestIDExtractor))

	store, checks, closeStore, err := draftStore(ctx, redisCfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	api := formapi.New(store, apiCfg,
		formapi.WithLogger(log),
		formapi.WithHealthChecks(checks...),
	)
	srv := httpserver.NewFromConfig(srvCfg, httpserver.WithLogger(log))
	return srv.Run(ctx, api.Routes())
}

// draftStore picks Redis when REDIS_URL is set and process memory otherwise.
func draftStore(ctx context.Context, cfg redis.Config, log *slog.Logger) (autosave.Store, []formapi.HealthCheck, func(), error) {
	if !cfg.Enabled() {
		log.WarnContext(ctx, "REDIS_URL not set, drafts are kept in memory")
		return autosave.NewMemoryStore(autosave.WithTTL(cfg.DraftTTL)), nil, func() {}, nil
	}

	client, err := redis.Connect(ctx, cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	store := autosave.NewRedisStore(client,
		autosave.WithTTL(cfg.DraftTTL),
		autosave.WithPrefix(cfg.KeyPrefix),
	)
	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("redis close failed", logger.Error(err))
		}
	}
	return store, []formapi.HealthCheck{redis.Healthcheck(client)}, closeFn, nil
}
