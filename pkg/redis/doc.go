// Package redis connects to the Redis instance used for draft storage.
//
// Connect parses a redis:// URL, pings the server and retries according to
// Config before giving up with ErrRedisNotReady. Healthcheck returns a probe
// suitable for the HTTP readiness endpoint.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	store := autosave.NewRedisStore(client,
//	    autosave.WithTTL(cfg.DraftTTL),
//	    autosave.WithPrefix(cfg.KeyPrefix),
//	)
package redis
