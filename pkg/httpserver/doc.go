// Package httpserver runs an http.Handler until the context is cancelled or
// the process receives SIGINT or SIGTERM, then drains in-flight requests
// within the shutdown timeout.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, api.Routes()); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// Addresses with port 0 are supported; Addr reports the bound address once
// Ready is closed.
package httpserver
