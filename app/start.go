package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
)

// Start serves the API and, when configured, the metrics listener until ctx
// is cancelled, then shuts both down.
func (app *App) Start(ctx context.Context) error {
	logger := app.Observability.Logger
	httpCfg := app.Config.HTTP

	servers := []*http.Server{{
		Addr:         httpCfg.Address,
		Handler:      app.Router,
		ReadTimeout:  httpCfg.ReadTimeout,
		WriteTimeout: httpCfg.WriteTimeout,
	}}
	if addr := app.Config.Observability.MetricsAddress; addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", app.Observability.MetricsHandler())
		servers = append(servers, &http.Server{
			Addr:        addr,
			Handler:     mux,
			ReadTimeout: httpCfg.ReadTimeout,
		})
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			logger.InfoContext(ctx, "Starting HTTP listener", attr.String("address", srv.Addr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	var serveErr error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case serveErr = <-errCh:
		logger.Error("HTTP listener failed", attr.Error(serveErr))
	}

	app.WaitForShutdown(servers...)
	return serveErr
}
