package app

import (
	"context"
	"net/http"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
)

// WaitForShutdown drains the given servers within the configured timeout and
// then releases the event bus and database.
func (app *App) WaitForShutdown(servers ...*http.Server) {
	logger := app.Observability.Logger

	ctx, cancel := context.WithTimeout(context.Background(), app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			logger.Error("HTTP listener shutdown failed", attr.String("address", srv.Addr), attr.Error(err))
		}
	}
	app.Close()
	logger.Info("Application shut down gracefully")
}

// Close releases the event bus and database connections.
func (app *App) Close() {
	logger := app.Observability.Logger
	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			logger.Error("Failed to close event bus", attr.Error(err))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			logger.Error("Failed to close database", attr.Error(err))
		}
	}
}
