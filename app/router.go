package app

import (
	"context"
	"net/http"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/httpapi"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/observability"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck reports whether a dependency is reachable.
type HealthCheck func(ctx context.Context) error

type healthResponse struct {
	Status string `json:"status"`
}

// NewRouter builds the API router with the shared middleware stack and the
// health endpoint. Modules register their own routes on it.
func NewRouter(cfg config.HTTPConfig, obs observability.Observability, health HealthCheck) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httpapi.RequestLogger(obs.Logger))
	r.Use(middleware.Recoverer)
	if cfg.RateLimitRPS > 0 {
		limiter := httpapi.NewIPRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
		r.Use(httpapi.RateLimitMiddleware(limiter))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if health != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()
			if err := health(ctx); err != nil {
				obs.Logger.WarnContext(ctx, "Health check failed", attr.Error(err))
				httpapi.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{Status: "unavailable"})
				return
			}
		}
		httpapi.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok"})
	})
	return r
}
