package statshandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	statsservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/application"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/httpapi"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// StatsHandlers implements the Handlers interface.
type StatsHandlers struct {
	service statsservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewStatsHandlers creates a new StatsHandlers instance.
func NewStatsHandlers(service statsservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &StatsHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// RegisterRoutes mounts the stats endpoints.
func (h *StatsHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/rankings", h.HandleRanking)
	r.Get("/api/players/{playerID}/stats", h.HandlePlayerStats)
	r.Get("/api/players/{playerID}/chart.png", h.HandlePointChart)
}

func (h *StatsHandlers) HandleRanking(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StatsHandlers.HandleRanking")
	defer span.End()

	ranking, failure := h.service.GetRanking(ctx).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, ranking)
}

func (h *StatsHandlers) HandlePlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StatsHandlers.HandlePlayerStats")
	defer span.End()

	id, err := httpapi.PathUUID(r, "playerID", "player")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	stats, failure := h.service.GetPlayerStats(ctx, id).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, stats)
}

func (h *StatsHandlers) HandlePointChart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "StatsHandlers.HandlePointChart")
	defer span.End()

	id, err := httpapi.PathUUID(r, "playerID", "player")
	if err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	png, failure := h.service.RenderPointChart(ctx, id).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.WarnContext(ctx, "Failed to write point chart", attr.Error(err))
	}
}
