package playerhandlers

import (
	"log/slog"
	"net/http"

	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/httpapi"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// PlayerHandlers implements the Handlers interface.
type PlayerHandlers struct {
	service playerservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewPlayerHandlers creates a new PlayerHandlers instance.
func NewPlayerHandlers(service playerservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &PlayerHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// RegisterRoutes mounts the player endpoints.
func (h *PlayerHandlers) RegisterRoutes(r chi.Router) {
	r.Get("/api/players", h.HandleListPlayers)
	r.Post("/api/players", h.HandleCreatePlayer)
}

type createPlayerRequest struct {
	Name string `json:"name"`
}

func (h *PlayerHandlers) HandleListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlayerHandlers.HandleListPlayers")
	defer span.End()

	players, failure := h.service.ListPlayers(ctx).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, players)
}

func (h *PlayerHandlers) HandleCreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlayerHandlers.HandleCreatePlayer")
	defer span.End()

	var req createPlayerRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	player, failure := h.service.CreatePlayer(ctx, req.Name).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, player)
}
