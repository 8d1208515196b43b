package gamehandlers

import (
	"log/slog"
	"net/http"
	"strconv"

	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/httpapi"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// GameHandlers implements the Handlers interface.
type GameHandlers struct {
	service gameservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewGameHandlers creates a new GameHandlers instance.
func NewGameHandlers(service gameservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &GameHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// RegisterRoutes mounts the game endpoints.
func (h *GameHandlers) RegisterRoutes(r chi.Router) {
	r.Post("/api/games", h.HandleCreateGame)
	r.Get("/api/games/recent", h.HandleRecentGames)
	r.Post("/api/games/balance", h.HandleAutoBalance)
}

func (h *GameHandlers) HandleCreateGame(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GameHandlers.HandleCreateGame")
	defer span.End()

	var req gameservice.CreateGameRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	recorded, failure := h.service.CreateGame(ctx, req).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusCreated, recorded)
}

func (h *GameHandlers) HandleRecentGames(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GameHandlers.HandleRecentGames")
	defer span.End()

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			httpapi.WriteError(w, r, h.logger, apperrors.Validation("limit", "limit must be a whole number"))
			return
		}
		limit = n
	}

	games, failure := h.service.GetRecentGames(ctx, limit).Unwrap()
	if failure != nil {
		httpapi.WriteError(w, r, h.logger, *failure)
		return
	}
	httpapi.WriteJSON(w, http.StatusOK, games)
}

type balanceRequest struct {
	Others []gamedomain.SignedEntry `json:"others"`
}

type balanceResponse struct {
	Point    float64 `json:"point"`
	Complete bool    `json:"complete"`
}

// HandleAutoBalance computes the top player's point from the other three cells.
func (h *GameHandlers) HandleAutoBalance(w http.ResponseWriter, r *http.Request) {
	var req balanceRequest
	if err := httpapi.DecodeJSON(r, &req); err != nil {
		httpapi.WriteError(w, r, h.logger, err)
		return
	}

	complete := len(req.Others) == gamedomain.PlayersPerGame-1
	for _, o := range req.Others {
		complete = complete && o.Present
	}
	httpapi.WriteJSON(w, http.StatusOK, balanceResponse{
		Point:    gamedomain.AutoBalance(req.Others),
		Complete: complete,
	})
}
