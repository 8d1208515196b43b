package game

import (
	"context"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	gamehandlers "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/handlers"
	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/observability"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the game module.
type Module struct {
	GameService gameservice.Service
	Handlers    gamehandlers.Handlers
}

// NewGameModule creates and initializes a new game module.
func NewGameModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	publisher eventbus.Publisher,
	httpRouter chi.Router,
	db *bun.DB,
) *Module {
	logger := obs.Logger
	tracer := obs.Tracer("game")

	logger.InfoContext(ctx, "game.NewGameModule initializing")

	repo := gamedb.NewRepository(db)
	service := gameservice.NewGameService(repo, publisher, cfg.Scoring, logger, obs.Metrics, tracer, db)
	handlers := gamehandlers.NewGameHandlers(service, logger, tracer)

	if httpRouter != nil {
		handlers.RegisterRoutes(httpRouter)
	}

	return &Module{
		GameService: service,
		Handlers:    handlers,
	}
}
