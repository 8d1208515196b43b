package player

import (
	"context"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	playerhandlers "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/handlers"
	playerdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the player module.
type Module struct {
	PlayerService playerservice.Service
	Handlers      playerhandlers.Handlers
}

// NewPlayerModule creates and initializes a new player module. When
// httpRouter is non-nil the module's routes are registered on it.
func NewPlayerModule(
	ctx context.Context,
	obs observability.Observability,
	publisher eventbus.Publisher,
	httpRouter chi.Router,
	db *bun.DB,
) *Module {
	logger := obs.Logger
	tracer := obs.Tracer("player")

	logger.InfoContext(ctx, "player.NewPlayerModule initializing")

	repo := playerdb.NewRepository(db)
	service := playerservice.NewPlayerService(repo, publisher, logger, obs.Metrics, tracer)
	handlers := playerhandlers.NewPlayerHandlers(service, logger, tracer)

	if httpRouter != nil {
		handlers.RegisterRoutes(httpRouter)
	}

	return &Module{
		PlayerService: service,
		Handlers:      handlers,
	}
}
