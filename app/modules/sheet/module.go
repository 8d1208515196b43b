package sheet

import (
	"context"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	sheetservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/application"
	sheethandlers "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/handlers"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/observability"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the sheet module.
type Module struct {
	SheetService sheetservice.Service
	Handlers     sheethandlers.Handlers
}

// NewSheetModule creates and initializes a new sheet module. It reads players
// and records games through the other modules' services.
func NewSheetModule(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	publisher eventbus.Publisher,
	players playerservice.Service,
	games gameservice.Service,
	httpRouter chi.Router,
	db *bun.DB,
) *Module {
	logger := obs.Logger
	tracer := obs.Tracer("sheet")

	logger.InfoContext(ctx, "sheet.NewSheetModule initializing")

	repo := sheetdb.NewRepository(db)
	service := sheetservice.NewSheetService(repo, players, games, publisher, cfg.Scoring, logger, obs.Metrics, tracer, db)
	handlers := sheethandlers.NewSheetHandlers(service, logger, tracer)

	if httpRouter != nil {
		handlers.RegisterRoutes(httpRouter)
	}

	return &Module{
		SheetService: service,
		Handlers:     handlers,
	}
}
