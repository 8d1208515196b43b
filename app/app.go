package app

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/game"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/player"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/observability"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// App holds the wired application.
type App struct {
	Config        *config.Config
	Observability observability.Observability
	DB            *bun.DB
	EventBus      *eventbus.EventBus
	Router        chi.Router
	Modules       *Modules
}

// Modules holds the feature modules.
type Modules struct {
	PlayerModule *player.Module
	SheetModule  *sheet.Module
	GameModule   *game.Module
	StatsModule  *stats.Module
}

// NewApp opens the database and event bus and wires every module onto one
// router.
func NewApp(ctx context.Context, cfg *config.Config, obs observability.Observability) (*App, error) {
	logger := obs.Logger

	pgdb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.Postgres.DSN)))
	db := bun.NewDB(pgdb, pgdialect.New())
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}
	logger.InfoContext(ctx, "Connected to postgres")

	bus, err := eventbus.New(ctx, cfg.NATS.URL, logger)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize event bus: %w", err)
	}

	app := &App{
		Config:        cfg,
		Observability: obs,
		DB:            db,
		EventBus:      bus,
	}
	app.Router = NewRouter(cfg.HTTP, obs, app.checkHealth)
	app.Modules = initializeModules(ctx, cfg, obs, bus, app.Router, db)

	logger.InfoContext(ctx, "Application initialized",
		attr.String("http_address", cfg.HTTP.Address),
		attr.Bool("nats_enabled", cfg.NATS.URL != ""),
	)
	return app, nil
}

// initializeModules builds the modules in dependency order: sheets and stats
// read players, sheets record through the game module.
func initializeModules(
	ctx context.Context,
	cfg *config.Config,
	obs observability.Observability,
	publisher eventbus.Publisher,
	router chi.Router,
	db *bun.DB,
) *Modules {
	playerModule := player.NewPlayerModule(ctx, obs, publisher, router, db)
	gameModule := game.NewGameModule(ctx, cfg, obs, publisher, router, db)
	sheetModule := sheet.NewSheetModule(ctx, cfg, obs, publisher, playerModule.PlayerService, gameModule.GameService, router, db)
	statsModule := stats.NewStatsModule(ctx, obs, playerModule.PlayerService, router, db)

	return &Modules{
		PlayerModule: playerModule,
		SheetModule:  sheetModule,
		GameModule:   gameModule,
		StatsModule:  statsModule,
	}
}

func (app *App) checkHealth(ctx context.Context) error {
	return app.DB.PingContext(ctx)
}
