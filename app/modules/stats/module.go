package stats

import (
	"context"

	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	statsservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/application"
	statshandlers "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/infrastructure/handlers"
	statsdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/observability"
	"github.com/go-chi/chi/v5"
	"github.com/uptrace/bun"
)

// Module represents the stats module.
type Module struct {
	StatsService statsservice.Service
	Handlers     statshandlers.Handlers
}

// NewStatsModule creates and initializes a new stats module.
func NewStatsModule(
	ctx context.Context,
	obs observability.Observability,
	players playerservice.Service,
	httpRouter chi.Router,
	db *bun.DB,
) *Module {
	logger := obs.Logger
	tracer := obs.Tracer("stats")

	logger.InfoContext(ctx, "stats.NewStatsModule initializing")

	repo := statsdb.NewRepository(db)
	service := statsservice.NewStatsService(repo, players, logger, obs.Metrics, tracer)
	handlers := statshandlers.NewStatsHandlers(service, logger, tracer)

	if httpRouter != nil {
		handlers.RegisterRoutes(httpRouter)
	}

	return &Module{
		StatsService: service,
		Handlers:     handlers,
	}
}
