package testutils

import (
	"context"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/game"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/player"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet"
	"github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/observability"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Services is the module set wired against the test database.
type Services struct {
	Player *player.Module
	Sheet  *sheet.Module
	Game   *game.Module
	Stats  *stats.Module
	PubSub *gochannel.GoChannel
}

// NewServices wires every module over env.DB with an in-process event bus.
func (env *TestEnvironment) NewServices(ctx context.Context) *Services {
	obs := observability.NewNoop()
	pubsub := eventbus.NewInProcessPublisher(obs.Logger)
	bus := eventbus.NewWithPublisher(pubsub, obs.Logger)

	playerModule := player.NewPlayerModule(ctx, obs, bus, nil, env.DB)
	gameModule := game.NewGameModule(ctx, env.Config, obs, bus, nil, env.DB)
	sheetModule := sheet.NewSheetModule(ctx, env.Config, obs, bus, playerModule.PlayerService, gameModule.GameService, nil, env.DB)
	statsModule := stats.NewStatsModule(ctx, obs, playerModule.PlayerService, nil, env.DB)

	return &Services{
		Player: playerModule,
		Sheet:  sheetModule,
		Game:   gameModule,
		Stats:  statsModule,
		PubSub: pubsub,
	}
}
