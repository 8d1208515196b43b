package playerhandlers

import (
	"context"

	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	playerdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

type FakeService struct {
	CreatePlayerFunc func(ctx context.Context, name string) results.OperationResult[*playerdb.Player, error]
	ListPlayersFunc  func(ctx context.Context) results.OperationResult[[]playerdb.Player, error]
	GetPlayerFunc    func(ctx context.Context, id uuid.UUID) results.OperationResult[*playerdb.Player, error]
	PlayersExistFunc func(ctx context.Context, ids []uuid.UUID) results.OperationResult[[]uuid.UUID, error]
}

func (f *FakeService) CreatePlayer(ctx context.Context, name string) results.OperationResult[*playerdb.Player, error] {
	if f.CreatePlayerFunc != nil {
		return f.CreatePlayerFunc(ctx, name)
	}
	return results.SuccessResult[*playerdb.Player, error](&playerdb.Player{ID: uuid.New(), Name: name})
}

func (f *FakeService) ListPlayers(ctx context.Context) results.OperationResult[[]playerdb.Player, error] {
	if f.ListPlayersFunc != nil {
		return f.ListPlayersFunc(ctx)
	}
	return results.SuccessResult[[]playerdb.Player, error]([]playerdb.Player{})
}

func (f *FakeService) GetPlayer(ctx context.Context, id uuid.UUID) results.OperationResult[*playerdb.Player, error] {
	if f.GetPlayerFunc != nil {
		return f.GetPlayerFunc(ctx, id)
	}
	return results.SuccessResult[*playerdb.Player, error](&playerdb.Player{ID: id})
}

func (f *FakeService) PlayersExist(ctx context.Context, ids []uuid.UUID) results.OperationResult[[]uuid.UUID, error] {
	if f.PlayersExistFunc != nil {
		return f.PlayersExistFunc(ctx, ids)
	}
	return results.SuccessResult[[]uuid.UUID, error]([]uuid.UUID{})
}

var _ playerservice.Service = (*FakeService)(nil)
