package gamehandlers

import (
	"context"

	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

type FakeService struct {
	CreateGameFunc            func(ctx context.Context, req gameservice.CreateGameRequest) results.OperationResult[gameservice.GameRecorded, error]
	GetRecentGamesFunc        func(ctx context.Context, limit int) results.OperationResult[[]gamedb.GameRecord, error]
	ResolveDefaultRuleSetFunc func(ctx context.Context) results.OperationResult[*gamedb.RuleSet, error]
	ListGamesForSheetFunc     func(ctx context.Context, sheetID uuid.UUID) results.OperationResult[[]gamedb.GameRecord, error]
}

func (f *FakeService) CreateGame(ctx context.Context, req gameservice.CreateGameRequest) results.OperationResult[gameservice.GameRecorded, error] {
	if f.CreateGameFunc != nil {
		return f.CreateGameFunc(ctx, req)
	}
	return results.SuccessResult[gameservice.GameRecorded, error](gameservice.GameRecorded{GameID: uuid.New(), Message: gameservice.SavedMessage})
}

func (f *FakeService) GetRecentGames(ctx context.Context, limit int) results.OperationResult[[]gamedb.GameRecord, error] {
	if f.GetRecentGamesFunc != nil {
		return f.GetRecentGamesFunc(ctx, limit)
	}
	return results.SuccessResult[[]gamedb.GameRecord, error]([]gamedb.GameRecord{})
}

func (f *FakeService) ResolveDefaultRuleSet(ctx context.Context) results.OperationResult[*gamedb.RuleSet, error] {
	if f.ResolveDefaultRuleSetFunc != nil {
		return f.ResolveDefaultRuleSetFunc(ctx)
	}
	return results.SuccessResult[*gamedb.RuleSet, error](&gamedb.RuleSet{ID: uuid.New()})
}

func (f *FakeService) ListGamesForSheet(ctx context.Context, sheetID uuid.UUID) results.OperationResult[[]gamedb.GameRecord, error] {
	if f.ListGamesForSheetFunc != nil {
		return f.ListGamesForSheetFunc(ctx, sheetID)
	}
	return results.SuccessResult[[]gamedb.GameRecord, error]([]gamedb.GameRecord{})
}

var _ gameservice.Service = (*FakeService)(nil)
