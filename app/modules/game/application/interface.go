package gameservice

import (
	"context"

	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

// Service records games and serves game reads.
type Service interface {
	CreateGame(ctx context.Context, req CreateGameRequest) results.OperationResult[GameRecorded, error]
	GetRecentGames(ctx context.Context, limit int) results.OperationResult[[]gamedb.GameRecord, error]
	ResolveDefaultRuleSet(ctx context.Context) results.OperationResult[*gamedb.RuleSet, error]
	ListGamesForSheet(ctx context.Context, sheetID uuid.UUID) results.OperationResult[[]gamedb.GameRecord, error]
}
