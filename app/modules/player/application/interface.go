package playerservice

import (
	"context"

	playerdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

// Service is the player registry.
type Service interface {
	CreatePlayer(ctx context.Context, name string) results.OperationResult[*playerdb.Player, error]
	ListPlayers(ctx context.Context) results.OperationResult[[]playerdb.Player, error]
	GetPlayer(ctx context.Context, id uuid.UUID) results.OperationResult[*playerdb.Player, error]
	// PlayersExist succeeds with the ids that do not belong to any player.
	PlayersExist(ctx context.Context, ids []uuid.UUID) results.OperationResult[[]uuid.UUID, error]
}
