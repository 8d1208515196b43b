package statsservice

import (
	"context"

	statsdomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/domain"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

// Service derives read-only statistics from the recorded games.
type Service interface {
	GetRanking(ctx context.Context) results.OperationResult[[]statsdomain.RankingEntry, error]
	GetPlayerStats(ctx context.Context, playerID uuid.UUID) results.OperationResult[*statsdomain.PlayerStats, error]
	// RenderPointChart returns a PNG of the player's cumulative points.
	RenderPointChart(ctx context.Context, playerID uuid.UUID) results.OperationResult[[]byte, error]
}
