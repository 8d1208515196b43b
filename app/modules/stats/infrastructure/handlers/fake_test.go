package statshandlers

import (
	"context"

	statsservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/application"
	statsdomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/domain"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
)

type FakeService struct {
	GetRankingFunc       func(ctx context.Context) results.OperationResult[[]statsdomain.RankingEntry, error]
	GetPlayerStatsFunc   func(ctx context.Context, playerID uuid.UUID) results.OperationResult[*statsdomain.PlayerStats, error]
	RenderPointChartFunc func(ctx context.Context, playerID uuid.UUID) results.OperationResult[[]byte, error]
}

func (f *FakeService) GetRanking(ctx context.Context) results.OperationResult[[]statsdomain.RankingEntry, error] {
	if f.GetRankingFunc != nil {
		return f.GetRankingFunc(ctx)
	}
	return results.SuccessResult[[]statsdomain.RankingEntry, error]([]statsdomain.RankingEntry{})
}

func (f *FakeService) GetPlayerStats(ctx context.Context, playerID uuid.UUID) results.OperationResult[*statsdomain.PlayerStats, error] {
	if f.GetPlayerStatsFunc != nil {
		return f.GetPlayerStatsFunc(ctx, playerID)
	}
	stats := statsdomain.BuildPlayerStats(playerID, "", nil)
	return results.SuccessResult[*statsdomain.PlayerStats, error](&stats)
}

func (f *FakeService) RenderPointChart(ctx context.Context, playerID uuid.UUID) results.OperationResult[[]byte, error] {
	if f.RenderPointChartFunc != nil {
		return f.RenderPointChartFunc(ctx, playerID)
	}
	return results.SuccessResult[[]byte, error]([]byte{})
}

var _ statsservice.Service = (*FakeService)(nil)
