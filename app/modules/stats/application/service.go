package statsservice

import (
	"context"
	"log/slog"

	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	statsdomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/domain"
	statsdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/metrics"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/operation"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// StatsService implements the Service interface.
type StatsService struct {
	repo      statsdb.Repository
	players   playerservice.Service
	telemetry operation.Telemetry
	palette   ChartPalette
}

// NewStatsService creates a new StatsService.
func NewStatsService(
	repo statsdb.Repository,
	players playerservice.Service,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *StatsService {
	return &StatsService{
		repo:      repo,
		players:   players,
		telemetry: operation.NewTelemetry("StatsService", logger, metrics, tracer),
		palette:   DefaultPalette,
	}
}

var _ Service = (*StatsService)(nil)

// GetRanking scans the whole participant log.
func (s *StatsService) GetRanking(ctx context.Context) results.OperationResult[[]statsdomain.RankingEntry, error] {
	return operation.Run(s.telemetry, ctx, "GetRanking", "", func(ctx context.Context) (results.OperationResult[[]statsdomain.RankingEntry, error], error) {
		rows, err := s.repo.ListParticipations(ctx, nil)
		if err != nil {
			return results.OperationResult[[]statsdomain.RankingEntry, error]{}, apperrors.Storage("failed to load rankings", err)
		}
		return results.SuccessResult[[]statsdomain.RankingEntry, error](statsdomain.BuildRanking(rows)), nil
	})
}

func (s *StatsService) GetPlayerStats(ctx context.Context, playerID uuid.UUID) results.OperationResult[*statsdomain.PlayerStats, error] {
	return operation.Run(s.telemetry, ctx, "GetPlayerStats", playerID.String(), func(ctx context.Context) (results.OperationResult[*statsdomain.PlayerStats, error], error) {
		stats, err := s.playerStats(ctx, playerID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return results.FailureResult[*statsdomain.PlayerStats, error](err), nil
			}
			return results.OperationResult[*statsdomain.PlayerStats, error]{}, err
		}
		return results.SuccessResult[*statsdomain.PlayerStats, error](stats), nil
	})
}

func (s *StatsService) playerStats(ctx context.Context, playerID uuid.UUID) (*statsdomain.PlayerStats, error) {
	player, failure := s.players.GetPlayer(ctx, playerID).Unwrap()
	if failure != nil {
		return nil, *failure
	}

	rows, err := s.repo.ListGamesWithPlayer(ctx, nil, playerID)
	if err != nil {
		return nil, apperrors.Storage("failed to load player stats", err)
	}
	stats := statsdomain.BuildPlayerStats(player.ID, player.Name, rows)
	return &stats, nil
}

func (s *StatsService) RenderPointChart(ctx context.Context, playerID uuid.UUID) results.OperationResult[[]byte, error] {
	return operation.Run(s.telemetry, ctx, "RenderPointChart", playerID.String(), func(ctx context.Context) (results.OperationResult[[]byte, error], error) {
		stats, err := s.playerStats(ctx, playerID)
		if err != nil {
			if apperrors.KindOf(err) == apperrors.KindNotFound {
				return results.FailureResult[[]byte, error](err), nil
			}
			return results.OperationResult[[]byte, error]{}, err
		}

		png, err := GeneratePointChart(statsdomain.CumulativePoints(playerID, stats.History), s.palette)
		if err != nil {
			return results.OperationResult[[]byte, error]{}, apperrors.Storage("failed to render chart", err)
		}
		return results.SuccessResult[[]byte, error](png), nil
	})
}
