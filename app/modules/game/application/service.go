package gameservice

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	gamedomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/domain"
	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/attr"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/metrics"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/operation"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"go.opentelemetry.io/otel/trace"
)

// GameService implements the Service interface.
type GameService struct {
	repo      gamedb.Repository
	eventBus  eventbus.Publisher
	telemetry operation.Telemetry
	metrics   metrics.OperationMetrics
	scoring   config.ScoringConfig
	db        *bun.DB
	now       func() time.Time
}

// NewGameService creates a new GameService.
func NewGameService(
	repo gamedb.Repository,
	eventBus eventbus.Publisher,
	scoring config.ScoringConfig,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
	db *bun.DB,
) *GameService {
	telemetry := operation.NewTelemetry("GameService", logger, metrics, tracer)
	if scoring.PointSumPolicy == "" {
		scoring.PointSumPolicy = config.PointSumIgnore
	}
	return &GameService{
		repo:      repo,
		eventBus:  eventBus,
		telemetry: telemetry,
		metrics:   telemetry.Metrics,
		scoring:   scoring,
		db:        db,
		now:       time.Now,
	}
}

var _ Service = (*GameService)(nil)

// CreateGame validates four entries, derives places and writes the game and
// its participants in one transaction.
func (s *GameService) CreateGame(ctx context.Context, req CreateGameRequest) results.OperationResult[GameRecorded, error] {
	return operation.Run(s.telemetry, ctx, "CreateGame", "", func(ctx context.Context) (results.OperationResult[GameRecorded, error], error) {
		entries, err := gamedomain.ValidateEntries(req.Entries)
		if err != nil {
			return results.FailureResult[GameRecorded, error](err), nil
		}

		imbalance, unbalanced, err := gamedomain.CheckPointSum(entries, s.scoring.PointSumPolicy, s.scoring.PointSumTolerance)
		s.metrics.RecordPointImbalance(ctx, imbalance)
		if err != nil {
			return results.FailureResult[GameRecorded, error](err), nil
		}
		if unbalanced && s.scoring.PointSumPolicy == config.PointSumWarn {
			s.telemetry.Logger.WarnContext(ctx, "Recorded game points do not sum to zero",
				attr.Float64("point_imbalance", imbalance),
				attr.ExtractCorrelationID(ctx),
			)
		}

		now := s.now().UTC()
		playedAt, err := gamedomain.ParsePlayedAt(req.PlayedAt, now)
		if err != nil {
			return results.FailureResult[GameRecorded, error](err), nil
		}

		placed := gamedomain.AssignPlaces(entries)
		game := &gamedb.Game{
			ID:        uuid.New(),
			PlayedAt:  playedAt,
			SheetID:   req.SheetID,
			CreatedAt: now,
		}

		result, err := operation.RunInTx(ctx, s.db, func(ctx context.Context, tx bun.IDB) (results.OperationResult[GameRecorded, error], error) {
			ruleSet, err := s.repo.EnsureDefaultRuleSet(ctx, tx)
			if err != nil {
				return results.OperationResult[GameRecorded, error]{}, apperrors.Storage("failed to save game result", err)
			}
			game.RuleSetID = ruleSet.ID

			if err := s.repo.CreateGame(ctx, tx, game); err != nil {
				return writeFailure(err)
			}
			for _, p := range placed {
				participant := &gamedb.Participant{
					GameID:   game.ID,
					PlayerID: p.PlayerID,
					Score:    p.Score,
					Point:    p.Point,
					Place:    p.Place,
					Chip:     p.Chip,
				}
				if err := s.repo.CreateParticipant(ctx, tx, participant); err != nil {
					return writeFailure(err)
				}
			}

			return results.SuccessResult[GameRecorded, error](GameRecorded{
				GameID:         game.ID,
				Message:        SavedMessage,
				Places:         placements(placed),
				PointImbalance: imbalance,
			}), nil
		})
		if err != nil || result.IsFailure() {
			return result, err
		}

		playerIDs := make([]uuid.UUID, len(entries))
		for i, e := range entries {
			playerIDs[i] = e.PlayerID
		}
		operation.PublishAfterCommit(s.telemetry, ctx, s.eventBus, eventbus.GameRecordedV1, eventbus.GameRecordedPayloadV1{
			GameID:    game.ID,
			SheetID:   game.SheetID,
			PlayerIDs: playerIDs,
			PlayedAt:  game.PlayedAt,
		})
		return result, nil
	})
}

// writeFailure turns a dangling reference into a validation failure and any
// other write error into a storage fault.
func writeFailure(err error) (results.OperationResult[GameRecorded, error], error) {
	if errors.Is(err, gamedb.ErrUnknownReference) {
		return results.FailureResult[GameRecorded, error](apperrors.Validation("entries", "unknown player or sheet")), nil
	}
	return results.OperationResult[GameRecorded, error]{}, apperrors.Storage("failed to save game result", err)
}

func placements(placed []gamedomain.PlacedEntry) []Placement {
	out := make([]Placement, len(placed))
	for i, p := range placed {
		out[i] = Placement{PlayerID: p.PlayerID, Place: p.Place, Point: p.Point}
	}
	return out
}

// GetRecentGames returns the latest games with participants in place order.
// A non-positive limit means the default; larger limits are capped.
func (s *GameService) GetRecentGames(ctx context.Context, limit int) results.OperationResult[[]gamedb.GameRecord, error] {
	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}
	return operation.Run(s.telemetry, ctx, "GetRecentGames", "", func(ctx context.Context) (results.OperationResult[[]gamedb.GameRecord, error], error) {
		games, err := s.repo.ListRecentGames(ctx, nil, limit)
		if err != nil {
			return results.OperationResult[[]gamedb.GameRecord, error]{}, apperrors.Storage("failed to load recent games", err)
		}
		return results.SuccessResult[[]gamedb.GameRecord, error](nonNil(games)), nil
	})
}

func (s *GameService) ResolveDefaultRuleSet(ctx context.Context) results.OperationResult[*gamedb.RuleSet, error] {
	return operation.Run(s.telemetry, ctx, "ResolveDefaultRuleSet", "", func(ctx context.Context) (results.OperationResult[*gamedb.RuleSet, error], error) {
		ruleSet, err := s.repo.EnsureDefaultRuleSet(ctx, nil)
		if err != nil {
			return results.OperationResult[*gamedb.RuleSet, error]{}, apperrors.Storage("failed to resolve rule set", err)
		}
		return results.SuccessResult[*gamedb.RuleSet, error](ruleSet), nil
	})
}

func (s *GameService) ListGamesForSheet(ctx context.Context, sheetID uuid.UUID) results.OperationResult[[]gamedb.GameRecord, error] {
	return operation.Run(s.telemetry, ctx, "ListGamesForSheet", sheetID.String(), func(ctx context.Context) (results.OperationResult[[]gamedb.GameRecord, error], error) {
		games, err := s.repo.ListGamesForSheet(ctx, nil, sheetID)
		if err != nil {
			return results.OperationResult[[]gamedb.GameRecord, error]{}, apperrors.Storage("failed to load sheet games", err)
		}
		return results.SuccessResult[[]gamedb.GameRecord, error](nonNil(games)), nil
	})
}

func nonNil(games []gamedb.GameRecord) []gamedb.GameRecord {
	if games == nil {
		return []gamedb.GameRecord{}
	}
	return games
}
