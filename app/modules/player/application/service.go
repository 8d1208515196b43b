package playerservice

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/Black-And-White-Club/mahjong-ledger/app/eventbus"
	playerdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/metrics"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/operation"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// PlayerService implements the Service interface.
type PlayerService struct {
	repo      playerdb.Repository
	eventBus  eventbus.Publisher
	telemetry operation.Telemetry
	now       func() time.Time
}

// NewPlayerService creates a new PlayerService.
func NewPlayerService(
	repo playerdb.Repository,
	eventBus eventbus.Publisher,
	logger *slog.Logger,
	metrics metrics.OperationMetrics,
	tracer trace.Tracer,
) *PlayerService {
	return &PlayerService{
		repo:      repo,
		eventBus:  eventBus,
		telemetry: operation.NewTelemetry("PlayerService", logger, metrics, tracer),
		now:       time.Now,
	}
}

var _ Service = (*PlayerService)(nil)

// CreatePlayer registers a player under a trimmed, non-empty name.
func (s *PlayerService) CreatePlayer(ctx context.Context, name string) results.OperationResult[*playerdb.Player, error] {
	return operation.Run(s.telemetry, ctx, "CreatePlayer", "", func(ctx context.Context) (results.OperationResult[*playerdb.Player, error], error) {
		name = strings.TrimSpace(name)
		if name == "" {
			return results.FailureResult[*playerdb.Player, error](apperrors.Validation("name", "enter a name")), nil
		}

		player := &playerdb.Player{
			ID:        uuid.New(),
			Name:      name,
			CreatedAt: s.now().UTC(),
		}
		if err := s.repo.Create(ctx, nil, player); err != nil {
			return results.OperationResult[*playerdb.Player, error]{}, apperrors.Storage("failed to save player", err)
		}

		operation.PublishAfterCommit(s.telemetry, ctx, s.eventBus, eventbus.PlayerCreatedV1, eventbus.PlayerCreatedPayloadV1{
			PlayerID:  player.ID,
			Name:      player.Name,
			CreatedAt: player.CreatedAt,
		})
		return results.SuccessResult[*playerdb.Player, error](player), nil
	})
}

func (s *PlayerService) ListPlayers(ctx context.Context) results.OperationResult[[]playerdb.Player, error] {
	return operation.Run(s.telemetry, ctx, "ListPlayers", "", func(ctx context.Context) (results.OperationResult[[]playerdb.Player, error], error) {
		players, err := s.repo.List(ctx, nil)
		if err != nil {
			return results.OperationResult[[]playerdb.Player, error]{}, apperrors.Storage("failed to load players", err)
		}
		if players == nil {
			players = []playerdb.Player{}
		}
		return results.SuccessResult[[]playerdb.Player, error](players), nil
	})
}

func (s *PlayerService) GetPlayer(ctx context.Context, id uuid.UUID) results.OperationResult[*playerdb.Player, error] {
	return operation.Run(s.telemetry, ctx, "GetPlayer", id.String(), func(ctx context.Context) (results.OperationResult[*playerdb.Player, error], error) {
		player, err := s.repo.GetByID(ctx, nil, id)
		if err != nil {
			if errors.Is(err, playerdb.ErrNotFound) {
				return results.FailureResult[*playerdb.Player, error](apperrors.NotFound("player", id.String())), nil
			}
			return results.OperationResult[*playerdb.Player, error]{}, apperrors.Storage("failed to load player", err)
		}
		return results.SuccessResult[*playerdb.Player, error](player), nil
	})
}

func (s *PlayerService) PlayersExist(ctx context.Context, ids []uuid.UUID) results.OperationResult[[]uuid.UUID, error] {
	return operation.Run(s.telemetry, ctx, "PlayersExist", "", func(ctx context.Context) (results.OperationResult[[]uuid.UUID, error], error) {
		found, err := s.repo.ExistingIDs(ctx, nil, ids)
		if err != nil {
			return results.OperationResult[[]uuid.UUID, error]{}, apperrors.Storage("failed to check players", err)
		}
		return results.SuccessResult[[]uuid.UUID, error](missingIDs(ids, found)), nil
	})
}

// missingIDs returns the ids in want that are absent from found, in input order.
func missingIDs(want, found []uuid.UUID) []uuid.UUID {
	present := make(map[uuid.UUID]struct{}, len(found))
	for _, id := range found {
		present[id] = struct{}{}
	}
	missing := []uuid.UUID{}
	for _, id := range want {
		if _, ok := present[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}
