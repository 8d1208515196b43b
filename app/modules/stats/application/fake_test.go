package statsservice

import (
	"context"

	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	playerdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories"
	statsdomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/domain"
	statsdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/apperrors"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Stats Repo
// ------------------------

type FakeStatsRepo struct {
	trace []string

	ListParticipationsFunc  func(ctx context.Context, db bun.IDB) ([]statsdomain.Participation, error)
	ListGamesWithPlayerFunc func(ctx context.Context, db bun.IDB, playerID uuid.UUID) ([]statsdomain.Participation, error)
}

func NewFakeStatsRepo() *FakeStatsRepo {
	return &FakeStatsRepo{trace: []string{}}
}

func (f *FakeStatsRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeStatsRepo) ListParticipations(ctx context.Context, db bun.IDB) ([]statsdomain.Participation, error) {
	f.record("ListParticipations")
	if f.ListParticipationsFunc != nil {
		return f.ListParticipationsFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakeStatsRepo) ListGamesWithPlayer(ctx context.Context, db bun.IDB, playerID uuid.UUID) ([]statsdomain.Participation, error) {
	f.record("ListGamesWithPlayer")
	if f.ListGamesWithPlayerFunc != nil {
		return f.ListGamesWithPlayerFunc(ctx, db, playerID)
	}
	return nil, nil
}

func (f *FakeStatsRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ statsdb.Repository = (*FakeStatsRepo)(nil)

// ------------------------
// Fake Player Service
// ------------------------

// FakePlayerService knows the players in Players; GetPlayer reports any other
// id as not found.
type FakePlayerService struct {
	Players map[uuid.UUID]string
}

func (f *FakePlayerService) CreatePlayer(ctx context.Context, name string) results.OperationResult[*playerdb.Player, error] {
	return results.OperationResult[*playerdb.Player, error]{}
}

func (f *FakePlayerService) ListPlayers(ctx context.Context) results.OperationResult[[]playerdb.Player, error] {
	return results.SuccessResult[[]playerdb.Player, error]([]playerdb.Player{})
}

func (f *FakePlayerService) GetPlayer(ctx context.Context, id uuid.UUID) results.OperationResult[*playerdb.Player, error] {
	name, ok := f.Players[id]
	if !ok {
		return results.FailureResult[*playerdb.Player, error](apperrors.NotFound("player", id.String()))
	}
	return results.SuccessResult[*playerdb.Player, error](&playerdb.Player{ID: id, Name: name})
}

func (f *FakePlayerService) PlayersExist(ctx context.Context, ids []uuid.UUID) results.OperationResult[[]uuid.UUID, error] {
	return results.SuccessResult[[]uuid.UUID, error]([]uuid.UUID{})
}

var _ playerservice.Service = (*FakePlayerService)(nil)
