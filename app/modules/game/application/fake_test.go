package gameservice

import (
	"context"
	"time"

	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Game Repo
// ------------------------

type FakeGameRepo struct {
	trace []string

	EnsureDefaultRuleSetFunc func(ctx context.Context, db bun.IDB) (*gamedb.RuleSet, error)
	CreateGameFunc           func(ctx context.Context, db bun.IDB, game *gamedb.Game) error
	CreateParticipantFunc    func(ctx context.Context, db bun.IDB, participant *gamedb.Participant) error
	ListRecentGamesFunc      func(ctx context.Context, db bun.IDB, limit int) ([]gamedb.GameRecord, error)
	ListGamesForSheetFunc    func(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]gamedb.GameRecord, error)

	Games        []*gamedb.Game
	Participants []*gamedb.Participant
}

var defaultRuleSetID = uuid.MustParse("00000000-0000-0000-0000-0000000000d1")

func NewFakeGameRepo() *FakeGameRepo {
	return &FakeGameRepo{trace: []string{}}
}

func (f *FakeGameRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeGameRepo) EnsureDefaultRuleSet(ctx context.Context, db bun.IDB) (*gamedb.RuleSet, error) {
	f.record("EnsureDefaultRuleSet")
	if f.EnsureDefaultRuleSetFunc != nil {
		return f.EnsureDefaultRuleSetFunc(ctx, db)
	}
	return &gamedb.RuleSet{ID: defaultRuleSetID, Name: gamedb.DefaultRuleSetName, IsDefault: true, CreatedAt: time.Unix(0, 0)}, nil
}

func (f *FakeGameRepo) CreateGame(ctx context.Context, db bun.IDB, game *gamedb.Game) error {
	f.record("CreateGame")
	if f.CreateGameFunc != nil {
		if err := f.CreateGameFunc(ctx, db, game); err != nil {
			return err
		}
	}
	f.Games = append(f.Games, game)
	return nil
}

func (f *FakeGameRepo) CreateParticipant(ctx context.Context, db bun.IDB, participant *gamedb.Participant) error {
	f.record("CreateParticipant")
	if f.CreateParticipantFunc != nil {
		if err := f.CreateParticipantFunc(ctx, db, participant); err != nil {
			return err
		}
	}
	f.Participants = append(f.Participants, participant)
	return nil
}

func (f *FakeGameRepo) ListRecentGames(ctx context.Context, db bun.IDB, limit int) ([]gamedb.GameRecord, error) {
	f.record("ListRecentGames")
	if f.ListRecentGamesFunc != nil {
		return f.ListRecentGamesFunc(ctx, db, limit)
	}
	return nil, nil
}

func (f *FakeGameRepo) ListGamesForSheet(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]gamedb.GameRecord, error) {
	f.record("ListGamesForSheet")
	if f.ListGamesForSheetFunc != nil {
		return f.ListGamesForSheetFunc(ctx, db, sheetID)
	}
	return nil, nil
}

func (f *FakeGameRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ gamedb.Repository = (*FakeGameRepo)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics   []string
	Payloads []any
}

func (f *FakePublisher) Publish(_ context.Context, topic string, payload any) error {
	f.Topics = append(f.Topics, topic)
	f.Payloads = append(f.Payloads, payload)
	return nil
}
