package sheetservice

import (
	"context"

	gameservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/application"
	gamedb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories"
	playerservice "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/application"
	playerdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories"
	sheetdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories"
	"github.com/Black-And-White-Club/mahjong-ledger/app/shared/results"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Sheet Repo
// ------------------------

type FakeSheetRepo struct {
	trace []string

	CreateSheetFunc func(ctx context.Context, db bun.IDB, sheet *sheetdb.Sheet) error
	AddMembersFunc  func(ctx context.Context, db bun.IDB, members []sheetdb.SheetPlayer) error
	GetByIDFunc     func(ctx context.Context, db bun.IDB, id uuid.UUID) (*sheetdb.Sheet, error)
	ListMembersFunc func(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]sheetdb.Member, error)
	ListSheetsFunc  func(ctx context.Context, db bun.IDB, limit int) ([]sheetdb.SheetSummary, error)

	Sheets  []*sheetdb.Sheet
	Members []sheetdb.SheetPlayer
}

func NewFakeSheetRepo() *FakeSheetRepo {
	return &FakeSheetRepo{trace: []string{}}
}

func (f *FakeSheetRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakeSheetRepo) CreateSheet(ctx context.Context, db bun.IDB, sheet *sheetdb.Sheet) error {
	f.record("CreateSheet")
	if f.CreateSheetFunc != nil {
		if err := f.CreateSheetFunc(ctx, db, sheet); err != nil {
			return err
		}
	}
	f.Sheets = append(f.Sheets, sheet)
	return nil
}

func (f *FakeSheetRepo) AddMembers(ctx context.Context, db bun.IDB, members []sheetdb.SheetPlayer) error {
	f.record("AddMembers")
	if f.AddMembersFunc != nil {
		if err := f.AddMembersFunc(ctx, db, members); err != nil {
			return err
		}
	}
	f.Members = append(f.Members, members...)
	return nil
}

func (f *FakeSheetRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*sheetdb.Sheet, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, sheetdb.ErrNotFound
}

func (f *FakeSheetRepo) ListMembers(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]sheetdb.Member, error) {
	f.record("ListMembers")
	if f.ListMembersFunc != nil {
		return f.ListMembersFunc(ctx, db, sheetID)
	}
	return nil, nil
}

func (f *FakeSheetRepo) ListSheets(ctx context.Context, db bun.IDB, limit int) ([]sheetdb.SheetSummary, error) {
	f.record("ListSheets")
	if f.ListSheetsFunc != nil {
		return f.ListSheetsFunc(ctx, db, limit)
	}
	return nil, nil
}

func (f *FakeSheetRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ sheetdb.Repository = (*FakeSheetRepo)(nil)

// ------------------------
// Fake Player Service
// ------------------------

type FakePlayerService struct {
	PlayersExistFunc func(ctx context.Context, ids []uuid.UUID) results.OperationResult[[]uuid.UUID, error]
}

func (f *FakePlayerService) CreatePlayer(ctx context.Context, name string) results.OperationResult[*playerdb.Player, error] {
	return results.OperationResult[*playerdb.Player, error]{}
}

func (f *FakePlayerService) ListPlayers(ctx context.Context) results.OperationResult[[]playerdb.Player, error] {
	return results.SuccessResult[[]playerdb.Player, error]([]playerdb.Player{})
}

func (f *FakePlayerService) GetPlayer(ctx context.Context, id uuid.UUID) results.OperationResult[*playerdb.Player, error] {
	return results.OperationResult[*playerdb.Player, error]{}
}

func (f *FakePlayerService) PlayersExist(ctx context.Context, ids []uuid.UUID) results.OperationResult[[]uuid.UUID, error] {
	if f.PlayersExistFunc != nil {
		return f.PlayersExistFunc(ctx, ids)
	}
	return results.SuccessResult[[]uuid.UUID, error]([]uuid.UUID{})
}

var _ playerservice.Service = (*FakePlayerService)(nil)

// ------------------------
// Fake Game Service
// ------------------------

type FakeGameService struct {
	CreateGameFunc        func(ctx context.Context, req gameservice.CreateGameRequest) results.OperationResult[gameservice.GameRecorded, error]
	ListGamesForSheetFunc func(ctx context.Context, sheetID uuid.UUID) results.OperationResult[[]gamedb.GameRecord, error]

	Requests []gameservice.CreateGameRequest
}

func (f *FakeGameService) CreateGame(ctx context.Context, req gameservice.CreateGameRequest) results.OperationResult[gameservice.GameRecorded, error] {
	f.Requests = append(f.Requests, req)
	if f.CreateGameFunc != nil {
		return f.CreateGameFunc(ctx, req)
	}
	return results.SuccessResult[gameservice.GameRecorded, error](gameservice.GameRecorded{
		GameID:  uuid.New(),
		Message: gameservice.SavedMessage,
	})
}

func (f *FakeGameService) GetRecentGames(ctx context.Context, limit int) results.OperationResult[[]gamedb.GameRecord, error] {
	return results.SuccessResult[[]gamedb.GameRecord, error]([]gamedb.GameRecord{})
}

func (f *FakeGameService) ResolveDefaultRuleSet(ctx context.Context) results.OperationResult[*gamedb.RuleSet, error] {
	return results.OperationResult[*gamedb.RuleSet, error]{}
}

func (f *FakeGameService) ListGamesForSheet(ctx context.Context, sheetID uuid.UUID) results.OperationResult[[]gamedb.GameRecord, error] {
	if f.ListGamesForSheetFunc != nil {
		return f.ListGamesForSheetFunc(ctx, sheetID)
	}
	return results.SuccessResult[[]gamedb.GameRecord, error]([]gamedb.GameRecord{})
}

var _ gameservice.Service = (*FakeGameService)(nil)

// ------------------------
// Fake Publisher
// ------------------------

type FakePublisher struct {
	Topics   []string
	Payloads []any
	Err      error
}

func (f *FakePublisher) Publish(_ context.Context, topic string, payload any) error {
	f.Topics = append(f.Topics, topic)
	f.Payloads = append(f.Payloads, payload)
	return f.Err
}
