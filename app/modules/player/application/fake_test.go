package playerservice

import (
	"context"

	playerdb "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ------------------------
// Fake Player Repo
// ------------------------

type FakePlayerRepo struct {
	trace []string

	CreateFunc      func(ctx context.Context, db bun.IDB, player *playerdb.Player) error
	ListFunc        func(ctx context.Context, db bun.IDB) ([]playerdb.Player, error)
	GetByIDFunc     func(ctx context.Context, db bun.IDB, id uuid.UUID) (*playerdb.Player, error)
	ExistingIDsFunc func(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]uuid.UUID, error)
}

func NewFakePlayerRepo() *FakePlayerRepo {
	return &FakePlayerRepo{trace: []string{}}
}

func (f *FakePlayerRepo) record(step string) {
	f.trace = append(f.trace, step)
}

func (f *FakePlayerRepo) Create(ctx context.Context, db bun.IDB, player *playerdb.Player) error {
	f.record("Create")
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, db, player)
	}
	return nil
}

func (f *FakePlayerRepo) List(ctx context.Context, db bun.IDB) ([]playerdb.Player, error) {
	f.record("List")
	if f.ListFunc != nil {
		return f.ListFunc(ctx, db)
	}
	return nil, nil
}

func (f *FakePlayerRepo) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*playerdb.Player, error) {
	f.record("GetByID")
	if f.GetByIDFunc != nil {
		return f.GetByIDFunc(ctx, db, id)
	}
	return nil, playerdb.ErrNotFound
}

func (f *FakePlayerRepo) ExistingIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]uuid.UUID, error) {
	f.record("ExistingIDs")
	if f.ExistingIDsFunc != nil {
		return f.ExistingIDsFunc(ctx, db, ids)
	}
	return ids, nil
}

func (f *FakePlayerRepo) Trace() []string {
	out := make([]string, len(f.trace))
	copy(out, f.trace)
	return out
}

var _ playerdb.Repository = (*FakePlayerRepo)(nil)

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
