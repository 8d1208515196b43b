package playerdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a player is not found.
var ErrNotFound = errors.New("player not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new player repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) Create(ctx context.Context, db bun.IDB, player *Player) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(player).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

func (r *Impl) List(ctx context.Context, db bun.IDB) ([]Player, error) {
	db = r.resolveDB(db)
	var players []Player
	err := db.NewSelect().
		Model(&players).
		OrderExpr("p.name ASC").
		OrderExpr("p.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}
	return players, nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Player, error) {
	db = r.resolveDB(db)
	player := new(Player)
	err := db.NewSelect().
		Model(player).
		Where("p.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}
	return player, nil
}

func (r *Impl) ExistingIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]uuid.UUID, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	db = r.resolveDB(db)
	var found []uuid.UUID
	err := db.NewSelect().
		Model((*Player)(nil)).
		Column("p.id").
		Where("p.id IN (?)", bun.In(ids)).
		Scan(ctx, &found)
	if err != nil {
		return nil, fmt.Errorf("failed to check player ids: %w", err)
	}
	return found, nil
}
