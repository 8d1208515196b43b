package sheetdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ErrNotFound is returned when a sheet is not found.
var ErrNotFound = errors.New("sheet not found")

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new sheet repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) CreateSheet(ctx context.Context, db bun.IDB, sheet *Sheet) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(sheet).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert sheet: %w", err)
	}
	return nil
}

func (r *Impl) AddMembers(ctx context.Context, db bun.IDB, members []SheetPlayer) error {
	if len(members) == 0 {
		return nil
	}
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(&members).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert sheet members: %w", err)
	}
	return nil
}

func (r *Impl) GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Sheet, error) {
	db = r.resolveDB(db)
	sheet := new(Sheet)
	err := db.NewSelect().
		Model(sheet).
		Where("s.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get sheet by id: %w", err)
	}
	return sheet, nil
}

func (r *Impl) ListMembers(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]Member, error) {
	db = r.resolveDB(db)
	var members []Member
	err := db.NewSelect().
		TableExpr("sheet_players AS sp").
		ColumnExpr("sp.player_id, sp.position, p.name").
		Join("JOIN players AS p ON p.id = sp.player_id").
		Where("sp.sheet_id = ?", sheetID).
		OrderExpr("sp.position ASC").
		Scan(ctx, &members)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet members: %w", err)
	}
	return members, nil
}

func (r *Impl) ListSheets(ctx context.Context, db bun.IDB, limit int) ([]SheetSummary, error) {
	db = r.resolveDB(db)
	var sheets []SheetSummary
	err := db.NewSelect().
		TableExpr("sheets AS s").
		ColumnExpr("s.id, s.title, s.created_at").
		ColumnExpr("(SELECT COUNT(*) FROM sheet_players AS sp WHERE sp.sheet_id = s.id) AS player_count").
		ColumnExpr("(SELECT COUNT(*) FROM games AS g WHERE g.sheet_id = s.id) AS game_count").
		OrderExpr("s.created_at DESC").
		Limit(limit).
		Scan(ctx, &sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheets: %w", err)
	}
	return sheets, nil
}
