package sheetdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for sheet persistence.
type Repository interface {
	CreateSheet(ctx context.Context, db bun.IDB, sheet *Sheet) error
	AddMembers(ctx context.Context, db bun.IDB, members []SheetPlayer) error
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Sheet, error)
	// ListMembers returns members in position order.
	ListMembers(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]Member, error)
	// ListSheets returns the newest sheets first.
	ListSheets(ctx context.Context, db bun.IDB, limit int) ([]SheetSummary, error)
}
