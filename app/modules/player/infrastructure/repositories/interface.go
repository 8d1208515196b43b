package playerdb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for player persistence.
type Repository interface {
	// Create inserts a new player.
	Create(ctx context.Context, db bun.IDB, player *Player) error

	// List returns every player ordered by name.
	List(ctx context.Context, db bun.IDB) ([]Player, error)

	// GetByID retrieves a player by id.
	GetByID(ctx context.Context, db bun.IDB, id uuid.UUID) (*Player, error)

	// ExistingIDs returns the subset of ids that belong to registered players.
	ExistingIDs(ctx context.Context, db bun.IDB, ids []uuid.UUID) ([]uuid.UUID, error)
}
