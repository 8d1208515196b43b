package gamedb

import (
	"context"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the contract for game persistence.
type Repository interface {
	// EnsureDefaultRuleSet returns the default rule set, creating it first if
	// none exists. Safe under concurrent callers.
	EnsureDefaultRuleSet(ctx context.Context, db bun.IDB) (*RuleSet, error)

	// CreateGame inserts the game row.
	CreateGame(ctx context.Context, db bun.IDB, game *Game) error

	// CreateParticipant inserts one participant row.
	CreateParticipant(ctx context.Context, db bun.IDB, participant *Participant) error

	// ListRecentGames returns up to limit games, newest played first.
	ListRecentGames(ctx context.Context, db bun.IDB, limit int) ([]GameRecord, error)

	// ListGamesForSheet returns a sheet's games, oldest played first.
	ListGamesForSheet(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]GameRecord, error)
}
