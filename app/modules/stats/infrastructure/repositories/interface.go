package statsdb

import (
	"context"

	statsdomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Repository defines the read-only queries behind rankings and player stats.
type Repository interface {
	// ListParticipations returns every participant row, oldest game first.
	ListParticipations(ctx context.Context, db bun.IDB) ([]statsdomain.Participation, error)
	// ListGamesWithPlayer returns all participant rows of the games the player
	// took part in, newest game first and place order within a game.
	ListGamesWithPlayer(ctx context.Context, db bun.IDB, playerID uuid.UUID) ([]statsdomain.Participation, error)
}
