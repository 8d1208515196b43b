package statsdb

import (
	"context"
	"fmt"

	statsdomain "github.com/Black-And-White-Club/mahjong-ledger/app/modules/stats/domain"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db bun.IDB
}

// NewRepository creates a new stats repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db}
}

func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) participations(db bun.IDB) *bun.SelectQuery {
	return db.NewSelect().
		TableExpr("participants AS pt").
		ColumnExpr("pt.game_id, pt.player_id, pt.score, pt.point, pt.place, pt.chip").
		ColumnExpr("p.name AS player_name").
		ColumnExpr("g.played_at").
		Join("JOIN players AS p ON p.id = pt.player_id").
		Join("JOIN games AS g ON g.id = pt.game_id")
}

func (r *Impl) ListParticipations(ctx context.Context, db bun.IDB) ([]statsdomain.Participation, error) {
	db = r.resolveDB(db)
	var rows []statsdomain.Participation
	err := r.participations(db).
		OrderExpr("g.played_at ASC").
		OrderExpr("g.created_at ASC").
		OrderExpr("pt.place ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}
	return rows, nil
}

func (r *Impl) ListGamesWithPlayer(ctx context.Context, db bun.IDB, playerID uuid.UUID) ([]statsdomain.Participation, error) {
	db = r.resolveDB(db)
	var rows []statsdomain.Participation
	err := r.participations(db).
		Where("pt.game_id IN (SELECT own.game_id FROM participants AS own WHERE own.player_id = ?)", playerID).
		OrderExpr("g.played_at DESC").
		OrderExpr("g.created_at DESC").
		OrderExpr("pt.game_id").
		OrderExpr("pt.place ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to list games for player: %w", err)
	}
	return rows, nil
}
