package gamedb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"
)

// ErrUnknownReference is returned when a write points at a player, sheet or
// rule set that does not exist.
var ErrUnknownReference = errors.New("referenced record does not exist")

const pgForeignKeyViolation = "23503"

// Impl implements the Repository interface using Bun ORM.
type Impl struct {
	db  bun.IDB
	now func() time.Time
}

// NewRepository creates a new game repository.
func NewRepository(db bun.IDB) Repository {
	return &Impl{db: db, now: time.Now}
}

// resolveDB returns the provided db handle, falling back to the repository's
// default connection if db is nil.
func (r *Impl) resolveDB(db bun.IDB) bun.IDB {
	if db == nil {
		return r.db
	}
	return db
}

func (r *Impl) EnsureDefaultRuleSet(ctx context.Context, db bun.IDB) (*RuleSet, error) {
	db = r.resolveDB(db)

	candidate := &RuleSet{
		ID:        uuid.New(),
		Name:      DefaultRuleSetName,
		IsDefault: true,
		CreatedAt: r.now().UTC(),
	}
	// The partial unique index rule_sets_single_default arbitrates concurrent inserts.
	_, err := db.NewInsert().
		Model(candidate).
		On("CONFLICT (is_default) WHERE is_default DO NOTHING").
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to insert default rule set: %w", err)
	}

	ruleSet := new(RuleSet)
	err = db.NewSelect().
		Model(ruleSet).
		Where("rs.is_default").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load default rule set: %w", err)
	}
	return ruleSet, nil
}

func (r *Impl) CreateGame(ctx context.Context, db bun.IDB, game *Game) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(game).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert game: %w", mapWriteError(err))
	}
	return nil
}

func (r *Impl) CreateParticipant(ctx context.Context, db bun.IDB, participant *Participant) error {
	db = r.resolveDB(db)
	if _, err := db.NewInsert().Model(participant).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert participant: %w", mapWriteError(err))
	}
	return nil
}

func (r *Impl) ListRecentGames(ctx context.Context, db bun.IDB, limit int) ([]GameRecord, error) {
	db = r.resolveDB(db)
	var games []Game
	err := db.NewSelect().
		Model(&games).
		OrderExpr("g.played_at DESC").
		OrderExpr("g.created_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent games: %w", err)
	}
	return r.withParticipants(ctx, db, games)
}

func (r *Impl) ListGamesForSheet(ctx context.Context, db bun.IDB, sheetID uuid.UUID) ([]GameRecord, error) {
	db = r.resolveDB(db)
	var games []Game
	err := db.NewSelect().
		Model(&games).
		Where("g.sheet_id = ?", sheetID).
		OrderExpr("g.played_at ASC").
		OrderExpr("g.created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sheet games: %w", err)
	}
	return r.withParticipants(ctx, db, games)
}

// withParticipants loads the participants of games in one query and attaches
// them in place order, preserving the order of games.
func (r *Impl) withParticipants(ctx context.Context, db bun.IDB, games []Game) ([]GameRecord, error) {
	records := make([]GameRecord, 0, len(games))
	if len(games) == 0 {
		return records, nil
	}

	gameIDs := make([]uuid.UUID, len(games))
	for i, g := range games {
		gameIDs[i] = g.ID
	}

	var rows []participantRow
	err := db.NewSelect().
		TableExpr("participants AS pt").
		ColumnExpr("pt.game_id, pt.player_id, pt.score, pt.point, pt.place, pt.chip").
		ColumnExpr("p.name AS player_name").
		Join("JOIN players AS p ON p.id = pt.player_id").
		Where("pt.game_id IN (?)", bun.In(gameIDs)).
		OrderExpr("pt.place ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to load participants: %w", err)
	}

	byGame := make(map[uuid.UUID][]ParticipantRecord, len(games))
	for _, row := range rows {
		byGame[row.GameID] = append(byGame[row.GameID], row.ParticipantRecord)
	}

	for _, g := range games {
		participants := byGame[g.ID]
		if participants == nil {
			participants = []ParticipantRecord{}
		}
		records = append(records, GameRecord{
			ID:           g.ID,
			RuleSetID:    g.RuleSetID,
			PlayedAt:     g.PlayedAt,
			SheetID:      g.SheetID,
			Participants: participants,
		})
	}
	return records, nil
}

func mapWriteError(err error) error {
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.Field('C') == pgForeignKeyViolation {
		return fmt.Errorf("%w: %s", ErrUnknownReference, pgErr.Field('D'))
	}
	return err
}
