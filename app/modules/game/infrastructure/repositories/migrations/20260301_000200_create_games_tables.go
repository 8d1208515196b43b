package gamemigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating rule_sets, games and participants tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS rule_sets (
					id UUID PRIMARY KEY,
					name TEXT NOT NULL,
					is_default BOOLEAN NOT NULL DEFAULT FALSE,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE UNIQUE INDEX IF NOT EXISTS rule_sets_single_default
					ON rule_sets (is_default) WHERE is_default;
			`); err != nil {
				return fmt.Errorf("failed to create rule_sets table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS games (
					id UUID PRIMARY KEY,
					rule_set_id UUID NOT NULL REFERENCES rule_sets(id),
					played_at TIMESTAMPTZ NOT NULL,
					sheet_id UUID REFERENCES sheets(id),
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_games_played_at ON games(played_at DESC);
				CREATE INDEX IF NOT EXISTS idx_games_sheet_id ON games(sheet_id, played_at);
			`); err != nil {
				return fmt.Errorf("failed to create games table: %w", err)
			}

			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS participants (
					game_id UUID NOT NULL REFERENCES games(id) ON DELETE CASCADE,
					player_id UUID NOT NULL REFERENCES players(id),
					score INTEGER NOT NULL,
					point DOUBLE PRECISION NOT NULL,
					place SMALLINT NOT NULL CHECK (place BETWEEN 1 AND 4),
					chip INTEGER NOT NULL DEFAULT 0,
					PRIMARY KEY (game_id, player_id),
					UNIQUE (game_id, place)
				);
				CREATE INDEX IF NOT EXISTS idx_participants_player_id ON participants(player_id);
			`); err != nil {
				return fmt.Errorf("failed to create participants table: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping participants, games and rule_sets tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS participants;
				DROP TABLE IF EXISTS games;
				DROP TABLE IF EXISTS rule_sets;
			`); err != nil {
				return fmt.Errorf("failed to drop game tables: %w", err)
			}
			return nil
		})
	})
}
