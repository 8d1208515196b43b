package sheetmigrations

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Creating sheets and sheet_players tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				CREATE TABLE IF NOT EXISTS sheets (
					id UUID PRIMARY KEY,
					title TEXT NOT NULL,
					created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
				);
				CREATE INDEX IF NOT EXISTS idx_sheets_created_at ON sheets(created_at DESC);

				CREATE TABLE IF NOT EXISTS sheet_players (
					sheet_id UUID NOT NULL REFERENCES sheets(id) ON DELETE CASCADE,
					player_id UUID NOT NULL REFERENCES players(id),
					position INTEGER NOT NULL,
					PRIMARY KEY (sheet_id, player_id),
					UNIQUE (sheet_id, position)
				);
			`); err != nil {
				return fmt.Errorf("failed to create sheets tables: %w", err)
			}
			return nil
		})
	}, func(ctx context.Context, db *bun.DB) error {
		fmt.Println("Dropping sheets tables...")

		return db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			if _, err := tx.ExecContext(ctx, `
				DROP TABLE IF EXISTS sheet_players;
				DROP TABLE IF EXISTS sheets;
			`); err != nil {
				return fmt.Errorf("failed to drop sheets tables: %w", err)
			}
			return nil
		})
	})
}
