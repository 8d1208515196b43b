package testutils

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	gamemigrations "github.com/Black-And-White-Club/mahjong-ledger/app/modules/game/infrastructure/repositories/migrations"
	playermigrations "github.com/Black-And-White-Club/mahjong-ledger/app/modules/player/infrastructure/repositories/migrations"
	sheetmigrations "github.com/Black-And-White-Club/mahjong-ledger/app/modules/sheet/infrastructure/repositories/migrations"
)

// RunMigrations runs all module migrations in foreign key order.
func RunMigrations(ctx context.Context, db *bun.DB) error {
	if err := migrate.NewMigrator(db, playermigrations.Migrations).Init(ctx); err != nil {
		return fmt.Errorf("failed to initialize migration tables: %w", err)
	}

	orderedModules := []struct {
		name       string
		migrations *migrate.Migrations
	}{
		{"player", playermigrations.Migrations},
		{"sheet", sheetmigrations.Migrations},
		{"game", gamemigrations.Migrations},
	}
	for _, mod := range orderedModules {
		group, err := migrate.NewMigrator(db, mod.migrations).Migrate(ctx)
		if err != nil {
			return fmt.Errorf("failed to run %s migrations: %w", mod.name, err)
		}
		if group.ID != 0 {
			log.Printf("Ran %s migrations group #%d", mod.name, group.ID)
		}
	}
	return nil
}

// appTables lists every application table, children first.
var appTables = []string{"participants", "games", "rule_sets", "sheet_players", "sheets", "players"}

// CleanAllTables truncates every application table between tests.
func CleanAllTables(ctx context.Context, db *bun.DB) error {
	return TruncateTables(ctx, db, appTables...)
}

// TruncateTables truncates the named tables with CASCADE.
func TruncateTables(ctx context.Context, db *bun.DB, tables ...string) error {
	if len(tables) == 0 {
		return nil
	}
	quoted := make([]string, len(tables))
	for i, table := range tables {
		quoted[i] = fmt.Sprintf(`"%s"`, table)
	}
	query := "TRUNCATE TABLE " + strings.Join(quoted, ", ") + " CASCADE"
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to truncate tables %v: %w", tables, err)
	}
	return nil
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, db bun.IDB, table string) (int, error) {
	return db.NewSelect().TableExpr(table).Count(ctx)
}
