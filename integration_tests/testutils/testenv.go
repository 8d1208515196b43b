package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/Black-And-White-Club/mahjong-ledger/config"
	"github.com/Black-And-White-Club/mahjong-ledger/integration_tests/containers"
)

// TestEnvironment holds a migrated Postgres container for integration tests.
type TestEnvironment struct {
	Ctx           context.Context
	CancelContext context.CancelFunc
	PgContainer   *postgres.PostgresContainer
	DB            *bun.DB
	Config        *config.Config
}

// NewTestEnvironment starts Postgres, opens a bun handle over the pgx stdlib
// driver and runs every module migration.
func NewTestEnvironment() (*TestEnvironment, error) {
	ctx, cancel := context.WithCancel(context.Background())

	pgContainer, connStr, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("failed to setup postgres container: %w", err)
	}

	sqlDB, err := sql.Open("pgx", connStr)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to open sql DB connection: %w", err)
	}
	db := bun.NewDB(sqlDB, pgdialect.New())

	if err := RunMigrations(ctx, db); err != nil {
		db.Close()
		_ = pgContainer.Terminate(ctx)
		cancel()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cfg := &config.Config{
		Postgres: config.PostgresConfig{DSN: connStr},
		Scoring: config.ScoringConfig{
			PointSumPolicy:     config.PointSumIgnore,
			PointSumTolerance:  0.05,
			EstimatedScoreBase: 30000,
		},
	}

	return &TestEnvironment{
		Ctx:           ctx,
		CancelContext: cancel,
		PgContainer:   pgContainer,
		DB:            db,
		Config:        cfg,
	}, nil
}

// Cleanup closes the database and terminates the container.
func (env *TestEnvironment) Cleanup() {
	if env.DB != nil {
		if err := env.DB.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}
	if env.PgContainer != nil {
		if err := env.PgContainer.Terminate(context.Background()); err != nil {
			log.Printf("Failed to terminate postgres container: %v", err)
		}
	}
	env.CancelContext()
}
