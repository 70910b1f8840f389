package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrations holds the embedded SQL migrations. Files are named
// <seq>_<comment>.tx.up.sql and <seq>_<comment>.tx.down.sql; each runs in
// its own transaction and statements are separated by --bun:split.
var Migrations = migrate.NewMigrations()

func init() {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		panic(err)
	}
	if err := Migrations.Discover(sub); err != nil {
		panic(err)
	}
}

// Migrator applies Migrations through bun over the application's pgx pool.
type Migrator struct {
	db       *bun.DB
	migrator *migrate.Migrator
	log      *zap.Logger
}

func NewMigrator(db *DB, log *zap.Logger) *Migrator {
	bunDB := bun.NewDB(stdlib.OpenDBFromPool(db.pool), pgdialect.New())
	return &Migrator{
		db:       bunDB,
		migrator: migrate.NewMigrator(bunDB, Migrations),
		log:      log.With(zap.String("component", "migrate")),
	}
}

// Close releases the database/sql handle. The pgx pool stays open.
func (m *Migrator) Close() error {
	return m.db.Close()
}

// Up applies every pending migration as one group and returns the names
// it applied.
func (m *Migrator) Up(ctx context.Context) ([]string, error) {
	unlock, err := m.prepare(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	group, err := m.migrator.Migrate(ctx)
	if err != nil {
		m.log.Error("Migration failed", zap.Error(err))
		return nil, fmt.Errorf("migrate: %w", err)
	}

	applied := migrationNames(group)
	if len(applied) > 0 {
		m.log.Info("Migrations applied", zap.Int64("group", group.ID), zap.Strings("migrations", applied))
	}
	return applied, nil
}

// Down rolls back the most recent migration group and returns the names
// it reverted.
func (m *Migrator) Down(ctx context.Context) ([]string, error) {
	unlock, err := m.prepare(ctx)
	if err != nil {
		return nil, err
	}
	defer unlock()

	group, err := m.migrator.Rollback(ctx)
	if err != nil {
		m.log.Error("Rollback failed", zap.Error(err))
		return nil, fmt.Errorf("rollback: %w", err)
	}

	reverted := migrationNames(group)
	if len(reverted) > 0 {
		m.log.Info("Migrations rolled back", zap.Int64("group", group.ID), zap.Strings("migrations", reverted))
	}
	return reverted, nil
}

// Pending lists migrations not applied yet.
func (m *Migrator) Pending(ctx context.Context) ([]string, error) {
	if err := m.migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("init migration tables: %w", err)
	}

	all, err := m.migrator.MigrationsWithStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration status: %w", err)
	}
	return sliceNames(all.Unapplied()), nil
}

// prepare creates bun's bookkeeping tables and takes the migration lock.
func (m *Migrator) prepare(ctx context.Context) (func(), error) {
	if err := m.migrator.Init(ctx); err != nil {
		return nil, fmt.Errorf("init migration tables: %w", err)
	}
	if err := m.migrator.Lock(ctx); err != nil {
		return nil, fmt.Errorf("lock migrations: %w", err)
	}
	return func() {
		if err := m.migrator.Unlock(ctx); err != nil {
			m.log.Warn("Failed to release migration lock", zap.Error(err))
		}
	}, nil
}

func migrationNames(group *migrate.MigrationGroup) []string {
	if group == nil || group.IsZero() {
		return nil
	}
	return sliceNames(group.Migrations)
}

func sliceNames(ms migrate.MigrationSlice) []string {
	if len(ms) == 0 {
		return nil
	}
	names := make([]string, len(ms))
	for i, mig := range ms {
		names[i] = mig.Name + "_" + mig.Comment
	}
	return names
}
