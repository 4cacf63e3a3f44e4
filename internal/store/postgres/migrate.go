package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"salonbook/backend/migrations"
)

// Migrate applies every pending schema migration. Concurrent servers are
// serialised by the migrator's lock table.
func Migrate(ctx context.Context, db *bun.DB, log *slog.Logger) error {
	m := migrate.NewMigrator(db, migrations.Migrations)
	if err := m.Init(ctx); err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	if err := m.Lock(ctx); err != nil {
		return fmt.Errorf("lock migrations: %w", err)
	}
	defer func() {
		_ = m.Unlock(ctx)
	}()

	group, err := m.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	if group.IsZero() {
		log.Info("database schema up to date")
		return nil
	}
	log.Info("database migrated", "group", group.String())
	return nil
}
