package postgres

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"salonbook/backend/internal/domain"
)

// SeedCatalog loads the fixed service and artist catalog. Rows carry
// deterministic ids, so running it again inserts nothing new.
func SeedCatalog(ctx context.Context, db *bun.DB) (int, int, error) {
	services := domain.SeedServices()
	artists := domain.SeedArtists()

	var insertedServices, insertedArtists int64
	err := db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewInsert().Model(&services).On("CONFLICT (id) DO NOTHING").Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed services: %w", err)
		}
		insertedServices, _ = res.RowsAffected()

		res, err = tx.NewInsert().Model(&artists).On("CONFLICT (id) DO NOTHING").Exec(ctx)
		if err != nil {
			return fmt.Errorf("seed artists: %w", err)
		}
		insertedArtists, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return int(insertedServices), int(insertedArtists), nil
}
