package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgExclusionViolation  = "23P01"
)

type CatalogRepo struct {
	db *bun.DB
}

func NewCatalogRepo(db *bun.DB) *CatalogRepo {
	return &CatalogRepo{db: db}
}

func (r *CatalogRepo) ListServicesByCategory(ctx context.Context, category domain.Category) ([]domain.Service, error) {
	var rows []domain.Service
	err := r.db.NewSelect().
		Model(&rows).
		Where("category = ?", category).
		OrderExpr("name ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogRepo) ListArtistsBySpecialization(ctx context.Context, category domain.Category) ([]domain.Artist, error) {
	var rows []domain.Artist
	err := r.db.NewSelect().
		Model(&rows).
		Where("specialization = ?", category).
		OrderExpr("name ASC, id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *CatalogRepo) GetService(ctx context.Context, id uuid.UUID) (domain.Service, error) {
	var s domain.Service
	err := r.db.NewSelect().Model(&s).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return domain.Service{}, notFound(err)
	}
	return s, nil
}

func (r *CatalogRepo) GetArtist(ctx context.Context, id uuid.UUID) (domain.Artist, error) {
	var a domain.Artist
	err := r.db.NewSelect().Model(&a).Where("id = ?", id).Limit(1).Scan(ctx)
	if err != nil {
		return domain.Artist{}, notFound(err)
	}
	return a, nil
}

// FindServiceByName returns the first service with exactly this name, by id.
func (r *CatalogRepo) FindServiceByName(ctx context.Context, name string) (domain.Service, error) {
	var s domain.Service
	err := r.db.NewSelect().
		Model(&s).
		Where("name = ?", name).
		OrderExpr("id ASC").
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.Service{}, notFound(err)
	}
	return s, nil
}

// FindArtistsByName returns every artist row with exactly this name. The same
// person may appear once per specialization.
func (r *CatalogRepo) FindArtistsByName(ctx context.Context, name string) ([]domain.Artist, error) {
	var rows []domain.Artist
	err := r.db.NewSelect().
		Model(&rows).
		Where("name = ?", name).
		OrderExpr("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, store.ErrNotFound
	}
	return rows, nil
}

func (r *CatalogRepo) FindOrCreateUser(ctx context.Context, name, phone string) (domain.User, error) {
	return findOrCreateUser(ctx, r.db, name, phone)
}

func (r *CatalogRepo) CreateAvailability(ctx context.Context, a domain.Availability) (domain.Availability, error) {
	m := domain.Availability{
		ID:        a.ID,
		ArtistID:  a.ArtistID,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		CreatedAt: a.CreatedAt,
	}
	if _, err := r.db.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Availability{}, classifyWriteError(err)
	}
	return m, nil
}

func (r *CatalogRepo) ListAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error) {
	return listAvailability(ctx, r.db, artistID, date)
}

// findOrCreateUser relies on the unique (name, phone_number) pair: a losing
// concurrent insert becomes a no-op and both callers read the same row.
func findOrCreateUser(ctx context.Context, db bun.IDB, name, phone string) (domain.User, error) {
	u := domain.User{Name: name, Phone: phone}
	_, err := db.NewInsert().
		Model(&u).
		On("CONFLICT (name, phone_number) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return domain.User{}, err
	}

	var out domain.User
	err = db.NewSelect().
		Model(&out).
		Where("name = ?", name).
		Where("phone_number = ?", phone).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return domain.User{}, notFound(err)
	}
	return out, nil
}

func listAvailability(ctx context.Context, db bun.IDB, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error) {
	rows := []domain.Availability{}
	err := db.NewSelect().
		Model(&rows).
		Where("artist_id = ?", artistID).
		Where("available_date = ?", date).
		OrderExpr("start_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// classifyWriteError maps constraint violations onto store sentinels.
func classifyWriteError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case pgExclusionViolation:
		if pgErr.ConstraintName == "appointments_no_overlap" {
			return store.ErrConflict
		}
	case pgUniqueViolation:
		return store.ErrConflict
	case pgForeignKeyViolation:
		return store.ErrNotFound
	}
	return err
}
