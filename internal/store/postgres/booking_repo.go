package postgres

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

type BookingRepo struct {
	db *bun.DB
}

func NewBookingRepo(db *bun.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

type bookingTx struct {
	tx bun.Tx
}

func (r *BookingRepo) InArtistTransaction(ctx context.Context, artistIDs []uuid.UUID, fn func(ctx context.Context, tx store.BookingTx) error) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := lockArtistCalendars(ctx, tx, artistIDs); err != nil {
			return err
		}
		return fn(ctx, bookingTx{tx: tx})
	})
}

// lockArtistCalendars takes the advisory locks in id order so two callers
// locking overlapping sets cannot deadlock.
func lockArtistCalendars(ctx context.Context, tx bun.Tx, artistIDs []uuid.UUID) error {
	keys := make([]string, 0, len(artistIDs))
	seen := make(map[string]bool, len(artistIDs))
	for _, id := range artistIDs {
		k := id.String()
		if !seen[k] {
			seen[k] = true
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if _, err := tx.NewRaw("SELECT pg_advisory_xact_lock(hashtext(?))", k).Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *BookingRepo) ListAppointments(ctx context.Context, artistIDs []uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	return listAppointments(ctx, r.db, artistIDs, date)
}

func (r *BookingRepo) ListAppointmentDetails(ctx context.Context, date domain.Date) ([]domain.AppointmentDetail, error) {
	rows := []domain.AppointmentDetail{}
	err := r.db.NewSelect().
		TableExpr("appointments AS a").
		ColumnExpr("a.id").
		ColumnExpr("u.name AS user_name").
		ColumnExpr("u.phone_number AS user_phone").
		ColumnExpr("s.name AS service_name").
		ColumnExpr("s.category AS category").
		ColumnExpr("ar.name AS artist_name").
		ColumnExpr("a.appointment_date").
		ColumnExpr("a.appointment_time").
		Join("JOIN users AS u ON u.id = a.user_id").
		Join("JOIN services AS s ON s.id = a.service_id").
		Join("JOIN artists AS ar ON ar.id = a.artist_id").
		Where("a.appointment_date = ?", date).
		OrderExpr("a.appointment_time ASC, ar.name ASC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (t bookingTx) ListAppointments(ctx context.Context, artistIDs []uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	return listAppointments(ctx, t.tx, artistIDs, date)
}

func (t bookingTx) ListAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error) {
	return listAvailability(ctx, t.tx, artistID, date)
}

func (t bookingTx) FindOrCreateUser(ctx context.Context, name, phone string) (domain.User, error) {
	return findOrCreateUser(ctx, t.tx, name, phone)
}

func (t bookingTx) CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error) {
	m := domain.Appointment{
		ID:        appt.ID,
		UserID:    appt.UserID,
		ArtistID:  appt.ArtistID,
		ServiceID: appt.ServiceID,
		Date:      appt.Date,
		Time:      appt.Time,
		CreatedAt: appt.CreatedAt,
	}

	if _, err := t.tx.NewInsert().Model(&m).Exec(ctx); err != nil {
		return domain.Appointment{}, classifyWriteError(err)
	}
	return m, nil
}

func listAppointments(ctx context.Context, db bun.IDB, artistIDs []uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	rows := []domain.Appointment{}
	if len(artistIDs) == 0 {
		return rows, nil
	}
	err := db.NewSelect().
		Model(&rows).
		Where("artist_id IN (?)", bun.In(artistIDs)).
		Where("appointment_date = ?", date).
		OrderExpr("appointment_time ASC").
		Scan(ctx)
	if err != nil {
		return nil, err
	}
	return rows, nil
}
