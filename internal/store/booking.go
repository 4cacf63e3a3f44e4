package store

import (
	"context"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

type BookingRepository interface {
	// InArtistTransaction runs fn in one transaction that holds an exclusive
	// lock on every listed artist row until commit or rollback. Rows that
	// belong to one person must be passed together.
	InArtistTransaction(ctx context.Context, artistIDs []uuid.UUID, fn func(ctx context.Context, tx BookingTx) error) error

	// ListAppointments returns the appointments of any of artistIDs on date,
	// ordered by start time.
	ListAppointments(ctx context.Context, artistIDs []uuid.UUID, date domain.Date) ([]domain.Appointment, error)
	ListAppointmentDetails(ctx context.Context, date domain.Date) ([]domain.AppointmentDetail, error)
}

type BookingTx interface {
	ListAppointments(ctx context.Context, artistIDs []uuid.UUID, date domain.Date) ([]domain.Appointment, error)
	ListAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error)
	FindOrCreateUser(ctx context.Context, name, phone string) (domain.User, error)
	CreateAppointment(ctx context.Context, appt domain.Appointment) (domain.Appointment, error)
}
