package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

// FreeSlots lists the start times on date at which artistID could still be
// booked. Appointments held by other rows of the same artist count as busy.
func (e *Engine) FreeSlots(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.TimeOfDay, error) {
	if artistID == uuid.Nil || date.IsZero() {
		return nil, validationError(ReasonMissingField)
	}
	artist, err := e.catalog.GetArtist(ctx, artistID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFoundError(ReasonArtistNotFound)
		}
		return nil, persistenceError("get artist", err)
	}
	calendar, err := e.calendar(ctx, artist)
	if err != nil {
		return nil, err
	}

	busy, err := e.bookings.ListAppointments(ctx, calendar, date)
	if err != nil {
		return nil, persistenceError("list appointments", err)
	}

	var windows []domain.Availability
	if e.enforceAvailability {
		windows, err = e.catalog.ListAvailability(ctx, artistID, date)
		if err != nil {
			return nil, persistenceError("list availability", err)
		}
		if windows == nil {
			windows = []domain.Availability{}
		}
	}

	slots := domain.FreeStarts(date, e.hours.Open, e.hours.LastStart, e.hours.Step, busy, windows)
	if slots == nil {
		slots = []domain.TimeOfDay{}
	}
	return slots, nil
}

// Schedule returns the artist's appointments on date ordered by start time.
func (e *Engine) Schedule(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Appointment, error) {
	if artistID == uuid.Nil || date.IsZero() {
		return nil, validationError(ReasonMissingField)
	}
	rows, err := e.bookings.ListAppointments(ctx, []uuid.UUID{artistID}, date)
	if err != nil {
		return nil, persistenceError("list appointments", err)
	}
	return rows, nil
}

func (e *Engine) AppointmentDetails(ctx context.Context, date domain.Date) ([]domain.AppointmentDetail, error) {
	if date.IsZero() {
		return nil, validationError(ReasonMissingField)
	}
	rows, err := e.bookings.ListAppointmentDetails(ctx, date)
	if err != nil {
		return nil, persistenceError("list appointment details", err)
	}
	return rows, nil
}
