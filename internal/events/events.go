package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const TypeAppointmentBooked = "appointment.booked"

// AppointmentBooked is emitted once a booking has been committed.
type AppointmentBooked struct {
	Type          string    `json:"type"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	UserID        uuid.UUID `json:"user_id"`
	ArtistID      uuid.UUID `json:"artist_id"`
	ServiceID     uuid.UUID `json:"service_id"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	BookedAt      time.Time `json:"booked_at"`
}

type Publisher interface {
	PublishAppointmentBooked(ctx context.Context, ev AppointmentBooked) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) PublishAppointmentBooked(context.Context, AppointmentBooked) error {
	return nil
}
