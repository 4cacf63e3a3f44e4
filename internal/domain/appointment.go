package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Appointment struct {
	bun.BaseModel `bun:"table:appointments"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	UserID    uuid.UUID `bun:"user_id,notnull,type:uuid"`
	ArtistID  uuid.UUID `bun:"artist_id,notnull,type:uuid"`
	ServiceID uuid.UUID `bun:"service_id,notnull,type:uuid"`
	Date      Date      `bun:"appointment_date,notnull,type:date"`
	Time      TimeOfDay `bun:"appointment_time,notnull,type:time"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (a *Appointment) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	return assignIdentity(&a.ID, &a.CreatedAt)
}

func (a Appointment) Block() Interval {
	return BlockAt(a.Date, a.Time)
}

// AppointmentDetail is the joined, human-readable view of one booking.
type AppointmentDetail struct {
	ID          uuid.UUID `bun:"id"`
	UserName    string    `bun:"user_name"`
	UserPhone   string    `bun:"user_phone"`
	ServiceName string    `bun:"service_name"`
	Category    Category  `bun:"category"`
	ArtistName  string    `bun:"artist_name"`
	Date        Date      `bun:"appointment_date"`
	Time        TimeOfDay `bun:"appointment_time"`
}
