package domain

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Category string

const (
	CategoryNails     Category = "nails"
	CategoryHair      Category = "hair"
	CategoryCosmetics Category = "cosmetics"
)

func Categories() []Category {
	return []Category{CategoryNails, CategoryHair, CategoryCosmetics}
}

func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	switch c {
	case CategoryNails, CategoryHair, CategoryCosmetics:
		return c, nil
	}
	return "", errors.New("invalid category")
}

type User struct {
	bun.BaseModel `bun:"table:users"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	Phone     string    `bun:"phone_number,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	return assignIdentity(&u.ID, &u.CreatedAt)
}

type Service struct {
	bun.BaseModel `bun:"table:services"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	Name      string    `bun:"name,notnull"`
	Category  Category  `bun:"category,notnull"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (s *Service) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	return assignIdentity(&s.ID, &s.CreatedAt)
}

type Artist struct {
	bun.BaseModel `bun:"table:artists"`

	ID             uuid.UUID `bun:"id,pk,type:uuid"`
	Name           string    `bun:"name,notnull"`
	Specialization Category  `bun:"specialization,notnull"`
	CreatedAt      time.Time `bun:"created_at,notnull"`
}

func (a *Artist) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	return assignIdentity(&a.ID, &a.CreatedAt)
}

// Availability declares that an artist can take bookings inside
// [StartTime, EndTime) on Date.
type Availability struct {
	bun.BaseModel `bun:"table:availability"`

	ID        uuid.UUID `bun:"id,pk,type:uuid"`
	ArtistID  uuid.UUID `bun:"artist_id,notnull,type:uuid"`
	Date      Date      `bun:"available_date,notnull,type:date"`
	StartTime TimeOfDay `bun:"start_time,notnull,type:time"`
	EndTime   TimeOfDay `bun:"end_time,notnull,type:time"`
	CreatedAt time.Time `bun:"created_at,notnull"`
}

func (a *Availability) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); !ok {
		return nil
	}
	return assignIdentity(&a.ID, &a.CreatedAt)
}

func (a Availability) Window() Interval {
	return Interval{Start: Combine(a.Date, a.StartTime), End: Combine(a.Date, a.EndTime)}
}

func assignIdentity(id *uuid.UUID, createdAt *time.Time) error {
	if *id == uuid.Nil {
		v, err := uuid.NewV7()
		if err != nil {
			return err
		}
		*id = v
	}
	if createdAt.IsZero() {
		*createdAt = time.Now().UTC()
	}
	return nil
}
