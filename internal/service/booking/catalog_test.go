package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

func TestCatalog_ListCategories(t *testing.T) {
	got := NewCatalog(newMemStore()).ListCategories()
	want := []domain.Category{domain.CategoryNails, domain.CategoryHair, domain.CategoryCosmetics}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListCategories = %v, want %v", got, want)
	}
}

func TestCatalog_ListServicesDistinctSorted(t *testing.T) {
	c := NewCatalog(&fakeCatalogRepo{
		listServicesFn: func(ctx context.Context, category domain.Category) ([]domain.Service, error) {
			if category != domain.CategoryNails {
				t.Fatalf("category = %q, want nails", category)
			}
			return []domain.Service{
				{Name: "Manichiura Simplă"},
				{Name: "Manichiura Gel"},
				{Name: "Manichiura Simplă"},
			}, nil
		},
	})

	got, err := c.ListServices(context.Background(), "Nails")
	if err != nil {
		t.Fatalf("ListServices error: %v", err)
	}
	want := []string{"Manichiura Gel", "Manichiura Simplă"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ListServices = %v, want %v", got, want)
	}
}

func TestCatalog_ListServicesErrors(t *testing.T) {
	c := NewCatalog(&fakeCatalogRepo{
		listServicesFn: func(ctx context.Context, category domain.Category) ([]domain.Service, error) {
			return nil, errors.New("db down")
		},
	})

	_, err := c.ListServices(context.Background(), "massage")
	var vErr *ValidationError
	if !errors.As(err, &vErr) || err.Error() != ReasonInvalidCategory {
		t.Fatalf("error = %v, want invalid category", err)
	}

	_, err = c.ListServices(context.Background(), "hair")
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *PersistenceError", err)
	}
}

func TestCatalog_ListArtists(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()

	got, err := NewCatalog(m).ListArtists(ctx, "hair")
	if err != nil {
		t.Fatalf("ListArtists error: %v", err)
	}
	if want := []string{"Daria", "Maria", "Roxana"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("ListArtists = %v, want %v", got, want)
	}

	c := NewCatalog(m, WithRoster(map[domain.Category][]string{
		domain.CategoryNails: {"Roxana", "Maria"},
	}))
	got, err = c.ListArtists(ctx, "nails")
	if err != nil {
		t.Fatalf("ListArtists error: %v", err)
	}
	if want := []string{"Roxana", "Maria"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("roster ListArtists = %v, want %v", got, want)
	}

	got, err = c.ListArtists(ctx, "cosmetics")
	if err != nil {
		t.Fatalf("ListArtists error: %v", err)
	}
	if want := []string{"Eva"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("fallback ListArtists = %v, want %v", got, want)
	}
}

func TestCatalog_FindOrCreateUser(t *testing.T) {
	m := newMemStore()
	c := NewCatalog(m)
	ctx := context.Background()

	u1, err := c.FindOrCreateUser(ctx, "Alexandra", "0712345678")
	if err != nil {
		t.Fatalf("FindOrCreateUser error: %v", err)
	}
	u2, err := c.FindOrCreateUser(ctx, "Alexandra", "0712345678")
	if err != nil {
		t.Fatalf("FindOrCreateUser error: %v", err)
	}
	if u1.ID != u2.ID {
		t.Fatalf("user not reused")
	}

	if _, err := c.FindOrCreateUser(ctx, "Al", "0712345678"); err == nil || err.Error() != ReasonInvalidName {
		t.Fatalf("error = %v, want invalid name", err)
	}
}

func TestCatalog_DeclareAvailability(t *testing.T) {
	ctx := context.Background()
	m := newMemStore()
	c := NewCatalog(m)
	eva := m.artist("Eva", domain.CategoryCosmetics).ID

	a, err := c.DeclareAvailability(ctx, eva, testDay, domain.MustTimeOfDay(9, 0), domain.MustTimeOfDay(13, 0))
	if err != nil {
		t.Fatalf("DeclareAvailability error: %v", err)
	}
	if a.ID == uuid.Nil || a.ArtistID != eva {
		t.Fatalf("unexpected availability: %+v", a)
	}

	windows, err := c.ListAvailability(ctx, eva, testDay)
	if err != nil {
		t.Fatalf("ListAvailability error: %v", err)
	}
	if len(windows) != 1 {
		t.Fatalf("windows = %d, want 1", len(windows))
	}

	_, err = c.DeclareAvailability(ctx, eva, testDay, domain.MustTimeOfDay(13, 0), domain.MustTimeOfDay(13, 0))
	if err == nil || err.Error() != ReasonInvalidWindow {
		t.Fatalf("error = %v, want invalid window", err)
	}

	_, err = c.DeclareAvailability(ctx, uuid.New(), testDay, domain.MustTimeOfDay(9, 0), domain.MustTimeOfDay(10, 0))
	var nErr *NotFoundError
	if !errors.As(err, &nErr) {
		t.Fatalf("error = %v, want *NotFoundError", err)
	}
}

func TestCatalog_DeclareAvailabilityStoreFailure(t *testing.T) {
	c := NewCatalog(&fakeCatalogRepo{
		getArtistFn: func(ctx context.Context, id uuid.UUID) (domain.Artist, error) {
			return domain.Artist{}, errors.New("timeout")
		},
	})
	_, err := c.DeclareAvailability(context.Background(), uuid.New(), testDay, domain.MustTimeOfDay(9, 0), domain.MustTimeOfDay(10, 0))
	var pErr *PersistenceError
	if !errors.As(err, &pErr) {
		t.Fatalf("error type = %T, want *PersistenceError", err)
	}
	if errors.Is(err, store.ErrNotFound) {
		t.Fatalf("timeout must not look like not found")
	}
}
