package booking

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
	"salonbook/backend/internal/store"
)

// Catalog answers the browsing questions of the booking form and maintains
// artist availability.
type Catalog struct {
	repo   store.CatalogRepository
	roster map[domain.Category][]string
}

type CatalogOption func(*Catalog)

// WithRoster replaces the artist names listed for the given categories.
// Categories absent from roster still come from the artist records.
func WithRoster(roster map[domain.Category][]string) CatalogOption {
	return func(c *Catalog) {
		if len(roster) == 0 {
			return
		}
		c.roster = make(map[domain.Category][]string, len(roster))
		for k, v := range roster {
			c.roster[k] = append([]string(nil), v...)
		}
	}
}

func NewCatalog(repo store.CatalogRepository, opts ...CatalogOption) *Catalog {
	c := &Catalog{repo: repo}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Catalog) ListCategories() []domain.Category {
	return domain.Categories()
}

// ListServices returns the distinct service names offered in category,
// sorted.
func (c *Catalog) ListServices(ctx context.Context, category string) ([]string, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	rows, err := c.repo.ListServicesByCategory(ctx, cat)
	if err != nil {
		return nil, persistenceError("list services", err)
	}
	names := make([]string, 0, len(rows))
	for _, s := range rows {
		names = append(names, s.Name)
	}
	return distinctSorted(names), nil
}

func (c *Catalog) ListArtists(ctx context.Context, category string) ([]string, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	if names, ok := c.roster[cat]; ok {
		return append([]string(nil), names...), nil
	}
	rows, err := c.repo.ListArtistsBySpecialization(ctx, cat)
	if err != nil {
		return nil, persistenceError("list artists", err)
	}
	names := make([]string, 0, len(rows))
	for _, a := range rows {
		names = append(names, a.Name)
	}
	return distinctSorted(names), nil
}

// ArtistRecords lists the stored artist rows of a category, ids included.
func (c *Catalog) ArtistRecords(ctx context.Context, category string) ([]domain.Artist, error) {
	cat, err := parseCategory(category)
	if err != nil {
		return nil, err
	}
	rows, err := c.repo.ListArtistsBySpecialization(ctx, cat)
	if err != nil {
		return nil, persistenceError("list artists", err)
	}
	return rows, nil
}

func (c *Catalog) FindOrCreateUser(ctx context.Context, name, phone string) (domain.User, error) {
	if err := validateContact(name, phone); err != nil {
		return domain.User{}, err
	}
	u, err := c.repo.FindOrCreateUser(ctx, name, phone)
	if err != nil {
		return domain.User{}, persistenceError("find or create user", err)
	}
	return u, nil
}

func (c *Catalog) DeclareAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date, start, end domain.TimeOfDay) (domain.Availability, error) {
	if artistID == uuid.Nil || date.IsZero() {
		return domain.Availability{}, validationError(ReasonMissingField)
	}
	if !start.Before(end) {
		return domain.Availability{}, validationError(ReasonInvalidWindow)
	}

	if _, err := c.repo.GetArtist(ctx, artistID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Availability{}, notFoundError(ReasonArtistNotFound)
		}
		return domain.Availability{}, persistenceError("get artist", err)
	}

	a, err := c.repo.CreateAvailability(ctx, domain.Availability{
		ArtistID:  artistID,
		Date:      date,
		StartTime: start,
		EndTime:   end,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Availability{}, notFoundError(ReasonArtistNotFound)
		}
		return domain.Availability{}, persistenceError("create availability", err)
	}
	return a, nil
}

func (c *Catalog) ListAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error) {
	if artistID == uuid.Nil || date.IsZero() {
		return nil, validationError(ReasonMissingField)
	}
	rows, err := c.repo.ListAvailability(ctx, artistID, date)
	if err != nil {
		return nil, persistenceError("list availability", err)
	}
	return rows, nil
}

func distinctSorted(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
