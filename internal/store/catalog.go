package store

import (
	"context"

	"github.com/google/uuid"

	"salonbook/backend/internal/domain"
)

type CatalogRepository interface {
	ListServicesByCategory(ctx context.Context, category domain.Category) ([]domain.Service, error)
	ListArtistsBySpecialization(ctx context.Context, category domain.Category) ([]domain.Artist, error)

	GetService(ctx context.Context, id uuid.UUID) (domain.Service, error)
	GetArtist(ctx context.Context, id uuid.UUID) (domain.Artist, error)
	FindServiceByName(ctx context.Context, name string) (domain.Service, error)
	FindArtistsByName(ctx context.Context, name string) ([]domain.Artist, error)

	FindOrCreateUser(ctx context.Context, name, phone string) (domain.User, error)

	CreateAvailability(ctx context.Context, a domain.Availability) (domain.Availability, error)
	ListAvailability(ctx context.Context, artistID uuid.UUID, date domain.Date) ([]domain.Availability, error)
}
