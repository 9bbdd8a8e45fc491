package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type HotelRepository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Hotel, error)
	List(ctx context.Context, filter domain.HotelListFilter, limit, offset int) ([]domain.Hotel, error)
	Count(ctx context.Context, filter domain.HotelListFilter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error)
	ListTopRated(ctx context.Context, limit int) ([]domain.Hotel, error)
	DistinctCities(ctx context.Context) ([]string, error)
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
	UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error
}
