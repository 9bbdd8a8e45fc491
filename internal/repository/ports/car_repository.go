package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type CarRepository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Car, error)
	List(ctx context.Context, filter domain.CarListFilter, limit, offset int) ([]domain.Car, error)
	Count(ctx context.Context, filter domain.CarListFilter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Car, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Car, error)
	DistinctBrands(ctx context.Context) ([]string, error)
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
	UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error
}
