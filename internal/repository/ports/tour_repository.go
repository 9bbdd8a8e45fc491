package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type TourRepository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Tour, error)
	List(ctx context.Context, filter domain.TourListFilter, limit, offset int) ([]domain.Tour, error)
	Count(ctx context.Context, filter domain.TourListFilter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error)
	ListFeatured(ctx context.Context, limit int) ([]domain.Tour, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
	UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error
}
