package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type ActivityRepository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Activity, error)
	List(ctx context.Context, filter domain.ActivityListFilter, limit, offset int) ([]domain.Activity, error)
	Count(ctx context.Context, filter domain.ActivityListFilter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error
	UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error
}
