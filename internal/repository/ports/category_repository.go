package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
	ListPopular(ctx context.Context, limit int) ([]domain.Category, error)
	FindBySlug(ctx context.Context, slug string) (*domain.Category, error)
	UpdateCounts(ctx context.Context, id uuid.UUID, tourCount, activityCount int) error
}
