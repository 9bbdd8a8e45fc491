package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)
	ListByItem(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID, filter domain.ReviewListFilter) ([]domain.Review, error)
	AggregateByItem(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID) (*domain.ReviewAggregate, error)
	MarkHelpful(ctx context.Context, id uuid.UUID) error
	SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error
}
