package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type WishlistRepository interface {
	Add(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) (*domain.WishlistEntry, error)
	Remove(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistEntry, error)
	Exists(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) (bool, error)
}
