package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

var ErrWishlistEntryNotFound = errors.New("wishlist entry not found")

type WishlistService struct {
	wishlist ports.WishlistRepository
	catalog  *CatalogService
}

func NewWishlistService(wishlist ports.WishlistRepository, catalog *CatalogService) *WishlistService {
	return &WishlistService{wishlist: wishlist, catalog: catalog}
}

func (s *WishlistService) Save(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) (*domain.WishlistEntry, error) {
	if err := s.ensureItemExists(ctx, itemType, itemID); err != nil {
		return nil, err
	}
	return s.wishlist.Add(ctx, userID, itemType, itemID)
}

func (s *WishlistService) Remove(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) error {
	if err := s.wishlist.Remove(ctx, userID, itemType, itemID); err != nil {
		if isNotFound(err) {
			return ErrWishlistEntryNotFound
		}
		return err
	}
	return nil
}

func (s *WishlistService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistEntry, error) {
	limit, offset = normalizeCatalogPage(limit, offset)
	return s.wishlist.ListByUser(ctx, userID, limit, offset)
}

func (s *WishlistService) Contains(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) (bool, error) {
	return s.wishlist.Exists(ctx, userID, itemType, itemID)
}

func (s *WishlistService) ensureItemExists(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID) error {
	var err error
	switch itemType {
	case domain.ContentTours:
		_, err = s.catalog.GetTour(ctx, itemID)
	case domain.ContentHotels:
		_, err = s.catalog.GetHotel(ctx, itemID)
	case domain.ContentCars:
		_, err = s.catalog.GetCar(ctx, itemID)
	case domain.ContentActivities:
		_, err = s.catalog.GetActivity(ctx, itemID)
	case domain.ContentTickets:
		_, err = s.catalog.GetTicket(ctx, itemID)
	default:
		return ErrItemNotFound
	}
	return err
}
