package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

var (
	ErrReviewValidation   = errors.New("review validation failed")
	ErrReviewAlreadyExist = errors.New("review already exists for this item")
	ErrReviewNotFound     = errors.New("review not found")
	ErrReviewForbidden    = errors.New("not allowed to manage this review")
)

// reviewableCatalog is the slice of each catalog repo that reviews care
// about: does the item exist, and where does the rolled-up rating land.
type reviewableCatalog interface {
	UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error
}

type ReviewCreateInput struct {
	Rating  int
	Title   string
	Comment string
}

type ReviewService struct {
	reviews  ports.ReviewRepository
	bookings ports.BookingRepository
	catalogs map[domain.ContentType]reviewableCatalog
	exists   map[domain.ContentType]func(context.Context, uuid.UUID) error
}

func NewReviewService(
	reviews ports.ReviewRepository,
	bookings ports.BookingRepository,
	tours ports.TourRepository,
	hotels ports.HotelRepository,
	cars ports.CarRepository,
	activities ports.ActivityRepository,
) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		bookings: bookings,
		catalogs: map[domain.ContentType]reviewableCatalog{
			domain.ContentTours:      tours,
			domain.ContentHotels:     hotels,
			domain.ContentCars:       cars,
			domain.ContentActivities: activities,
		},
		exists: map[domain.ContentType]func(context.Context, uuid.UUID) error{
			domain.ContentTours: func(ctx context.Context, id uuid.UUID) error {
				_, err := tours.FindByID(ctx, id)
				return err
			},
			domain.ContentHotels: func(ctx context.Context, id uuid.UUID) error {
				_, err := hotels.FindByID(ctx, id)
				return err
			},
			domain.ContentCars: func(ctx context.Context, id uuid.UUID) error {
				_, err := cars.FindByID(ctx, id)
				return err
			},
			domain.ContentActivities: func(ctx context.Context, id uuid.UUID) error {
				_, err := activities.FindByID(ctx, id)
				return err
			},
		},
	}
}

// Create stores the review and folds the new aggregate back into the
// catalog item's rating columns. Tickets carry no rating, so they cannot
// be reviewed. A reviewer who has a confirmed booking for the item gets
// the verified badge.
func (s *ReviewService) Create(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID, input ReviewCreateInput) (*domain.Review, *domain.ReviewAggregate, error) {
	if _, ok := s.exists[itemType]; !ok {
		return nil, nil, fmt.Errorf("%w: %s cannot be reviewed", ErrReviewValidation, itemType)
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrReviewValidation)
	}
	if strings.TrimSpace(input.Comment) != "" && strings.TrimSpace(input.Title) == "" {
		return nil, nil, fmt.Errorf("%w: comment requires a title", ErrReviewValidation)
	}
	if err := s.ensureItemExists(ctx, itemType, itemID); err != nil {
		return nil, nil, err
	}

	verified, err := s.hasConfirmedBooking(ctx, userID, itemType, itemID)
	if err != nil {
		return nil, nil, err
	}

	stored, err := s.reviews.Create(ctx, &domain.Review{
		UserID:     userID,
		ItemType:   itemType,
		ItemID:     itemID,
		Rating:     input.Rating,
		Title:      strings.TrimSpace(input.Title),
		Comment:    strings.TrimSpace(input.Comment),
		IsVerified: verified,
	})
	if err != nil {
		if isUniqueViolation(err) {
			return nil, nil, ErrReviewAlreadyExist
		}
		return nil, nil, err
	}

	aggregate, err := s.refreshAggregate(ctx, itemType, itemID)
	if err != nil {
		return nil, nil, err
	}

	review, err := s.reviews.GetByID(ctx, stored.ID)
	if err != nil {
		return nil, nil, err
	}
	return review, aggregate, nil
}

func (s *ReviewService) ListForItem(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID, filter domain.ReviewListFilter) ([]domain.Review, *domain.ReviewAggregate, error) {
	if err := s.ensureItemExists(ctx, itemType, itemID); err != nil {
		return nil, nil, err
	}

	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.MinRating != nil && (*filter.MinRating < 1 || *filter.MinRating > 5) {
		return nil, nil, fmt.Errorf("%w: min_rating must be between 1 and 5", ErrReviewValidation)
	}

	reviews, err := s.reviews.ListByItem(ctx, itemType, itemID, filter)
	if err != nil {
		return nil, nil, err
	}
	aggregate, err := s.reviews.AggregateByItem(ctx, itemType, itemID)
	if err != nil {
		return nil, nil, err
	}
	return reviews, aggregate, nil
}

func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID uuid.UUID) error {
	if err := s.reviews.MarkHelpful(ctx, reviewID); err != nil {
		if isNotFound(err) {
			return ErrReviewNotFound
		}
		return err
	}
	return nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, requesterID uuid.UUID, isAdmin bool) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		if isNotFound(err) {
			return ErrReviewNotFound
		}
		return err
	}
	if review.DeletedAt != nil {
		return ErrReviewNotFound
	}
	if review.UserID != requesterID && !isAdmin {
		return ErrReviewForbidden
	}
	if err := s.reviews.SoftDelete(ctx, reviewID, requesterID); err != nil {
		if isNotFound(err) {
			return ErrReviewNotFound
		}
		return err
	}

	_, err = s.refreshAggregate(ctx, review.ItemType, review.ItemID)
	return err
}

func (s *ReviewService) ensureItemExists(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID) error {
	lookup, ok := s.exists[itemType]
	if !ok {
		return fmt.Errorf("%w: %s cannot be reviewed", ErrReviewValidation, itemType)
	}
	if itemID == uuid.Nil {
		return ErrItemNotFound
	}
	if err := lookup(ctx, itemID); err != nil {
		if isNotFound(err) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (s *ReviewService) hasConfirmedBooking(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) (bool, error) {
	bookings, err := s.bookings.ListByUser(ctx, userID, 100, 0)
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if b.ItemType == itemType && b.ItemID == itemID && b.Status == domain.BookingStatusConfirmed {
			return true, nil
		}
	}
	return false, nil
}

func (s *ReviewService) refreshAggregate(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID) (*domain.ReviewAggregate, error) {
	aggregate, err := s.reviews.AggregateByItem(ctx, itemType, itemID)
	if err != nil {
		return nil, err
	}
	if catalog, ok := s.catalogs[itemType]; ok {
		if err := catalog.UpdateRating(ctx, itemID, aggregate.AverageRating, aggregate.TotalReviews); err != nil && !isNotFound(err) {
			return nil, err
		}
	}
	return aggregate, nil
}
