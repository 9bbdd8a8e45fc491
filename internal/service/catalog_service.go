package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

var ErrItemNotFound = errors.New("item not found")

const (
	defaultCatalogLimit = 20
	maxCatalogLimit     = 100
	defaultShowcaseSize = 8
)

// CatalogService serves the browse surfaces: paged per-type listings,
// detail lookups and the homepage showcase rails.
type CatalogService struct {
	tours      ports.TourRepository
	hotels     ports.HotelRepository
	cars       ports.CarRepository
	activities ports.ActivityRepository
	tickets    ports.TicketRepository
	categories ports.CategoryRepository
}

func NewCatalogService(
	tours ports.TourRepository,
	hotels ports.HotelRepository,
	cars ports.CarRepository,
	activities ports.ActivityRepository,
	tickets ports.TicketRepository,
	categories ports.CategoryRepository,
) *CatalogService {
	return &CatalogService{
		tours:      tours,
		hotels:     hotels,
		cars:       cars,
		activities: activities,
		tickets:    tickets,
		categories: categories,
	}
}

type PagedResult[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func normalizeCatalogPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultCatalogLimit
	}
	if limit > maxCatalogLimit {
		limit = maxCatalogLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *CatalogService) ListTours(ctx context.Context, filter domain.TourListFilter, limit, offset int) (*PagedResult[domain.Tour], error) {
	limit, offset = normalizeCatalogPage(limit, offset)
	tours, err := s.tours.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.tours.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &PagedResult[domain.Tour]{Items: tours, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *CatalogService) GetTour(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return tour, nil
}

func (s *CatalogService) ListHotels(ctx context.Context, filter domain.HotelListFilter, limit, offset int) (*PagedResult[domain.Hotel], error) {
	limit, offset = normalizeCatalogPage(limit, offset)
	hotels, err := s.hotels.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.hotels.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &PagedResult[domain.Hotel]{Items: hotels, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *CatalogService) GetHotel(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return hotel, nil
}

func (s *CatalogService) ListCars(ctx context.Context, filter domain.CarListFilter, limit, offset int) (*PagedResult[domain.Car], error) {
	limit, offset = normalizeCatalogPage(limit, offset)
	cars, err := s.cars.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.cars.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &PagedResult[domain.Car]{Items: cars, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *CatalogService) GetCar(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	car, err := s.cars.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return car, nil
}

func (s *CatalogService) ListActivities(ctx context.Context, filter domain.ActivityListFilter, limit, offset int) (*PagedResult[domain.Activity], error) {
	limit, offset = normalizeCatalogPage(limit, offset)
	activities, err := s.activities.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.activities.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &PagedResult[domain.Activity]{Items: activities, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *CatalogService) GetActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	activity, err := s.activities.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return activity, nil
}

func (s *CatalogService) ListTickets(ctx context.Context, filter domain.TicketListFilter, limit, offset int) (*PagedResult[domain.Ticket], error) {
	limit, offset = normalizeCatalogPage(limit, offset)
	tickets, err := s.tickets.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.tickets.Count(ctx, filter)
	if err != nil {
		return nil, err
	}
	return &PagedResult[domain.Ticket]{Items: tickets, Total: total, Limit: limit, Offset: offset}, nil
}

func (s *CatalogService) GetTicket(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	ticket, err := s.tickets.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return ticket, nil
}

// Showcase is the homepage payload: featured tours, top hotels, recent car
// launches and the popular category strip in one round trip.
type Showcase struct {
	FeaturedTours     []domain.Tour     `json:"featured_tours"`
	TopRatedHotels    []domain.Hotel    `json:"top_rated_hotels"`
	RecentCars        []domain.Car      `json:"recent_cars"`
	PopularCategories []domain.Category `json:"popular_categories"`
}

func (s *CatalogService) GetShowcase(ctx context.Context, size int) (*Showcase, error) {
	if size <= 0 {
		size = defaultShowcaseSize
	}

	tours, err := s.tours.ListFeatured(ctx, size)
	if err != nil {
		return nil, err
	}
	hotels, err := s.hotels.ListTopRated(ctx, size)
	if err != nil {
		return nil, err
	}
	cars, err := s.cars.ListRecent(ctx, size)
	if err != nil {
		return nil, err
	}
	categories, err := s.categories.ListPopular(ctx, size)
	if err != nil {
		return nil, err
	}

	return &Showcase{
		FeaturedTours:     tours,
		TopRatedHotels:    hotels,
		RecentCars:        cars,
		PopularCategories: categories,
	}, nil
}

func (s *CatalogService) FeaturedTours(ctx context.Context, limit int) ([]domain.Tour, error) {
	if limit <= 0 {
		limit = defaultShowcaseSize
	}
	return s.tours.ListFeatured(ctx, limit)
}

func (s *CatalogService) TopRatedHotels(ctx context.Context, limit int) ([]domain.Hotel, error) {
	if limit <= 0 {
		limit = defaultShowcaseSize
	}
	return s.hotels.ListTopRated(ctx, limit)
}

func (s *CatalogService) RecentCars(ctx context.Context, limit int) ([]domain.Car, error) {
	if limit <= 0 {
		limit = defaultShowcaseSize
	}
	return s.cars.ListRecent(ctx, limit)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.ListActive(ctx)
}

func (s *CatalogService) GetCategory(ctx context.Context, slug string) (*domain.Category, error) {
	category, err := s.categories.FindBySlug(ctx, slug)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return category, nil
}
