package service

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/tripverse/travel-api/internal/domain"
)

var (
	errUniqueForTest = &pgconn.PgError{Code: "23505"}
	frozenTime       = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
)

// In-memory repository fakes shared by the service tests. Each fake serves
// its fixture slice and records enough calls to assert on interaction.

type fakeTourRepo struct {
	tours       []domain.Tour
	categories  []string
	searchErr   error
	searchCalls int
	lastTerm    string
	ratings     map[uuid.UUID]float64
	images      map[uuid.UUID]string
}

func (f *fakeTourRepo) Search(ctx context.Context, term string, limit int) ([]domain.Tour, error) {
	f.searchCalls++
	f.lastTerm = term
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if limit < len(f.tours) {
		return f.tours[:limit], nil
	}
	return f.tours, nil
}

func (f *fakeTourRepo) List(ctx context.Context, filter domain.TourListFilter, limit, offset int) ([]domain.Tour, error) {
	return f.tours, nil
}

func (f *fakeTourRepo) Count(ctx context.Context, filter domain.TourListFilter) (int, error) {
	return len(f.tours), nil
}

func (f *fakeTourRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	for i := range f.tours {
		if f.tours[i].ID == id {
			return &f.tours[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTourRepo) ListFeatured(ctx context.Context, limit int) ([]domain.Tour, error) {
	return f.tours, nil
}

func (f *fakeTourRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeTourRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	if f.images == nil {
		f.images = map[uuid.UUID]string{}
	}
	f.images[id] = imageURL
	return nil
}

func (f *fakeTourRepo) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	if f.ratings == nil {
		f.ratings = map[uuid.UUID]float64{}
	}
	f.ratings[id] = score
	return nil
}

type fakeHotelRepo struct {
	hotels      []domain.Hotel
	cities      []string
	searchErr   error
	searchCalls int
}

func (f *fakeHotelRepo) Search(ctx context.Context, term string, limit int) ([]domain.Hotel, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if limit < len(f.hotels) {
		return f.hotels[:limit], nil
	}
	return f.hotels, nil
}

func (f *fakeHotelRepo) List(ctx context.Context, filter domain.HotelListFilter, limit, offset int) ([]domain.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeHotelRepo) Count(ctx context.Context, filter domain.HotelListFilter) (int, error) {
	return len(f.hotels), nil
}

func (f *fakeHotelRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	for i := range f.hotels {
		if f.hotels[i].ID == id {
			return &f.hotels[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeHotelRepo) ListTopRated(ctx context.Context, limit int) ([]domain.Hotel, error) {
	return f.hotels, nil
}

func (f *fakeHotelRepo) DistinctCities(ctx context.Context) ([]string, error) {
	return f.cities, nil
}

func (f *fakeHotelRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return nil
}

func (f *fakeHotelRepo) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	return nil
}

type fakeCarRepo struct {
	cars        []domain.Car
	brands      []string
	searchErr   error
	searchCalls int
}

func (f *fakeCarRepo) Search(ctx context.Context, term string, limit int) ([]domain.Car, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if limit < len(f.cars) {
		return f.cars[:limit], nil
	}
	return f.cars, nil
}

func (f *fakeCarRepo) List(ctx context.Context, filter domain.CarListFilter, limit, offset int) ([]domain.Car, error) {
	return f.cars, nil
}

func (f *fakeCarRepo) Count(ctx context.Context, filter domain.CarListFilter) (int, error) {
	return len(f.cars), nil
}

func (f *fakeCarRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	for i := range f.cars {
		if f.cars[i].ID == id {
			return &f.cars[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeCarRepo) ListRecent(ctx context.Context, limit int) ([]domain.Car, error) {
	return f.cars, nil
}

func (f *fakeCarRepo) DistinctBrands(ctx context.Context) ([]string, error) {
	return f.brands, nil
}

func (f *fakeCarRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return nil
}

func (f *fakeCarRepo) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	return nil
}

type fakeActivityRepo struct {
	activities  []domain.Activity
	categories  []string
	searchErr   error
	searchCalls int
}

func (f *fakeActivityRepo) Search(ctx context.Context, term string, limit int) ([]domain.Activity, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if limit < len(f.activities) {
		return f.activities[:limit], nil
	}
	return f.activities, nil
}

func (f *fakeActivityRepo) List(ctx context.Context, filter domain.ActivityListFilter, limit, offset int) ([]domain.Activity, error) {
	return f.activities, nil
}

func (f *fakeActivityRepo) Count(ctx context.Context, filter domain.ActivityListFilter) (int, error) {
	return len(f.activities), nil
}

func (f *fakeActivityRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	for i := range f.activities {
		if f.activities[i].ID == id {
			return &f.activities[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeActivityRepo) DistinctCategories(ctx context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeActivityRepo) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return nil
}

func (f *fakeActivityRepo) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	return nil
}

type fakeTicketRepo struct {
	tickets     []domain.Ticket
	types       []string
	searchErr   error
	searchCalls int
	reserved    map[uuid.UUID]int
}

func (f *fakeTicketRepo) Search(ctx context.Context, term string, limit int) ([]domain.Ticket, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if limit < len(f.tickets) {
		return f.tickets[:limit], nil
	}
	return f.tickets, nil
}

func (f *fakeTicketRepo) List(ctx context.Context, filter domain.TicketListFilter, limit, offset int) ([]domain.Ticket, error) {
	return f.tickets, nil
}

func (f *fakeTicketRepo) Count(ctx context.Context, filter domain.TicketListFilter) (int, error) {
	return len(f.tickets), nil
}

func (f *fakeTicketRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	for i := range f.tickets {
		if f.tickets[i].ID == id {
			return &f.tickets[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeTicketRepo) DistinctTypes(ctx context.Context) ([]string, error) {
	return f.types, nil
}

func (f *fakeTicketRepo) ReserveSeats(ctx context.Context, id uuid.UUID, seats int) error {
	for i := range f.tickets {
		if f.tickets[i].ID != id {
			continue
		}
		if f.tickets[i].SeatsAvailable < seats {
			return sql.ErrNoRows
		}
		f.tickets[i].SeatsAvailable -= seats
		if f.reserved == nil {
			f.reserved = map[uuid.UUID]int{}
		}
		f.reserved[id] += seats
		return nil
	}
	return sql.ErrNoRows
}

type fakeBookingRepo struct {
	bookings []domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	stored := *booking
	if stored.ID == uuid.Nil {
		stored.ID = uuid.New()
	}
	f.bookings = append(f.bookings, stored)
	return &stored, nil
}

func (f *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			return &f.bookings[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeBookingRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Booking, error) {
	var out []domain.Booking
	for _, b := range f.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Status = status
			return &f.bookings[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

type fakeReviewRepo struct {
	reviews []domain.Review
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	for _, existing := range f.reviews {
		if existing.UserID == review.UserID && existing.ItemType == review.ItemType && existing.ItemID == review.ItemID && existing.DeletedAt == nil {
			return nil, errUniqueForTest
		}
	}
	stored := *review
	stored.ID = uuid.New()
	f.reviews = append(f.reviews, stored)
	return &stored, nil
}

func (f *fakeReviewRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			return &f.reviews[i], nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakeReviewRepo) ListByItem(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID, filter domain.ReviewListFilter) ([]domain.Review, error) {
	var out []domain.Review
	for _, r := range f.reviews {
		if r.ItemType != itemType || r.ItemID != itemID || r.DeletedAt != nil {
			continue
		}
		if filter.MinRating != nil && r.Rating < *filter.MinRating {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeReviewRepo) AggregateByItem(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID) (*domain.ReviewAggregate, error) {
	agg := &domain.ReviewAggregate{ItemType: itemType, ItemID: itemID}
	sum := 0
	for _, r := range f.reviews {
		if r.ItemType == itemType && r.ItemID == itemID && r.DeletedAt == nil {
			agg.TotalReviews++
			sum += r.Rating
		}
	}
	if agg.TotalReviews > 0 {
		agg.AverageRating = float64(sum) / float64(agg.TotalReviews)
	}
	return agg, nil
}

func (f *fakeReviewRepo) MarkHelpful(ctx context.Context, id uuid.UUID) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id {
			f.reviews[i].Helpful++
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakeReviewRepo) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	for i := range f.reviews {
		if f.reviews[i].ID == id && f.reviews[i].DeletedAt == nil {
			now := frozenTime
			f.reviews[i].DeletedAt = &now
			return nil
		}
	}
	return sql.ErrNoRows
}
