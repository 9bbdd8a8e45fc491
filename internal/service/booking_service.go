package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

var (
	ErrBookingValidation    = errors.New("booking validation failed")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingForbidden     = errors.New("not allowed to manage this booking")
	ErrBookingNotCancelable = errors.New("booking can no longer be cancelled")
	ErrItemUnavailable      = errors.New("item is not available for booking")
)

type BookingCreateInput struct {
	ItemType        domain.ContentType
	ItemID          uuid.UUID
	StartDate       time.Time
	EndDate         time.Time
	Adults          int
	Children        int
	Infants         int
	Rooms           int
	SpecialRequests *string
	ContactEmail    string
	ContactName     string
}

type BookingService struct {
	bookings   ports.BookingRepository
	tours      ports.TourRepository
	hotels     ports.HotelRepository
	cars       ports.CarRepository
	activities ports.ActivityRepository
	tickets    ports.TicketRepository

	now func() time.Time
}

func NewBookingService(
	bookings ports.BookingRepository,
	tours ports.TourRepository,
	hotels ports.HotelRepository,
	cars ports.CarRepository,
	activities ports.ActivityRepository,
	tickets ports.TicketRepository,
) *BookingService {
	return &BookingService{
		bookings:   bookings,
		tours:      tours,
		hotels:     hotels,
		cars:       cars,
		activities: activities,
		tickets:    tickets,
		now:        time.Now,
	}
}

// Create validates the window and party, prices the stay from the catalog
// item and stores the booking as pending. Ticket bookings also take seats
// out of the shared pool, so an oversold ticket fails here rather than at
// confirmation time.
func (s *BookingService) Create(ctx context.Context, userID uuid.UUID, input BookingCreateInput) (*domain.Booking, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	subtotal, currency, err := s.price(ctx, input)
	if err != nil {
		return nil, err
	}

	if input.ItemType == domain.ContentTickets {
		seats := input.Adults + input.Children
		if err := s.tickets.ReserveSeats(ctx, input.ItemID, seats); err != nil {
			if isNotFound(err) {
				return nil, ErrItemUnavailable
			}
			return nil, err
		}
	}

	booking := &domain.Booking{
		UserID:          userID,
		ItemType:        input.ItemType,
		ItemID:          input.ItemID,
		StartDate:       input.StartDate,
		EndDate:         input.EndDate,
		GuestsAdults:    input.Adults,
		GuestsChildren:  input.Children,
		GuestsInfants:   input.Infants,
		Rooms:           input.Rooms,
		SpecialRequests: input.SpecialRequests,
		Subtotal:        subtotal,
		Currency:        currency,
		Status:          domain.BookingStatusPending,
		ContactEmail:    strings.TrimSpace(input.ContactEmail),
		ContactName:     strings.TrimSpace(input.ContactName),
	}
	return s.bookings.Create(ctx, booking)
}

func (s *BookingService) validate(input BookingCreateInput) error {
	if input.ItemID == uuid.Nil {
		return fmt.Errorf("%w: item id is required", ErrBookingValidation)
	}
	if input.StartDate.IsZero() || input.EndDate.IsZero() {
		return fmt.Errorf("%w: start and end dates are required", ErrBookingValidation)
	}
	if input.EndDate.Before(input.StartDate) {
		return fmt.Errorf("%w: end date before start date", ErrBookingValidation)
	}
	if input.StartDate.Before(s.now().Truncate(24 * time.Hour)) {
		return fmt.Errorf("%w: start date is in the past", ErrBookingValidation)
	}
	if input.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", ErrBookingValidation)
	}
	if input.Children < 0 || input.Infants < 0 {
		return fmt.Errorf("%w: guest counts cannot be negative", ErrBookingValidation)
	}
	if input.ItemType == domain.ContentHotels && input.Rooms < 1 {
		return fmt.Errorf("%w: at least one room is required", ErrBookingValidation)
	}
	if strings.TrimSpace(input.ContactEmail) == "" {
		return fmt.Errorf("%w: contact email is required", ErrBookingValidation)
	}
	return nil
}

func (s *BookingService) price(ctx context.Context, input BookingCreateInput) (float64, string, error) {
	guests := input.Adults + input.Children
	nights := nightsBetween(input.StartDate, input.EndDate)

	switch input.ItemType {
	case domain.ContentTours:
		tour, err := s.tours.FindByID(ctx, input.ItemID)
		if err != nil {
			return 0, "", wrapItemLookup(err)
		}
		if !tour.Availability {
			return 0, "", ErrItemUnavailable
		}
		return tour.PriceAmount * float64(guests), tour.PriceCurrency, nil
	case domain.ContentHotels:
		hotel, err := s.hotels.FindByID(ctx, input.ItemID)
		if err != nil {
			return 0, "", wrapItemLookup(err)
		}
		if !hotel.Availability {
			return 0, "", ErrItemUnavailable
		}
		return hotel.PricePerNight * float64(nights) * float64(input.Rooms), hotel.PriceCurrency, nil
	case domain.ContentCars:
		car, err := s.cars.FindByID(ctx, input.ItemID)
		if err != nil {
			return 0, "", wrapItemLookup(err)
		}
		if !car.Availability {
			return 0, "", ErrItemUnavailable
		}
		return car.PriceAmount * float64(nights), car.PriceCurrency, nil
	case domain.ContentActivities:
		activity, err := s.activities.FindByID(ctx, input.ItemID)
		if err != nil {
			return 0, "", wrapItemLookup(err)
		}
		if !activity.Availability {
			return 0, "", ErrItemUnavailable
		}
		return activity.PriceAmount * float64(guests), activity.PriceCurrency, nil
	case domain.ContentTickets:
		ticket, err := s.tickets.FindByID(ctx, input.ItemID)
		if err != nil {
			return 0, "", wrapItemLookup(err)
		}
		if !ticket.IsAvailable || ticket.SeatsAvailable < guests {
			return 0, "", ErrItemUnavailable
		}
		return ticket.PriceAmount * float64(guests), ticket.PriceCurrency, nil
	default:
		return 0, "", fmt.Errorf("%w: unknown item type %q", ErrBookingValidation, input.ItemType)
	}
}

// nightsBetween counts whole nights, with a one-night floor so single-day
// rentals and same-day stays still price.
func nightsBetween(start, end time.Time) int {
	nights := int(math.Round(end.Sub(start).Hours() / 24))
	if nights < 1 {
		return 1
	}
	return nights
}

func wrapItemLookup(err error) error {
	if isNotFound(err) {
		return ErrItemNotFound
	}
	return err
}

func (s *BookingService) Get(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.UserID != requesterID && !isAdmin {
		return nil, ErrBookingForbidden
	}
	return booking, nil
}

func (s *BookingService) ListForUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Booking, error) {
	limit, offset = normalizeCatalogPage(limit, offset)
	return s.bookings.ListByUser(ctx, userID, limit, offset)
}

func (s *BookingService) Cancel(ctx context.Context, id, requesterID uuid.UUID, isAdmin bool) (*domain.Booking, error) {
	booking, err := s.Get(ctx, id, requesterID, isAdmin)
	if err != nil {
		return nil, err
	}
	if !booking.CanCancel() {
		return nil, ErrBookingNotCancelable
	}
	return s.bookings.UpdateStatus(ctx, id, domain.BookingStatusCancelled)
}

func (s *BookingService) Confirm(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: only pending bookings can be confirmed", ErrBookingValidation)
	}
	return s.bookings.UpdateStatus(ctx, id, domain.BookingStatusConfirmed)
}
