package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

const bookingColumns = `
	id, user_id, item_type, item_id, start_date, end_date,
	guests_adults, guests_children, guests_infants, rooms, special_requests,
	subtotal, currency, status, contact_email, contact_name,
	created_at, updated_at
`

type BookingRepository struct {
	db *sqlx.DB
}

func NewBookingRepo(db *sqlx.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	const query = `
		INSERT INTO booking (
			user_id, item_type, item_id, start_date, end_date,
			guests_adults, guests_children, guests_infants, rooms, special_requests,
			subtotal, currency, status, contact_email, contact_name
		) VALUES (
			:user_id, :item_type, :item_id, :start_date, :end_date,
			:guests_adults, :guests_children, :guests_infants, :rooms, :special_requests,
			:subtotal, :currency, :status, :contact_email, :contact_name
		)
		RETURNING ` + bookingColumns + `
	`
	args := map[string]any{
		"user_id":          booking.UserID,
		"item_type":        booking.ItemType,
		"item_id":          booking.ItemID,
		"start_date":       booking.StartDate,
		"end_date":         booking.EndDate,
		"guests_adults":    booking.GuestsAdults,
		"guests_children":  booking.GuestsChildren,
		"guests_infants":   booking.GuestsInfants,
		"rooms":            booking.Rooms,
		"special_requests": nullableString(booking.SpecialRequests),
		"subtotal":         booking.Subtotal,
		"currency":         booking.Currency,
		"status":           booking.Status,
		"contact_email":    booking.ContactEmail,
		"contact_name":     booking.ContactName,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Booking
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	const query = `SELECT ` + bookingColumns + ` FROM booking WHERE id = $1`

	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, id); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.Booking, error) {
	const query = `
		SELECT ` + bookingColumns + `
		FROM booking
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	bookings := make([]domain.Booking, 0)
	if err := r.db.SelectContext(ctx, &bookings, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) (*domain.Booking, error) {
	const query = `
		UPDATE booking
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + bookingColumns + `
	`
	var booking domain.Booking
	if err := r.db.GetContext(ctx, &booking, query, id, status); err != nil {
		return nil, err
	}
	return &booking, nil
}

var _ ports.BookingRepository = (*BookingRepository)(nil)
