package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	UserID          uuid.UUID     `db:"user_id" json:"user_id"`
	ItemType        ContentType   `db:"item_type" json:"item_type"`
	ItemID          uuid.UUID     `db:"item_id" json:"item_id"`
	StartDate       time.Time     `db:"start_date" json:"start_date"`
	EndDate         time.Time     `db:"end_date" json:"end_date"`
	GuestsAdults    int           `db:"guests_adults" json:"guests_adults"`
	GuestsChildren  int           `db:"guests_children" json:"guests_children"`
	GuestsInfants   int           `db:"guests_infants" json:"guests_infants"`
	Rooms           int           `db:"rooms" json:"rooms"`
	SpecialRequests *string       `db:"special_requests" json:"special_requests,omitempty"`
	Subtotal        float64       `db:"subtotal" json:"subtotal"`
	Currency        string        `db:"currency" json:"currency"`
	Status          BookingStatus `db:"status" json:"status"`
	ContactEmail    string        `db:"contact_email" json:"contact_email"`
	ContactName     string        `db:"contact_name" json:"contact_name"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// CanCancel reports whether the booking is still in a cancellable state.
func (b Booking) CanCancel() bool {
	return b.Status == BookingStatusPending || b.Status == BookingStatusConfirmed
}
