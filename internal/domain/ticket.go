package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Type              string    `db:"type" json:"type"`
	DepartureLocation string    `db:"departure_location" json:"departure_location"`
	DepartureCode     string    `db:"departure_code" json:"departure_code"`
	DepartureTime     time.Time `db:"departure_time" json:"departure_time"`
	ArrivalLocation   string    `db:"arrival_location" json:"arrival_location"`
	ArrivalCode       string    `db:"arrival_code" json:"arrival_code"`
	ArrivalTime       time.Time `db:"arrival_time" json:"arrival_time"`
	ProviderName      string    `db:"provider_name" json:"provider_name"`
	ProviderCode      string    `db:"provider_code" json:"provider_code"`
	Class             string    `db:"class" json:"class"`
	PriceAmount       float64   `db:"price_amount" json:"price_amount"`
	PriceCurrency     string    `db:"price_currency" json:"price_currency"`
	SeatsAvailable    int       `db:"seats_available" json:"seats_available"`
	IsAvailable       bool      `db:"is_available" json:"is_available"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

func (t Ticket) ItemID() uuid.UUID        { return t.ID }
func (t Ticket) ContentKind() ContentType { return ContentTickets }

func (t Ticket) DisplayTitle() string {
	return t.DepartureLocation + " → " + t.ArrivalLocation
}

func (t Ticket) LocationLabel() string { return t.DepartureLocation }

func (t Ticket) PriceLabel() string {
	return fmt.Sprintf("$%.0f", t.PriceAmount)
}
