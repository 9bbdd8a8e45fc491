package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Hotel struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Name          string         `db:"name" json:"name"`
	City          string         `db:"location_city" json:"city"`
	Country       string         `db:"location_country" json:"country"`
	Address       string         `db:"location_address" json:"address"`
	RatingScore   float64        `db:"rating_score" json:"rating_score"`
	RatingReviews int            `db:"rating_reviews" json:"rating_reviews"`
	Stars         int            `db:"stars" json:"stars"`
	PricePerNight float64        `db:"price_per_night" json:"price_per_night"`
	PriceCurrency string         `db:"price_currency" json:"price_currency"`
	MainImage     string         `db:"main_image_url" json:"main_image"`
	Gallery       pq.StringArray `db:"gallery" json:"gallery,omitempty"`
	Amenities     pq.StringArray `db:"amenities" json:"amenities,omitempty"`
	CheckIn       string         `db:"check_in" json:"check_in"`
	CheckOut      string         `db:"check_out" json:"check_out"`
	IsTopRated    bool           `db:"is_top_rated" json:"is_top_rated"`
	Availability  bool           `db:"availability" json:"availability"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

func (h Hotel) ItemID() uuid.UUID        { return h.ID }
func (h Hotel) ContentKind() ContentType { return ContentHotels }
func (h Hotel) DisplayTitle() string     { return h.Name }
func (h Hotel) LocationLabel() string    { return joinLocation(h.City, h.Country) }

func (h Hotel) PriceLabel() string {
	return fmt.Sprintf("$%.0f / night", h.PricePerNight)
}

func (h Hotel) SuggestionSubtitle() string {
	return joinLocation(h.City, h.Country)
}
