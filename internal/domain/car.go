package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Car struct {
	ID             uuid.UUID      `db:"id" json:"id"`
	Brand          string         `db:"brand" json:"brand"`
	Model          string         `db:"model" json:"model"`
	Year           int            `db:"year" json:"year"`
	City           string         `db:"location_city" json:"city"`
	Country        string         `db:"location_country" json:"country"`
	Mileage        int            `db:"mileage" json:"mileage"`
	Transmission   string         `db:"transmission" json:"transmission"`
	FuelType       string         `db:"fuel_type" json:"fuel_type"`
	Seats          int            `db:"seats" json:"seats"`
	PriceAmount    float64        `db:"price_amount" json:"price_amount"`
	PriceCurrency  string         `db:"price_currency" json:"price_currency"`
	PricePer       string         `db:"price_per" json:"price_per"`
	RatingScore    float64        `db:"rating_score" json:"rating_score"`
	RatingReviews  int            `db:"rating_reviews" json:"rating_reviews"`
	Image          string         `db:"image_url" json:"image"`
	Features       pq.StringArray `db:"features" json:"features,omitempty"`
	IsRecentLaunch bool           `db:"is_recent_launch" json:"is_recent_launch"`
	Availability   bool           `db:"availability" json:"availability"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time      `db:"updated_at" json:"updated_at"`
}

func (c Car) ItemID() uuid.UUID        { return c.ID }
func (c Car) ContentKind() ContentType { return ContentCars }

func (c Car) DisplayTitle() string {
	return strings.TrimSpace(c.Brand + " " + c.Model)
}

func (c Car) LocationLabel() string { return joinLocation(c.City, c.Country) }

func (c Car) PriceLabel() string {
	per := c.PricePer
	if per == "" {
		per = "day"
	}
	return fmt.Sprintf("$%.0f / %s", c.PriceAmount, per)
}

// SuggestionSubtitle is the pickup city only, matching the legacy dropdown.
func (c Car) SuggestionSubtitle() string {
	return c.City
}
