package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Title         string    `db:"title" json:"title"`
	Category      string    `db:"category" json:"category"`
	City          string    `db:"location_city" json:"city"`
	Country       string    `db:"location_country" json:"country"`
	Description   string    `db:"description" json:"description"`
	DurationHours float64   `db:"duration_hours" json:"duration_hours"`
	Difficulty    string    `db:"difficulty" json:"difficulty"`
	MinAge        int       `db:"min_age" json:"min_age"`
	MaxGroupSize  int       `db:"max_group_size" json:"max_group_size"`
	PriceAmount   float64   `db:"price_amount" json:"price_amount"`
	PriceCurrency string    `db:"price_currency" json:"price_currency"`
	PricePer      string    `db:"price_per" json:"price_per"`
	RatingScore   float64   `db:"rating_score" json:"rating_score"`
	RatingReviews int       `db:"rating_reviews" json:"rating_reviews"`
	Image         string    `db:"image_url" json:"image"`
	Availability  bool      `db:"availability" json:"availability"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

func (a Activity) ItemID() uuid.UUID        { return a.ID }
func (a Activity) ContentKind() ContentType { return ContentActivities }
func (a Activity) DisplayTitle() string     { return a.Title }
func (a Activity) LocationLabel() string    { return joinLocation(a.City, a.Country) }

func (a Activity) PriceLabel() string {
	per := a.PricePer
	if per == "" {
		per = "person"
	}
	return fmt.Sprintf("$%.0f / %s", a.PriceAmount, per)
}
