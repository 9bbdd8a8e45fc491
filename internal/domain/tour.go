package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Tour struct {
	ID            uuid.UUID      `db:"id" json:"id"`
	Title         string         `db:"title" json:"title"`
	Location      string         `db:"location" json:"location"`
	Category      string         `db:"category" json:"category"`
	Description   string         `db:"description" json:"description"`
	DurationDays  int            `db:"duration_days" json:"duration_days"`
	DurationNight int            `db:"duration_nights" json:"duration_nights"`
	PriceAmount   float64        `db:"price_amount" json:"price_amount"`
	PriceCurrency string         `db:"price_currency" json:"price_currency"`
	PricePer      string         `db:"price_per" json:"price_per"`
	RatingScore   float64        `db:"rating_score" json:"rating_score"`
	RatingReviews int            `db:"rating_reviews" json:"rating_reviews"`
	RatingBadge   *string        `db:"rating_badge" json:"rating_badge,omitempty"`
	Image         string         `db:"image_url" json:"image"`
	Highlights    pq.StringArray `db:"highlights" json:"highlights,omitempty"`
	MaxGroupSize  int            `db:"max_group_size" json:"max_group_size"`
	IsFeatured    bool           `db:"is_featured" json:"is_featured"`
	IsTopRated    bool           `db:"is_top_rated" json:"is_top_rated"`
	Availability  bool           `db:"availability" json:"availability"`
	CreatedAt     time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at" json:"updated_at"`
}

func (t Tour) ItemID() uuid.UUID        { return t.ID }
func (t Tour) ContentKind() ContentType { return ContentTours }
func (t Tour) DisplayTitle() string     { return t.Title }
func (t Tour) LocationLabel() string    { return t.Location }

func (t Tour) PriceLabel() string {
	per := t.PricePer
	if per == "" {
		per = "person"
	}
	return fmt.Sprintf("$%.0f / %s", t.PriceAmount, per)
}

// SuggestionSubtitle joins location and category the way the legacy
// dropdown did.
func (t Tour) SuggestionSubtitle() string {
	if t.Category == "" {
		return t.Location
	}
	return t.Location + " • " + t.Category
}
