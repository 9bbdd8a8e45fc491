package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Name          string    `db:"name" json:"name"`
	Slug          string    `db:"slug" json:"slug"`
	Image         string    `db:"image_url" json:"image"`
	Description   string    `db:"description" json:"description"`
	TourCount     int       `db:"tour_count" json:"tour_count"`
	ActivityCount int       `db:"activity_count" json:"activity_count"`
	IsPopular     bool      `db:"is_popular" json:"is_popular"`
	DisplayOrder  int       `db:"display_order" json:"display_order"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}
