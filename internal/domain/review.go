package domain

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	ID         uuid.UUID   `db:"id" json:"id"`
	UserID     uuid.UUID   `db:"user_id" json:"user_id"`
	ItemType   ContentType `db:"item_type" json:"item_type"`
	ItemID     uuid.UUID   `db:"item_id" json:"item_id"`
	Rating     int         `db:"rating" json:"rating"`
	Title      string      `db:"title" json:"title"`
	Comment    string      `db:"comment" json:"comment"`
	IsVerified bool        `db:"is_verified" json:"is_verified"`
	Helpful    int         `db:"helpful" json:"helpful"`
	CreatedAt  time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time   `db:"updated_at" json:"updated_at"`
	DeletedAt  *time.Time  `db:"deleted_at" json:"-"`

	ReviewerName *string `db:"reviewer_name" json:"reviewer_name,omitempty"`
}

// ReviewAggregate is the per-item rollup folded back into the catalog
// rating columns after each write.
type ReviewAggregate struct {
	ItemType      ContentType `json:"item_type"`
	ItemID        uuid.UUID   `json:"item_id"`
	AverageRating float64     `json:"average_rating"`
	TotalReviews  int         `json:"total_reviews"`
}

type ReviewListFilter struct {
	MinRating *int
	Limit     int
	Offset    int
}
