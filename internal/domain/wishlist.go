package domain

import (
	"time"

	"github.com/google/uuid"
)

type WishlistEntry struct {
	ID        uuid.UUID   `db:"id" json:"id"`
	UserID    uuid.UUID   `db:"user_id" json:"user_id"`
	ItemType  ContentType `db:"item_type" json:"item_type"`
	ItemID    uuid.UUID   `db:"item_id" json:"item_id"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
}
