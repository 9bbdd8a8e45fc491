package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

type WishlistRepository struct {
	db *sqlx.DB
}

func NewWishlistRepo(db *sqlx.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

// Add is idempotent: re-adding an existing entry returns the stored row
// instead of a conflict.
func (r *WishlistRepository) Add(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) (*domain.WishlistEntry, error) {
	const query = `
		INSERT INTO wishlist_entry (user_id, item_type, item_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, item_type, item_id) DO UPDATE SET item_id = EXCLUDED.item_id
		RETURNING id, user_id, item_type, item_id, created_at
	`
	row := r.db.QueryRowxContext(ctx, query, userID, itemType, itemID)
	var entry domain.WishlistEntry
	if err := row.StructScan(&entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *WishlistRepository) Remove(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) error {
	const query = `
		DELETE FROM wishlist_entry
		WHERE user_id = $1 AND item_type = $2 AND item_id = $3
	`
	result, err := r.db.ExecContext(ctx, query, userID, itemType, itemID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *WishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.WishlistEntry, error) {
	const query = `
		SELECT id, user_id, item_type, item_id, created_at
		FROM wishlist_entry
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	entries := make([]domain.WishlistEntry, 0)
	if err := r.db.SelectContext(ctx, &entries, query, userID, limit, offset); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *WishlistRepository) Exists(ctx context.Context, userID uuid.UUID, itemType domain.ContentType, itemID uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM wishlist_entry
			WHERE user_id = $1 AND item_type = $2 AND item_id = $3
		)
	`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, userID, itemType, itemID); err != nil {
		return false, err
	}
	return exists, nil
}

var _ ports.WishlistRepository = (*WishlistRepository)(nil)
