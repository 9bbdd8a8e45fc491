package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

type ReviewRepository struct {
	db *sqlx.DB
}

func NewReviewRepo(db *sqlx.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	const query = `
		INSERT INTO review (user_id, item_type, item_id, rating, title, comment, is_verified)
		VALUES (:user_id, :item_type, :item_id, :rating, :title, :comment, :is_verified)
		RETURNING id, user_id, item_type, item_id, rating, title, comment,
		          is_verified, helpful, created_at, updated_at, deleted_at
	`
	args := map[string]any{
		"user_id":     review.UserID,
		"item_type":   review.ItemType,
		"item_id":     review.ItemID,
		"rating":      review.Rating,
		"title":       strings.TrimSpace(review.Title),
		"comment":     strings.TrimSpace(review.Comment),
		"is_verified": review.IsVerified,
	}

	rows, err := r.db.NamedQueryContext(ctx, query, args)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if rows.Next() {
		var stored domain.Review
		if err := rows.StructScan(&stored); err != nil {
			return nil, err
		}
		return &stored, nil
	}
	return nil, sql.ErrNoRows
}

func (r *ReviewRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	const query = `
		SELECT
			r.id, r.user_id, r.item_type, r.item_id, r.rating, r.title, r.comment,
			r.is_verified, r.helpful, r.created_at, r.updated_at, r.deleted_at,
			u.name AS reviewer_name
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE r.id = $1
	`
	var review domain.Review
	if err := r.db.GetContext(ctx, &review, query, id); err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepository) ListByItem(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID, filter domain.ReviewListFilter) ([]domain.Review, error) {
	clauses := []string{"r.item_type = $1", "r.item_id = $2", "r.deleted_at IS NULL"}
	args := []any{itemType, itemID}
	idx := 3

	if filter.MinRating != nil {
		clauses = append(clauses, fmt.Sprintf("r.rating >= $%d", idx))
		args = append(args, *filter.MinRating)
		idx++
	}

	args = append(args, filter.Limit, filter.Offset)

	query := fmt.Sprintf(`
		SELECT
			r.id, r.user_id, r.item_type, r.item_id, r.rating, r.title, r.comment,
			r.is_verified, r.helpful, r.created_at, r.updated_at, r.deleted_at,
			u.name AS reviewer_name
		FROM review r
		JOIN user_account u ON u.id = r.user_id
		WHERE %s
		ORDER BY r.helpful DESC, r.created_at DESC, r.id DESC
		LIMIT $%d OFFSET $%d
	`, strings.Join(clauses, " AND "), idx, idx+1)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.StructScan(&review); err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) AggregateByItem(ctx context.Context, itemType domain.ContentType, itemID uuid.UUID) (*domain.ReviewAggregate, error) {
	const query = `
		SELECT
			COUNT(*)::int AS total_reviews,
			COALESCE(AVG(r.rating)::float8, 0) AS average_rating
		FROM review r
		WHERE r.item_type = $1 AND r.item_id = $2 AND r.deleted_at IS NULL
	`

	var row struct {
		Total   int     `db:"total_reviews"`
		Average float64 `db:"average_rating"`
	}
	if err := r.db.GetContext(ctx, &row, query, itemType, itemID); err != nil {
		return nil, err
	}

	return &domain.ReviewAggregate{
		ItemType:      itemType,
		ItemID:        itemID,
		AverageRating: row.Average,
		TotalReviews:  row.Total,
	}, nil
}

func (r *ReviewRepository) MarkHelpful(ctx context.Context, id uuid.UUID) error {
	const query = `
		UPDATE review
		SET helpful = helpful + 1, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
	return execExpectingRow(ctx, r.db, query, id)
}

func (r *ReviewRepository) SoftDelete(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error {
	const query = `
		UPDATE review
		SET deleted_at = NOW(), deleted_by = $2
		WHERE id = $1 AND deleted_at IS NULL
	`
	return execExpectingRow(ctx, r.db, query, id, deletedBy)
}

var _ ports.ReviewRepository = (*ReviewRepository)(nil)
