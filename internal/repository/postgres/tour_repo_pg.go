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

const tourColumns = `
	id, title, location, category, description, duration_days, duration_nights,
	price_amount, price_currency, price_per, rating_score, rating_reviews, rating_badge,
	image_url, highlights, max_group_size, is_featured, is_top_rated, availability,
	created_at, updated_at
`

type TourRepository struct {
	db *sqlx.DB
}

func NewTourRepo(db *sqlx.DB) *TourRepository {
	return &TourRepository{db: db}
}

const tourSearchClause = `title ILIKE $1 OR location ILIKE $1 OR category ILIKE $1 OR description ILIKE $1`

func (r *TourRepository) Search(ctx context.Context, term string, limit int) ([]domain.Tour, error) {
	const query = `
		SELECT ` + tourColumns + `
		FROM tour
		WHERE availability = TRUE
		  AND (` + tourSearchClause + `)
		ORDER BY rating_score DESC
		LIMIT $2
	`
	tours := make([]domain.Tour, 0)
	if err := r.db.SelectContext(ctx, &tours, query, likePattern(term), limit); err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *TourRepository) List(ctx context.Context, filter domain.TourListFilter, limit, offset int) ([]domain.Tour, error) {
	where, params := tourPredicates(filter)

	var builder strings.Builder
	builder.WriteString(`SELECT ` + tourColumns + ` FROM tour WHERE ` + where)
	builder.WriteString("\nORDER BY rating_score DESC, title ASC")
	builder.WriteString(fmt.Sprintf("\nLIMIT $%d OFFSET $%d", len(params)+1, len(params)+2))
	params = append(params, limit, offset)

	tours := make([]domain.Tour, 0)
	if err := r.db.SelectContext(ctx, &tours, builder.String(), params...); err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *TourRepository) Count(ctx context.Context, filter domain.TourListFilter) (int, error) {
	where, params := tourPredicates(filter)

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM tour WHERE `+where, params...); err != nil {
		return 0, err
	}
	return count, nil
}

func tourPredicates(filter domain.TourListFilter) (string, []any) {
	parts := []string{"TRUE"}
	params := make([]any, 0, 6)

	if !filter.IncludeUnavailable {
		parts = append(parts, "availability = TRUE")
	}
	if filter.Category != nil {
		params = append(params, strings.TrimSpace(*filter.Category))
		parts = append(parts, fmt.Sprintf("category = $%d", len(params)))
	}
	if filter.Location != nil {
		params = append(params, likePattern(*filter.Location))
		parts = append(parts, fmt.Sprintf("location ILIKE $%d", len(params)))
	}
	if filter.MinPrice != nil {
		params = append(params, *filter.MinPrice)
		parts = append(parts, fmt.Sprintf("price_amount >= $%d", len(params)))
	}
	if filter.MaxPrice != nil {
		params = append(params, *filter.MaxPrice)
		parts = append(parts, fmt.Sprintf("price_amount <= $%d", len(params)))
	}
	if filter.FeaturedOnly {
		parts = append(parts, "is_featured = TRUE")
	}
	if filter.TopRatedOnly {
		parts = append(parts, "is_top_rated = TRUE")
	}

	return strings.Join(parts, " AND "), params
}

func (r *TourRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Tour, error) {
	const query = `SELECT ` + tourColumns + ` FROM tour WHERE id = $1`

	var tour domain.Tour
	if err := r.db.GetContext(ctx, &tour, query, id); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (r *TourRepository) ListFeatured(ctx context.Context, limit int) ([]domain.Tour, error) {
	const query = `
		SELECT ` + tourColumns + `
		FROM tour
		WHERE availability = TRUE AND is_featured = TRUE
		ORDER BY rating_score DESC
		LIMIT $1
	`
	tours := make([]domain.Tour, 0)
	if err := r.db.SelectContext(ctx, &tours, query, limit); err != nil {
		return nil, err
	}
	return tours, nil
}

func (r *TourRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT category
		FROM tour
		WHERE category <> ''
		ORDER BY category ASC
	`
	categories := make([]string, 0)
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *TourRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return execExpectingRow(ctx, r.db, `UPDATE tour SET image_url = $2, updated_at = NOW() WHERE id = $1`, id, imageURL)
}

func (r *TourRepository) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	return execExpectingRow(ctx, r.db, `UPDATE tour SET rating_score = $2, rating_reviews = $3, updated_at = NOW() WHERE id = $1`, id, score, reviews)
}

func execExpectingRow(ctx context.Context, db *sqlx.DB, query string, args ...any) error {
	result, err := db.ExecContext(ctx, query, args...)
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

var _ ports.TourRepository = (*TourRepository)(nil)
