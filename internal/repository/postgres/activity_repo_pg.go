package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

const activityColumns = `
	id, title, category, location_city, location_country, description,
	duration_hours, difficulty, min_age, max_group_size,
	price_amount, price_currency, price_per, rating_score, rating_reviews,
	image_url, availability, created_at, updated_at
`

type ActivityRepository struct {
	db *sqlx.DB
}

func NewActivityRepo(db *sqlx.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

const activitySearchClause = `title ILIKE $1 OR category ILIKE $1 OR location_city ILIKE $1
			OR location_country ILIKE $1 OR description ILIKE $1`

func (r *ActivityRepository) Search(ctx context.Context, term string, limit int) ([]domain.Activity, error) {
	const query = `
		SELECT ` + activityColumns + `
		FROM activity
		WHERE availability = TRUE
		  AND (` + activitySearchClause + `)
		ORDER BY rating_score DESC
		LIMIT $2
	`
	activities := make([]domain.Activity, 0)
	if err := r.db.SelectContext(ctx, &activities, query, likePattern(term), limit); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityListFilter, limit, offset int) ([]domain.Activity, error) {
	where, params := activityPredicates(filter)

	var builder strings.Builder
	builder.WriteString(`SELECT ` + activityColumns + ` FROM activity WHERE ` + where)
	builder.WriteString("\nORDER BY rating_score DESC, title ASC")
	builder.WriteString(fmt.Sprintf("\nLIMIT $%d OFFSET $%d", len(params)+1, len(params)+2))
	params = append(params, limit, offset)

	activities := make([]domain.Activity, 0)
	if err := r.db.SelectContext(ctx, &activities, builder.String(), params...); err != nil {
		return nil, err
	}
	return activities, nil
}

func (r *ActivityRepository) Count(ctx context.Context, filter domain.ActivityListFilter) (int, error) {
	where, params := activityPredicates(filter)

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM activity WHERE `+where, params...); err != nil {
		return 0, err
	}
	return count, nil
}

func activityPredicates(filter domain.ActivityListFilter) (string, []any) {
	parts := []string{"TRUE"}
	params := make([]any, 0, 3)

	if !filter.IncludeUnavailable {
		parts = append(parts, "availability = TRUE")
	}
	if filter.Category != nil {
		params = append(params, strings.TrimSpace(*filter.Category))
		parts = append(parts, fmt.Sprintf("category = $%d", len(params)))
	}
	if filter.City != nil {
		params = append(params, likePattern(*filter.City))
		parts = append(parts, fmt.Sprintf("location_city ILIKE $%d", len(params)))
	}
	if filter.Difficulty != nil {
		params = append(params, strings.TrimSpace(*filter.Difficulty))
		parts = append(parts, fmt.Sprintf("difficulty = $%d", len(params)))
	}

	return strings.Join(parts, " AND "), params
}

func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	const query = `SELECT ` + activityColumns + ` FROM activity WHERE id = $1`

	var activity domain.Activity
	if err := r.db.GetContext(ctx, &activity, query, id); err != nil {
		return nil, err
	}
	return &activity, nil
}

func (r *ActivityRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT category
		FROM activity
		WHERE category <> ''
		ORDER BY category ASC
	`
	categories := make([]string, 0)
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *ActivityRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return execExpectingRow(ctx, r.db, `UPDATE activity SET image_url = $2, updated_at = NOW() WHERE id = $1`, id, imageURL)
}

func (r *ActivityRepository) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	return execExpectingRow(ctx, r.db, `UPDATE activity SET rating_score = $2, rating_reviews = $3, updated_at = NOW() WHERE id = $1`, id, score, reviews)
}

var _ ports.ActivityRepository = (*ActivityRepository)(nil)
