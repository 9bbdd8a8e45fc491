package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

const categoryColumns = `
	id, name, slug, image_url, description, tour_count, activity_count,
	is_popular, display_order, is_active, created_at, updated_at
`

type CategoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepo(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) ListActive(ctx context.Context) ([]domain.Category, error) {
	const query = `
		SELECT ` + categoryColumns + `
		FROM category
		WHERE is_active = TRUE
		ORDER BY display_order ASC, name ASC
	`
	categories := make([]domain.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) ListPopular(ctx context.Context, limit int) ([]domain.Category, error) {
	const query = `
		SELECT ` + categoryColumns + `
		FROM category
		WHERE is_active = TRUE AND is_popular = TRUE
		ORDER BY display_order ASC, name ASC
		LIMIT $1
	`
	categories := make([]domain.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query, limit); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindBySlug(ctx context.Context, slug string) (*domain.Category, error) {
	const query = `SELECT ` + categoryColumns + ` FROM category WHERE slug = $1 AND is_active = TRUE`

	var category domain.Category
	if err := r.db.GetContext(ctx, &category, query, slug); err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) UpdateCounts(ctx context.Context, id uuid.UUID, tourCount, activityCount int) error {
	const query = `
		UPDATE category
		SET tour_count = $2, activity_count = $3, updated_at = NOW()
		WHERE id = $1
	`
	return execExpectingRow(ctx, r.db, query, id, tourCount, activityCount)
}

var _ ports.CategoryRepository = (*CategoryRepository)(nil)
