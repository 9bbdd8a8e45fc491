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

const carColumns = `
	id, brand, model, year, location_city, location_country, mileage,
	transmission, fuel_type, seats, price_amount, price_currency, price_per,
	rating_score, rating_reviews, image_url, features, is_recent_launch,
	availability, created_at, updated_at
`

type CarRepository struct {
	db *sqlx.DB
}

func NewCarRepo(db *sqlx.DB) *CarRepository {
	return &CarRepository{db: db}
}

// Search matches brand, model, pickup city and feature entries. Cars
// tie-break the rating order with newest model year first.
const carSearchClause = `brand ILIKE $1 OR model ILIKE $1 OR location_city ILIKE $1
			OR EXISTS (SELECT 1 FROM unnest(features) f WHERE f ILIKE $1)`

func (r *CarRepository) Search(ctx context.Context, term string, limit int) ([]domain.Car, error) {
	const query = `
		SELECT ` + carColumns + `
		FROM car
		WHERE availability = TRUE
		  AND (` + carSearchClause + `)
		ORDER BY rating_score DESC, year DESC
		LIMIT $2
	`
	cars := make([]domain.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, query, likePattern(term), limit); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) List(ctx context.Context, filter domain.CarListFilter, limit, offset int) ([]domain.Car, error) {
	where, params := carPredicates(filter)

	var builder strings.Builder
	builder.WriteString(`SELECT ` + carColumns + ` FROM car WHERE ` + where)
	builder.WriteString("\nORDER BY rating_score DESC, year DESC")
	builder.WriteString(fmt.Sprintf("\nLIMIT $%d OFFSET $%d", len(params)+1, len(params)+2))
	params = append(params, limit, offset)

	cars := make([]domain.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, builder.String(), params...); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) Count(ctx context.Context, filter domain.CarListFilter) (int, error) {
	where, params := carPredicates(filter)

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM car WHERE `+where, params...); err != nil {
		return 0, err
	}
	return count, nil
}

func carPredicates(filter domain.CarListFilter) (string, []any) {
	parts := []string{"TRUE"}
	params := make([]any, 0, 5)

	if !filter.IncludeUnavailable {
		parts = append(parts, "availability = TRUE")
	}
	if filter.Brand != nil {
		params = append(params, strings.TrimSpace(*filter.Brand))
		parts = append(parts, fmt.Sprintf("brand = $%d", len(params)))
	}
	if filter.City != nil {
		params = append(params, likePattern(*filter.City))
		parts = append(parts, fmt.Sprintf("location_city ILIKE $%d", len(params)))
	}
	if filter.Transmission != nil {
		params = append(params, strings.TrimSpace(*filter.Transmission))
		parts = append(parts, fmt.Sprintf("transmission = $%d", len(params)))
	}
	if filter.FuelType != nil {
		params = append(params, strings.TrimSpace(*filter.FuelType))
		parts = append(parts, fmt.Sprintf("fuel_type = $%d", len(params)))
	}
	if filter.MinSeats != nil {
		params = append(params, *filter.MinSeats)
		parts = append(parts, fmt.Sprintf("seats >= $%d", len(params)))
	}
	if filter.RecentOnly {
		parts = append(parts, "is_recent_launch = TRUE")
	}

	return strings.Join(parts, " AND "), params
}

func (r *CarRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Car, error) {
	const query = `SELECT ` + carColumns + ` FROM car WHERE id = $1`

	var car domain.Car
	if err := r.db.GetContext(ctx, &car, query, id); err != nil {
		return nil, err
	}
	return &car, nil
}

func (r *CarRepository) ListRecent(ctx context.Context, limit int) ([]domain.Car, error) {
	const query = `
		SELECT ` + carColumns + `
		FROM car
		WHERE availability = TRUE AND is_recent_launch = TRUE
		ORDER BY year DESC, rating_score DESC
		LIMIT $1
	`
	cars := make([]domain.Car, 0)
	if err := r.db.SelectContext(ctx, &cars, query, limit); err != nil {
		return nil, err
	}
	return cars, nil
}

func (r *CarRepository) DistinctBrands(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT brand
		FROM car
		WHERE brand <> ''
		ORDER BY brand ASC
	`
	brands := make([]string, 0)
	if err := r.db.SelectContext(ctx, &brands, query); err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *CarRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return execExpectingRow(ctx, r.db, `UPDATE car SET image_url = $2, updated_at = NOW() WHERE id = $1`, id, imageURL)
}

func (r *CarRepository) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	return execExpectingRow(ctx, r.db, `UPDATE car SET rating_score = $2, rating_reviews = $3, updated_at = NOW() WHERE id = $1`, id, score, reviews)
}

var _ ports.CarRepository = (*CarRepository)(nil)
