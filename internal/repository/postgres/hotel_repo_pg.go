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

const hotelColumns = `
	id, name, location_city, location_country, location_address,
	rating_score, rating_reviews, stars, price_per_night, price_currency,
	main_image_url, gallery, amenities, check_in, check_out,
	is_top_rated, availability, created_at, updated_at
`

type HotelRepository struct {
	db *sqlx.DB
}

func NewHotelRepo(db *sqlx.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// Search matches name, city, country, description-free fields and amenity
// entries. Amenity membership uses unnest so a partial term still matches
// a single amenity string.
const hotelSearchClause = `name ILIKE $1 OR location_city ILIKE $1 OR location_country ILIKE $1
			OR EXISTS (SELECT 1 FROM unnest(amenities) a WHERE a ILIKE $1)`

func (r *HotelRepository) Search(ctx context.Context, term string, limit int) ([]domain.Hotel, error) {
	const query = `
		SELECT ` + hotelColumns + `
		FROM hotel
		WHERE availability = TRUE
		  AND (` + hotelSearchClause + `)
		ORDER BY rating_score DESC
		LIMIT $2
	`
	hotels := make([]domain.Hotel, 0)
	if err := r.db.SelectContext(ctx, &hotels, query, likePattern(term), limit); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) List(ctx context.Context, filter domain.HotelListFilter, limit, offset int) ([]domain.Hotel, error) {
	where, params := hotelPredicates(filter)

	var builder strings.Builder
	builder.WriteString(`SELECT ` + hotelColumns + ` FROM hotel WHERE ` + where)
	builder.WriteString("\nORDER BY rating_score DESC, name ASC")
	builder.WriteString(fmt.Sprintf("\nLIMIT $%d OFFSET $%d", len(params)+1, len(params)+2))
	params = append(params, limit, offset)

	hotels := make([]domain.Hotel, 0)
	if err := r.db.SelectContext(ctx, &hotels, builder.String(), params...); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) Count(ctx context.Context, filter domain.HotelListFilter) (int, error) {
	where, params := hotelPredicates(filter)

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM hotel WHERE `+where, params...); err != nil {
		return 0, err
	}
	return count, nil
}

func hotelPredicates(filter domain.HotelListFilter) (string, []any) {
	parts := []string{"TRUE"}
	params := make([]any, 0, 5)

	if !filter.IncludeUnavailable {
		parts = append(parts, "availability = TRUE")
	}
	if filter.City != nil {
		params = append(params, likePattern(*filter.City))
		parts = append(parts, fmt.Sprintf("location_city ILIKE $%d", len(params)))
	}
	if filter.Country != nil {
		params = append(params, likePattern(*filter.Country))
		parts = append(parts, fmt.Sprintf("location_country ILIKE $%d", len(params)))
	}
	if filter.Stars != nil {
		params = append(params, *filter.Stars)
		parts = append(parts, fmt.Sprintf("stars >= $%d", len(params)))
	}
	if filter.MaxPricePerNight != nil {
		params = append(params, *filter.MaxPricePerNight)
		parts = append(parts, fmt.Sprintf("price_per_night <= $%d", len(params)))
	}
	if filter.TopRatedOnly {
		parts = append(parts, "is_top_rated = TRUE")
	}

	return strings.Join(parts, " AND "), params
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	const query = `SELECT ` + hotelColumns + ` FROM hotel WHERE id = $1`

	var hotel domain.Hotel
	if err := r.db.GetContext(ctx, &hotel, query, id); err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) ListTopRated(ctx context.Context, limit int) ([]domain.Hotel, error) {
	const query = `
		SELECT ` + hotelColumns + `
		FROM hotel
		WHERE availability = TRUE AND is_top_rated = TRUE
		ORDER BY rating_score DESC
		LIMIT $1
	`
	hotels := make([]domain.Hotel, 0)
	if err := r.db.SelectContext(ctx, &hotels, query, limit); err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *HotelRepository) DistinctCities(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT location_city
		FROM hotel
		WHERE location_city <> ''
		ORDER BY location_city ASC
	`
	cities := make([]string, 0)
	if err := r.db.SelectContext(ctx, &cities, query); err != nil {
		return nil, err
	}
	return cities, nil
}

func (r *HotelRepository) UpdateImage(ctx context.Context, id uuid.UUID, imageURL string) error {
	return execExpectingRow(ctx, r.db, `UPDATE hotel SET main_image_url = $2, updated_at = NOW() WHERE id = $1`, id, imageURL)
}

func (r *HotelRepository) UpdateRating(ctx context.Context, id uuid.UUID, score float64, reviews int) error {
	return execExpectingRow(ctx, r.db, `UPDATE hotel SET rating_score = $2, rating_reviews = $3, updated_at = NOW() WHERE id = $1`, id, score, reviews)
}

var _ ports.HotelRepository = (*HotelRepository)(nil)
