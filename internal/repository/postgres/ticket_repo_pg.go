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

const ticketColumns = `
	id, type, departure_location, departure_code, departure_time,
	arrival_location, arrival_code, arrival_time, provider_name, provider_code,
	class, price_amount, price_currency, seats_available, is_available,
	created_at, updated_at
`

type TicketRepository struct {
	db *sqlx.DB
}

func NewTicketRepo(db *sqlx.DB) *TicketRepository {
	return &TicketRepository{db: db}
}

// Search matches endpoints, provider and mode. Tickets order by soonest
// departure rather than rating.
const ticketSearchClause = `departure_location ILIKE $1 OR arrival_location ILIKE $1
			OR provider_name ILIKE $1 OR type ILIKE $1`

func (r *TicketRepository) Search(ctx context.Context, term string, limit int) ([]domain.Ticket, error) {
	const query = `
		SELECT ` + ticketColumns + `
		FROM ticket
		WHERE is_available = TRUE
		  AND (` + ticketSearchClause + `)
		ORDER BY departure_time ASC
		LIMIT $2
	`
	tickets := make([]domain.Ticket, 0)
	if err := r.db.SelectContext(ctx, &tickets, query, likePattern(term), limit); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) List(ctx context.Context, filter domain.TicketListFilter, limit, offset int) ([]domain.Ticket, error) {
	where, params := ticketPredicates(filter)

	var builder strings.Builder
	builder.WriteString(`SELECT ` + ticketColumns + ` FROM ticket WHERE ` + where)
	builder.WriteString("\nORDER BY departure_time ASC")
	builder.WriteString(fmt.Sprintf("\nLIMIT $%d OFFSET $%d", len(params)+1, len(params)+2))
	params = append(params, limit, offset)

	tickets := make([]domain.Ticket, 0)
	if err := r.db.SelectContext(ctx, &tickets, builder.String(), params...); err != nil {
		return nil, err
	}
	return tickets, nil
}

func (r *TicketRepository) Count(ctx context.Context, filter domain.TicketListFilter) (int, error) {
	where, params := ticketPredicates(filter)

	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM ticket WHERE `+where, params...); err != nil {
		return 0, err
	}
	return count, nil
}

func ticketPredicates(filter domain.TicketListFilter) (string, []any) {
	parts := []string{"TRUE"}
	params := make([]any, 0, 4)

	if !filter.IncludeUnavailable {
		parts = append(parts, "is_available = TRUE")
	}
	if filter.Type != nil {
		params = append(params, strings.TrimSpace(*filter.Type))
		parts = append(parts, fmt.Sprintf("type = $%d", len(params)))
	}
	if filter.DepartureCode != nil {
		params = append(params, strings.ToUpper(strings.TrimSpace(*filter.DepartureCode)))
		parts = append(parts, fmt.Sprintf("departure_code = $%d", len(params)))
	}
	if filter.ArrivalCode != nil {
		params = append(params, strings.ToUpper(strings.TrimSpace(*filter.ArrivalCode)))
		parts = append(parts, fmt.Sprintf("arrival_code = $%d", len(params)))
	}
	if filter.Class != nil {
		params = append(params, strings.TrimSpace(*filter.Class))
		parts = append(parts, fmt.Sprintf("class = $%d", len(params)))
	}

	return strings.Join(parts, " AND "), params
}

func (r *TicketRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error) {
	const query = `SELECT ` + ticketColumns + ` FROM ticket WHERE id = $1`

	var ticket domain.Ticket
	if err := r.db.GetContext(ctx, &ticket, query, id); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *TicketRepository) DistinctTypes(ctx context.Context) ([]string, error) {
	const query = `
		SELECT DISTINCT type
		FROM ticket
		WHERE type <> ''
		ORDER BY type ASC
	`
	types := make([]string, 0)
	if err := r.db.SelectContext(ctx, &types, query); err != nil {
		return nil, err
	}
	return types, nil
}

// ReserveSeats decrements the seat counter and flips availability off when
// the last seat goes. The guard keeps the counter from going negative
// under concurrent bookings.
func (r *TicketRepository) ReserveSeats(ctx context.Context, id uuid.UUID, seats int) error {
	const query = `
		UPDATE ticket
		SET seats_available = seats_available - $2,
		    is_available = (seats_available - $2) > 0,
		    updated_at = NOW()
		WHERE id = $1 AND seats_available >= $2
	`
	return execExpectingRow(ctx, r.db, query, id, seats)
}

var _ ports.TicketRepository = (*TicketRepository)(nil)
