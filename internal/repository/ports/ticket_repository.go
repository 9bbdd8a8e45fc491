package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

type TicketRepository interface {
	Search(ctx context.Context, term string, limit int) ([]domain.Ticket, error)
	List(ctx context.Context, filter domain.TicketListFilter, limit, offset int) ([]domain.Ticket, error)
	Count(ctx context.Context, filter domain.TicketListFilter) (int, error)
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Ticket, error)
	DistinctTypes(ctx context.Context) ([]string, error)
	ReserveSeats(ctx context.Context, id uuid.UUID, seats int) error
}
