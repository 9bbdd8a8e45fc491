package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/tripverse/travel-api/internal/domain"
	"github.com/tripverse/travel-api/internal/repository/ports"
)

var (
	ErrSearchQueryTooShort = errors.New("search query must be at least 2 characters long")
	ErrSearchFailed        = errors.New("search failed")
)

const (
	defaultSearchLimit     = 10
	maxSearchLimit         = 50
	defaultSuggestionLimit = 5
	minQueryLength         = 2
)

type SearchService struct {
	tours      ports.TourRepository
	hotels     ports.HotelRepository
	cars       ports.CarRepository
	activities ports.ActivityRepository
	tickets    ports.TicketRepository

	logf func(format string, args ...any)
}

func NewSearchService(
	tours ports.TourRepository,
	hotels ports.HotelRepository,
	cars ports.CarRepository,
	activities ports.ActivityRepository,
	tickets ports.TicketRepository,
) *SearchService {
	return &SearchService{
		tours:      tours,
		hotels:     hotels,
		cars:       cars,
		activities: activities,
		tickets:    tickets,
		logf:       log.Printf,
	}
}

// Search runs the query against every requested catalog type and groups the
// matches per type. The query must survive trimming with at least two
// characters; shorter input fails before any store is touched. Unknown type
// tags are dropped silently. A nil type list means the caller omitted the
// field and gets every catalog; an explicit empty or all-unknown list
// searches nothing and returns an empty result set. A single failing
// catalog degrades to an empty group so the rest of the results still come
// back; the request only fails when every requested catalog errors.
func (s *SearchService) Search(ctx context.Context, rawQuery string, rawTypes []string, limit int) (*domain.SearchResultSet, error) {
	query := strings.TrimSpace(rawQuery)
	if len(query) < minQueryLength {
		return nil, ErrSearchQueryTooShort
	}

	types := normalizeTypes(rawTypes)
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	if limit > maxSearchLimit {
		limit = maxSearchLimit
	}

	result := &domain.SearchResultSet{
		Query:       rawQuery,
		Results:     make(map[domain.ContentType][]domain.SearchableItem, len(types)),
		SearchTypes: types,
	}

	var failures []error
	for _, t := range types {
		items, err := s.searchOne(ctx, t, query, limit)
		if err != nil {
			s.logf("search: %s catalog failed for %q: %v", t, query, err)
			failures = append(failures, fmt.Errorf("%s: %w", t, err))
			items = []domain.SearchableItem{}
		}
		result.Results[t] = items
		result.TotalResults += len(items)
	}

	if len(types) > 0 && len(failures) == len(types) {
		return nil, fmt.Errorf("%w: %w", ErrSearchFailed, errors.Join(failures...))
	}
	return result, nil
}

func (s *SearchService) searchOne(ctx context.Context, t domain.ContentType, query string, limit int) ([]domain.SearchableItem, error) {
	switch t {
	case domain.ContentTours:
		tours, err := s.tours.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		return asSearchable(tours), nil
	case domain.ContentHotels:
		hotels, err := s.hotels.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		return asSearchable(hotels), nil
	case domain.ContentCars:
		cars, err := s.cars.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		return asSearchable(cars), nil
	case domain.ContentActivities:
		activities, err := s.activities.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		return asSearchable(activities), nil
	case domain.ContentTickets:
		tickets, err := s.tickets.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		return asSearchable(tickets), nil
	default:
		return []domain.SearchableItem{}, nil
	}
}

// Suggest returns lightweight autocomplete entries from the tour, hotel and
// car catalogs, in that order, truncated to the overall limit. A query that
// is still too short after trimming yields an empty list, not an error, so
// the dropdown can simply close while the user types.
func (s *SearchService) Suggest(ctx context.Context, rawQuery string, limit int) ([]domain.Suggestion, error) {
	query := strings.TrimSpace(rawQuery)
	if len(query) < minQueryLength {
		return []domain.Suggestion{}, nil
	}
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	suggestions := make([]domain.Suggestion, 0, limit)
	for _, t := range domain.SuggestionTypes {
		items, err := s.searchOne(ctx, t, query, limit)
		if err != nil {
			s.logf("search: suggestions from %s failed for %q: %v", t, query, err)
			continue
		}
		for _, item := range items {
			suggestions = append(suggestions, domain.Suggestion{
				Type:     item.ContentKind().Singular(),
				Text:     item.DisplayTitle(),
				Subtitle: suggestionSubtitle(item),
			})
		}
	}

	if len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// Filters assembles the filter catalog for the search UI: distinct values
// pulled from the live catalogs plus the fixed enum domains.
func (s *SearchService) Filters(ctx context.Context) (*domain.SearchFilterCatalog, error) {
	tourCategories, err := s.tours.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	hotelCities, err := s.hotels.DistinctCities(ctx)
	if err != nil {
		return nil, err
	}
	carBrands, err := s.cars.DistinctBrands(ctx)
	if err != nil {
		return nil, err
	}
	activityCategories, err := s.activities.DistinctCategories(ctx)
	if err != nil {
		return nil, err
	}
	ticketTypes, err := s.tickets.DistinctTypes(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.SearchFilterCatalog{
		TourCategories:     tourCategories,
		HotelCities:        hotelCities,
		CarBrands:          carBrands,
		ActivityCategories: activityCategories,
		TicketTypes:        ticketTypes,
		Currencies:         domain.Currencies,
		Difficulties:       domain.Difficulties,
		Transmissions:      domain.Transmissions,
		FuelTypes:          domain.FuelTypes,
	}, nil
}

// normalizeTypes drops unknown tags and duplicates while keeping the
// caller's order. Only an absent (nil) list means "search everything"; an
// explicit empty or all-unknown list stays empty.
func normalizeTypes(raw []string) []domain.ContentType {
	if raw == nil {
		return append([]domain.ContentType(nil), domain.AllContentTypes...)
	}
	seen := make(map[domain.ContentType]struct{}, len(raw))
	types := make([]domain.ContentType, 0, len(raw))
	for _, r := range raw {
		t, err := domain.ParseContentType(r)
		if err != nil {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		types = append(types, t)
	}
	return types
}

func asSearchable[T domain.SearchableItem](items []T) []domain.SearchableItem {
	out := make([]domain.SearchableItem, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func suggestionSubtitle(item domain.SearchableItem) string {
	if sub, ok := item.(interface{ SuggestionSubtitle() string }); ok {
		return sub.SuggestionSubtitle()
	}
	return item.LocationLabel()
}
