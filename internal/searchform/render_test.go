package searchform

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

func sampleResultSet() *domain.SearchResultSet {
	car := domain.Car{ID: uuid.New(), Brand: "BMW", Model: "3 Series", City: "San Francisco", Country: "USA", PriceAmount: 89}
	tour := domain.Tour{ID: uuid.New(), Title: "California Sunset Cruise", Location: "Los Angeles, CA", PriceAmount: 89}

	return &domain.SearchResultSet{
		Query: "california",
		Results: map[domain.ContentType][]domain.SearchableItem{
			domain.ContentCars:   {car},
			domain.ContentTours:  {tour},
			domain.ContentHotels: {},
		},
		TotalResults: 2,
		SearchTypes:  []domain.ContentType{domain.ContentCars, domain.ContentTours, domain.ContentHotels},
	}
}

func TestBuildResultsViewOrdersAndDropsEmptyGroups(t *testing.T) {
	view := BuildResultsView(sampleResultSet())

	if len(view.Sections) != 2 {
		t.Fatalf("empty groups must be dropped, got %d sections", len(view.Sections))
	}
	// Catalog order puts tours before cars, regardless of request order.
	if view.Sections[0].Type != domain.ContentTours || view.Sections[1].Type != domain.ContentCars {
		t.Fatalf("unexpected section order: %s, %s", view.Sections[0].Type, view.Sections[1].Type)
	}
	if view.Sections[0].Heading != "Tours" {
		t.Fatalf("unexpected heading: %q", view.Sections[0].Heading)
	}
	if view.Total != 2 || view.IsEmpty() {
		t.Fatalf("unexpected totals: %d", view.Total)
	}
	if view.EmptyMessage() != "" {
		t.Fatalf("non-empty view must have no empty message")
	}
}

func TestBuildResultsViewProjectsVariantFields(t *testing.T) {
	view := BuildResultsView(sampleResultSet())

	carItem := view.Sections[1].Items[0]
	if carItem.Title != "BMW 3 Series" {
		t.Fatalf("car title must join brand and model, got %q", carItem.Title)
	}
	if carItem.Subtitle != "San Francisco, USA" {
		t.Fatalf("unexpected car subtitle: %q", carItem.Subtitle)
	}
	if carItem.Price != "$89 / day" {
		t.Fatalf("unexpected car price: %q", carItem.Price)
	}
}

func TestBuildResultsViewEmptyState(t *testing.T) {
	view := BuildResultsView(&domain.SearchResultSet{
		Query:   "nowhere",
		Results: map[domain.ContentType][]domain.SearchableItem{},
	})

	if !view.IsEmpty() {
		t.Fatalf("expected empty view")
	}
	if view.EmptyMessage() != "No results found. Try different search terms." {
		t.Fatalf("unexpected empty message: %q", view.EmptyMessage())
	}
	if len(view.Sections) != 0 {
		t.Fatalf("expected no sections, got %d", len(view.Sections))
	}
}

func TestResultsViewClickDispatch(t *testing.T) {
	view := BuildResultsView(sampleResultSet())

	var clickedID uuid.UUID
	var clickedType domain.ContentType
	view.Click(0, 0, func(id uuid.UUID, itemType domain.ContentType) {
		clickedID = id
		clickedType = itemType
	})
	if clickedType != domain.ContentTours || clickedID == uuid.Nil {
		t.Fatalf("expected the tour item click, got %s %s", clickedType, clickedID)
	}

	called := false
	view.Click(5, 0, func(uuid.UUID, domain.ContentType) { called = true })
	view.Click(0, 99, func(uuid.UUID, domain.ContentType) { called = true })
	view.Click(-1, -1, func(uuid.UUID, domain.ContentType) { called = true })
	if called {
		t.Fatalf("out-of-range clicks must be ignored")
	}
	view.Click(0, 0, nil)
}

func TestDetailPath(t *testing.T) {
	if got := DetailPath(domain.ContentHotels); got != "/hotels" {
		t.Fatalf("unexpected hotel path: %q", got)
	}
	if got := DetailPath(domain.ContentTickets); got != "#" {
		t.Fatalf("tickets have no detail page, got %q", got)
	}
}

func TestSampleResultsFallback(t *testing.T) {
	view := SampleResults(domain.ContentHotels)
	if len(view.Sections) != 1 || view.Sections[0].Type != domain.ContentHotels {
		t.Fatalf("expected one hotel section")
	}
	if view.Total != 2 {
		t.Fatalf("expected the two canned hotels, got %d", view.Total)
	}

	fallback := SampleResults(domain.ContentTickets)
	if fallback.Sections[0].Type != domain.ContentTours {
		t.Fatalf("types without samples must fall back to tours")
	}
}
