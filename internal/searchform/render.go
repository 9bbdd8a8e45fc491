package searchform

import (
	"strings"

	"github.com/google/uuid"

	"github.com/tripverse/travel-api/internal/domain"
)

// ResultItem is one rendered search hit. The display fields come from the
// per-variant projection so a car renders "BMW 3 Series" while a hotel
// renders its name, without the renderer knowing either shape.
type ResultItem struct {
	ID       uuid.UUID
	Type     domain.ContentType
	Title    string
	Subtitle string
	Price    string
}

type ResultSection struct {
	Type    domain.ContentType
	Heading string
	Items   []ResultItem
}

// ResultsView is the rendered results modal: non-empty sections in the
// fixed catalog order, or the empty state when nothing matched anywhere.
type ResultsView struct {
	Query    string
	Sections []ResultSection
	Total    int
}

const emptyResultsMessage = "No results found. Try different search terms."

// ItemClickFunc receives the clicked item so the host can navigate to its
// detail page.
type ItemClickFunc func(id uuid.UUID, itemType domain.ContentType)

// BuildResultsView projects a result set into renderable sections. Types
// with no matches are dropped; section order is always the catalog order,
// regardless of the order the search was asked for.
func BuildResultsView(set *domain.SearchResultSet) ResultsView {
	view := ResultsView{Query: set.Query, Total: set.TotalResults}

	for _, t := range domain.AllContentTypes {
		items := set.Results[t]
		if len(items) == 0 {
			continue
		}
		section := ResultSection{
			Type:    t,
			Heading: headingFor(t),
			Items:   make([]ResultItem, 0, len(items)),
		}
		for _, item := range items {
			section.Items = append(section.Items, ResultItem{
				ID:       item.ItemID(),
				Type:     item.ContentKind(),
				Title:    item.DisplayTitle(),
				Subtitle: item.LocationLabel(),
				Price:    item.PriceLabel(),
			})
		}
		view.Sections = append(view.Sections, section)
	}
	return view
}

func (v ResultsView) IsEmpty() bool { return v.Total == 0 }

// EmptyMessage returns the placeholder text, empty when there are results.
func (v ResultsView) EmptyMessage() string {
	if v.IsEmpty() {
		return emptyResultsMessage
	}
	return ""
}

// Click dispatches an item selection to the host callback. Out-of-range
// coordinates are ignored.
func (v ResultsView) Click(section, item int, onClick ItemClickFunc) {
	if onClick == nil || section < 0 || section >= len(v.Sections) {
		return
	}
	items := v.Sections[section].Items
	if item < 0 || item >= len(items) {
		return
	}
	onClick(items[item].ID, items[item].Type)
}

// DetailPath maps a catalog type to its listing page.
func DetailPath(t domain.ContentType) string {
	switch t {
	case domain.ContentTours, domain.ContentHotels, domain.ContentCars:
		return "/" + t.String()
	default:
		return "#"
	}
}

func headingFor(t domain.ContentType) string {
	s := t.String()
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// SampleResults is the canned fallback shown when the search backend is
// unreachable, one section for the active tab.
func SampleResults(tab domain.ContentType) ResultsView {
	items, ok := sampleItems[tab]
	if !ok {
		items = sampleItems[domain.ContentTours]
		tab = domain.ContentTours
	}
	return ResultsView{
		Query: tab.String(),
		Sections: []ResultSection{
			{Type: tab, Heading: headingFor(tab), Items: items},
		},
		Total: len(items),
	}
}

var sampleItems = map[domain.ContentType][]ResultItem{
	domain.ContentTours: {
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Type: domain.ContentTours, Title: "California Sunset Cruise", Subtitle: "Los Angeles, CA", Price: "$89 / person"},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Type: domain.ContentTours, Title: "NYC Food Tour", Subtitle: "New York, NY", Price: "$65 / person"},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000003"), Type: domain.ContentTours, Title: "Grand Canyon Adventure", Subtitle: "Arizona, USA", Price: "$120 / person"},
	},
	domain.ContentHotels: {
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Type: domain.ContentHotels, Title: "Luxury Beach Resort", Subtitle: "Miami, FL", Price: "$250 / night"},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Type: domain.ContentHotels, Title: "Downtown Hotel", Subtitle: "New York, NY", Price: "$180 / night"},
	},
	domain.ContentCars: {
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000001"), Type: domain.ContentCars, Title: "BMW 3 Series", Subtitle: "San Francisco, CA", Price: "$89 / day"},
		{ID: uuid.MustParse("00000000-0000-0000-0000-000000000002"), Type: domain.ContentCars, Title: "Audi A4", Subtitle: "Los Angeles, CA", Price: "$95 / day"},
	},
}
