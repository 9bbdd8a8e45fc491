package domain

// SearchQuery is a normalized full-search request: trimmed free text, the
// deduplicated set of requested type tags, and the per-type result cap.
type SearchQuery struct {
	Text  string
	Types []ContentType
	Limit int
}

// SearchResultSet maps each requested type tag to its ranked matches.
// Items keep the order the store returned them in (the per-variant
// relevance proxy). A requested type with no matches is present with an
// empty list; the overall no-results state is TotalResults == 0.
type SearchResultSet struct {
	Query        string                         `json:"query"`
	Results      map[ContentType][]SearchableItem `json:"results"`
	TotalResults int                            `json:"totalResults"`
	SearchTypes  []ContentType                  `json:"searchTypes"`
}

// Suggestion is the lightweight autocomplete projection: singular type
// tag, display text, and a subtitle (location/category join per variant).
type Suggestion struct {
	Type     string `json:"type"`
	Text     string `json:"text"`
	Subtitle string `json:"subtitle"`
}

// SearchFilterCatalog lists the distinct filter values the search UI can
// offer. The static lists are enum domains, not data.
type SearchFilterCatalog struct {
	TourCategories     []string `json:"tourCategories"`
	HotelCities        []string `json:"hotelCities"`
	CarBrands          []string `json:"carBrands"`
	ActivityCategories []string `json:"activityCategories"`
	TicketTypes        []string `json:"ticketTypes"`
	Currencies         []string `json:"currencies"`
	Difficulties       []string `json:"difficulties"`
	Transmissions      []string `json:"transmissions"`
	FuelTypes          []string `json:"fuelTypes"`
}

var (
	Currencies    = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD"}
	Difficulties  = []string{"Easy", "Moderate", "Intermediate", "Hard", "Expert"}
	Transmissions = []string{"Manual", "Automatic", "Semi-Automatic", "CVT"}
	FuelTypes     = []string{"Petrol", "Diesel", "Electric", "Hybrid", "LPG", "CNG"}
)
