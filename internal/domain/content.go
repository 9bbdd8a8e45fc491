package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ContentType tags the five catalog variants. The plural form is the wire
// tag used in search requests and result groupings; the singular form is
// used for suggestion entries.
type ContentType string

const (
	ContentTours      ContentType = "tours"
	ContentHotels     ContentType = "hotels"
	ContentCars       ContentType = "cars"
	ContentActivities ContentType = "activities"
	ContentTickets    ContentType = "tickets"
)

// AllContentTypes is the fixed rendering order for full-search results.
var AllContentTypes = []ContentType{ContentTours, ContentHotels, ContentCars, ContentActivities, ContentTickets}

// SuggestionTypes is the fixed order for suggestion projection. Activities
// and tickets are deliberately excluded from suggestions.
var SuggestionTypes = []ContentType{ContentTours, ContentHotels, ContentCars}

func ParseContentType(raw string) (ContentType, error) {
	switch ContentType(strings.ToLower(strings.TrimSpace(raw))) {
	case ContentTours:
		return ContentTours, nil
	case ContentHotels:
		return ContentHotels, nil
	case ContentCars:
		return ContentCars, nil
	case ContentActivities:
		return ContentActivities, nil
	case ContentTickets:
		return ContentTickets, nil
	default:
		return "", fmt.Errorf("unknown content type %q", raw)
	}
}

func (t ContentType) String() string {
	return string(t)
}

// Singular returns the suggestion tag for the type ("tours" -> "tour").
func (t ContentType) Singular() string {
	return strings.TrimSuffix(string(t), "s")
}

// SearchableItem is the uniform projection every catalog variant exposes
// for search results and suggestions. Field names differ per variant
// (title vs name vs brand+model, flat vs structured location, amount vs
// perNight), so rendering goes through these methods instead of guessing
// at fields.
type SearchableItem interface {
	ItemID() uuid.UUID
	ContentKind() ContentType
	DisplayTitle() string
	LocationLabel() string
	PriceLabel() string
}

func joinLocation(city, country string) string {
	city = strings.TrimSpace(city)
	country = strings.TrimSpace(country)
	switch {
	case city == "":
		return country
	case country == "":
		return city
	default:
		return city + ", " + country
	}
}
