package postgres

import (
	"strings"
	"testing"
)

// The per-variant search predicates must cover every text field the
// universal search promises to match. A column silently dropped from one
// of these clauses would not fail any query, it would just stop matching.
func TestSearchClausesCoverVariantFields(t *testing.T) {
	cases := []struct {
		name    string
		clause  string
		columns []string
	}{
		{"tour", tourSearchClause, []string{"title", "location", "category", "description"}},
		{"hotel", hotelSearchClause, []string{"name", "location_city", "location_country", "amenities"}},
		{"car", carSearchClause, []string{"brand", "model", "location_city", "features"}},
		{"activity", activitySearchClause, []string{"title", "category", "location_city", "location_country", "description"}},
		{"ticket", ticketSearchClause, []string{"departure_location", "arrival_location", "provider_name", "type"}},
	}

	for _, tc := range cases {
		for _, column := range tc.columns {
			if !strings.Contains(tc.clause, column) {
				t.Errorf("%s search clause does not match %s", tc.name, column)
			}
		}
	}
}
