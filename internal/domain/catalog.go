package domain

// Per-variant catalog list filters. Nil fields mean "any". Every filter
// implies availability unless IncludeUnavailable is set.

type TourListFilter struct {
	Category           *string
	Location           *string
	MinPrice           *float64
	MaxPrice           *float64
	FeaturedOnly       bool
	TopRatedOnly       bool
	IncludeUnavailable bool
}

type HotelListFilter struct {
	City               *string
	Country            *string
	Stars              *int
	MaxPricePerNight   *float64
	TopRatedOnly       bool
	IncludeUnavailable bool
}

type CarListFilter struct {
	Brand              *string
	City               *string
	Transmission       *string
	FuelType           *string
	MinSeats           *int
	RecentOnly         bool
	IncludeUnavailable bool
}

type ActivityListFilter struct {
	Category           *string
	City               *string
	Difficulty         *string
	IncludeUnavailable bool
}

type TicketListFilter struct {
	Type               *string
	DepartureCode      *string
	ArrivalCode        *string
	Class              *string
	IncludeUnavailable bool
}
