package searchform

import (
	"fmt"
	"strings"
	"time"

	"github.com/tripverse/travel-api/internal/domain"
)

// Section identifies the three dropdown panels of the search box. At most
// one is open at a time.
type Section int

const (
	SectionNone Section = iota
	SectionLocation
	SectionDates
	SectionGuests
)

// GuestKind names the three party counters.
type GuestKind string

const (
	GuestAdults   GuestKind = "adults"
	GuestChildren GuestKind = "children"
	GuestInfants  GuestKind = "infants"
)

const searchRequestLimit = 20

// Form holds the full state of the interactive search box: the active
// catalog tab, the typed location, the date-range selection with its
// two-month calendar view, and the guest counters.
type Form struct {
	activeTab domain.ContentType
	location  string
	open      Section

	start     Date
	end       Date
	viewMonth MonthCursor

	guests map[GuestKind]int

	now func() time.Time
}

func NewForm() *Form {
	return newFormAt(time.Now)
}

func newFormAt(now func() time.Time) *Form {
	f := &Form{
		activeTab: domain.ContentTours,
		open:      SectionNone,
		guests: map[GuestKind]int{
			GuestAdults:   2,
			GuestChildren: 0,
			GuestInfants:  0,
		},
		now: now,
	}
	f.viewMonth = CurrentMonth(now())
	return f
}

func (f *Form) ActiveTab() domain.ContentType { return f.activeTab }
func (f *Form) OpenSection() Section          { return f.open }
func (f *Form) Location() string              { return f.location }
func (f *Form) StartDate() (Date, bool)       { return f.start, !f.start.IsZero() }
func (f *Form) EndDate() (Date, bool)         { return f.end, !f.end.IsZero() }

func (f *Form) SwitchTab(tab domain.ContentType) {
	if _, err := domain.ParseContentType(tab.String()); err != nil {
		return
	}
	f.activeTab = tab
}

// NextTab and PrevTab cycle the tab strip with wrap-around, mirroring the
// arrow-key navigation of the original widget.
func (f *Form) NextTab() { f.shiftTab(1) }
func (f *Form) PrevTab() { f.shiftTab(-1) }

func (f *Form) shiftTab(delta int) {
	idx := 0
	for i, t := range domain.AllContentTypes {
		if t == f.activeTab {
			idx = i
			break
		}
	}
	n := len(domain.AllContentTypes)
	f.activeTab = domain.AllContentTypes[((idx+delta)%n+n)%n]
}

// Toggle opens the given section, closing whichever was open; toggling
// the already-open section closes it. Opening the dates panel recenters
// the calendar view on the selection: start date's month first, end
// date's month as fallback, the current month when nothing is picked.
func (f *Form) Toggle(section Section) {
	if f.open == section {
		f.open = SectionNone
		return
	}
	if section == SectionDates {
		switch {
		case !f.start.IsZero():
			f.viewMonth = MonthOf(f.start)
		case !f.end.IsZero():
			f.viewMonth = MonthOf(f.end)
		default:
			f.viewMonth = CurrentMonth(f.now())
		}
	}
	f.open = section
}

// CloseAll collapses every dropdown, as a click outside the box does.
func (f *Form) CloseAll() { f.open = SectionNone }

func (f *Form) SetLocation(value string) {
	f.location = strings.TrimSpace(value)
	f.open = SectionNone
}

// ClickDay applies the range-picking rule: with no start, or with a
// complete range, the click begins a new range; a click before the
// current start swaps it to become the new start with the old start as
// end; anything else completes the range.
func (f *Form) ClickDay(date Date) {
	switch {
	case f.start.IsZero() || (!f.start.IsZero() && !f.end.IsZero()):
		f.start = date
		f.end = Date{}
	case date.Before(f.start):
		f.end = f.start
		f.start = date
	default:
		f.end = date
	}
}

func (f *Form) ClearDates() {
	f.start = Date{}
	f.end = Date{}
}

// ApplyDates commits the selection and closes the panel. A lone start
// date becomes a single-day range.
func (f *Form) ApplyDates() {
	if !f.start.IsZero() && f.end.IsZero() {
		f.end = f.start
	}
	f.open = SectionNone
}

func (f *Form) NextMonth() { f.viewMonth = f.viewMonth.AddMonths(1) }
func (f *Form) PrevMonth() { f.viewMonth = f.viewMonth.AddMonths(-1) }

// VisibleMonths renders the two side-by-side calendar grids for the
// current view position.
func (f *Form) VisibleMonths() [2]MonthGrid {
	return [2]MonthGrid{
		BuildMonthGrid(f.viewMonth, f.start, f.end),
		BuildMonthGrid(f.viewMonth.AddMonths(1), f.start, f.end),
	}
}

// Adjust moves a guest counter by delta, clamped at zero.
func (f *Form) Adjust(kind GuestKind, delta int) {
	if _, ok := f.guests[kind]; !ok {
		return
	}
	next := f.guests[kind] + delta
	if next < 0 {
		next = 0
	}
	f.guests[kind] = next
}

func (f *Form) GuestCount(kind GuestKind) int { return f.guests[kind] }

// ApplyGuests closes the panel; the counters are already live.
func (f *Form) ApplyGuests() { f.open = SectionNone }

// GuestsLabel is the collapsed summary, e.g. "2 adults, 1 children".
func (f *Form) GuestsLabel() string {
	return fmt.Sprintf("%d adults, %d children", f.guests[GuestAdults], f.guests[GuestChildren])
}

const emptyDateLabel = "Add dates"

func (f *Form) CheckInLabel() string {
	if f.start.IsZero() {
		return emptyDateLabel
	}
	return f.start.Format()
}

func (f *Form) CheckOutLabel() string {
	if f.end.IsZero() {
		return emptyDateLabel
	}
	return f.end.Format()
}

// BuildSearchRequest translates the form into a search query: the typed
// location when present, otherwise the active tab name, scoped to the
// active tab only.
func (f *Form) BuildSearchRequest() domain.SearchQuery {
	text := f.location
	if text == "" {
		text = f.activeTab.String()
	}
	return domain.SearchQuery{
		Text:  text,
		Types: []domain.ContentType{f.activeTab},
		Limit: searchRequestLimit,
	}
}
