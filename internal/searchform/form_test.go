package searchform

import (
	"testing"
	"time"

	"github.com/tripverse/travel-api/internal/domain"
)

func testForm() *Form {
	now := time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)
	return newFormAt(func() time.Time { return now })
}

func TestFormDefaults(t *testing.T) {
	f := testForm()

	if f.ActiveTab() != domain.ContentTours {
		t.Fatalf("expected tours as the default tab, got %s", f.ActiveTab())
	}
	if f.OpenSection() != SectionNone {
		t.Fatalf("expected all panels closed")
	}
	if f.GuestCount(GuestAdults) != 2 || f.GuestCount(GuestChildren) != 0 || f.GuestCount(GuestInfants) != 0 {
		t.Fatalf("unexpected default guests: %d/%d/%d", f.GuestCount(GuestAdults), f.GuestCount(GuestChildren), f.GuestCount(GuestInfants))
	}
	if f.CheckInLabel() != "Add dates" || f.CheckOutLabel() != "Add dates" {
		t.Fatalf("expected placeholder date labels")
	}
}

func TestFormTabSwitching(t *testing.T) {
	f := testForm()

	f.SwitchTab(domain.ContentCars)
	if f.ActiveTab() != domain.ContentCars {
		t.Fatalf("expected cars tab, got %s", f.ActiveTab())
	}
	f.SwitchTab(domain.ContentType("spaceships"))
	if f.ActiveTab() != domain.ContentCars {
		t.Fatalf("unknown tab must be ignored, got %s", f.ActiveTab())
	}

	f.SwitchTab(domain.ContentTickets)
	f.NextTab()
	if f.ActiveTab() != domain.ContentTours {
		t.Fatalf("expected wrap-around to tours, got %s", f.ActiveTab())
	}
	f.PrevTab()
	if f.ActiveTab() != domain.ContentTickets {
		t.Fatalf("expected wrap-around back to tickets, got %s", f.ActiveTab())
	}
}

func TestFormToggleIsExclusive(t *testing.T) {
	f := testForm()

	f.Toggle(SectionLocation)
	if f.OpenSection() != SectionLocation {
		t.Fatalf("expected location panel open")
	}
	f.Toggle(SectionGuests)
	if f.OpenSection() != SectionGuests {
		t.Fatalf("opening guests must close location")
	}
	f.Toggle(SectionGuests)
	if f.OpenSection() != SectionNone {
		t.Fatalf("toggling the open panel must close it")
	}
	f.Toggle(SectionDates)
	f.CloseAll()
	if f.OpenSection() != SectionNone {
		t.Fatalf("CloseAll must collapse everything")
	}
}

func TestFormDatesPanelRecenters(t *testing.T) {
	f := testForm()

	f.Toggle(SectionDates)
	if f.viewMonth != (MonthCursor{Year: 2026, Month: time.March}) {
		t.Fatalf("expected view on the current month, got %+v", f.viewMonth)
	}
	f.Toggle(SectionDates)

	f.ClickDay(NewDate(2026, time.July, 4))
	f.NextMonth()
	f.NextMonth()
	f.Toggle(SectionDates)
	if f.viewMonth != (MonthCursor{Year: 2026, Month: time.July}) {
		t.Fatalf("expected view recentered on the start month, got %+v", f.viewMonth)
	}
}

func TestFormClickDayRangeRule(t *testing.T) {
	f := testForm()
	d10 := NewDate(2026, time.June, 10)
	d13 := NewDate(2026, time.June, 13)
	d7 := NewDate(2026, time.June, 7)

	f.ClickDay(d10)
	start, ok := f.StartDate()
	if !ok || !start.Equal(d10) {
		t.Fatalf("first click must set the start")
	}
	if _, ok := f.EndDate(); ok {
		t.Fatalf("first click must leave the end unset")
	}

	f.ClickDay(d13)
	end, ok := f.EndDate()
	if !ok || !end.Equal(d13) {
		t.Fatalf("later click must complete the range")
	}

	// Complete range: the next click restarts.
	f.ClickDay(d7)
	start, _ = f.StartDate()
	if !start.Equal(d7) {
		t.Fatalf("click on a complete range must start over, got %+v", start)
	}
	if _, ok := f.EndDate(); ok {
		t.Fatalf("restart must clear the end")
	}
}

func TestFormClickDayBeforeStartSwaps(t *testing.T) {
	f := testForm()
	d10 := NewDate(2026, time.June, 10)
	d7 := NewDate(2026, time.June, 7)

	f.ClickDay(d10)
	f.ClickDay(d7)

	start, _ := f.StartDate()
	end, _ := f.EndDate()
	if !start.Equal(d7) || !end.Equal(d10) {
		t.Fatalf("expected swap to 7..10, got %+v..%+v", start, end)
	}
}

func TestFormApplyDatesSingleDay(t *testing.T) {
	f := testForm()
	d10 := NewDate(2026, time.June, 10)

	f.Toggle(SectionDates)
	f.ClickDay(d10)
	f.ApplyDates()

	start, _ := f.StartDate()
	end, ok := f.EndDate()
	if !ok || !start.Equal(d10) || !end.Equal(d10) {
		t.Fatalf("a lone start must become a single-day range")
	}
	if f.OpenSection() != SectionNone {
		t.Fatalf("apply must close the panel")
	}

	f.ClearDates()
	if _, ok := f.StartDate(); ok {
		t.Fatalf("ClearDates must reset the selection")
	}
}

func TestFormVisibleMonthsAreAdjacent(t *testing.T) {
	f := testForm()

	months := f.VisibleMonths()
	if months[0].Month != (MonthCursor{Year: 2026, Month: time.March}) {
		t.Fatalf("unexpected first month: %+v", months[0].Month)
	}
	if months[1].Month != (MonthCursor{Year: 2026, Month: time.April}) {
		t.Fatalf("unexpected second month: %+v", months[1].Month)
	}

	f.PrevMonth()
	months = f.VisibleMonths()
	if months[0].Month != (MonthCursor{Year: 2026, Month: time.February}) {
		t.Fatalf("expected view moved back a month, got %+v", months[0].Month)
	}
}

func TestFormGuestCountersClamp(t *testing.T) {
	f := testForm()

	f.Adjust(GuestChildren, 2)
	if f.GuestCount(GuestChildren) != 2 {
		t.Fatalf("expected 2 children, got %d", f.GuestCount(GuestChildren))
	}
	f.Adjust(GuestChildren, -5)
	if f.GuestCount(GuestChildren) != 0 {
		t.Fatalf("counter must clamp at zero, got %d", f.GuestCount(GuestChildren))
	}
	f.Adjust(GuestAdults, -10)
	if f.GuestCount(GuestAdults) != 0 {
		t.Fatalf("adults must clamp at zero, got %d", f.GuestCount(GuestAdults))
	}
	f.Adjust(GuestKind("pets"), 3)
	if f.GuestsLabel() != "0 adults, 0 children" {
		t.Fatalf("unexpected label: %q", f.GuestsLabel())
	}
}

func TestFormBuildSearchRequest(t *testing.T) {
	f := testForm()
	f.SwitchTab(domain.ContentHotels)

	req := f.BuildSearchRequest()
	if req.Text != "hotels" {
		t.Fatalf("empty location must fall back to the tab name, got %q", req.Text)
	}
	if len(req.Types) != 1 || req.Types[0] != domain.ContentHotels {
		t.Fatalf("request must scope to the active tab, got %v", req.Types)
	}
	if req.Limit != 20 {
		t.Fatalf("expected limit 20, got %d", req.Limit)
	}

	f.SetLocation("  Bali  ")
	req = f.BuildSearchRequest()
	if req.Text != "Bali" {
		t.Fatalf("expected trimmed location, got %q", req.Text)
	}
	if f.OpenSection() != SectionNone {
		t.Fatalf("setting the location must close the panel")
	}
}
