package searchform

import (
	"testing"
	"time"
)

func TestDateOrdering(t *testing.T) {
	a := NewDate(2026, time.March, 14)
	b := NewDate(2026, time.March, 20)
	c := NewDate(2026, time.April, 1)

	if !a.Before(b) || !b.Before(c) {
		t.Fatalf("expected %v < %v < %v", a, b, c)
	}
	if b.Before(a) || a.After(b) {
		t.Fatalf("ordering is not antisymmetric")
	}
	if !a.Equal(NewDate(2026, time.March, 14)) {
		t.Fatalf("expected value equality")
	}
	if a.IsZero() {
		t.Fatalf("a real date must not be zero")
	}
	if !(Date{}).IsZero() {
		t.Fatalf("the zero date must report IsZero")
	}
}

func TestDateFormat(t *testing.T) {
	d := NewDate(2026, time.January, 2)
	if got := d.Format(); got != "02 January 2026" {
		t.Fatalf("unexpected format: %q", got)
	}
}

func TestMonthCursorAddMonthsWraps(t *testing.T) {
	dec := MonthCursor{Year: 2026, Month: time.December}
	jan := dec.AddMonths(1)
	if jan.Year != 2027 || jan.Month != time.January {
		t.Fatalf("expected January 2027, got %v %v", jan.Month, jan.Year)
	}
	back := jan.AddMonths(-1)
	if back != dec {
		t.Fatalf("expected round trip to December 2026, got %+v", back)
	}
	if got := dec.AddMonths(13); got.Year != 2028 || got.Month != time.January {
		t.Fatalf("expected January 2028, got %v %v", got.Month, got.Year)
	}
}

func TestMonthCursorDaysIn(t *testing.T) {
	cases := []struct {
		year  int
		month time.Month
		days  int
	}{
		{2026, time.January, 31},
		{2026, time.February, 28},
		{2028, time.February, 29},
		{2026, time.April, 30},
	}
	for _, tc := range cases {
		m := MonthCursor{Year: tc.year, Month: tc.month}
		if got := m.DaysIn(); got != tc.days {
			t.Fatalf("%v %d: expected %d days, got %d", tc.month, tc.year, tc.days, got)
		}
	}
}

func TestMonthCursorFirstWeekday(t *testing.T) {
	// 1 March 2026 is a Sunday, 1 June 2026 is a Monday.
	if got := (MonthCursor{Year: 2026, Month: time.March}).FirstWeekday(); got != 0 {
		t.Fatalf("expected Sunday (0) for March 2026, got %d", got)
	}
	if got := (MonthCursor{Year: 2026, Month: time.June}).FirstWeekday(); got != 1 {
		t.Fatalf("expected Monday (1) for June 2026, got %d", got)
	}
}

func TestMonthCursorLabel(t *testing.T) {
	m := MonthCursor{Year: 2026, Month: time.August}
	if got := m.Label(); got != "August 2026" {
		t.Fatalf("unexpected label: %q", got)
	}
}
