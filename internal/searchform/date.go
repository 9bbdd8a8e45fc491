package searchform

import "time"

// Date is a calendar day without a time zone. It is a value type: every
// operation returns a new Date, so two handles can never mutate the same
// underlying day.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Format renders the label shown in the check-in/check-out fields,
// e.g. "02 January 2026".
func (d Date) Format() string {
	return d.Time().Format("02 January 2006")
}

// Month identifies a calendar month, the cursor the two-month calendar
// view moves over.
type MonthCursor struct {
	Year  int
	Month time.Month
}

func MonthOf(d Date) MonthCursor {
	return MonthCursor{Year: d.Year, Month: d.Month}
}

func CurrentMonth(now time.Time) MonthCursor {
	return MonthCursor{Year: now.Year(), Month: now.Month()}
}

// AddMonths moves the cursor by delta months, negative values included.
// time.Date normalizes overflow, so December+1 lands on January of the
// next year.
func (m MonthCursor) AddMonths(delta int) MonthCursor {
	t := time.Date(m.Year, m.Month+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	return MonthCursor{Year: t.Year(), Month: t.Month()}
}

// DaysIn returns the number of days in the month; day zero of the next
// month is the last day of this one.
func (m MonthCursor) DaysIn() int {
	return time.Date(m.Year, m.Month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday is the weekday of day 1, Sunday = 0, which sets how many
// leading blanks the month grid needs.
func (m MonthCursor) FirstWeekday() int {
	return int(time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// Label renders the calendar header, e.g. "January 2026".
func (m MonthCursor) Label() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("January 2006")
}
