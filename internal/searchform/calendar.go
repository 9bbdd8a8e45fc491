package searchform

// CellState classifies one cell of a month grid for rendering.
type CellState int

const (
	// CellBlank pads the grid before day 1 and after the last day.
	CellBlank CellState = iota
	CellPlain
	// CellEndpoint marks the selected start or end day.
	CellEndpoint
	// CellInRange marks days strictly between start and end.
	CellInRange
)

type Cell struct {
	Day   int
	State CellState
}

// MonthGrid is one rendered month: a fixed 42-cell (6 week) grid so two
// months side by side always line up, leading blanks aligning day 1 with
// its weekday.
type MonthGrid struct {
	Month MonthCursor
	Label string
	Cells [42]Cell
}

const gridCells = 42

// BuildMonthGrid lays the month out against the current selection. The
// range highlight is exclusive: the endpoints themselves render as
// endpoints, never as in-range.
func BuildMonthGrid(month MonthCursor, start, end Date) MonthGrid {
	grid := MonthGrid{Month: month, Label: month.Label()}

	leading := month.FirstWeekday()
	days := month.DaysIn()

	for day := 1; day <= days; day++ {
		date := NewDate(month.Year, month.Month, day)
		state := CellPlain
		switch {
		case (!start.IsZero() && date.Equal(start)) || (!end.IsZero() && date.Equal(end)):
			state = CellEndpoint
		case !start.IsZero() && !end.IsZero() && date.After(start) && date.Before(end):
			state = CellInRange
		}
		grid.Cells[leading+day-1] = Cell{Day: day, State: state}
	}
	return grid
}
