package searchform

import (
	"testing"
	"time"
)

func TestBuildMonthGridLayout(t *testing.T) {
	// June 2026 starts on a Monday: one leading blank, 30 days.
	month := MonthCursor{Year: 2026, Month: time.June}
	grid := BuildMonthGrid(month, Date{}, Date{})

	if grid.Label != "June 2026" {
		t.Fatalf("unexpected label: %q", grid.Label)
	}
	if len(grid.Cells) != 42 {
		t.Fatalf("expected a 42-cell grid, got %d", len(grid.Cells))
	}
	if grid.Cells[0].State != CellBlank {
		t.Fatalf("expected a leading blank before Monday the 1st")
	}
	if grid.Cells[1].Day != 1 || grid.Cells[1].State != CellPlain {
		t.Fatalf("expected day 1 at cell 1, got %+v", grid.Cells[1])
	}
	if grid.Cells[30].Day != 30 {
		t.Fatalf("expected day 30 at cell 30, got %+v", grid.Cells[30])
	}
	for i := 31; i < 42; i++ {
		if grid.Cells[i].State != CellBlank {
			t.Fatalf("expected trailing blank at cell %d, got %+v", i, grid.Cells[i])
		}
	}
}

func TestBuildMonthGridHighlightsSelection(t *testing.T) {
	month := MonthCursor{Year: 2026, Month: time.June}
	start := NewDate(2026, time.June, 10)
	end := NewDate(2026, time.June, 13)
	grid := BuildMonthGrid(month, start, end)

	find := func(day int) Cell {
		for _, cell := range grid.Cells {
			if cell.Day == day {
				return cell
			}
		}
		t.Fatalf("day %d not found", day)
		return Cell{}
	}

	if find(10).State != CellEndpoint || find(13).State != CellEndpoint {
		t.Fatalf("expected endpoints on the 10th and 13th")
	}
	for _, day := range []int{11, 12} {
		if find(day).State != CellInRange {
			t.Fatalf("expected day %d in range", day)
		}
	}
	for _, day := range []int{9, 14} {
		if find(day).State != CellPlain {
			t.Fatalf("expected day %d plain", day)
		}
	}
}

func TestBuildMonthGridLoneStart(t *testing.T) {
	month := MonthCursor{Year: 2026, Month: time.June}
	start := NewDate(2026, time.June, 10)
	grid := BuildMonthGrid(month, start, Date{})

	inRange := 0
	for _, cell := range grid.Cells {
		if cell.State == CellInRange {
			inRange++
		}
		if cell.Day == 10 && cell.State != CellEndpoint {
			t.Fatalf("lone start must render as endpoint, got %+v", cell)
		}
	}
	if inRange != 0 {
		t.Fatalf("no cell may be in range without an end date, got %d", inRange)
	}
}

func TestBuildMonthGridRangeSpanningMonths(t *testing.T) {
	start := NewDate(2026, time.May, 28)
	end := NewDate(2026, time.June, 3)

	june := BuildMonthGrid(MonthCursor{Year: 2026, Month: time.June}, start, end)
	for _, cell := range june.Cells {
		switch cell.Day {
		case 1, 2:
			if cell.State != CellInRange {
				t.Fatalf("expected June %d in range, got %+v", cell.Day, cell)
			}
		case 3:
			if cell.State != CellEndpoint {
				t.Fatalf("expected June 3 endpoint, got %+v", cell)
			}
		}
	}

	may := BuildMonthGrid(MonthCursor{Year: 2026, Month: time.May}, start, end)
	for _, cell := range may.Cells {
		switch cell.Day {
		case 28:
			if cell.State != CellEndpoint {
				t.Fatalf("expected May 28 endpoint, got %+v", cell)
			}
		case 29, 30, 31:
			if cell.State != CellInRange {
				t.Fatalf("expected May %d in range, got %+v", cell.Day, cell)
			}
		}
	}
}
