package pdfcal

import (
	"time"

	"cloudeng.io/datetime"
)

// Cell is one position in the month grid. A zero Day marks a position
// that belongs to an adjacent month and is left blank on the page.
// Ordinal is the day-of-year count (1-365, or 1-366 in leap years) and
// is zero for blank cells.
type Cell struct {
	Day     int
	Ordinal int
}

// Week is a single Sunday-through-Saturday row of the month grid.
type Week [7]Cell

// MonthGrid lays the days of the given month out week by week. The
// first and last weeks are padded with blank cells so that every row
// has exactly seven entries. Depending on where the 1st falls, the
// result has between four and six rows.
func MonthGrid(year int, month datetime.Month) []Week {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday()) // Sunday == 0, no leading pad needed
	days := int(datetime.DaysInMonth(year, month))

	// Day-of-year of the 1st; later days follow consecutively.
	base := datetime.NewDate(month, 1).DayOfYear(year)

	rows := (offset + days + 6) / 7
	grid := make([]Week, rows)
	for day := 1; day <= days; day++ {
		pos := offset + day - 1
		grid[pos/7][pos%7] = Cell{
			Day:     day,
			Ordinal: base + day - 1,
		}
	}
	return grid
}
