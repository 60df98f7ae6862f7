package dates

import "time"

// GridCells is the fixed size of a month grid: six full weeks, however many
// the month actually needs, so the layout never reflows.
const GridCells = 42

// Day is one cell of a month grid.
type Day struct {
	Date    time.Time
	InMonth bool
}

// firstOfMonth builds the first day of a zero-based month index. Out-of-range
// indices roll into adjacent years via time.Date normalization.
func firstOfMonth(year, month int) time.Time {
	return time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
}

// DaysIn returns the number of days in the zero-based month.
func DaysIn(year, month int) int {
	return firstOfMonth(year, month).AddDate(0, 1, -1).Day()
}

// MonthGrid lays out the zero-based month as exactly GridCells consecutive
// days: lead-in padding from the previous month up to the month's first
// weekday (Sunday-start), every day of the month, then lead-out padding from
// the next month.
func MonthGrid(year, month int) []Day {
	first := firstOfMonth(year, month)
	lead := int(first.Weekday())

	cells := make([]Day, 0, GridCells)
	cursor := first.AddDate(0, 0, -lead)
	for i := 0; i < GridCells; i++ {
		cells = append(cells, Day{
			Date:    cursor,
			InMonth: cursor.Month() == first.Month() && cursor.Year() == first.Year(),
		})
		cursor = cursor.AddDate(0, 0, 1)
	}
	return cells
}

// WeekOf returns the 7 days of the Sunday-start week containing d.
func WeekOf(d time.Time) []time.Time {
	sunday := d.AddDate(0, 0, -int(d.Weekday()))
	week := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		week = append(week, sunday.AddDate(0, 0, i))
	}
	return week
}
