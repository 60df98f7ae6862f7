// Package dates holds the pure calendar arithmetic every view depends on.
package dates

import (
	"fmt"
	"time"
)

const (
	layoutYMD = "2006-01-02"
	layoutHM  = "15:04"
)

// FormatYMD renders a zero-padded ISO day.
func FormatYMD(t time.Time) string {
	return t.Format(layoutYMD)
}

// ParseYMD parses a zero-padded ISO day.
func ParseYMD(s string) (time.Time, error) {
	return time.Parse(layoutYMD, s)
}

// ParseHM converts a fixed-width clock value to minutes since midnight.
func ParseHM(s string) (int, error) {
	t, err := time.Parse(layoutHM, s)
	if err != nil {
		return 0, fmt.Errorf("dates: bad clock value %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatHM renders minutes since midnight as a clock value.
func FormatHM(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// YearMonth returns the calendar year and zero-based month index of t.
func YearMonth(t time.Time) (int, int) {
	return t.Year(), int(t.Month()) - 1
}

// JapaneseDays are the single-character weekday labels, Sunday first.
var JapaneseDays = []string{"日", "月", "火", "水", "木", "金", "土"}

// JapaneseMonths are the month labels, January first.
var JapaneseMonths = []string{
	"1月", "2月", "3月", "4月", "5月", "6月",
	"7月", "8月", "9月", "10月", "11月", "12月",
}

// MonthLabel renders a header like "2024年2月" for a zero-based month index.
func MonthLabel(year, month int) string {
	t := firstOfMonth(year, month)
	return fmt.Sprintf("%d年%s", t.Year(), JapaneseMonths[int(t.Month())-1])
}
