// Package calendar renders the month grid used by the interactive UI.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/kotanikosei/Emo/pkg/dates"
)

// Day describes a single cell rendered in the grid.
type Day struct {
	Date       time.Time
	InMonth    bool
	HasEvents  bool
	IsToday    bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	OutStyle      lipgloss.Style
	EmptyStyle    lipgloss.Style
	EventStyle    lipgloss.Style
	TodayStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
}

// Build expands a month into the 42 grid cells, marking today, the selected
// day, and days that have events.
func Build(year, month int, busy map[string]bool, selected, today time.Time) []Day {
	cells := dates.MonthGrid(year, month)
	out := make([]Day, 0, len(cells))
	for _, c := range cells {
		out = append(out, Day{
			Date:       c.Date,
			InMonth:    c.InMonth,
			HasEvents:  busy[dates.FormatYMD(c.Date)],
			IsToday:    dates.SameDay(c.Date, today),
			IsSelected: dates.SameDay(c.Date, selected),
		})
	}
	return out
}

// Render produces the multi-line grid: the month label, a weekday header row,
// and six week rows.
func Render(year, month int, days []Day, opts Options) string {
	var lines []string

	label := dates.MonthLabel(year, month)
	lines = append(lines, opts.HeaderStyle.Render(label))

	var hdr []string
	for _, d := range dates.JapaneseDays {
		hdr = append(hdr, opts.HeaderStyle.Render(" "+d))
	}
	lines = append(lines, strings.Join(hdr, " "))

	for row := 0; row*7 < len(days); row++ {
		var cells []string
		for col := 0; col < 7; col++ {
			cells = append(cells, renderDay(days[row*7+col], opts))
		}
		lines = append(lines, strings.Join(cells, " "))
	}

	return strings.Join(lines, "\n")
}

func renderDay(d Day, opts Options) string {
	text := fmt.Sprintf("%3d", d.Date.Day())

	style := opts.EmptyStyle
	if !d.InMonth {
		style = opts.OutStyle
	} else if d.HasEvents {
		style = opts.EventStyle
	}
	if d.IsToday && d.InMonth {
		style = style.Inherit(opts.TodayStyle)
	}
	if d.IsSelected {
		style = style.Inherit(opts.SelectedStyle)
	}
	return style.Render(text)
}
