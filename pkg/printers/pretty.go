// Package printers renders events to the terminal for the one-shot CLI
// commands. The interactive views live in pkg/tui.
package printers

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/mattn/go-isatty"

	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/query"
)

type PrettyPrint struct {
	ShowID bool
}

var spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca-0000-000000000000  "))

func init() {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)
	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)
	switch count {
	case 1:
		_, _ = c.Println(" event")
	default:
		_, _ = c.Println(" events")
	}
}

// Events prints a flat run of events, one per line.
func (pp *PrettyPrint) Events(events ...event.Event) {
	if len(events) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)
	for _, e := range events {
		if pp.ShowID {
			_, _ = y.Print(e.ID)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(e.ID)))
		}
		_, _ = t.Printf("%s %s %s\n", timeColumn(e), moodColumn(e), e.Display())
		if e.Memo != "" && e.Title != "" {
			if pp.ShowID {
				_, _ = t.Print(spacing)
			}
			_, _ = color.New(color.Faint).Printf("%s   %s\n", strings.Repeat(" ", len(timeColumn(e))), e.Memo)
		}
	}
	_, _ = t.Println("")
}

// List prints the list view: the month's events grouped by day in list
// order (date ascending, all-day first, then start time).
func (pp *PrettyPrint) List(events []event.Event) {
	ordered := query.SortForList(events)
	if len(ordered) == 0 {
		pp.Events()
		return
	}
	day := ""
	group := make([]event.Event, 0)
	flush := func() {
		if len(group) == 0 {
			return
		}
		pp.Title(day)
		pp.Events(group...)
		group = group[:0]
	}
	for _, e := range ordered {
		if e.Date != day {
			flush()
			day = e.Date
		}
		group = append(group, e)
	}
	flush()
}

// SearchResults prints full-text matches with their dates, newest first.
func (pp *PrettyPrint) SearchResults(q string, results []event.Event) {
	if strings.TrimSpace(q) == "" {
		_, _ = color.New(color.Faint).Println("カレンダーを検索")
		return
	}
	if len(results) == 0 {
		_, _ = color.New(color.Faint).Println("結果が見つかりません")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, e := range results {
		memo := e.Memo
		tbl.AddRow(strings.ReplaceAll(e.Date, "-", "/"), moodColumn(e), e.Title, memo)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Stats prints the month's mood tally, omitting zero counts.
func (pp *PrettyPrint) Stats(tally map[event.Mood]int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	total := 0
	for _, m := range event.Moods() {
		count := tally[m]
		if count == 0 {
			continue
		}
		total += count
		tbl.AddRow(m.Emoji(), m.Label(), fmt.Sprintf("%d", count))
	}
	if total == 0 {
		_, _ = color.New(color.Faint, color.Italic).Println(" none")
		return
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

func timeColumn(e event.Event) string {
	if e.IsAllDay {
		return "終日         "
	}
	if e.EndTime == "" {
		return fmt.Sprintf("%s        ", e.StartTime)
	}
	return fmt.Sprintf("%s-%s  ", e.StartTime, e.EndTime)
}

func moodColumn(e event.Event) string {
	if e.Mood == event.NoMood {
		return "  "
	}
	return e.Mood.Emoji()
}
