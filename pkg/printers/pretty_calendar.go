package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/query"
	"github.com/kotanikosei/Emo/pkg/timeline"
)

const weekWidth = len("11 12 13 14 15 16 17") // an example week

// Month prints the 6-week month grid. Days with events are bold; out-of-month
// padding days are faint.
func (pp *PrettyPrint) Month(year, month int, events []event.Event) {
	label := dates.MonthLabel(year, month)
	tf := color.New(color.FgWhite, color.Italic)
	mid := (weekWidth - len(label)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Printf("%s%s\n", strings.Repeat(" ", mid), label)

	hdr := color.New(color.Faint)
	for _, d := range dates.JapaneseDays {
		_, _ = hdr.Printf(" %s ", d)
	}
	fmt.Print("\n")

	counts := make(map[string]int)
	for _, e := range query.ByMonth(events, year, month) {
		counts[e.Date]++
	}

	out := color.New(color.Faint)
	quiet := color.New(color.FgWhite)
	busy := color.New(color.Bold, color.FgHiWhite)
	today := dates.FormatYMD(time.Now())

	for i, cell := range dates.MonthGrid(year, month) {
		key := dates.FormatYMD(cell.Date)
		printer := quiet
		switch {
		case !cell.InMonth:
			printer = out
		case counts[key] > 0:
			printer = busy
		}
		if key == today && cell.InMonth {
			printer = color.New(color.Bold, color.Underline, color.FgHiWhite)
		}
		_, _ = printer.Printf("%2d ", cell.Date.Day())
		if (i+1)%7 == 0 {
			fmt.Print("\n")
		}
	}
	fmt.Print("\n")
}

// Week prints the 7-day strip around a date with each day's events beneath.
func (pp *PrettyPrint) Week(days []time.Time, perDay [][]event.Event) {
	for i, day := range days {
		label := fmt.Sprintf("%s (%s)", dates.FormatYMD(day), dates.JapaneseDays[int(day.Weekday())])
		pp.TitleWithCount(label, len(perDay[i]))
		pp.Events(perDay[i]...)
	}
}

// DayTimeline prints one day: the all-day band, then timed events at their
// hour positions on the 24-hour strip.
func (pp *PrettyPrint) DayTimeline(date string, events []event.Event, now time.Time) {
	allDay, timed := query.SplitAllDay(events)

	if len(allDay) > 0 {
		pp.Title("終日")
		pp.Events(allDay...)
	}

	line := color.New(color.Faint)
	hi := color.New(color.FgHiRed)
	nowRow := -1
	if dates.FormatYMD(now) == date {
		nowRow = timeline.NowOffset(now) / timeline.PixelsPerHour
	}

	for hour := 0; hour < 24; hour++ {
		if hour == nowRow {
			_, _ = hi.Printf("%02d:00 ─── %s\n", hour, now.Format("15:04"))
		} else {
			_, _ = line.Printf("%02d:00\n", hour)
		}
		for _, e := range timed {
			box, err := timeline.Place(e)
			if err != nil {
				continue
			}
			if box.Top/timeline.PixelsPerHour == hour {
				_, _ = color.New().Printf("      %s %s %s\n", timeColumn(e), moodColumn(e), e.Display())
			}
		}
	}
}
