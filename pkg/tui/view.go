package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/truncate"

	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/query"
	"github.com/kotanikosei/Emo/pkg/timeline"
	"github.com/kotanikosei/Emo/pkg/tui/calendar"
)

// View renders the active view plus the status footer.
func (m Model) View() string {
	var body string
	switch {
	case m.mode == modeSearch:
		body = m.viewSearch()
	case m.mode == modeEdit && m.form != nil:
		body = m.viewForm()
	case m.mode == modeHelp:
		body = m.viewHelp()
	default:
		switch m.view {
		case viewMonth:
			body = m.viewMonthGrid()
		case viewWeek:
			body = m.viewWeekStrip()
		case viewDay:
			body = m.viewDayTimeline()
		case viewList:
			body = m.viewMonthList()
		}
	}
	return m.tabs() + "\n\n" + body + "\n\n" + m.statusLine()
}

func (m Model) width() int {
	if m.termWidth > 0 {
		return m.termWidth
	}
	return 80
}

func (m Model) tabs() string {
	labels := []struct {
		v    viewMode
		name string
	}{
		{viewMonth, "月"}, {viewWeek, "週"}, {viewDay, "日"}, {viewList, "リスト"},
	}
	var out []string
	for _, l := range labels {
		if l.v == m.view {
			out = append(out, m.theme.Selected.Render(" "+l.name+" "))
		} else {
			out = append(out, m.theme.Faint.Render(" "+l.name+" "))
		}
	}
	return strings.Join(out, " ")
}

func (m Model) viewMonthGrid() string {
	year, month := dates.YearMonth(m.current)
	busy := make(map[string]bool)
	for _, e := range query.ByMonth(m.events, year, month) {
		busy[e.Date] = true
	}
	days := calendar.Build(year, month, busy, m.selected, m.now)
	grid := calendar.Render(year, month, days, calendar.Options{
		HeaderStyle:   m.theme.Header,
		OutStyle:      m.theme.Faint,
		EmptyStyle:    lipgloss.NewStyle(),
		EventStyle:    lipgloss.NewStyle().Bold(true),
		TodayStyle:    m.theme.Today,
		SelectedStyle: m.theme.Selected,
	})

	day := m.viewDayPanel()
	return lipgloss.JoinHorizontal(lipgloss.Top, grid, "   ", day)
}

// viewDayPanel lists the selected day's events next to the grid.
func (m Model) viewDayPanel() string {
	evs := query.SortForList(query.ByDate(m.events, dates.FormatYMD(m.selected)))
	label := fmt.Sprintf("%s (%s)", dates.FormatYMD(m.selected), dates.JapaneseDays[int(m.selected.Weekday())])
	lines := []string{m.theme.Header.Render(label)}
	if len(evs) == 0 {
		lines = append(lines, m.theme.Faint.Render("予定はありません"))
	}
	for i, e := range evs {
		lines = append(lines, m.eventLine(e, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewWeekStrip() string {
	week := dates.WeekOf(m.selected)
	var lines []string
	for _, day := range week {
		evs := query.SortForList(query.ByDate(m.events, dates.FormatYMD(day)))
		label := fmt.Sprintf("%s (%s)", dates.FormatYMD(day), dates.JapaneseDays[int(day.Weekday())])
		hdr := m.theme.Header.Render(label)
		if dates.SameDay(day, m.selected) {
			hdr = m.theme.Selected.Render(label)
		}
		lines = append(lines, hdr)
		if len(evs) == 0 {
			lines = append(lines, m.theme.Faint.Render("  -"))
			continue
		}
		for i, e := range evs {
			selected := dates.SameDay(day, m.selected) && i == m.cursor
			lines = append(lines, "  "+m.eventLine(e, selected))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewDayTimeline() string {
	date := dates.FormatYMD(m.selected)
	allDay, timed := query.SplitAllDay(query.ByDate(m.events, date))

	var lines []string
	label := fmt.Sprintf("%s (%s)", date, dates.JapaneseDays[int(m.selected.Weekday())])
	lines = append(lines, m.theme.Header.Render(label))

	if len(allDay) > 0 {
		lines = append(lines, m.theme.Faint.Render("終日"))
		ordered := query.SortForList(query.ByDate(m.events, date))
		for _, e := range allDay {
			lines = append(lines, "  "+m.eventLine(e, m.isCursorOn(ordered, e)))
		}
	}

	nowRow := -1
	if dates.SameDay(m.selected, m.now) {
		nowRow = timeline.NowOffset(m.now) / timeline.PixelsPerHour
	}
	ordered := query.SortForList(query.ByDate(m.events, date))
	for hour := 0; hour < 24; hour++ {
		if hour == nowRow {
			lines = append(lines, m.theme.NowLine.Render(fmt.Sprintf("%02d:00 ─── %s", hour, m.now.Format(event.LayoutTime))))
		} else {
			lines = append(lines, m.theme.Faint.Render(fmt.Sprintf("%02d:00", hour)))
		}
		for _, e := range timed {
			box, err := timeline.Place(e)
			if err != nil || box.Top/timeline.PixelsPerHour != hour {
				continue
			}
			lines = append(lines, "      "+m.eventLine(e, m.isCursorOn(ordered, e)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewMonthList() string {
	year, month := dates.YearMonth(m.current)
	ordered := query.SortForList(query.ByMonth(m.events, year, month))

	lines := []string{m.theme.Header.Render(dates.MonthLabel(year, month))}
	if len(ordered) == 0 {
		lines = append(lines, m.theme.Faint.Render("予定はありません"))
		return strings.Join(lines, "\n")
	}

	day := ""
	for i, e := range ordered {
		if e.Date != day {
			day = e.Date
			lines = append(lines, m.theme.Header.Render(day))
		}
		lines = append(lines, "  "+m.eventLine(e, i == m.cursor))
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewSearch() string {
	lines := []string{"検索: " + m.search.View(), ""}
	switch {
	case strings.TrimSpace(m.search.Value()) == "":
		lines = append(lines, m.theme.Faint.Render("カレンダーを検索"))
	case len(m.results) == 0:
		lines = append(lines, m.theme.Faint.Render("結果が見つかりません"))
	default:
		for _, e := range m.results {
			date := strings.ReplaceAll(e.Date, "-", "/")
			lines = append(lines, fmt.Sprintf("%s  %s", m.theme.Faint.Render(date), m.eventLine(e, false)))
		}
	}
	return strings.Join(lines, "\n")
}

func (m Model) viewForm() string {
	f := m.form
	row := func(field formField, name string, in string) string {
		marker := "  "
		if f.focus == field {
			marker = "→ "
		}
		return fmt.Sprintf("%s%s %s", marker, m.theme.Faint.Render(name), in)
	}

	var moods []string
	for i, mood := range event.Moods() {
		cell := fmt.Sprintf("%d %s %s", i+1, mood.Emoji(), mood.Label())
		if f.draft.Mood == mood {
			cell = m.theme.Mood(mood).Render(cell)
		} else {
			cell = m.theme.Faint.Render(cell)
		}
		moods = append(moods, cell)
	}
	allDay := "終日: -"
	if f.draft.IsAllDay {
		allDay = "終日: ✓"
	}

	title := "予定を追加"
	if f.draft.ID != "" {
		title = "予定を編集"
	}

	body := strings.Join([]string{
		m.theme.Header.Render(title),
		"",
		row(fieldTitle, "タイトル", f.title.View()),
		row(fieldMemo, "メモ    ", f.memo.View()),
		row(fieldDate, "日付    ", f.date.View()),
		row(fieldStart, "開始    ", f.start.View()),
		row(fieldEnd, "終了    ", f.end.View()),
		row(fieldMood, "気分    ", strings.Join(moods, "  ")+"  "+allDay),
	}, "\n")
	return m.theme.Panel.Render(body)
}

func (m Model) viewHelp() string {
	help := []string{
		"m/w/d/a  月・週・日・リスト表示",
		"←/→ h/l  前後の月・週・日へ",
		"↑/↓ j/k  日付または予定の移動",
		"t        今日へ",
		"enter    日表示を開く / 予定を編集",
		"o        予定を追加",
		"e        予定を編集",
		"x        予定を削除",
		"/        検索",
		"q        終了",
	}
	return m.theme.Panel.Render(strings.Join(help, "\n"))
}

// eventLine formats one event for the narrow panels, truncated to fit.
func (m Model) eventLine(e event.Event, selected bool) string {
	timeCol := "終日"
	if !e.IsAllDay {
		timeCol = e.StartTime
		if e.EndTime != "" {
			timeCol = e.StartTime + "-" + e.EndTime
		}
	}
	moodCol := ""
	if e.Mood != event.NoMood {
		moodCol = e.Mood.Emoji() + " "
	}
	line := fmt.Sprintf("%-11s %s%s", timeCol, moodCol, e.Display())
	if e.Memo != "" && e.Title != "" {
		line += m.theme.MoodSoft(e.Mood).Render("  " + e.Memo)
	}
	line = truncate.StringWithTail(line, uint(m.width()-4), "…")
	if selected {
		return m.theme.Selected.Render(line)
	}
	return line
}

func (m Model) isCursorOn(ordered []event.Event, e event.Event) bool {
	if m.cursor < 0 || m.cursor >= len(ordered) {
		return false
	}
	return ordered[m.cursor].ID == e.ID
}
