package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/feedback"
	"github.com/kotanikosei/Emo/pkg/query"
	"github.com/kotanikosei/Emo/pkg/user"
)

type fakePersistence struct {
	events   []event.Event
	feedback []feedback.Feedback
	users    []user.User
	token    string
}

func (f *fakePersistence) Events(ctx context.Context) []event.Event { return f.events }
func (f *fakePersistence) SaveEvents(events []event.Event) error {
	f.events = events
	return nil
}
func (f *fakePersistence) Feedback(ctx context.Context) []feedback.Feedback { return f.feedback }
func (f *fakePersistence) AppendFeedback(ctx context.Context, fb feedback.Feedback) error {
	f.feedback = append(f.feedback, fb)
	return nil
}
func (f *fakePersistence) Users(ctx context.Context) []user.User { return f.users }
func (f *fakePersistence) SaveUsers(users []user.User) error {
	f.users = users
	return nil
}
func (f *fakePersistence) Token() (string, bool) { return f.token, f.token != "" }
func (f *fakePersistence) SetToken(token string) error {
	f.token = token
	return nil
}
func (f *fakePersistence) ClearToken() error {
	f.token = ""
	return nil
}

func newTestModel(events ...event.Event) Model {
	fp := &fakePersistence{events: events}
	m := New(&app.Service{Persistence: fp})
	m.events = events
	at := time.Date(2024, time.February, 14, 9, 30, 0, 0, time.UTC)
	m.now = at
	m.current = at
	m.selected = at
	return m
}

func ev(date, title string) event.Event {
	e := event.New(date, time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC))
	e.Title = title
	return e
}

func TestShiftByMonthInMonthView(t *testing.T) {
	m := newTestModel()
	m.view = viewMonth

	m.shift(1)
	if y, mo := dates.YearMonth(m.current); y != 2024 || mo != 2 {
		t.Fatalf("expected March 2024 (month index 2), got %d-%d", y, mo)
	}
	if y, mo := dates.YearMonth(m.selected); y != 2024 || mo != 2 {
		t.Fatalf("selected day should follow into the shown month, got %d-%d", y, mo)
	}

	m.shift(-1)
	m.shift(-1)
	if y, mo := dates.YearMonth(m.current); y != 2024 || mo != 0 {
		t.Fatalf("expected January 2024 (month index 0), got %d-%d", y, mo)
	}
}

func TestShiftAcrossYearBoundary(t *testing.T) {
	m := newTestModel()
	m.view = viewList
	m.current = time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)
	m.selected = m.current

	m.shift(1)
	if y, mo := dates.YearMonth(m.current); y != 2025 || mo != 0 {
		t.Fatalf("expected January 2025, got %d-%d", y, mo)
	}
}

func TestShiftByWeekAndDay(t *testing.T) {
	m := newTestModel()

	m.view = viewWeek
	m.shift(1)
	if got := dates.FormatYMD(m.selected); got != "2024-02-21" {
		t.Fatalf("expected 2024-02-21 after one week, got %s", got)
	}

	m.view = viewDay
	m.shift(-1)
	if got := dates.FormatYMD(m.selected); got != "2024-02-20" {
		t.Fatalf("expected 2024-02-20 after one day back, got %s", got)
	}
}

func TestMoveSelectionFollowsIntoAdjacentMonth(t *testing.T) {
	m := newTestModel()
	m.view = viewMonth
	m.selected = time.Date(2024, time.February, 28, 0, 0, 0, 0, time.UTC)

	m.moveSelection(7)
	if got := dates.FormatYMD(m.selected); got != "2024-03-06" {
		t.Fatalf("expected 2024-03-06, got %s", got)
	}
	if y, mo := dates.YearMonth(m.current); y != 2024 || mo != 2 {
		t.Fatalf("shown month should follow the selection, got %d-%d", y, mo)
	}
}

func TestCursorMovesWithinDay(t *testing.T) {
	a := ev("2024-02-14", "朝ごはん")
	b := ev("2024-02-14", "ランチ")
	b.IsAllDay = false
	b.StartTime = "12:00"
	m := newTestModel(a, b)
	m.view = viewDay

	if got := len(m.cursorEvents()); got != 2 {
		t.Fatalf("expected 2 events under cursor, got %d", got)
	}
	m.moveCursor(1)
	if m.cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", m.cursor)
	}
	m.moveCursor(1)
	if m.cursor != 1 {
		t.Fatalf("cursor must clamp at the last event, got %d", m.cursor)
	}
	m.moveCursor(-5)
	if m.cursor != 0 {
		t.Fatalf("cursor must clamp at zero, got %d", m.cursor)
	}

	under := m.eventUnderCursor()
	if under == nil || under.Title != "朝ごはん" {
		t.Fatalf("expected the all-day event first, got %+v", under)
	}
}

func TestSearchResultsFollowQuery(t *testing.T) {
	m := newTestModel(ev("2024-02-10", "歯医者"), ev("2024-02-20", "ランチ"))
	m.mode = modeSearch
	m.search.SetValue("ランチ")
	m.results = query.Search(m.events, m.search.Value())

	if len(m.results) != 1 || m.results[0].Title != "ランチ" {
		t.Fatalf("unexpected results: %+v", m.results)
	}

	view := m.viewSearch()
	if !strings.Contains(view, "2024/02/20") {
		t.Fatalf("expected slash-formatted date in view:\n%s", view)
	}

	m.search.SetValue("  ")
	m.results = query.Search(m.events, m.search.Value())
	if len(m.results) != 0 {
		t.Fatalf("blank query must return no results")
	}
	if !strings.Contains(m.viewSearch(), "カレンダーを検索") {
		t.Fatalf("blank query should show the search prompt")
	}
}

func TestOpenEditorSeedsDraft(t *testing.T) {
	m := newTestModel()
	m.openEditor(nil)

	if m.mode != modeEdit || m.form == nil {
		t.Fatalf("expected edit mode with a form")
	}
	if m.form.draft.Date != "2024-02-14" {
		t.Fatalf("draft should anchor on the selected day, got %q", m.form.draft.Date)
	}
	if !m.form.draft.IsAllDay {
		t.Fatalf("new drafts default to all-day")
	}
}

func TestFormMoodToggle(t *testing.T) {
	m := newTestModel()
	m.openEditor(nil)
	f := m.form

	f.draft.ToggleMood(event.Joy)
	if f.draft.Mood != event.Joy {
		t.Fatalf("expected joy, got %s", f.draft.Mood)
	}
	f.draft.ToggleMood(event.Joy)
	if f.draft.Mood != event.NoMood {
		t.Fatalf("toggling the same mood must clear it, got %s", f.draft.Mood)
	}
}

func TestFormSyncDropsAllDayWhenTimed(t *testing.T) {
	m := newTestModel()
	m.openEditor(nil)
	f := m.form
	f.title.SetValue("ランチ")
	f.start.SetValue("12:00")
	f.sync()

	if f.draft.IsAllDay {
		t.Fatalf("a draft with a start time is not all-day")
	}
	if f.draft.Title != "ランチ" {
		t.Fatalf("title not synced: %q", f.draft.Title)
	}
}

func TestEventsLoadedClampsCursor(t *testing.T) {
	m := newTestModel(ev("2024-02-14", "a"), ev("2024-02-14", "b"))
	m.view = viewDay
	m.cursor = 1

	next, _ := m.Update(eventsLoadedMsg{events: []event.Event{ev("2024-02-14", "a")}})
	got := next.(Model)
	if got.cursor != 0 {
		t.Fatalf("cursor must clamp after a reload, got %d", got.cursor)
	}
}
