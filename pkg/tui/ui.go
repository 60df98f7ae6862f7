// Package tui implements the interactive calendar: month, week, day, and
// list views over the stored events, plus search and an inline editor.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/query"
	"github.com/kotanikosei/Emo/pkg/store"
	"github.com/kotanikosei/Emo/pkg/tui/theme"
)

type viewMode int

const (
	viewMonth viewMode = iota
	viewWeek
	viewDay
	viewList
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeEdit
	modeHelp
)

// Model is the root Bubble Tea model.
type Model struct {
	svc *app.Service
	ctx context.Context

	termWidth  int
	termHeight int

	mode mode
	view viewMode

	// current anchors the visible month; selected is the highlighted day.
	current  time.Time
	selected time.Time
	now      time.Time

	events  []event.Event
	cursor  int
	changes <-chan store.Change

	search  textinput.Model
	results []event.Event

	form *form

	theme  theme.Theme
	status string
}

// New builds the root model over the service.
func New(svc *app.Service) Model {
	ti := textinput.New()
	ti.Placeholder = "カレンダーを検索"
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline

	now := time.Now()
	return Model{
		svc:      svc,
		ctx:      context.Background(),
		mode:     modeNormal,
		view:     viewMonth,
		current:  now,
		selected: now,
		now:      now,
		search:   ti,
		theme:    theme.Default(),
		status:   "m/w/d/a views, ←/→ move, o add, / search, ? help",
	}
}

// Run launches the Bubble Tea program.
func Run(svc *app.Service) error {
	p := tea.NewProgram(New(svc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// messages
type errMsg struct{ err error }
type eventsLoadedMsg struct{ events []event.Event }
type tickMsg time.Time
type watchStartedMsg struct{ changes <-chan store.Change }
type storeChangedMsg struct{}

// Init loads initial data, starts the clock, and subscribes to store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadEvents(), tick(), m.watchStore())
}

// watchStore subscribes to on-disk changes when the store supports it, so
// edits made by the one-shot commands show up while the UI is open.
func (m *Model) watchStore() tea.Cmd {
	w, ok := m.svc.Persistence.(store.Watcher)
	if !ok {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		changes, err := w.Watch(ctx)
		if err != nil {
			return errMsg{err}
		}
		return watchStartedMsg{changes: changes}
	}
}

func waitForChange(changes <-chan store.Change) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return storeChangedMsg{}
	}
}

func (m *Model) loadEvents() tea.Cmd {
	return func() tea.Msg {
		evs, err := m.svc.Events(m.ctx)
		if err != nil {
			return errMsg{err}
		}
		return eventsLoadedMsg{evs}
	}
}

func tick() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case eventsLoadedMsg:
		m.events = msg.events
		m.clampCursor()
		if m.mode == modeSearch {
			m.results = query.Search(m.events, m.search.Value())
		}
	case tickMsg:
		m.now = time.Time(msg)
		cmds = append(cmds, tick())
	case watchStartedMsg:
		m.changes = msg.changes
		cmds = append(cmds, waitForChange(m.changes))
	case storeChangedMsg:
		cmds = append(cmds, m.loadEvents(), waitForChange(m.changes))
	case tea.KeyPressMsg:
		switch m.mode {
		case modeHelp:
			if key := msg.String(); key == "q" || key == "esc" || key == "?" {
				m.mode = modeNormal
			}
		case modeSearch:
			switch msg.String() {
			case "esc":
				m.mode = modeNormal
				m.search.Reset()
				m.results = nil
			case "enter":
				// keep the results on screen; enter just drops focus back
				m.mode = modeNormal
			default:
				var cmd tea.Cmd
				m.search, cmd = m.search.Update(msg)
				cmds = append(cmds, cmd)
				m.results = query.Search(m.events, m.search.Value())
			}
		case modeEdit:
			m.updateForm(msg, &cmds)
		default:
			m.updateNormal(msg, &cmds)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) updateNormal(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		*cmds = append(*cmds, tea.Quit)
	case "m":
		m.setView(viewMonth)
	case "w":
		m.setView(viewWeek)
	case "d":
		m.setView(viewDay)
	case "a":
		m.setView(viewList)
	case "t":
		m.selected = m.now
		m.current = m.now
		m.cursor = 0
	case "left", "h":
		m.shift(-1)
	case "right", "l":
		m.shift(1)
	case "up", "k":
		if m.view == viewMonth {
			m.moveSelection(-7)
		} else {
			m.moveCursor(-1)
		}
	case "down", "j":
		if m.view == viewMonth {
			m.moveSelection(7)
		} else {
			m.moveCursor(1)
		}
	case "enter":
		if m.view == viewMonth || m.view == viewWeek {
			m.setView(viewDay)
		} else {
			m.openEditorFor(m.eventUnderCursor())
		}
	case "o":
		m.openEditor(nil)
	case "e":
		m.openEditorFor(m.eventUnderCursor())
	case "x":
		if e := m.eventUnderCursor(); e != nil {
			if err := m.svc.Delete(m.ctx, e.ID); err != nil {
				*cmds = append(*cmds, func() tea.Msg { return errMsg{err} })
			} else {
				m.status = "削除しました"
				*cmds = append(*cmds, m.loadEvents())
			}
		}
	case "/":
		m.enterSearch(cmds)
	case "?":
		m.mode = modeHelp
	}
}

// shift moves the visible period: one month in the month and list views,
// one week in the week view, one day in the day view.
func (m *Model) shift(dir int) {
	switch m.view {
	case viewMonth, viewList:
		year, month := dates.YearMonth(m.current)
		first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, m.current.Location())
		first = first.AddDate(0, dir, 0)
		m.current = first
		if y, mo := dates.YearMonth(m.selected); y != first.Year() || time.Month(mo+1) != first.Month() {
			m.selected = first
		}
	case viewWeek:
		m.selected = m.selected.AddDate(0, 0, 7*dir)
		m.current = m.selected
	case viewDay:
		m.selected = m.selected.AddDate(0, 0, dir)
		m.current = m.selected
	}
	m.cursor = 0
}

// moveSelection moves the highlighted day inside the month grid, following
// into the adjacent month when the selection crosses the boundary.
func (m *Model) moveSelection(days int) {
	m.selected = m.selected.AddDate(0, 0, days)
	m.current = m.selected
	m.cursor = 0
}

func (m *Model) moveCursor(dir int) {
	m.cursor += dir
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.cursorEvents())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// cursorEvents returns the slice the cursor indexes into for the active view.
func (m *Model) cursorEvents() []event.Event {
	switch m.view {
	case viewList:
		year, month := dates.YearMonth(m.current)
		return query.SortForList(query.ByMonth(m.events, year, month))
	default:
		return query.SortForList(query.ByDate(m.events, dates.FormatYMD(m.selected)))
	}
}

func (m *Model) eventUnderCursor() *event.Event {
	evs := m.cursorEvents()
	if m.cursor < 0 || m.cursor >= len(evs) {
		return nil
	}
	e := evs[m.cursor]
	return &e
}

func (m *Model) setView(v viewMode) {
	m.view = v
	m.cursor = 0
	m.clampCursor()
}

func (m *Model) enterSearch(cmds *[]tea.Cmd) {
	m.mode = modeSearch
	m.search.Reset()
	m.results = nil
	if cmd := m.search.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
	*cmds = append(*cmds, textinput.Blink)
	m.status = "検索: enterで確定, escで戻る"
}

func (m *Model) statusLine() string {
	modeStr := map[mode]string{
		modeNormal: "NORMAL", modeSearch: "SEARCH", modeEdit: "EDIT", modeHelp: "HELP",
	}[m.mode]
	return m.theme.Status.Render(fmt.Sprintf("[%s] %s", modeStr, m.status))
}
