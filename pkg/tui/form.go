package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/editor"
	"github.com/kotanikosei/Emo/pkg/event"
)

type formField int

const (
	fieldTitle formField = iota
	fieldMemo
	fieldDate
	fieldStart
	fieldEnd
	fieldMood
	fieldCount
)

// form holds the inline editor state. The text fields mirror the draft; the
// mood row and the all-day flag are toggled with keys.
type form struct {
	draft editor.Draft
	focus formField

	title textinput.Model
	memo  textinput.Model
	date  textinput.Model
	start textinput.Model
	end   textinput.Model
}

func newFormInput(placeholder, value string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.Prompt = ""
	ti.SetValue(value)
	ti.Styles.Cursor.Color = lipgloss.Color("218")
	ti.Styles.Cursor.Shape = tea.CursorUnderline
	return ti
}

func newForm(d editor.Draft) *form {
	f := &form{
		draft: d,
		title: newFormInput("タイトル", d.Title),
		memo:  newFormInput("メモ", d.Memo),
		date:  newFormInput(event.LayoutDate, d.Date),
		start: newFormInput(event.LayoutTime, d.StartTime),
		end:   newFormInput(event.LayoutTime, d.EndTime),
	}
	f.title.Focus()
	return f
}

// openEditor starts a fresh draft anchored on the selected day; openEditorFor
// edits an existing event.
func (m *Model) openEditor(e *event.Event) {
	d := editor.Draft{Date: dates.FormatYMD(m.selected), IsAllDay: true, Mood: event.NoMood}
	if e != nil {
		d = editor.FromEvent(*e)
	}
	m.form = newForm(d)
	m.mode = modeEdit
	m.status = "tabで移動, 1-5で気分, aで終日, enterで保存, escで取消"
}

func (m *Model) openEditorFor(e *event.Event) {
	if e == nil {
		return
	}
	m.openEditor(e)
}

func (f *form) inputs() []*textinput.Model {
	return []*textinput.Model{&f.title, &f.memo, &f.date, &f.start, &f.end}
}

func (f *form) focused() *textinput.Model {
	ins := f.inputs()
	if int(f.focus) < len(ins) {
		return ins[f.focus]
	}
	return nil
}

func (f *form) move(dir int) []tea.Cmd {
	var cmds []tea.Cmd
	if in := f.focused(); in != nil {
		in.Blur()
	}
	f.focus = formField((int(f.focus) + dir + int(fieldCount)) % int(fieldCount))
	if in := f.focused(); in != nil {
		if cmd := in.Focus(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, textinput.Blink)
	}
	return cmds
}

// sync copies the text fields back into the draft.
func (f *form) sync() {
	f.draft.Title = f.title.Value()
	f.draft.Memo = f.memo.Value()
	f.draft.Date = f.date.Value()
	f.draft.StartTime = f.start.Value()
	f.draft.EndTime = f.end.Value()
	if f.draft.StartTime != "" || f.draft.EndTime != "" {
		f.draft.IsAllDay = false
	}
}

func (m *Model) updateForm(msg tea.KeyPressMsg, cmds *[]tea.Cmd) {
	f := m.form
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.form = nil
		m.status = "取り消しました"
		return
	case "tab", "down":
		*cmds = append(*cmds, f.move(1)...)
		return
	case "shift+tab", "up":
		*cmds = append(*cmds, f.move(-1)...)
		return
	case "enter":
		f.sync()
		saved, err := m.svc.Save(m.ctx, f.draft)
		if err != nil {
			m.status = "ERR: " + err.Error()
			return
		}
		m.mode = modeNormal
		m.form = nil
		m.selected, _ = dates.ParseYMD(saved.Date)
		m.current = m.selected
		m.status = "保存しました"
		*cmds = append(*cmds, m.loadEvents())
		return
	}

	if f.focus == fieldMood {
		switch key := msg.String(); key {
		case "1", "2", "3", "4", "5":
			i, _ := strconv.Atoi(key)
			f.draft.ToggleMood(event.Moods()[i-1])
		case "a":
			f.draft.IsAllDay = !f.draft.IsAllDay
			if f.draft.IsAllDay {
				f.start.Reset()
				f.end.Reset()
			}
		}
		return
	}

	if in := f.focused(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		*cmds = append(*cmds, cmd)
	}
}
