package theme

import (
	"github.com/charmbracelet/lipgloss/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/kotanikosei/Emo/pkg/event"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   lipgloss.Style
	Help     lipgloss.Style
	Status   lipgloss.Style
	Faint    lipgloss.Style
	Selected lipgloss.Style
	Today    lipgloss.Style
	NowLine  lipgloss.Style
	Panel    lipgloss.Style

	moods     map[event.Mood]lipgloss.Style
	moodsSoft map[event.Mood]lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	t := Theme{
		Header:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Faint:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Selected: lipgloss.NewStyle().Reverse(true),
		Today:    lipgloss.NewStyle().Bold(true).Underline(true),
		NowLine:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Panel:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2),

		moods:     make(map[event.Mood]lipgloss.Style),
		moodsSoft: make(map[event.Mood]lipgloss.Style),
	}
	for _, m := range event.Moods() {
		t.moods[m] = lipgloss.NewStyle().Foreground(lipgloss.Color(m.Hex())).Bold(true)
		t.moodsSoft[m] = lipgloss.NewStyle().Foreground(lipgloss.Color(soften(m.Hex())))
	}
	return t
}

// Mood returns the accent style for a mood tag.
func (t Theme) Mood(m event.Mood) lipgloss.Style {
	if s, ok := t.moods[m]; ok {
		return s
	}
	return t.Faint
}

// MoodSoft returns a desaturated variant used for secondary text.
func (t Theme) MoodSoft(m event.Mood) lipgloss.Style {
	if s, ok := t.moodsSoft[m]; ok {
		return s
	}
	return t.Faint
}

// soften pulls a hex color toward gray so memo lines sit behind titles.
func soften(hex string) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	h, s, l := c.Hsl()
	return colorful.Hsl(h, s*0.4, l*0.85).Hex()
}
