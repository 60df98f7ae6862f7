package event

import (
	"fmt"
	"strings"
)

// Mood is the single emotional tag attached to an event.
type Mood string

const (
	Joy      Mood = "joy"
	Fun      Mood = "fun"
	Sad      Mood = "sad"
	Angry    Mood = "angry"
	Surprise Mood = "surprise"
	NoMood   Mood = "none"
)

// Moods returns the five selectable moods, in display order. NoMood is
// excluded; it renders no indicator.
func Moods() []Mood {
	return []Mood{Joy, Fun, Sad, Angry, Surprise}
}

// ParseMood converts raw input to a Mood. Empty input means NoMood.
func ParseMood(raw string) (Mood, error) {
	m := Mood(strings.ToLower(strings.TrimSpace(raw)))
	if m == "" {
		return NoMood, nil
	}
	switch m {
	case Joy, Fun, Sad, Angry, Surprise, NoMood:
		return m, nil
	}
	return NoMood, fmt.Errorf("event: unknown mood %q", raw)
}

// Valid reports whether m is one of the six known values.
func (m Mood) Valid() bool {
	switch m {
	case Joy, Fun, Sad, Angry, Surprise, NoMood:
		return true
	}
	return false
}

func (m Mood) String() string {
	return string(m)
}

// Emoji returns the indicator for the mood, or "" for NoMood.
func (m Mood) Emoji() string {
	switch m {
	case Joy:
		return "😊"
	case Fun:
		return "🤩"
	case Sad:
		return "😢"
	case Angry:
		return "😠"
	case Surprise:
		return "😲"
	}
	return ""
}

// Label returns the Japanese display label used in the UI.
func (m Mood) Label() string {
	switch m {
	case Joy:
		return "喜び"
	case Fun:
		return "楽しみ"
	case Sad:
		return "悲しみ"
	case Angry:
		return "怒り"
	case Surprise:
		return "驚き"
	}
	return ""
}

// Hex returns the theme color associated with the mood.
func (m Mood) Hex() string {
	switch m {
	case Joy:
		return "#FFCC00"
	case Fun:
		return "#FF9500"
	case Sad:
		return "#007AFF"
	case Angry:
		return "#FF3B30"
	case Surprise:
		return "#AF52DE"
	}
	return "#8E8E93"
}
