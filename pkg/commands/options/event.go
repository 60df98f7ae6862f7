// Package options defines shared flag helpers for CLI commands.
package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/event"
)

// EventOptions captures the fields of an event as flags.
type EventOptions struct {
	Title    string
	Memo     string
	Mood     string
	Start    string
	End      string
	AllDay   bool
	noAllDay bool
}

// AddEventArgs wires the event field flags on the provided command.
func AddEventArgs(cmd *cobra.Command, o *EventOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "", "Event title.")
	cmd.Flags().StringVarP(&o.Memo, "memo", "m", "", "Free-form memo.")
	cmd.Flags().StringVar(&o.Mood, "mood", "",
		"Mood tag: "+strings.Join(moodNames(), ", ")+".")
	cmd.Flags().StringVar(&o.Start, "start", "", `Start time, example: --start="09:00".`)
	cmd.Flags().StringVar(&o.End, "end", "", `End time, example: --end="10:30".`)
	cmd.Flags().BoolVar(&o.AllDay, "all-day", false, "Mark the event as all-day.")
	cmd.Flags().BoolVar(&o.noAllDay, "timed", false, "Force a timed event.")
}

// GetMood resolves the mood flag, accepting the tag name or its Japanese label.
func (o *EventOptions) GetMood() (event.Mood, error) {
	if o.Mood == "" {
		return event.NoMood, nil
	}
	if m, err := event.ParseMood(o.Mood); err == nil {
		return m, nil
	}
	for _, m := range event.Moods() {
		if o.Mood == m.Label() {
			return m, nil
		}
	}
	return event.NoMood, fmt.Errorf("unknown mood %q, expected one of %s", o.Mood, strings.Join(moodNames(), ", "))
}

// IsAllDay reports whether the flags describe an all-day event.
func (o *EventOptions) IsAllDay() bool {
	if o.noAllDay {
		return false
	}
	if o.AllDay {
		return true
	}
	return o.Start == "" && o.End == ""
}

func moodNames() []string {
	names := make([]string, 0, len(event.Moods()))
	for _, m := range event.Moods() {
		names = append(names, string(m))
	}
	return names
}
