// Package timeline computes the vertical placement of timed events on the
// day view's 24-hour strip.
package timeline

import (
	"errors"
	"time"

	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/editor"
	"github.com/kotanikosei/Emo/pkg/event"
)

// PixelsPerHour is the fixed scale of the strip. At 60px per hour one pixel
// is one minute, so offsets are minutes since midnight.
const PixelsPerHour = 60

// MinHeight keeps very short events tappable.
const MinHeight = 30

// StripHeight is the total height of the 24-hour strip.
const StripHeight = 24 * PixelsPerHour

// ErrAllDay marks events that belong in the all-day band, not on the strip.
var ErrAllDay = errors.New("timeline: all-day events are not placed")

// Box is the computed placement of one event.
type Box struct {
	Top    int
	Height int
}

// Bottom returns the pixel row just below the box.
func (b Box) Bottom() int {
	return b.Top + b.Height
}

// Place computes the box for a timed event. A missing end time means the
// default duration; an entered duration shorter than MinHeight minutes still
// renders MinHeight pixels tall.
func Place(e event.Event) (Box, error) {
	if e.IsAllDay {
		return Box{}, ErrAllDay
	}
	start, err := dates.ParseHM(e.StartTime)
	if err != nil {
		return Box{}, err
	}
	duration := editor.DefaultDurationMinutes
	if e.EndTime != "" {
		end, err := dates.ParseHM(e.EndTime)
		if err != nil {
			return Box{}, err
		}
		duration = end - start
	}
	if duration < MinHeight {
		duration = MinHeight
	}
	return Box{
		Top:    start * PixelsPerHour / 60,
		Height: duration * PixelsPerHour / 60,
	}, nil
}

// NowOffset places the current-time indicator line. Callers redraw it on a
// periodic tick; once per minute is enough at this scale.
func NowOffset(now time.Time) int {
	return (now.Hour()*60 + now.Minute()) * PixelsPerHour / 60
}
