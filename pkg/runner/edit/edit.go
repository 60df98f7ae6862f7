package edit

import (
	"context"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/editor"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/printers"
	"github.com/kotanikosei/Emo/pkg/store"
)

// Edit updates a single stored event. Zero-valued fields keep the stored
// value; Clear* flags blank a field on purpose.
type Edit struct {
	ID     string
	Date   string
	Title  string
	Memo   string
	Mood   event.Mood
	Start  string
	End    string
	AllDay bool

	SetAllDay bool
	SetMood   bool

	Persistence store.Persistence
}

func (e *Edit) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: e.Persistence}

	existing, err := svc.Find(ctx, e.ID)
	if err != nil {
		return err
	}

	d := editor.FromEvent(existing)
	if e.Date != "" {
		d.Date = e.Date
	}
	if e.Title != "" {
		d.Title = e.Title
	}
	if e.Memo != "" {
		d.Memo = e.Memo
	}
	if e.SetMood {
		d.Mood = e.Mood
	}
	if e.Start != "" {
		d.StartTime = e.Start
		d.IsAllDay = false
	}
	if e.End != "" {
		d.EndTime = e.End
		d.IsAllDay = false
	}
	if e.SetAllDay {
		d.IsAllDay = e.AllDay
		if e.AllDay {
			d.StartTime = ""
			d.EndTime = ""
		}
	}

	saved, err := svc.Save(ctx, d)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title(saved.Date)
	pp.Events(saved)
	return nil
}
