package add

import (
	"context"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/editor"
	"github.com/kotanikosei/Emo/pkg/event"
	"github.com/kotanikosei/Emo/pkg/printers"
	"github.com/kotanikosei/Emo/pkg/query"
	"github.com/kotanikosei/Emo/pkg/store"
)

type Add struct {
	Date     string
	Title    string
	Memo     string
	Mood     event.Mood
	Start    string
	End      string
	AllDay   bool
	ShowID   bool

	Persistence store.Persistence
}

func (n *Add) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: n.Persistence}

	saved, err := svc.Save(ctx, editor.Draft{
		Date:      n.Date,
		Title:     n.Title,
		Memo:      n.Memo,
		Mood:      n.Mood,
		IsAllDay:  n.AllDay,
		StartTime: n.Start,
		EndTime:   n.End,
	})
	if err != nil {
		return err
	}

	day, err := svc.Day(ctx, saved.Date)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	d, _ := dates.ParseYMD(saved.Date)
	pp.TitleWithCount(saved.Date+" ("+dates.JapaneseDays[int(d.Weekday())]+")", len(day))
	pp.Events(query.SortForList(day)...)
	return nil
}
