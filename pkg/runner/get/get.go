package get

import (
	"context"
	"fmt"
	"time"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/printers"
	"github.com/kotanikosei/Emo/pkg/store"
)

// View selects which rendering of the calendar to print.
type View string

const (
	Day   View = "day"
	Week  View = "week"
	Month View = "month"
	List  View = "list"
)

// ParseView maps a CLI argument to a view, accepting a few aliases.
func ParseView(raw string) (View, error) {
	switch raw {
	case "", "month", "m":
		return Month, nil
	case "week", "w":
		return Week, nil
	case "day", "d":
		return Day, nil
	case "list", "l", "agenda":
		return List, nil
	}
	return "", fmt.Errorf("unknown view %q, expected day, week, month, or list", raw)
}

type Get struct {
	View   View
	On     time.Time
	ShowID bool

	Persistence store.Persistence
}

func (g *Get) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: g.Persistence}
	pp := printers.PrettyPrint{ShowID: g.ShowID}
	year, month := dates.YearMonth(g.On)

	switch g.View {
	case Day:
		date := dates.FormatYMD(g.On)
		evs, err := svc.Day(ctx, date)
		if err != nil {
			return err
		}
		pp.DayTimeline(date, evs, time.Now())
	case Week:
		days, perDay, err := svc.Week(ctx, g.On)
		if err != nil {
			return err
		}
		pp.Week(days, perDay)
	case List:
		evs, err := svc.Month(ctx, year, month)
		if err != nil {
			return err
		}
		pp.Title(dates.MonthLabel(year, month))
		pp.List(evs)
	default:
		evs, err := svc.Events(ctx)
		if err != nil {
			return err
		}
		pp.Month(year, month, evs)
	}
	return nil
}
