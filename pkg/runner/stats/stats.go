package stats

import (
	"context"
	"time"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/printers"
	"github.com/kotanikosei/Emo/pkg/store"
)

type Stats struct {
	On time.Time

	Persistence store.Persistence
}

func (s *Stats) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: s.Persistence}
	year, month := dates.YearMonth(s.On)
	tally, err := svc.MoodTally(ctx, year, month)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Title(dates.MonthLabel(year, month) + " の気分")
	pp.Stats(tally)
	return nil
}
