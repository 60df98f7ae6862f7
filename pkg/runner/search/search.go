package search

import (
	"context"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/printers"
	"github.com/kotanikosei/Emo/pkg/store"
)

type Search struct {
	Query string

	Persistence store.Persistence
}

func (s *Search) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: s.Persistence}
	results, err := svc.Search(ctx, s.Query)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.SearchResults(s.Query, results)
	return nil
}
