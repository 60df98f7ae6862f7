package remove

import (
	"context"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/printers"
	"github.com/kotanikosei/Emo/pkg/store"
)

type Remove struct {
	ID string

	Persistence store.Persistence
}

func (r *Remove) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: r.Persistence}

	existing, err := svc.Find(ctx, r.ID)
	if err != nil {
		return err
	}
	if err := svc.Delete(ctx, r.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Title("削除しました")
	pp.Events(existing)
	return nil
}
