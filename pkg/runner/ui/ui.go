package ui

import (
	"context"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/store"
	"github.com/kotanikosei/Emo/pkg/tui"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	svc := &app.Service{Persistence: u.Persistence}
	return tui.Run(svc)
}
