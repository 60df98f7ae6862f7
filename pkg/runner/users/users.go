package users

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/kotanikosei/Emo/pkg/app"
	"github.com/kotanikosei/Emo/pkg/store"
	"github.com/kotanikosei/Emo/pkg/user"
)

// Roster manages the local admin view of registered users.
type Roster struct {
	Persistence store.Persistence
}

func (r *Roster) List(ctx context.Context) error {
	svc := &app.Service{Persistence: r.Persistence}
	all, err := svc.Users(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		_, _ = color.New(color.Faint, color.Italic).Println(" none")
		return nil
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ID", "", "名前", "メール", "状態")
	for _, u := range all {
		status := "有効"
		if u.Status == user.StatusSuspended {
			status = "停止中"
		}
		admin := ""
		if u.IsAdmin {
			admin = "*"
		}
		tbl.AddRow(fmt.Sprintf("%d", u.ID), admin, u.Initial+" "+u.Name, u.Email, status)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}

func (r *Roster) Add(ctx context.Context, name, email, password string) error {
	svc := &app.Service{Persistence: r.Persistence}
	u, err := svc.AddUser(ctx, name, email, password)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(color.Output, "追加しました: %d %s <%s>\n", u.ID, u.Name, u.Email)
	return nil
}

func (r *Roster) SetStatus(ctx context.Context, id int, status string) error {
	svc := &app.Service{Persistence: r.Persistence}
	return svc.SetUserStatus(ctx, id, status)
}

func (r *Roster) Remove(ctx context.Context, id int) error {
	svc := &app.Service{Persistence: r.Persistence}
	return svc.RemoveUser(ctx, id)
}
