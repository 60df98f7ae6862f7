package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/commands/options"
	"github.com/kotanikosei/Emo/pkg/runner/get"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addGet(topLevel *cobra.Command) {
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	var view get.View

	cmd := &cobra.Command{
		Use:   "get [view]",
		Short: "Print the calendar: month (default), week, day, or list",
		Example: `
emo get
emo get week
emo get day --on="2024-02-14"
emo get list --on="2024-02-01"
`,
		ValidArgs: []string{"day", "week", "month", "list"},
		Args: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) > 0 {
				raw = args[0]
			}
			var err error
			view, err = get.ParseView(raw)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			g := get.Get{
				View:        view,
				On:          on,
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return g.Do(context.Background())
		},
	}
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
