package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/commands/options"
	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/runner/add"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addAdd(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	oo := &options.OnOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add an event",
		Example: `
emo add 歯医者 --on="2024-02-14" --start="09:00"
emo add ランチ --mood=joy
emo add --memo="よく眠れた" --mood=fun
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				eo.Title = strings.Join(args, " ")
			}
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			mood, err := eo.GetMood()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			a := add.Add{
				Date:        dates.FormatYMD(on),
				Title:       eo.Title,
				Memo:        eo.Memo,
				Mood:        mood,
				Start:       eo.Start,
				End:         eo.End,
				AllDay:      eo.IsAllDay(),
				ShowID:      io.ShowID,
				Persistence: p,
			}
			return a.Do(context.Background())
		},
	}
	options.AddEventArgs(cmd, eo)
	options.AddOnArgs(cmd, oo)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
