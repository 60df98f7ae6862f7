package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/commands/options"
	"github.com/kotanikosei/Emo/pkg/dates"
	"github.com/kotanikosei/Emo/pkg/runner/edit"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addEdit(topLevel *cobra.Command) {
	eo := &options.EventOptions{}
	io := &options.IDOptions{}
	ono := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "edit --id <id>",
		Short: "Edit a stored event",
		Example: `
emo edit --id 171dff69 --title="新しいタイトル"
emo edit --id 171dff69 --mood=sad --start="13:00"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("--id is required")
			}
			mood, err := eo.GetMood()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			e := edit.Edit{
				ID:          io.ID,
				Title:       eo.Title,
				Memo:        eo.Memo,
				Mood:        mood,
				Start:       eo.Start,
				End:         eo.End,
				AllDay:      eo.AllDay,
				SetAllDay:   cmd.Flags().Changed("all-day") || cmd.Flags().Changed("timed"),
				SetMood:     cmd.Flags().Changed("mood"),
				Persistence: p,
			}
			if ono.OnString != "" {
				on, err := ono.GetOn()
				if err != nil {
					return err
				}
				e.Date = dates.FormatYMD(on)
			}
			return e.Do(context.Background())
		},
	}
	options.AddEventArgs(cmd, eo)
	options.AddIDArgs(cmd, io)
	options.AddOnArgs(cmd, ono)

	topLevel.AddCommand(cmd)
}
