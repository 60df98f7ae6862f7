package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/commands/options"
	"github.com/kotanikosei/Emo/pkg/runner/remove"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addDelete(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "delete --id <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a stored event",
		Example: `
emo delete --id 171dff69
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if io.ID == "" {
				return errors.New("--id is required")
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:          io.ID,
				Persistence: p,
			}
			return r.Do(context.Background())
		},
	}
	options.AddIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
