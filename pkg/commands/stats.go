package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/commands/options"
	"github.com/kotanikosei/Emo/pkg/runner/stats"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addStats(topLevel *cobra.Command) {
	oo := &options.OnOptions{}

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the month's mood tally",
		Example: `
emo stats
emo stats --on="2024-02-01"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return err
			}
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := stats.Stats{
				On:          on,
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}
	options.AddOnArgs(cmd, oo)

	topLevel.AddCommand(cmd)
}
