package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/runner/search"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addSearch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search titles and memos, newest first",
		Example: `
emo search ランチ
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Load(nil)
			if err != nil {
				return err
			}
			s := search.Search{
				Query:       strings.Join(args, " "),
				Persistence: p,
			}
			return s.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
