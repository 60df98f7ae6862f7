package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/auth"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addWhoami(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		Example: `
emo whoami
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := store.LoadConfig()
			if err != nil {
				return err
			}
			p, err := store.Load(cfg)
			if err != nil {
				return err
			}
			c := auth.NewClient(cfg.APIURL(), p)
			u, err := c.CurrentUser(context.Background())
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(color.Output, "%s %s <%s>\n", u.Initial, u.Name, u.Email)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
