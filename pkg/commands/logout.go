package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/auth"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Discard the stored session",
		Example: `
emo logout
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
			if err := c.Logout(context.Background()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(color.Output, "ログアウトしました")
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
