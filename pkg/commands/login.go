package commands

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/auth"
	"github.com/kotanikosei/Emo/pkg/store"
)

func addLogin(topLevel *cobra.Command) {
	var email, password string
	var admin, guest bool

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to the sync backend",
		Long: "Sign in to the sync backend. When the backend is unreachable " +
			"the fixed fallback credentials still work offline.",
		Example: `
emo login --email you@example.com --password secret
emo login --email 000 --password 000
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
			if guest {
				u, err := c.Guest()
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(color.Output, "%sとして続行します\n", u.Name)
				return nil
			}
			u, err := c.Login(context.Background(), email, password, admin)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(color.Output, "ようこそ、%sさん\n", u.Name)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "Account email (or fallback ID).")
	cmd.Flags().StringVar(&password, "password", "", "Account password.")
	cmd.Flags().BoolVar(&admin, "admin", false, "Request an admin session.")
	cmd.Flags().BoolVar(&guest, "guest", false, "Continue without an account; nothing is synced.")

	topLevel.AddCommand(cmd)
}
