package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kotanikosei/Emo/pkg/runner/users"
	"github.com/kotanikosei/Emo/pkg/store"
	"github.com/kotanikosei/Emo/pkg/user"
)

func addUsers(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "Manage the local user roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := roster()
			if err != nil {
				return err
			}
			return r.List(context.Background())
		},
	}

	addUsersAdd(cmd)
	addUsersSuspend(cmd)
	addUsersActivate(cmd)
	addUsersRemove(cmd)

	topLevel.AddCommand(cmd)
}

func roster() (*users.Roster, error) {
	p, err := store.Load(nil)
	if err != nil {
		return nil, err
	}
	return &users.Roster{Persistence: p}, nil
}

func addUsersAdd(parent *cobra.Command) {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a user",
		Example: `
emo users add --name 小谷 --email kotani@emocal.com --password secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || email == "" {
				return errors.New("--name and --email are required")
			}
			r, err := roster()
			if err != nil {
				return err
			}
			return r.Add(context.Background(), name, email, password)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Display name.")
	cmd.Flags().StringVar(&email, "email", "", "Email address, must be unique.")
	cmd.Flags().StringVar(&password, "password", "", "Initial password.")
	parent.AddCommand(cmd)
}

func addUsersSuspend(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "suspend <id>",
		Short: "Suspend a user",
		Args:  cobra.ExactArgs(1),
		RunE:  setStatusRun(user.StatusSuspended),
	}
	parent.AddCommand(cmd)
}

func addUsersActivate(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "activate <id>",
		Short: "Reactivate a suspended user",
		Args:  cobra.ExactArgs(1),
		RunE:  setStatusRun(user.StatusActive),
	}
	parent.AddCommand(cmd)
}

func setStatusRun(status string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}
		r, err := roster()
		if err != nil {
			return err
		}
		return r.SetStatus(context.Background(), id, status)
	}
}

func addUsersRemove(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			r, err := roster()
			if err != nil {
				return err
			}
			return r.Remove(context.Background(), id)
		},
	}
	parent.AddCommand(cmd)
}
