package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHomeCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show where to go next based on the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.guard.Home(cmd.Context(), newView(cmd, viewOptions{}))
		},
	}
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the saved session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return app.guard.Logout(cmd.Context(), newView(cmd, viewOptions{}))
		},
	}
}

func newAccountCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			identity, err := app.guard.Guard(cmd.Context(), newView(cmd, viewOptions{}))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", identity.ID, identity.Name)
			return err
		},
	}
}
