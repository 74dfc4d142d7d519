package cmd

import "github.com/spf13/cobra"

func newEraseCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "erase",
		Short: "Ask the server to delete your data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := newView(cmd, viewOptions{})
			identity, err := app.guard.Guard(cmd.Context(), view)
			if err != nil {
				return err
			}

			return app.account.Erase(cmd.Context(), view, identity)
		},
	}
}
