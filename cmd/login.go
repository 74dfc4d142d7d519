package cmd

import (
	"fmt"

	"github.com/bnema/mindscreen-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var rawID string
	var name string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with your user ID and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := domain.ParseUserID(rawID)
			if err != nil {
				return fmt.Errorf("--id: %w", err)
			}

			return app.auth.Login(cmd.Context(), newView(cmd, viewOptions{}), id, name)
		},
	}

	cmd.Flags().StringVar(&rawID, "id", "", "User ID returned at registration")
	cmd.Flags().StringVar(&name, "name", "", "Name used at registration")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRegisterCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a user and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.auth.Register(cmd.Context(), newView(cmd, viewOptions{}), name); err != nil {
				return err
			}

			identity, err := app.guard.Guard(cmd.Context(), newView(cmd, viewOptions{}))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Registered %s with ID %s. Keep this ID to log in again.\n", identity.Name, identity.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
