package cmd

import (
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPipelineCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "pipeline",
		Aliases: []string{"result"},
		Short:   "Run the screening on your submitted survey and show the result",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view := newView(cmd, viewOptions{suppressResult: asJSON, animate: !asJSON})
			identity, err := app.guard.Guard(cmd.Context(), view)
			if err != nil {
				return err
			}

			view.StartLoader(cmd.Context())
			result, err := app.pipeline.Run(cmd.Context(), view, identity)
			if stopErr := view.StopLoader(); stopErr != nil {
				app.log.Debug("loader stopped with error", zap.Error(stopErr))
			}
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw result as JSON")

	return cmd
}
