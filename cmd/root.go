package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ms",
		Short:         "MindScreen CLI (ms): take the mental-health screening from the terminal",
		Long:          "ms signs you in to a MindScreen server, walks you through the screening survey, runs the screening pipeline with live progress, and shows the result.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newHomeCmd(app),
		newLoginCmd(app),
		newRegisterCmd(app),
		newLogoutCmd(app),
		newAccountCmd(app),
		newSurveyCmd(app),
		newPipelineCmd(app),
		newEraseCmd(app),
	)

	return rootCmd
}
