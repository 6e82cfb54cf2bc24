package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "garmin-coach",
		Short:         "A personal coach for Garmin devices",
		Long:          "garmin-coach retrieves activity and health telemetry from Garmin Connect, renders summaries and JSON exports, and produces AI coaching feedback through a configurable text-generation backend.",
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

	rootCmd.AddCommand(
		newVersionCmd(),
		newFetchDataCmd(app),
		newCoachingCmd(app),
		newExampleCmd(app),
	)

	return rootCmd
}
