package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/spf13/cobra"
)

const exampleExportFile = "garmin_data_export.json"

// combinedExport is the demo artifact written by `example --example-type
// data`, mirroring the layout of the provider exports.
type combinedExport struct {
	Activities      []domain.Activity     `json:"activities"`
	Health          domain.HealthSnapshot `json:"health"`
	UserStats       domain.UserStats      `json:"user_stats"`
	ExportTimestamp time.Time             `json:"export_timestamp"`
}

func newExampleCmd(app *app) *cobra.Command {
	var exampleType string

	cmd := &cobra.Command{
		Use:   "example",
		Short: "Run example flows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch exampleType {
			case "data":
				return runDataExample(cmd, app)
			case "ai":
				return runAIExample(cmd, app)
			default:
				return fmt.Errorf("unknown example type %q (use data or ai)", exampleType)
			}
		},
	}

	cmd.Flags().StringVarP(&exampleType, "example-type", "e", "data", "Which example to run (data, ai)")

	return cmd
}

func runDataExample(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintln(out, "Garmin Coach - Data Retrieval Example")
	fmt.Fprintln(out)

	authenticateOrWarn(ctx, cmd, app)

	activities, err := app.service.FetchActivities(ctx, 5)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Retrieved %d activities\n\n", len(activities))
	fmt.Fprintln(out, app.formatter.ActivitySummary(activities))

	snapshot, err := app.service.FetchHealthSnapshot(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, app.formatter.HealthSummary(snapshot))

	stats, err := app.service.FetchUserStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, app.formatter.UserStatsSummary(stats))

	exported := combinedExport{
		Activities:      activities,
		Health:          snapshot,
		UserStats:       stats,
		ExportTimestamp: time.Now(),
	}
	if _, err := app.exporter.Export(exported, exampleExportFile); err != nil {
		return fmt.Errorf("export data: %w", err)
	}
	fmt.Fprintf(out, "Data exported to %s\n", exampleExportFile)

	return nil
}

func runAIExample(cmd *cobra.Command, app *app) error {
	out := cmd.OutOrStdout()
	ctx := cmd.Context()

	fmt.Fprintln(out, "Garmin Coach - AI Coaching Example")
	fmt.Fprintln(out)

	authenticateOrWarn(ctx, cmd, app)

	activity, err := app.service.LatestActivity(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Step 1: Analyzing Recent Activity")
	fmt.Fprintln(out, app.service.AnalyzeActivity(ctx, activity))
	fmt.Fprintln(out)

	snapshot, err := app.service.FetchHealthSnapshot(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Step 2: Analyzing Health Metrics")
	fmt.Fprintln(out, app.service.AnalyzeHealth(ctx, snapshot))
	fmt.Fprintln(out)

	stats, err := app.service.FetchUserStats(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, "Step 3: Creating Personalized Training Plan")
	fmt.Fprintln(out, app.service.TrainingPlan(ctx, stats, defaultTrainingGoal))

	return nil
}
