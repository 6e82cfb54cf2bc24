package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/spf13/cobra"
)

const defaultActivityLimit = 10

func newFetchDataCmd(app *app) *cobra.Command {
	var dataType string
	var limit int
	var exportPath string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "fetch-data",
		Short: "Retrieve data from Garmin Connect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFetchData(cmd, app, domain.DataKind(dataType), limit, exportPath, asJSON)
		},
	}

	cmd.Flags().StringVarP(&dataType, "data-type", "d", string(domain.DataActivities), "Type of data to fetch (activities, health, stats)")
	cmd.Flags().IntVar(&limit, "limit", defaultActivityLimit, "Maximum number of activities to retrieve")
	cmd.Flags().StringVar(&exportPath, "export", app.cfg.Export.Path, "Write the retrieved data as JSON to this path")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func runFetchData(cmd *cobra.Command, app *app, kind domain.DataKind, limit int, exportPath string, asJSON bool) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q (use activities, health or stats)", domain.ErrUnknownDataKind, kind)
	}

	ctx := cmd.Context()
	authenticateOrWarn(ctx, cmd, app)

	var data any
	var rendered string

	switch kind {
	case domain.DataActivities:
		activities, err := app.service.FetchActivities(ctx, limit)
		if err != nil {
			return err
		}
		data = activities
		rendered = app.formatter.ActivitySummary(activities)

	case domain.DataHealth:
		snapshot, err := app.service.FetchHealthSnapshot(ctx)
		if err != nil {
			return err
		}
		data = snapshot
		rendered = app.formatter.HealthSummary(snapshot)

	case domain.DataStats:
		stats, err := app.service.FetchUserStats(ctx)
		if err != nil {
			return err
		}
		data = stats
		rendered = app.formatter.UserStatsSummary(stats)
	}

	if asJSON {
		serialized, err := app.exporter.Serialize(data)
		if err != nil {
			return err
		}
		rendered = serialized
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
		return err
	}

	if exportPath != "" {
		if _, err := app.exporter.Export(data, exportPath); err != nil {
			return fmt.Errorf("export data: %w", err)
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", exportPath); err != nil {
			return err
		}
	}

	return nil
}

func authenticateOrWarn(ctx context.Context, cmd *cobra.Command, app *app) {
	if !app.telemetry.Authenticate(ctx) {
		// Degraded retrieval is preferred over failing the run.
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: authentication failed, continuing with degraded data")
	}
}
