package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/spf13/cobra"
)

const defaultTrainingGoal = "Improve 5K running time and build endurance"

func newCoachingCmd(app *app) *cobra.Command {
	var coachingType string
	var goal string

	cmd := &cobra.Command{
		Use:   "coaching",
		Short: "Get AI coaching feedback",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCoaching(cmd, app, domain.CoachingKind(coachingType), goal)
		},
	}

	cmd.Flags().StringVarP(&coachingType, "coaching-type", "c", string(domain.CoachingActivity), "Type of coaching (activity, health, plan)")
	cmd.Flags().StringVar(&goal, "goal", defaultTrainingGoal, "Training goal for plan generation")

	return cmd
}

func runCoaching(cmd *cobra.Command, app *app, kind domain.CoachingKind, goal string) error {
	if !kind.Valid() {
		return fmt.Errorf("%w: %q (use activity, health or plan)", domain.ErrUnknownCoachingKind, kind)
	}

	ctx := cmd.Context()
	authenticateOrWarn(ctx, cmd, app)

	var feedback string
	generate := func(ctx context.Context) error {
		var err error
		feedback, err = coachingFeedback(ctx, app, kind, goal)
		return err
	}

	label := fmt.Sprintf("Generating coaching feedback with %s...", strings.ToLower(app.cfg.Coach.Provider))
	if err := runCoachingSpinner(ctx, cmd.ErrOrStderr(), label, generate); err != nil {
		if errors.Is(err, domain.ErrNoActivities) {
			// A retrieval miss is a valid empty result, not a failure.
			_, printErr := fmt.Fprintln(cmd.OutOrStdout(), "No activities found.")
			return printErr
		}
		return err
	}

	_, err := fmt.Fprintln(cmd.OutOrStdout(), feedback)
	return err
}

func coachingFeedback(ctx context.Context, app *app, kind domain.CoachingKind, goal string) (string, error) {
	switch kind {
	case domain.CoachingActivity:
		activity, err := app.service.LatestActivity(ctx)
		if err != nil {
			return "", err
		}
		return app.service.AnalyzeActivity(ctx, activity), nil

	case domain.CoachingHealth:
		snapshot, err := app.service.FetchHealthSnapshot(ctx)
		if err != nil {
			return "", err
		}
		return app.service.AnalyzeHealth(ctx, snapshot), nil

	case domain.CoachingPlan:
		stats, err := app.service.FetchUserStats(ctx)
		if err != nil {
			return "", err
		}
		return app.service.TrainingPlan(ctx, stats, goal), nil

	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownCoachingKind, kind)
	}
}
