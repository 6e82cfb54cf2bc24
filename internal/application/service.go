package application

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/bnema/garmin-coach/internal/ports"
)

const defaultFallbackResponse = "Keep up the good work with your training! Stay consistent and focus on gradual improvement."

// FallbackFunc picks a canned response for a prompt when the backend is
// unreachable or returns nothing usable.
type FallbackFunc func(prompt string) string

// Service is the coaching pipeline: it pulls records from the telemetry
// source, builds prompts, and dispatches them to the configured backend.
//
// The three coaching operations never fail: a backend timeout, refusal,
// non-success status or blank response falls back to the canned rules, so
// callers always receive a non-empty string. One attempt per call.
type Service struct {
	source   ports.TelemetrySource
	backend  ports.CoachingBackend
	fallback FallbackFunc
}

func NewService(source ports.TelemetrySource, backend ports.CoachingBackend, fallback FallbackFunc) *Service {
	if fallback == nil {
		fallback = func(string) string { return defaultFallbackResponse }
	}

	return &Service{
		source:   source,
		backend:  backend,
		fallback: fallback,
	}
}

func (s *Service) FetchActivities(ctx context.Context, limit int) ([]domain.Activity, error) {
	activities, err := s.source.Activities(ctx, domain.ActivityQuery{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}

	return activities, nil
}

// FetchHealthSnapshot gathers the three daily metrics with their default
// dates: heart rate and stress for today, sleep for yesterday.
func (s *Service) FetchHealthSnapshot(ctx context.Context) (domain.HealthSnapshot, error) {
	heartRate, err := s.source.HeartRate(ctx, time.Time{})
	if err != nil {
		return domain.HealthSnapshot{}, fmt.Errorf("fetch heart rate: %w", err)
	}

	sleep, err := s.source.Sleep(ctx, time.Time{})
	if err != nil {
		return domain.HealthSnapshot{}, fmt.Errorf("fetch sleep: %w", err)
	}

	stress, err := s.source.Stress(ctx, time.Time{})
	if err != nil {
		return domain.HealthSnapshot{}, fmt.Errorf("fetch stress: %w", err)
	}

	return domain.HealthSnapshot{
		HeartRate: &heartRate,
		Sleep:     &sleep,
		Stress:    &stress,
	}, nil
}

func (s *Service) FetchUserStats(ctx context.Context) (domain.UserStats, error) {
	stats, err := s.source.UserStats(ctx)
	if err != nil {
		return domain.UserStats{}, fmt.Errorf("fetch user stats: %w", err)
	}

	return stats, nil
}

// LatestActivity returns the most recent activity on record.
func (s *Service) LatestActivity(ctx context.Context) (domain.Activity, error) {
	activities, err := s.FetchActivities(ctx, 1)
	if err != nil {
		return domain.Activity{}, err
	}
	if len(activities) == 0 {
		return domain.Activity{}, domain.ErrNoActivities
	}

	return activities[0], nil
}

// AnalyzeActivity produces coaching feedback for one workout. The header
// names the activity and its type so the feedback stays attributable even
// on the fallback path.
func (s *Service) AnalyzeActivity(ctx context.Context, activity domain.Activity) string {
	feedback := s.generate(ctx, activityPrompt(activity))
	return fmt.Sprintf("Coaching feedback for %s (%s):\n\n%s", activity.Name, activity.Type, feedback)
}

// AnalyzeHealth produces recommendations from the daily metrics snapshot.
func (s *Service) AnalyzeHealth(ctx context.Context, snapshot domain.HealthSnapshot) string {
	return s.generate(ctx, healthPrompt(snapshot))
}

// TrainingPlan produces a weekly plan for the stated goal. The goal text
// is echoed verbatim in the result.
func (s *Service) TrainingPlan(ctx context.Context, stats domain.UserStats, goal string) string {
	plan := s.generate(ctx, trainingPlanPrompt(stats, goal))
	return fmt.Sprintf("Goal: %s\n\n%s", goal, plan)
}

func (s *Service) generate(ctx context.Context, prompt string) string {
	text, err := s.backend.Generate(ctx, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		return s.fallback(prompt)
	}

	return strings.TrimSpace(text)
}
