package application

import (
	"testing"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestActivityPromptInterpolatesFields(t *testing.T) {
	prompt := activityPrompt(runningActivity())

	assert.Contains(t, prompt, "workout activity")
	assert.Contains(t, prompt, "Activity: Morning Run")
	assert.Contains(t, prompt, "Type: running")
	assert.Contains(t, prompt, "Distance: 5.00 km")
	assert.Contains(t, prompt, "Duration: 30 minutes")
	assert.Contains(t, prompt, "Average Heart Rate: 145 bpm")
}

func TestActivityPromptIsDeterministic(t *testing.T) {
	assert.Equal(t, activityPrompt(runningActivity()), activityPrompt(runningActivity()))
}

func TestHealthPromptRendersMissingMetricsAsNA(t *testing.T) {
	prompt := healthPrompt(domain.HealthSnapshot{
		HeartRate: &domain.DailyHeartRate{RestingHR: 55, AverageHR: 70},
	})

	assert.Contains(t, prompt, "Resting: 55 bpm")
	assert.Contains(t, prompt, "Total: N/A hours")
	assert.Contains(t, prompt, "Average Level: N/A")
}

func TestTrainingPlanPromptContainsGoal(t *testing.T) {
	prompt := trainingPlanPrompt(domain.UserStats{Age: 30, FitnessAge: 25, VO2Max: 52, TotalActivities: 150}, "Improve 5K time")

	assert.Contains(t, prompt, "training plan")
	assert.Contains(t, prompt, "Goal: Improve 5K time")
	assert.Contains(t, prompt, "VO2 Max: 52.0")
}
