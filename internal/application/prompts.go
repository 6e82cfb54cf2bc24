package application

import (
	"fmt"

	"github.com/bnema/garmin-coach/internal/domain"
)

// Prompt templates are deterministic: the same record always produces the
// same prompt, which keeps both backend requests and fallback selection
// reproducible.

func activityPrompt(activity domain.Activity) string {
	return fmt.Sprintf(`As a personal fitness coach, analyze this workout activity and provide brief feedback:

Activity: %s
Type: %s
Distance: %.2f km
Duration: %d minutes
Average Heart Rate: %d bpm
Max Heart Rate: %d bpm
Calories: %d kcal

Provide concise coaching feedback in 2-3 sentences focusing on:
1. Performance assessment
2. One specific recommendation for improvement
`,
		activity.Name,
		activity.Type,
		activity.DistanceKm(),
		activity.DurationMinutes(),
		activity.AverageHR,
		activity.MaxHR,
		activity.Calories,
	)
}

func healthPrompt(snapshot domain.HealthSnapshot) string {
	restingHR, averageHR := "N/A", "N/A"
	if snapshot.HeartRate != nil {
		restingHR = fmt.Sprintf("%d", snapshot.HeartRate.RestingHR)
		averageHR = fmt.Sprintf("%d", snapshot.HeartRate.AverageHR)
	}

	sleepHours, sleepScore := "N/A", "N/A"
	if snapshot.Sleep != nil {
		sleepHours = fmt.Sprintf("%.1f", snapshot.Sleep.TotalHours())
		sleepScore = fmt.Sprintf("%d", snapshot.Sleep.Score)
	}

	stressLevel, restMinutes := "N/A", "N/A"
	if snapshot.Stress != nil {
		stressLevel = fmt.Sprintf("%d", snapshot.Stress.AverageLevel)
		restMinutes = fmt.Sprintf("%d", snapshot.Stress.RestMinutes)
	}

	return fmt.Sprintf(`As a health coach, analyze these daily health metrics and provide brief recommendations:

Heart Rate:
- Resting: %s bpm
- Average: %s bpm

Sleep:
- Total: %s hours
- Sleep Score: %s/100

Stress:
- Average Level: %s
- Rest Time: %s minutes

Provide 2-3 actionable health recommendations based on this data.
`,
		restingHR,
		averageHR,
		sleepHours,
		sleepScore,
		stressLevel,
		restMinutes,
	)
}

func trainingPlanPrompt(stats domain.UserStats, goal string) string {
	return fmt.Sprintf(`Create a brief weekly training plan for this athlete:

User Profile:
- Age: %d years
- Fitness Age: %d years
- VO2 Max: %.1f
- Total Activities: %d

Goal: %s

Provide a concise 7-day training plan with daily recommendations.
`,
		stats.Age,
		stats.FitnessAge,
		stats.VO2Max,
		stats.TotalActivities,
		goal,
	)
}
