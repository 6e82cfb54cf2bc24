package garmin

import (
	"time"

	"github.com/bnema/garmin-coach/internal/domain"
)

// Mock payloads mirror the shapes Garmin Connect returns. Activities are
// dated relative to now so that date-window queries behave the way they
// would against live data; most recent first.
func mockActivities(now time.Time) []domain.Activity {
	yesterday := now.AddDate(0, 0, -1)
	twoDaysAgo := now.AddDate(0, 0, -2)

	return []domain.Activity{
		{
			ID:              1,
			Name:            "Morning Run",
			Type:            "running",
			StartTime:       time.Date(yesterday.Year(), yesterday.Month(), yesterday.Day(), 7, 0, 0, 0, now.Location()),
			DistanceMeters:  5000,
			DurationSeconds: 1800,
			AverageHR:       145,
			MaxHR:           165,
			Calories:        350,
		},
		{
			ID:              2,
			Name:            "Evening Cycle",
			Type:            "cycling",
			StartTime:       time.Date(twoDaysAgo.Year(), twoDaysAgo.Month(), twoDaysAgo.Day(), 18, 0, 0, 0, now.Location()),
			DistanceMeters:  15000,
			DurationSeconds: 3600,
			AverageHR:       130,
			MaxHR:           155,
			Calories:        450,
		},
	}
}

func mockHeartRate(day time.Time) domain.DailyHeartRate {
	return domain.DailyHeartRate{
		Date:      domain.DateOf(day),
		RestingHR: 55,
		MaxHR:     165,
		AverageHR: 70,
		Zones: map[string]int{
			"zone1": 120,
			"zone2": 45,
			"zone3": 15,
			"zone4": 5,
			"zone5": 1,
		},
	}
}

func mockSleep(day time.Time) domain.SleepRecord {
	return domain.SleepRecord{
		Date:              domain.DateOf(day),
		TotalSleepSeconds: 28800,
		DeepSeconds:       7200,
		LightSeconds:      18000,
		RemSeconds:        3600,
		AwakeSeconds:      600,
		Score:             85,
	}
}

func mockStress(day time.Time) domain.StressRecord {
	return domain.StressRecord{
		Date:            domain.DateOf(day),
		AverageLevel:    35,
		MaxLevel:        65,
		RestMinutes:     180,
		ActivityMinutes: 60,
		LowMinutes:      480,
		MediumMinutes:   120,
		HighMinutes:     30,
	}
}

func mockUserStats() domain.UserStats {
	return domain.UserStats{
		Name:                 "Garmin User",
		Age:                  30,
		WeightKg:             70.0,
		HeightCm:             175.0,
		VO2Max:               52.0,
		FitnessAge:           25,
		TotalActivities:      150,
		TotalDistanceMeters:  750000,
		TotalDurationSeconds: 270000,
	}
}
