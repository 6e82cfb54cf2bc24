package domain

import "time"

// ActivityID identifies a single recorded workout session.
type ActivityID int64

// Activity is one workout session as reported by the telemetry provider.
// Field tags follow the provider payload so exports stay byte-compatible
// with what Garmin Connect returns.
type Activity struct {
	ID              ActivityID `json:"activityId"`
	Name            string     `json:"activityName"`
	Type            string     `json:"activityType"`
	StartTime       time.Time  `json:"startTime"`
	DistanceMeters  float64    `json:"distance"`
	DurationSeconds int        `json:"duration"`
	AverageHR       int        `json:"averageHR"`
	MaxHR           int        `json:"maxHR"`
	Calories        int        `json:"calories"`
}

func (a Activity) DistanceKm() float64 {
	return a.DistanceMeters / 1000
}

func (a Activity) DurationMinutes() int {
	return a.DurationSeconds / 60
}

// DailyHeartRate holds one calendar day of heart rate metrics. Zones maps
// the provider zone names (zone1..zone5) to minutes spent in each.
type DailyHeartRate struct {
	Date      Date           `json:"date"`
	RestingHR int            `json:"restingHeartRate"`
	MaxHR     int            `json:"maxHeartRate"`
	AverageHR int            `json:"averageHeartRate"`
	Zones     map[string]int `json:"heartRateZones"`
}

func (h DailyHeartRate) IsZero() bool {
	return h.RestingHR == 0 && h.MaxHR == 0 && h.AverageHR == 0 && len(h.Zones) == 0
}

// SleepRecord carries the provider sleep-stage breakdown for one night.
// The pipeline never interprets the stages beyond display.
type SleepRecord struct {
	Date              Date `json:"date"`
	TotalSleepSeconds int  `json:"totalSleepTime"`
	DeepSeconds       int  `json:"deepSleep"`
	LightSeconds      int  `json:"lightSleep"`
	RemSeconds        int  `json:"remSleep"`
	AwakeSeconds      int  `json:"awakeTime"`
	Score             int  `json:"sleepScore"`
}

func (s SleepRecord) TotalHours() float64 {
	return float64(s.TotalSleepSeconds) / 3600
}

// StressRecord carries the provider stress metrics for one day.
type StressRecord struct {
	Date            Date `json:"date"`
	AverageLevel    int  `json:"averageStressLevel"`
	MaxLevel        int  `json:"maxStressLevel"`
	RestMinutes     int  `json:"restTime"`
	ActivityMinutes int  `json:"activityTime"`
	LowMinutes      int  `json:"lowStressTime"`
	MediumMinutes   int  `json:"mediumStressTime"`
	HighMinutes     int  `json:"highStressTime"`
}

// UserStats is the provider profile aggregate used for plan generation.
type UserStats struct {
	Name                 string  `json:"userName"`
	Age                  int     `json:"userAge"`
	WeightKg             float64 `json:"userWeight"`
	HeightCm             float64 `json:"userHeight"`
	VO2Max               float64 `json:"vo2Max"`
	FitnessAge           int     `json:"fitnessAge"`
	TotalActivities      int     `json:"totalActivities"`
	TotalDistanceMeters  float64 `json:"totalDistance"`
	TotalDurationSeconds int     `json:"totalDuration"`
}

// ActivityQuery bounds an activity retrieval. A zero Start/End means
// unfiltered; Limit <= 0 yields no records rather than an error.
type ActivityQuery struct {
	Start time.Time
	End   time.Time
	Limit int
}

// Matches reports whether the activity start time falls inside the
// inclusive [Start, End] window.
func (q ActivityQuery) Matches(a Activity) bool {
	if !q.Start.IsZero() && a.StartTime.Before(q.Start) {
		return false
	}
	if !q.End.IsZero() && a.StartTime.After(q.End) {
		return false
	}
	return true
}

// HealthSnapshot groups the three daily metrics consumed by health
// summaries and health coaching. A nil member means the provider had no
// data for that metric; consumers must still render its section.
type HealthSnapshot struct {
	HeartRate *DailyHeartRate `json:"heart_rate"`
	Sleep     *SleepRecord    `json:"sleep"`
	Stress    *StressRecord   `json:"stress"`
}
