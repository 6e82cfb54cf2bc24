package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityDisplayHelpers(t *testing.T) {
	a := Activity{
		DistanceMeters:  5000,
		DurationSeconds: 1800,
	}

	assert.InDelta(t, 5.0, a.DistanceKm(), 0.001)
	assert.Equal(t, 30, a.DurationMinutes())
}

func TestActivityQueryMatchesWindowInclusive(t *testing.T) {
	start := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	query := ActivityQuery{Start: start, End: end, Limit: 10}

	tests := []struct {
		name      string
		startTime time.Time
		want      bool
	}{
		{name: "inside window", startTime: time.Date(2026, 8, 15, 7, 0, 0, 0, time.UTC), want: true},
		{name: "on start boundary", startTime: start, want: true},
		{name: "on end boundary", startTime: end, want: true},
		{name: "before window", startTime: start.Add(-time.Hour), want: false},
		{name: "after window", startTime: end.Add(time.Hour), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, query.Matches(Activity{StartTime: tt.startTime}))
		})
	}
}

func TestActivityQueryZeroWindowMatchesEverything(t *testing.T) {
	query := ActivityQuery{Limit: 10}

	assert.True(t, query.Matches(Activity{StartTime: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)}))
	assert.True(t, query.Matches(Activity{StartTime: time.Date(2099, 1, 1, 0, 0, 0, 0, time.UTC)}))
}

func TestDateRoundTrip(t *testing.T) {
	d := DateOf(time.Date(2026, 8, 27, 15, 4, 5, 0, time.UTC))
	require.Equal(t, "2026-08-27", d.String())

	encoded, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-27"`, string(encoded))

	var decoded Date
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, d, decoded)
}

func TestDateUnmarshalEmptyAndInvalid(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"27/08/2026"`), &d))
}

func TestKindValidation(t *testing.T) {
	assert.True(t, CoachingActivity.Valid())
	assert.True(t, CoachingHealth.Valid())
	assert.True(t, CoachingPlan.Valid())
	assert.False(t, CoachingKind("workout").Valid())

	assert.True(t, DataActivities.Valid())
	assert.True(t, DataHealth.Valid())
	assert.True(t, DataStats.Valid())
	assert.False(t, DataKind("sleep").Valid())

	assert.True(t, ProviderOllama.Valid())
	assert.True(t, ProviderMock.Valid())
	assert.False(t, Provider("huggingface").Valid())
}

func TestHeartRateIsZero(t *testing.T) {
	assert.True(t, DailyHeartRate{Date: DateOf(time.Now())}.IsZero())
	assert.False(t, DailyHeartRate{RestingHR: 55}.IsZero())
}
