package garmin

import (
	"context"
	"testing"
	"time"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

var testNow = time.Date(2026, 8, 27, 12, 0, 0, 0, time.UTC)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	t.Setenv("GARMIN_EMAIL", "")
	t.Setenv("GARMIN_PASSWORD", "")

	return NewClient(fixedClock{now: testNow})
}

func TestAuthenticateIsIdempotentAndSucceedsInMockMode(t *testing.T) {
	client := newTestClient(t)

	assert.True(t, client.MockMode())
	assert.True(t, client.Authenticate(context.Background()))
	assert.True(t, client.Authenticate(context.Background()))
}

func TestActivitiesRespectsLimit(t *testing.T) {
	client := newTestClient(t)

	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "limit one", limit: 1, want: 1},
		{name: "limit above available", limit: 10, want: 2},
		{name: "zero limit yields empty", limit: 0, want: 0},
		{name: "negative limit yields empty", limit: -3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			activities, err := client.Activities(context.Background(), domain.ActivityQuery{Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, activities, tt.want)
		})
	}
}

func TestActivitiesMostRecentFirst(t *testing.T) {
	client := newTestClient(t)

	activities, err := client.Activities(context.Background(), domain.ActivityQuery{Limit: 10})
	require.NoError(t, err)
	require.Len(t, activities, 2)

	assert.Equal(t, "Morning Run", activities[0].Name)
	assert.True(t, activities[0].StartTime.After(activities[1].StartTime))
}

func TestActivitiesDateWindowFilter(t *testing.T) {
	client := newTestClient(t)

	// Only the run from yesterday falls inside the window.
	query := domain.ActivityQuery{
		Start: testNow.AddDate(0, 0, -1).Truncate(24 * time.Hour),
		End:   testNow,
		Limit: 10,
	}

	activities, err := client.Activities(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, activities, 1)
	assert.Equal(t, "Morning Run", activities[0].Name)
}

func TestHeartRateDefaultsToToday(t *testing.T) {
	client := newTestClient(t)

	record, err := client.HeartRate(context.Background(), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, domain.DateOf(testNow), record.Date)
	assert.Equal(t, 55, record.RestingHR)
	assert.Len(t, record.Zones, 5)
}

func TestSleepDefaultsToYesterday(t *testing.T) {
	client := newTestClient(t)

	record, err := client.Sleep(context.Background(), time.Time{})
	require.NoError(t, err)

	assert.Equal(t, domain.DateOf(testNow.AddDate(0, 0, -1)), record.Date)
	assert.Equal(t, 28800, record.TotalSleepSeconds)
}

func TestStressCarriesRequestedDate(t *testing.T) {
	client := newTestClient(t)

	day := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	record, err := client.Stress(context.Background(), day)
	require.NoError(t, err)

	assert.Equal(t, domain.DateOf(day), record.Date)
	assert.Equal(t, 35, record.AverageLevel)
}

func TestUserStatsProfile(t *testing.T) {
	client := newTestClient(t)

	stats, err := client.UserStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Garmin User", stats.Name)
	assert.InDelta(t, 52.0, stats.VO2Max, 0.001)
}

func TestRetrievalHonorsCancelledContext(t *testing.T) {
	client := newTestClient(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Activities(ctx, domain.ActivityQuery{Limit: 1})
	require.ErrorIs(t, err, context.Canceled)

	_, err = client.HeartRate(ctx, time.Time{})
	require.ErrorIs(t, err, context.Canceled)
}
