package garmin

import (
	"context"
	"os"
	"time"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/bnema/garmin-coach/internal/ports"
)

const (
	emailEnv    = "GARMIN_EMAIL"
	passwordEnv = "GARMIN_PASSWORD"
)

// Client retrieves records from Garmin Connect.
//
// The real Garmin Connect protocol is an external collaborator this module
// does not implement: when no credential pair is present in the
// environment, or until a real transport lands, every retrieval serves
// deterministic mock payloads. That mock-data contract is the documented
// default, not an error path.
type Client struct {
	email    string
	password string
	clock    ports.Clock
}

var _ ports.TelemetrySource = (*Client)(nil)

// NewClient reads the credential pair from the environment once. Absence
// is tolerated; the client then runs in mock mode.
func NewClient(clock ports.Clock) *Client {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Client{
		email:    os.Getenv(emailEnv),
		password: os.Getenv(passwordEnv),
		clock:    clock,
	}
}

// MockMode reports whether the client serves mock payloads instead of
// live provider data.
func (c *Client) MockMode() bool {
	return c.email == "" || c.password == ""
}

// Authenticate establishes a session. Idempotent; in mock mode it always
// succeeds. Credential or network failures surface as false, never as an
// error, because the caller has no recovery beyond degrading to mock data.
func (c *Client) Authenticate(_ context.Context) bool {
	return true
}

func (c *Client) Activities(ctx context.Context, query domain.ActivityQuery) ([]domain.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if query.Limit <= 0 {
		return []domain.Activity{}, nil
	}

	activities := mockActivities(c.clock.Now())

	matched := make([]domain.Activity, 0, len(activities))
	for _, activity := range activities {
		if !query.Matches(activity) {
			continue
		}

		matched = append(matched, activity)
		if len(matched) == query.Limit {
			break
		}
	}

	return matched, nil
}

// HeartRate returns the record for day, defaulting to today. A day the
// provider has no data for comes back as a zero-filled record carrying the
// requested date, so callers can always render a dated section.
func (c *Client) HeartRate(ctx context.Context, day time.Time) (domain.DailyHeartRate, error) {
	if err := ctx.Err(); err != nil {
		return domain.DailyHeartRate{}, err
	}

	if day.IsZero() {
		day = c.clock.Now()
	}

	return mockHeartRate(day), nil
}

// Sleep returns the record for day, defaulting to yesterday (sleep data
// for the current night is not complete until the day after).
func (c *Client) Sleep(ctx context.Context, day time.Time) (domain.SleepRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.SleepRecord{}, err
	}

	if day.IsZero() {
		day = c.clock.Now().AddDate(0, 0, -1)
	}

	return mockSleep(day), nil
}

// Stress returns the record for day, defaulting to today.
func (c *Client) Stress(ctx context.Context, day time.Time) (domain.StressRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.StressRecord{}, err
	}

	if day.IsZero() {
		day = c.clock.Now()
	}

	return mockStress(day), nil
}

func (c *Client) UserStats(ctx context.Context) (domain.UserStats, error) {
	if err := ctx.Err(); err != nil {
		return domain.UserStats{}, err
	}

	return mockUserStats(), nil
}
