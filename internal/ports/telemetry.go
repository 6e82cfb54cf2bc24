package ports

import (
	"context"
	"time"

	"github.com/bnema/garmin-coach/internal/domain"
)

// TelemetrySource retrieves records from the telemetry provider.
//
// Retrieval is read-only and degrades instead of failing: a day with no
// provider data comes back as a zero-filled record for that date, and an
// unauthenticated or unreachable provider yields defaults rather than an
// error. Errors are reserved for context cancellation. Callers have no
// retry logic, so nothing here is worth propagating as fatal.
type TelemetrySource interface {
	// Authenticate establishes a provider session. Safe to call more than
	// once. Reports false on credential or network failure, never an error.
	Authenticate(ctx context.Context) bool

	// Activities returns at most query.Limit records, most recent first,
	// optionally bounded to the inclusive [Start, End] window.
	Activities(ctx context.Context, query domain.ActivityQuery) ([]domain.Activity, error)

	// HeartRate returns the record for day; a zero day means today.
	HeartRate(ctx context.Context, day time.Time) (domain.DailyHeartRate, error)

	// Sleep returns the record for day; a zero day means yesterday.
	Sleep(ctx context.Context, day time.Time) (domain.SleepRecord, error)

	// Stress returns the record for day; a zero day means today.
	Stress(ctx context.Context, day time.Time) (domain.StressRecord, error)

	UserStats(ctx context.Context) (domain.UserStats, error)
}
