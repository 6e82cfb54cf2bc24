package ports

import "github.com/bnema/garmin-coach/internal/domain"

// RecordFormatter renders retrieved records as human-readable summaries.
// Both operations return a non-empty string even for absent input so the
// summary structure stays predictable for display and tests.
type RecordFormatter interface {
	ActivitySummary(activities []domain.Activity) string
	HealthSummary(snapshot domain.HealthSnapshot) string
}

// Exporter serializes records to a portable text format, optionally
// persisting the result.
type Exporter interface {
	Serialize(v any) (string, error)

	// Export serializes v and writes it to path, overwriting an existing
	// file. Returns the serialized text.
	Export(v any, path string) (string, error)
}
