package summary

import (
	"fmt"

	"github.com/bnema/garmin-coach/internal/domain"
	"github.com/bnema/garmin-coach/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const noDataLabel = "no data"

// Renderer turns retrieved records into the terminal summaries shown by
// fetch-data and the example flows.
type Renderer struct {
	styles styles
}

var _ ports.RecordFormatter = Renderer{}

func NewRenderer() Renderer {
	return Renderer{styles: newStyles()}
}

// ActivitySummary renders one block per activity, most recent first. An
// empty slice yields a "No activities found." message rather than an
// empty string.
func (r Renderer) ActivitySummary(activities []domain.Activity) string {
	s := r.styles
	lines := []string{
		s.title.Render("Activity Summary"),
	}

	if len(activities) == 0 {
		lines = append(lines, s.empty.Render("No activities found."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, activity := range activities {
		lines = append(lines, s.section.Render(r.renderActivity(i+1, activity)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r Renderer) renderActivity(position int, activity domain.Activity) string {
	s := r.styles
	parts := []string{
		s.name.Render(fmt.Sprintf("Activity %d: %s", position, activity.Name)),
		r.detail("Type", activity.Type),
		r.detail("Date", activity.StartTime.Format("2006-01-02 15:04")),
		r.detail("Distance", fmt.Sprintf("%.2f km", activity.DistanceKm())),
		r.detail("Duration", fmt.Sprintf("%d minutes", activity.DurationMinutes())),
		r.detail("Avg HR", fmt.Sprintf("%d bpm", activity.AverageHR)),
		r.detail("Max HR", fmt.Sprintf("%d bpm", activity.MaxHR)),
		r.detail("Calories", fmt.Sprintf("%d kcal", activity.Calories)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// HealthSummary renders the heart rate, sleep and stress sections in a
// fixed order. An absent record still gets its section, rendered as
// "no data", so the summary shape stays predictable.
func (r Renderer) HealthSummary(snapshot domain.HealthSnapshot) string {
	s := r.styles
	lines := []string{
		s.title.Render("Health Summary"),
		s.section.Render(r.renderHeartRate(snapshot.HeartRate)),
		s.section.Render(r.renderSleep(snapshot.Sleep)),
		s.section.Render(r.renderStress(snapshot.Stress)),
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (r Renderer) renderHeartRate(record *domain.DailyHeartRate) string {
	s := r.styles
	if record == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render("Heart Rate"),
			s.empty.Render(noDataLabel),
		)
	}

	// A zero-filled record is how the source reports a day without
	// measurements; keep the dated heading but show no metrics.
	if record.IsZero() {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render(fmt.Sprintf("Heart Rate (%s)", record.Date)),
			s.empty.Render(noDataLabel),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.name.Render(fmt.Sprintf("Heart Rate (%s)", record.Date)),
		r.detail("Resting HR", fmt.Sprintf("%d bpm", record.RestingHR)),
		r.detail("Average HR", fmt.Sprintf("%d bpm", record.AverageHR)),
		r.detail("Max HR", fmt.Sprintf("%d bpm", record.MaxHR)),
	)
}

func (r Renderer) renderSleep(record *domain.SleepRecord) string {
	s := r.styles
	if record == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render("Sleep"),
			s.empty.Render(noDataLabel),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.name.Render(fmt.Sprintf("Sleep (%s)", record.Date)),
		r.detail("Total Sleep", fmt.Sprintf("%.1f hours", record.TotalHours())),
		r.detail("Deep Sleep", fmt.Sprintf("%.1f hours", float64(record.DeepSeconds)/3600)),
		r.detail("Light Sleep", fmt.Sprintf("%.1f hours", float64(record.LightSeconds)/3600)),
		r.detail("REM Sleep", fmt.Sprintf("%.1f hours", float64(record.RemSeconds)/3600)),
		r.detail("Sleep Score", fmt.Sprintf("%d/100", record.Score)),
	)
}

func (r Renderer) renderStress(record *domain.StressRecord) string {
	s := r.styles
	if record == nil {
		return lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render("Stress"),
			s.empty.Render(noDataLabel),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		s.name.Render(fmt.Sprintf("Stress (%s)", record.Date)),
		r.detail("Average Stress", fmt.Sprintf("%d", record.AverageLevel)),
		r.detail("Max Stress", fmt.Sprintf("%d", record.MaxLevel)),
		r.detail("Rest Time", fmt.Sprintf("%d minutes", record.RestMinutes)),
	)
}

// UserStatsSummary renders the profile aggregate shown by fetch-data --data-type stats.
func (r Renderer) UserStatsSummary(stats domain.UserStats) string {
	s := r.styles
	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("User Statistics"),
		s.section.Render(lipgloss.JoinVertical(lipgloss.Left,
			s.name.Render(stats.Name),
			r.detail("Age", fmt.Sprintf("%d years", stats.Age)),
			r.detail("Fitness Age", fmt.Sprintf("%d years", stats.FitnessAge)),
			r.detail("VO2 Max", fmt.Sprintf("%.1f", stats.VO2Max)),
			r.detail("Total Activities", fmt.Sprintf("%d", stats.TotalActivities)),
			r.detail("Total Distance", fmt.Sprintf("%.1f km", stats.TotalDistanceMeters/1000)),
		)),
	)
}

func (r Renderer) detail(key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		r.styles.key.Render(key+": "),
		r.styles.value.Render(value),
	)
}
