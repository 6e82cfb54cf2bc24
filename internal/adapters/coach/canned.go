package coach

import "strings"

// Canned responses keep the three coaching operations total: whenever no
// live backend is reachable, the response is chosen deterministically from
// the prompt shape. Callers therefore always receive a non-empty string.

const cannedActivityResponse = `Great workout! Your heart rate data suggests you maintained a good intensity level.
For improvement, consider adding interval training to boost your cardiovascular fitness.
Keep monitoring your recovery between sessions.`

const cannedHealthResponse = `Your health metrics look good overall. Consider these recommendations:
1. Aim for 7-9 hours of quality sleep to optimize recovery
2. Practice stress management techniques like meditation or deep breathing
3. Monitor your resting heart rate trends as an indicator of overall fitness`

const cannedPlanResponse = `7-Day Training Plan:
Day 1: Easy run/walk 30 min (recovery pace)
Day 2: Strength training (upper body focus)
Day 3: Interval training 40 min
Day 4: Rest or light yoga
Day 5: Tempo run 45 min
Day 6: Strength training (lower body focus)
Day 7: Long slow distance 60 min

Remember to listen to your body and adjust intensity as needed.`

const cannedDefaultResponse = "Keep up the good work with your training! Stay consistent and focus on gradual improvement."

// CannedResponse picks the fallback text for a prompt.
func CannedResponse(prompt string) string {
	lowered := strings.ToLower(prompt)

	switch {
	case strings.Contains(lowered, "training plan"):
		return cannedPlanResponse
	case strings.Contains(lowered, "activity") || strings.Contains(lowered, "workout"):
		return cannedActivityResponse
	case strings.Contains(lowered, "health") || strings.Contains(lowered, "sleep"):
		return cannedHealthResponse
	default:
		return cannedDefaultResponse
	}
}
