package recommend

import (
	"math"
	"time"
)

const monthlyWindowCount = 6

// MonthlyWindow is a calendar month with a recency weight.
type MonthlyWindow struct {
	Start  time.Time
	End    time.Time
	Weight float64
}

// MonthlyWindows returns six calendar-month windows ending with the month of
// now, most recent first. Window i weighs max(0.2, 1-0.2*i).
func MonthlyWindows(now time.Time) []MonthlyWindow {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	windows := make([]MonthlyWindow, 0, monthlyWindowCount)
	for i := 0; i < monthlyWindowCount; i++ {
		start := first.AddDate(0, -i, 0)
		windows = append(windows, MonthlyWindow{
			Start:  start,
			End:    start.AddDate(0, 1, 0),
			Weight: math.Max(0.2, 1.0-float64(i)*0.2),
		})
	}
	return windows
}

// Expertise is the historical-competence signal for one (developer, task) pair.
type Expertise struct {
	Score float64
	Count int
}

// ScoreExpertise weights the developer's completed items of the task's type in
// every window. Items carry no completion date, so the same match count is
// applied to each window.
// TODO: gate window membership on completion dates once the work item store
// exposes them.
func ScoreExpertise(c Counts, taskType string, windows []MonthlyWindow, perMatch float64) Expertise {
	matches := c.CompletedByType[taskType]

	var e Expertise
	for _, w := range windows {
		e.Score += float64(matches) * w.Weight * perMatch
		e.Count += matches
	}
	return e
}
