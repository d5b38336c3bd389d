package recommend

import (
	"math"

	"sprintassign/internal/domain/workitem"
)

// Breakdown keeps the individual score terms of a ScoreEntry.
type Breakdown struct {
	Expertise      float64
	ExpertiseCount int
	Completion     float64
	Load           float64
	Stability      float64
}

type ScoreEntry struct {
	Developer string
	TaskID    int
	Score     float64
	Breakdown Breakdown
}

// ScoreMatrix holds the score entries of every eligible (developer, task)
// pair. Entries of a task keep the order in which they were added.
type ScoreMatrix struct {
	byTask map[int][]ScoreEntry
}

func NewScoreMatrix() *ScoreMatrix {
	return &ScoreMatrix{byTask: make(map[int][]ScoreEntry)}
}

func (m *ScoreMatrix) Add(e ScoreEntry) {
	m.byTask[e.TaskID] = append(m.byTask[e.TaskID], e)
}

func (m *ScoreMatrix) For(taskID int) []ScoreEntry {
	return m.byTask[taskID]
}

func (m *ScoreMatrix) Len() int {
	n := 0
	for _, entries := range m.byTask {
		n += len(entries)
	}
	return n
}

// Eligible reports whether developer may be scored for task: the task is
// unassigned, its assignee is overloaded, or developer already holds it.
func Eligible(developer string, task workitem.WorkItem, overloaded map[string]bool) bool {
	assignee := workitem.Assignee(task)
	return assignee == "" || overloaded[assignee] || assignee == developer
}

type scorer struct {
	workload Workload
	windows  []MonthlyWindow
	weights  Weights
}

func (s scorer) score(developer string, task workitem.WorkItem) ScoreEntry {
	c := s.workload.Of(developer)
	exp := ScoreExpertise(c, task.Type, s.windows, s.weights.ExpertisePerMatch)

	b := Breakdown{
		Expertise:      exp.Score,
		ExpertiseCount: exp.Count,
		Completion:     c.CompletionRatio() * s.weights.CompletionRatio,
		Load:           s.loadTerm(c),
	}
	if workitem.Assignee(task) == developer {
		b.Stability = s.weights.Stability
	}

	return ScoreEntry{
		Developer: developer,
		TaskID:    task.ID,
		Score:     b.Expertise + b.Completion + b.Load + b.Stability,
		Breakdown: b,
	}
}

func (s scorer) loadTerm(c Counts) float64 {
	avg := s.workload.AvgWeightedTotal
	scale := math.Max(1, avg)

	switch {
	case c.WeightedTotal > avg:
		return -s.weights.OverloadPenalty * (1 + (c.WeightedTotal-avg)/scale)
	case c.WeightedTotal < avg:
		boost := s.weights.UnderloadBoost * (avg - c.WeightedTotal) / scale
		if c.Total <= s.weights.NewcomerMaxItems {
			boost += s.weights.NewcomerBoost
		}
		return boost
	default:
		return 0
	}
}

// BuildScoreMatrix scores every eligible roster developer against every task.
// Scoring is pure per pair; only allocation depends on ordering.
func BuildScoreMatrix(
	tasks []workitem.WorkItem,
	roster []string,
	workload Workload,
	overloaded map[string]bool,
	windows []MonthlyWindow,
	weights Weights,
) *ScoreMatrix {
	s := scorer{workload: workload, windows: windows, weights: weights}

	m := NewScoreMatrix()
	for _, task := range tasks {
		for _, dev := range roster {
			if !Eligible(dev, task, overloaded) {
				continue
			}
			m.Add(s.score(dev, task))
		}
	}
	return m
}
