package recommend

import (
	"strings"
	"time"

	"sprintassign/internal/domain/workitem"
)

// Engine produces one-shot assignment recommendations from a snapshot of
// work items and a roster. It keeps no state between calls.
type Engine struct {
	classifier *workitem.Classifier
	weights    Weights
	now        func() time.Time
}

type Option func(*Engine)

func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(classifier *workitem.Classifier, weights Weights, opts ...Option) *Engine {
	e := &Engine{
		classifier: classifier,
		weights:    weights,
		now:        time.Now,
	}
	for _, o := range opts {
		o(e)
	}
	return e
}

type Result struct {
	Suggestions []Suggestion
	Workload    Workload
	Overloaded  map[string]bool
	Candidates  int
}

func (r Result) Map() map[string]string {
	return ToMap(r.Suggestions)
}

// Analyze aggregates workload and detects overloaded developers.
func (e *Engine) Analyze(items []workitem.WorkItem) (Workload, map[string]bool) {
	w := Aggregate(items, e.classifier, e.weights)
	return w, DetectOverloaded(w, e.weights)
}

// Recommend proposes assignments for every item in the new category.
func (e *Engine) Recommend(items []workitem.WorkItem, roster []string) Result {
	workload, overloaded := e.Analyze(items)

	var candidates []workitem.WorkItem
	for _, it := range items {
		if e.classifier.IsNew(it.Status) {
			candidates = append(candidates, it)
		}
	}

	res := Result{
		Workload:   workload,
		Overloaded: overloaded,
		Candidates: len(candidates),
	}
	if len(candidates) == 0 {
		return res
	}

	names := uniqueNames(roster)
	matrix := BuildScoreMatrix(candidates, names, workload, overloaded, MonthlyWindows(e.now()), e.weights)

	res.Suggestions = Allocate(Allocation{
		Tasks:      candidates,
		Roster:     names,
		Matrix:     matrix,
		Workload:   workload,
		Overloaded: overloaded,
		Weights:    e.weights,
	})
	return res
}

func uniqueNames(roster []string) []string {
	seen := make(map[string]struct{}, len(roster))
	out := make([]string, 0, len(roster))
	for _, n := range roster {
		n = strings.TrimSpace(n)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}
