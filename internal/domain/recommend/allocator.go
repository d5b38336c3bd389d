package recommend

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"sprintassign/internal/domain/workitem"
)

const noScore = -1000.0

// ParsePriority parses a tracker priority, falling back to def when it is
// missing or not an integer.
func ParsePriority(p string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(p))
	if err != nil {
		return def
	}
	return n
}

// SortByPriority returns a copy of tasks ordered by ascending priority, then id.
func SortByPriority(tasks []workitem.WorkItem, defaultPriority int) []workitem.WorkItem {
	out := make([]workitem.WorkItem, len(tasks))
	copy(out, tasks)
	sort.SliceStable(out, func(i, j int) bool {
		pi := ParsePriority(out[i].Priority, defaultPriority)
		pj := ParsePriority(out[j].Priority, defaultPriority)
		if pi != pj {
			return pi < pj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// Allocation carries the inputs of a single allocation pass.
type Allocation struct {
	Tasks      []workitem.WorkItem
	Roster     []string
	Matrix     *ScoreMatrix
	Workload   Workload
	Overloaded map[string]bool
	Weights    Weights
}

type allocator struct {
	Allocation
	batch map[string]int
}

// Allocate walks tasks in priority order and proposes one developer per task.
// Each assignment within the pass discounts that developer's later scores, so
// the walk is inherently sequential.
func Allocate(a Allocation) []Suggestion {
	al := &allocator{Allocation: a, batch: make(map[string]int)}

	var out []Suggestion
	for _, task := range SortByPriority(a.Tasks, a.Weights.DefaultPriority) {
		if s, ok := al.decide(task); ok {
			out = append(out, s)
		}
	}
	return out
}

func (al *allocator) decide(task workitem.WorkItem) (Suggestion, bool) {
	assignee := workitem.Assignee(task)
	if assignee != "" && !al.Overloaded[assignee] {
		return Suggestion{}, false
	}

	entries := al.Matrix.For(task.ID)
	if len(entries) == 0 {
		return al.fallback(task)
	}

	best := noScore
	var winner ScoreEntry
	found := false
	for _, e := range entries {
		adjusted := e.Score * al.decay(e.Developer)
		if adjusted > best {
			best = adjusted
			winner = e
			found = true
		}
	}
	if !found || winner.Developer == assignee {
		return Suggestion{}, false
	}

	al.batch[winner.Developer]++
	return Suggestion{
		TaskID:    task.ID,
		Developer: winner.Developer,
		Reason: explainChoice(assignee, winner,
			al.Workload.Of(winner.Developer), al.Workload.AvgWeightedTotal, al.Weights),
	}, true
}

func (al *allocator) decay(developer string) float64 {
	return math.Max(al.Weights.BatchFloor, 1-al.Weights.BatchDecay*float64(al.batch[developer]))
}

// fallback picks the roster member with the lowest weighted load for an
// unassigned task nobody could be scored for.
func (al *allocator) fallback(task workitem.WorkItem) (Suggestion, bool) {
	if task.IsAssigned() || len(al.Roster) == 0 {
		return Suggestion{}, false
	}

	pick := al.Roster[0]
	for _, dev := range al.Roster[1:] {
		w, pw := al.Workload.Of(dev).WeightedTotal, al.Workload.Of(pick).WeightedTotal
		if w < pw || (w == pw && al.batch[dev] < al.batch[pick]) {
			pick = dev
		}
	}

	al.batch[pick]++
	return Suggestion{TaskID: task.ID, Developer: pick, Reason: reasonLeastAssigned}, true
}
