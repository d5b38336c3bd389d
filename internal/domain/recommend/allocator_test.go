package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintassign/internal/domain/workitem"
)

func TestParsePriority(t *testing.T) {
	assert.Equal(t, 1, ParsePriority("1", 99))
	assert.Equal(t, 2, ParsePriority(" 2 ", 99))
	assert.Equal(t, 99, ParsePriority("", 99))
	assert.Equal(t, 99, ParsePriority("High", 99))
}

func TestSortByPriority(t *testing.T) {
	tasks := []workitem.WorkItem{
		{ID: 5, Priority: "2"},
		{ID: 3, Priority: ""},
		{ID: 9, Priority: "1"},
		{ID: 1, Priority: "2"},
		{ID: 2, Priority: "urgent"},
	}

	sorted := SortByPriority(tasks, 99)

	ids := make([]int, 0, len(sorted))
	for _, s := range sorted {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{9, 1, 5, 2, 3}, ids)
	assert.Equal(t, 5, tasks[0].ID, "input must not be reordered")
}

func matrixOf(entries ...ScoreEntry) *ScoreMatrix {
	m := NewScoreMatrix()
	for _, e := range entries {
		m.Add(e)
	}
	return m
}

func TestAllocate_DiminishingReturns(t *testing.T) {
	tasks := []workitem.WorkItem{
		{ID: 2, Type: "Bug", Priority: "1"},
		{ID: 1, Type: "Bug", Priority: "1"},
	}
	// A beats B by 10%, less than the 15% per-assignment discount.
	m := matrixOf(
		ScoreEntry{Developer: "A", TaskID: 1, Score: 100},
		ScoreEntry{Developer: "B", TaskID: 1, Score: 90},
		ScoreEntry{Developer: "A", TaskID: 2, Score: 100},
		ScoreEntry{Developer: "B", TaskID: 2, Score: 90},
	)

	got := Allocate(Allocation{
		Tasks:   tasks,
		Roster:  []string{"A", "B"},
		Matrix:  m,
		Weights: DefaultWeights(),
	})

	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].TaskID)
	assert.Equal(t, "A", got[0].Developer)
	assert.Equal(t, 2, got[1].TaskID)
	assert.Equal(t, "B", got[1].Developer)
}

func TestAllocate_LargeLeadSurvivesDiscount(t *testing.T) {
	tasks := []workitem.WorkItem{{ID: 1}, {ID: 2}}
	m := matrixOf(
		ScoreEntry{Developer: "A", TaskID: 1, Score: 100},
		ScoreEntry{Developer: "B", TaskID: 1, Score: 50},
		ScoreEntry{Developer: "A", TaskID: 2, Score: 100},
		ScoreEntry{Developer: "B", TaskID: 2, Score: 50},
	)

	got := Allocate(Allocation{Tasks: tasks, Roster: []string{"A", "B"}, Matrix: m, Weights: DefaultWeights()})

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Developer)
	assert.Equal(t, "A", got[1].Developer)
}

func TestAllocate_DiscountFloor(t *testing.T) {
	var tasks []workitem.WorkItem
	m := NewScoreMatrix()
	for id := 1; id <= 6; id++ {
		tasks = append(tasks, workitem.WorkItem{ID: id})
		m.Add(ScoreEntry{Developer: "A", TaskID: id, Score: 100})
		m.Add(ScoreEntry{Developer: "B", TaskID: id, Score: 49})
	}

	got := Allocate(Allocation{Tasks: tasks, Roster: []string{"A", "B"}, Matrix: m, Weights: DefaultWeights()})

	require.Len(t, got, 6)
	for _, s := range got {
		assert.Equal(t, "A", s.Developer, "task %d", s.TaskID)
	}
}

func TestAllocate_CurrentAssigneeWinsIsNoOp(t *testing.T) {
	tasks := []workitem.WorkItem{{ID: 7, AssignedTo: "Alice"}}
	m := matrixOf(
		ScoreEntry{Developer: "Alice", TaskID: 7, Score: 40},
		ScoreEntry{Developer: "Bob", TaskID: 7, Score: 10},
	)

	got := Allocate(Allocation{
		Tasks:      tasks,
		Roster:     []string{"Alice", "Bob"},
		Matrix:     m,
		Overloaded: map[string]bool{"Alice": true},
		Weights:    DefaultWeights(),
	})

	assert.Empty(t, got)
	assert.Empty(t, ToMap(got))
}

func TestAllocate_SkipsWellPlacedTasks(t *testing.T) {
	tasks := []workitem.WorkItem{{ID: 7, AssignedTo: "Bob"}}
	m := matrixOf(ScoreEntry{Developer: "Bob", TaskID: 7, Score: -500})

	got := Allocate(Allocation{Tasks: tasks, Roster: []string{"Bob", "Carol"}, Matrix: m, Weights: DefaultWeights()})

	assert.Empty(t, got)
}

func TestAllocate_ReassignmentReason(t *testing.T) {
	tasks := []workitem.WorkItem{{ID: 7, AssignedTo: "Alice"}}
	m := matrixOf(
		ScoreEntry{Developer: "Alice", TaskID: 7, Score: -30},
		ScoreEntry{Developer: "Bob", TaskID: 7, Score: 10},
	)

	got := Allocate(Allocation{
		Tasks:      tasks,
		Roster:     []string{"Alice", "Bob"},
		Matrix:     m,
		Overloaded: map[string]bool{"Alice": true},
		Workload:   Workload{AvgWeightedTotal: 2},
		Weights:    DefaultWeights(),
	})

	require.Len(t, got, 1)
	assert.Equal(t, "Bob", got[0].Developer)
	assert.Equal(t, "reassigned from Alice (overloaded): no specific expertise, new/under-utilized developer", got[0].Reason)
}

func TestAllocate_FallbackLeastAssigned(t *testing.T) {
	tasks := []workitem.WorkItem{{ID: 1}, {ID: 2}, {ID: 3, AssignedTo: "Zed"}}
	wl := Workload{ByDeveloper: map[string]Counts{
		"A": {WeightedTotal: 2},
		"B": {WeightedTotal: 0.5},
	}}

	got := Allocate(Allocation{
		Tasks:      tasks,
		Roster:     []string{"A", "B", "C"},
		Matrix:     NewScoreMatrix(),
		Workload:   wl,
		Overloaded: map[string]bool{"Zed": true},
		Weights:    DefaultWeights(),
	})

	require.Len(t, got, 2)
	assert.Equal(t, Suggestion{TaskID: 1, Developer: "C", Reason: "least assigned"}, got[0])
	// weighted load is compared before batch count
	assert.Equal(t, "C", got[1].Developer)
}

func TestAllocate_FallbackTieBreaksOnBatchCount(t *testing.T) {
	tasks := []workitem.WorkItem{{ID: 1}, {ID: 2}}

	got := Allocate(Allocation{
		Tasks:   tasks,
		Roster:  []string{"A", "B"},
		Matrix:  NewScoreMatrix(),
		Weights: DefaultWeights(),
	})

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Developer)
	assert.Equal(t, "B", got[1].Developer)
}

func TestAllocate_FallbackNeedsRoster(t *testing.T) {
	got := Allocate(Allocation{
		Tasks:   []workitem.WorkItem{{ID: 1}},
		Matrix:  NewScoreMatrix(),
		Weights: DefaultWeights(),
	})
	assert.Empty(t, got)
}

func TestAllocate_SentinelRejectsVeryLowScores(t *testing.T) {
	tasks := []workitem.WorkItem{{ID: 1}}
	m := matrixOf(ScoreEntry{Developer: "A", TaskID: 1, Score: -5000})

	got := Allocate(Allocation{Tasks: tasks, Roster: []string{"A"}, Matrix: m, Weights: DefaultWeights()})
	assert.Empty(t, got)
}
