package recommend

import "sprintassign/internal/domain/workitem"

// Counts is the per-developer workload derived from the current snapshot.
type Counts struct {
	New           int
	Active        int
	Review        int
	Complete      int
	Total         int
	WeightedTotal float64

	// CompletedByType counts complete-category items per work item type.
	CompletedByType map[string]int
}

func (c Counts) CompletionRatio() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Complete) / float64(c.Total)
}

// Workload aggregates Counts for every developer holding at least one item.
type Workload struct {
	ByDeveloper      map[string]Counts
	Developers       []string
	AvgWeightedTotal float64
	AvgNewCount      float64
}

// Of returns the counts for name, zero-valued when the developer holds no items.
func (w Workload) Of(name string) Counts {
	return w.ByDeveloper[name]
}

// Aggregate folds items into per-assignee counts. Unassigned items are ignored;
// items whose status matches no category still count towards Total.
func Aggregate(items []workitem.WorkItem, classifier *workitem.Classifier, weights Weights) Workload {
	byDev := make(map[string]*Counts)
	var order []string

	for _, it := range items {
		name := workitem.Assignee(it)
		if name == "" {
			continue
		}

		c, ok := byDev[name]
		if !ok {
			c = &Counts{CompletedByType: map[string]int{}}
			byDev[name] = c
			order = append(order, name)
		}

		c.Total++
		switch classifier.Classify(it.Status) {
		case workitem.CategoryNew:
			c.New++
		case workitem.CategoryActive:
			c.Active++
		case workitem.CategoryReview:
			c.Review++
		case workitem.CategoryComplete:
			c.Complete++
			c.CompletedByType[it.Type]++
		}
	}

	w := Workload{
		ByDeveloper: make(map[string]Counts, len(byDev)),
		Developers:  order,
	}

	var sumWeighted, sumNew float64
	for _, name := range order {
		c := byDev[name]
		c.WeightedTotal = weightedTotal(*c, weights)
		w.ByDeveloper[name] = *c

		sumWeighted += c.WeightedTotal
		sumNew += float64(c.New)
	}

	if n := len(order); n > 0 {
		w.AvgWeightedTotal = sumWeighted / float64(n)
		w.AvgNewCount = sumNew / float64(n)
	}

	return w
}

func weightedTotal(c Counts, weights Weights) float64 {
	return float64(c.New)*weights.LoadNew +
		float64(c.Active)*weights.LoadActive +
		float64(c.Review)*weights.LoadReview +
		float64(c.Complete)*weights.LoadComplete
}
