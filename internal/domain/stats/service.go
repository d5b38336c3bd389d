package stats

import (
	"context"
	"fmt"
	"sort"

	"sprintassign/internal/domain/recommend"
)

type Service interface {
	GetWorkload(ctx context.Context, iterationPath string) (WorkloadReport, error)
}

type service struct {
	repo   Repository
	engine *recommend.Engine
}

func NewService(repo Repository, engine *recommend.Engine) Service {
	return &service{repo: repo, engine: engine}
}

// GetWorkload reports per-developer load for an iteration, heaviest first.
func (s *service) GetWorkload(ctx context.Context, iterationPath string) (WorkloadReport, error) {
	items, err := s.repo.ListByIteration(ctx, iterationPath)
	if err != nil {
		return WorkloadReport{}, fmt.Errorf("fetch work items: %w", err)
	}

	w, overloaded := s.engine.Analyze(items)

	report := WorkloadReport{
		IterationPath:    iterationPath,
		Developers:       make([]DeveloperWorkload, 0, len(w.Developers)),
		AvgWeightedTotal: w.AvgWeightedTotal,
		AvgNewCount:      w.AvgNewCount,
	}
	for _, name := range w.Developers {
		c := w.Of(name)
		report.Developers = append(report.Developers, DeveloperWorkload{
			Developer:       name,
			New:             c.New,
			Active:          c.Active,
			Review:          c.Review,
			Complete:        c.Complete,
			Total:           c.Total,
			WeightedTotal:   c.WeightedTotal,
			CompletionRatio: c.CompletionRatio(),
			Overloaded:      overloaded[name],
		})
	}

	sort.SliceStable(report.Developers, func(i, j int) bool {
		a, b := report.Developers[i], report.Developers[j]
		if a.WeightedTotal != b.WeightedTotal {
			return a.WeightedTotal > b.WeightedTotal
		}
		return a.Developer < b.Developer
	})

	return report, nil
}
