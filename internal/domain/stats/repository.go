package stats

import (
	"context"

	"sprintassign/internal/domain/workitem"
)

type Repository interface {
	ListByIteration(ctx context.Context, iterationPath string) ([]workitem.WorkItem, error)
}
