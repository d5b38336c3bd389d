package assignment

import (
	"context"

	"sprintassign/internal/domain/member"
	"sprintassign/internal/domain/workitem"
)

// WorkItemSource fetches the current snapshot of an iteration.
type WorkItemSource interface {
	ListByIteration(ctx context.Context, iterationPath string) ([]workitem.WorkItem, error)
}

// RosterSource fetches team members. Recommendations target only active
// members; manual assignment may name any member.
type RosterSource interface {
	ListActive(ctx context.Context) ([]member.Member, error)
	ListAll(ctx context.Context) ([]member.Member, error)
}

// Assigner applies an assignment in the work item store. It reports false
// when the item does not exist.
type Assigner interface {
	SetAssignee(ctx context.Context, id int, assignee string) (bool, error)
}

type Metrics interface {
	ObserveSuggestions(n int)
	ObserveApplied(ok bool)
}
