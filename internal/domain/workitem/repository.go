package workitem

import "context"

type Repository interface {
	Upsert(ctx context.Context, items []WorkItem) error
	ListByIteration(ctx context.Context, iterationPath string) ([]WorkItem, error)
	SetAssignee(ctx context.Context, id int, assignee string) (bool, error)
}
