package member

import "context"

type Repository interface {
	UpsertInTeam(ctx context.Context, teamName string, members []Member) error
	SetActive(ctx context.Context, memberID string, isActive bool) (Member, error)
	// ListActive returns members eligible for recommendations.
	ListActive(ctx context.Context) ([]Member, error)
	// ListAll returns every member regardless of activity.
	ListAll(ctx context.Context) ([]Member, error)
}
