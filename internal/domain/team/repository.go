package team

import "context"

// Repository stores team names; members live in member.Repository.
type Repository interface {
	// Create reports false when a team with that name already exists.
	Create(ctx context.Context, name string) (bool, error)
	// Roster loads the team with all its members, active or not.
	Roster(ctx context.Context, name string) (Team, error)
}
