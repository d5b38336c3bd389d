package domain

import "context"

const (
	EventTeamCreated        = "team.created"
	EventMemberSetActive    = "member.set_active"
	EventWorkItemsSynced    = "workitems.synced"
	EventAssignmentSuggest  = "assignment.suggested"
	EventAssignmentApplied  = "assignment.applied"
	EventAssignmentRejected = "assignment.apply_failed"
)

// EventTypes lists every event type the services publish.
func EventTypes() []string {
	return []string{
		EventTeamCreated,
		EventMemberSetActive,
		EventWorkItemsSynced,
		EventAssignmentSuggest,
		EventAssignmentApplied,
		EventAssignmentRejected,
	}
}

type Event struct {
	Type    string
	Payload map[string]any
}

// EventBus delivers domain events asynchronously.
type EventBus interface {
	Publish(ctx context.Context, e Event)
}

type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
