package member

import (
	"context"

	"sprintassign/internal/domain"
)

type Service interface {
	SetMemberActive(ctx context.Context, memberID string, isActive bool) (Member, error)
	Roster(ctx context.Context) ([]Member, error)
}

type service struct {
	uow     domain.UnitOfWork
	members Repository
	events  domain.EventBus
}

func NewService(uow domain.UnitOfWork, members Repository, events domain.EventBus) Service {
	return &service{
		uow:     uow,
		members: members,
		events:  events,
	}
}

func (s *service) SetMemberActive(ctx context.Context, memberID string, isActive bool) (Member, error) {
	var res Member

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		m, err := s.members.SetActive(ctx, memberID, isActive)
		if err != nil {
			return err
		}
		res = m

		if s.events != nil {
			s.events.Publish(ctx, domain.Event{
				Type: domain.EventMemberSetActive,
				Payload: map[string]any{
					"member_id": m.ID,
					"is_active": m.IsActive,
				},
			})
		}
		return nil
	})

	return res, err
}

// Roster returns the active members recommendations are computed for.
func (s *service) Roster(ctx context.Context) ([]Member, error) {
	return s.members.ListActive(ctx)
}
