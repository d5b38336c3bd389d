package team

import (
	"context"
	"net/http"

	"sprintassign/internal/domain"
	"sprintassign/internal/domain/member"
)

type Service interface {
	AddTeam(ctx context.Context, team Team) (Team, error)
	GetTeam(ctx context.Context, name string) (Team, error)
}

type service struct {
	uow     domain.UnitOfWork
	teams   Repository
	members member.Repository
	events  domain.EventBus
}

func NewService(
	uow domain.UnitOfWork,
	teams Repository,
	members member.Repository,
	events domain.EventBus,
) Service {
	return &service{
		uow:     uow,
		teams:   teams,
		members: members,
		events:  events,
	}
}

// AddTeam registers a new team and its roster in one transaction.
func (s *service) AddTeam(ctx context.Context, t Team) (Team, error) {
	roster, problem := normalized(t)
	if problem != "" {
		return Team{}, &domain.DomainError{
			Code:       domain.ErrorCodeInvalidArgument,
			Message:    problem,
			HTTPStatus: http.StatusBadRequest,
		}
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		created, err := s.teams.Create(ctx, roster.Name)
		if err != nil {
			return err
		}
		if !created {
			return &domain.DomainError{
				Code:       domain.ErrorCodeTeamExists,
				Message:    "team_name already exists",
				HTTPStatus: http.StatusBadRequest,
			}
		}
		return s.members.UpsertInTeam(ctx, roster.Name, roster.Members)
	})
	if err != nil {
		return Team{}, err
	}

	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type: domain.EventTeamCreated,
			Payload: map[string]any{
				"team_name": roster.Name,
				"members":   roster.DisplayNames(),
			},
		})
	}
	return roster, nil
}

func (s *service) GetTeam(ctx context.Context, name string) (Team, error) {
	return s.teams.Roster(ctx, name)
}
