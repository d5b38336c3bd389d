package workitem

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"sprintassign/internal/domain"
)

type Service interface {
	Sync(ctx context.Context, items []WorkItem) (int, error)
	List(ctx context.Context, iterationPath string) ([]WorkItem, error)
}

type service struct {
	uow    domain.UnitOfWork
	items  Repository
	events domain.EventBus
}

func NewService(uow domain.UnitOfWork, items Repository, events domain.EventBus) Service {
	return &service{
		uow:    uow,
		items:  items,
		events: events,
	}
}

// Sync stores a tracker snapshot. Items are upserted by id in a single transaction.
func (s *service) Sync(ctx context.Context, items []WorkItem) (int, error) {
	for _, it := range items {
		if it.ID <= 0 {
			return 0, &domain.DomainError{
				Code:       domain.ErrorCodeInvalidArgument,
				Message:    "work item id must be positive",
				HTTPStatus: http.StatusBadRequest,
			}
		}
	}

	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.items.Upsert(ctx, items); err != nil {
			return err
		}

		if s.events != nil {
			s.events.Publish(ctx, domain.Event{
				Type:    domain.EventWorkItemsSynced,
				Payload: map[string]any{"count": len(items)},
			})
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *service) List(ctx context.Context, iterationPath string) ([]WorkItem, error) {
	return s.items.ListByIteration(ctx, iterationPath)
}

// NormalizeIterationPath undoes URL encoding and collapses doubled backslashes
// left behind by JSON serialization ("Project\\Sprint 3" -> "Project\Sprint 3").
func NormalizeIterationPath(raw string) (string, error) {
	p, err := url.PathUnescape(strings.TrimSpace(raw))
	if err != nil {
		return "", &domain.DomainError{
			Code:       domain.ErrorCodeInvalidArgument,
			Message:    "iteration path is not valid URL encoding",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	p = strings.ReplaceAll(p, `\\`, `\`)
	if p == "" {
		return "", &domain.DomainError{
			Code:       domain.ErrorCodeInvalidArgument,
			Message:    "iteration path is required",
			HTTPStatus: http.StatusBadRequest,
		}
	}
	return p, nil
}
