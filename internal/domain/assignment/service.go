package assignment

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"sprintassign/internal/domain"
	"sprintassign/internal/domain/member"
	"sprintassign/internal/domain/recommend"
	"sprintassign/internal/domain/workitem"
)

type Service interface {
	GetAutoAssignSuggestions(ctx context.Context, iterationPath string) (map[string]string, error)
	GetAutoAssignSuggestionsForRoster(ctx context.Context, iterationPath string, rosterNames []string) (map[string]string, error)
	ApplyAutoAssignments(ctx context.Context, iterationPath string) (bool, error)
	AssignSingleTask(ctx context.Context, taskID int, target string) (bool, error)
	GetWeightedTaskCounts(ctx context.Context, iterationPath string) (map[string]int, error)
}

type service struct {
	items    WorkItemSource
	roster   RosterSource
	assigner Assigner
	engine   *recommend.Engine
	events   domain.EventBus
	metrics  Metrics
	log      *zap.Logger
}

func NewService(
	items WorkItemSource,
	roster RosterSource,
	assigner Assigner,
	engine *recommend.Engine,
	events domain.EventBus,
	metrics Metrics,
	log *zap.Logger,
) Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &service{
		items:    items,
		roster:   roster,
		assigner: assigner,
		engine:   engine,
		events:   events,
		metrics:  metrics,
		log:      log,
	}
}

type snapshot struct {
	items  []workitem.WorkItem
	roster []member.Member
}

// fetch loads work items and roster concurrently. Either failure fails the
// whole call; partial data is never used.
func (s *service) fetch(ctx context.Context, iterationPath string) (snapshot, error) {
	var snap snapshot

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		items, err := s.items.ListByIteration(gctx, iterationPath)
		if err != nil {
			return fmt.Errorf("fetch work items: %w", err)
		}
		snap.items = items
		return nil
	})
	g.Go(func() error {
		roster, err := s.roster.ListActive(gctx)
		if err != nil {
			return fmt.Errorf("fetch roster: %w", err)
		}
		snap.roster = roster
		return nil
	})

	if err := g.Wait(); err != nil {
		return snapshot{}, err
	}
	return snap, nil
}

func (s *service) GetAutoAssignSuggestions(ctx context.Context, iterationPath string) (map[string]string, error) {
	snap, err := s.fetch(ctx, iterationPath)
	if err != nil {
		return nil, err
	}

	res := s.engine.Recommend(snap.items, member.Names(snap.roster))
	suggestions := res.Map()

	s.log.Info("auto-assign suggestions computed",
		zap.String("iteration_path", iterationPath),
		zap.Int("work_items", len(snap.items)),
		zap.Int("candidates", res.Candidates),
		zap.Int("roster", len(snap.roster)),
		zap.Int("overloaded", len(res.Overloaded)),
		zap.Int("suggestions", len(suggestions)),
	)

	if s.metrics != nil {
		s.metrics.ObserveSuggestions(len(suggestions))
	}
	if s.events != nil {
		s.events.Publish(ctx, domain.Event{
			Type: domain.EventAssignmentSuggest,
			Payload: map[string]any{
				"iteration_path": iterationPath,
				"suggestions":    len(suggestions),
			},
		})
	}

	return suggestions, nil
}

func (s *service) GetAutoAssignSuggestionsForRoster(ctx context.Context, iterationPath string, rosterNames []string) (map[string]string, error) {
	if len(rosterNames) == 0 {
		return map[string]string{}, nil
	}

	all, err := s.GetAutoAssignSuggestions(ctx, iterationPath)
	if err != nil {
		return nil, err
	}
	return recommend.FilterByRoster(all, rosterNames), nil
}

// ApplyAutoAssignments applies every suggestion independently. Failures are
// logged and do not stop or roll back the remaining applications.
func (s *service) ApplyAutoAssignments(ctx context.Context, iterationPath string) (bool, error) {
	suggestions, err := s.GetAutoAssignSuggestions(ctx, iterationPath)
	if err != nil {
		return false, err
	}

	allApplied := true
	for _, key := range sortedTaskKeys(suggestions) {
		text := suggestions[key]
		name := recommend.ExtractDeveloperName(text)

		taskID, err := strconv.Atoi(key)
		if err != nil {
			allApplied = false
			s.log.Error("invalid task id in suggestion", zap.String("task_id", key))
			continue
		}

		ok, err := s.assigner.SetAssignee(ctx, taskID, name)
		if err != nil || !ok {
			allApplied = false
			s.log.Warn("auto-assignment failed",
				zap.Int("task_id", taskID),
				zap.String("developer", name),
				zap.Error(err),
			)
			s.publishApply(ctx, domain.EventAssignmentRejected, taskID, name)
			s.observeApplied(false)
			continue
		}

		s.publishApply(ctx, domain.EventAssignmentApplied, taskID, name)
		s.observeApplied(true)
	}

	return allApplied, nil
}

// AssignSingleTask resolves target against the full roster, inactive members
// included, by id or display name. Only with no members at all is a
// non-empty target applied as a literal name.
func (s *service) AssignSingleTask(ctx context.Context, taskID int, target string) (bool, error) {
	target = strings.TrimSpace(target)
	if taskID <= 0 || target == "" {
		return false, &domain.DomainError{
			Code:       domain.ErrorCodeInvalidArgument,
			Message:    "task_id and assigned_to are required",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	roster, err := s.roster.ListAll(ctx)
	if err != nil {
		return false, fmt.Errorf("fetch roster: %w", err)
	}

	name, found := resolveMember(roster, target)
	if !found {
		if len(roster) > 0 {
			s.log.Warn("team member not found", zap.String("target", target))
			return false, &domain.DomainError{
				Code:       domain.ErrorCodeMemberNotFound,
				Message:    "team member not found",
				HTTPStatus: http.StatusNotFound,
			}
		}
		s.log.Info("empty roster, assigning literal name", zap.String("target", target))
		name = target
	}

	ok, err := s.assigner.SetAssignee(ctx, taskID, name)
	if err != nil {
		return false, fmt.Errorf("apply assignment: %w", err)
	}
	if !ok {
		return false, &domain.DomainError{
			Code:       domain.ErrorCodeNotFound,
			Message:    "work item not found",
			HTTPStatus: http.StatusNotFound,
		}
	}

	s.publishApply(ctx, domain.EventAssignmentApplied, taskID, name)
	return true, nil
}

// GetWeightedTaskCounts returns the raw number of items held by each assignee.
func (s *service) GetWeightedTaskCounts(ctx context.Context, iterationPath string) (map[string]int, error) {
	items, err := s.items.ListByIteration(ctx, iterationPath)
	if err != nil {
		return nil, fmt.Errorf("fetch work items: %w", err)
	}

	counts := make(map[string]int)
	for _, it := range items {
		if name := workitem.Assignee(it); name != "" {
			counts[name]++
		}
	}
	return counts, nil
}

func (s *service) publishApply(ctx context.Context, eventType string, taskID int, developer string) {
	if s.events == nil {
		return
	}
	s.events.Publish(ctx, domain.Event{
		Type: eventType,
		Payload: map[string]any{
			"task_id":   taskID,
			"developer": developer,
		},
	})
}

func (s *service) observeApplied(ok bool) {
	if s.metrics != nil {
		s.metrics.ObserveApplied(ok)
	}
}

func resolveMember(roster []member.Member, target string) (string, bool) {
	for _, m := range roster {
		if m.ID == target || strings.EqualFold(m.DisplayName, target) {
			return m.DisplayName, true
		}
	}
	return "", false
}

func sortedTaskKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, errA := strconv.Atoi(keys[i])
		b, errB := strconv.Atoi(keys[j])
		if errA != nil || errB != nil {
			return keys[i] < keys[j]
		}
		return a < b
	})
	return keys
}
