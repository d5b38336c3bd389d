package assignment_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sprintassign/internal/domain"
	"sprintassign/internal/domain/assignment"
	"sprintassign/internal/domain/member"
	"sprintassign/internal/domain/recommend"
	"sprintassign/internal/domain/workitem"
)

type itemsFake struct {
	items []workitem.WorkItem
	err   error
}

func (f *itemsFake) ListByIteration(ctx context.Context, iterationPath string) ([]workitem.WorkItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var res []workitem.WorkItem
	for _, it := range f.items {
		if it.IterationPath == iterationPath {
			res = append(res, it)
		}
	}
	return res, nil
}

type rosterFake struct {
	members []member.Member
	err     error
}

func (f *rosterFake) ListActive(ctx context.Context) ([]member.Member, error) {
	if f.err != nil {
		return nil, f.err
	}
	var res []member.Member
	for _, m := range f.members {
		if m.IsActive {
			res = append(res, m)
		}
	}
	return res, nil
}

func (f *rosterFake) ListAll(ctx context.Context) ([]member.Member, error) {
	return f.members, f.err
}

type assignerFake struct {
	mu      sync.Mutex
	applied map[int]string
	calls   []int
	fail    map[int]bool
	errOn   map[int]error
	missing map[int]bool
}

func newAssignerFake() *assignerFake {
	return &assignerFake{
		applied: map[int]string{},
		fail:    map[int]bool{},
		errOn:   map[int]error{},
		missing: map[int]bool{},
	}
}

func (f *assignerFake) SetAssignee(ctx context.Context, id int, assignee string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, id)
	if err := f.errOn[id]; err != nil {
		return false, err
	}
	if f.fail[id] || f.missing[id] {
		return false, nil
	}
	f.applied[id] = assignee
	return true, nil
}

type eventBusFake struct {
	mu     sync.Mutex
	events []domain.Event
}

func (e *eventBusFake) Publish(ctx context.Context, ev domain.Event) {
	e.mu.Lock()
	e.events = append(e.events, ev)
	e.mu.Unlock()
}

func (e *eventBusFake) count(eventType string) int {
	n := 0
	for _, ev := range e.events {
		if ev.Type == eventType {
			n++
		}
	}
	return n
}

type metricsFake struct {
	suggestions []int
	applied     int
	failed      int
}

func (m *metricsFake) ObserveSuggestions(n int) { m.suggestions = append(m.suggestions, n) }
func (m *metricsFake) ObserveApplied(ok bool) {
	if ok {
		m.applied++
	} else {
		m.failed++
	}
}

const sprint = `Techoil\2.3.23`

func engine() *recommend.Engine {
	return recommend.NewEngine(
		workitem.NewClassifier(workitem.DefaultVocabulary()),
		recommend.DefaultWeights(),
		recommend.WithClock(func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }),
	)
}

func sprintItems() []workitem.WorkItem {
	return []workitem.WorkItem{
		{ID: 54993, Title: "Performance issue on month closure", Status: "Dev-New", Type: "Bug", Priority: "1", IterationPath: sprint},
		{ID: 58865, Title: "Invoice flag not updated", Status: "Dev-New", Type: "Bug", Priority: "2", IterationPath: sprint},
		{ID: 60001, Title: "Refactor authentication module", Status: "Active", Type: "Task", Priority: "2", AssignedTo: "Herbert Albert", IterationPath: sprint},
		{ID: 60004, Title: "Implement notification system", Status: "Done", Type: "Bug", Priority: "1", AssignedTo: "Mary Ann Smith", IterationPath: sprint},
		{ID: 70000, Title: "Other sprint", Status: "Dev-New", Type: "Bug", IterationPath: `Techoil\2.3.24`},
	}
}

func sprintRoster() []member.Member {
	return []member.Member{
		{ID: "u1", DisplayName: "Herbert Albert", IsActive: true},
		{ID: "u2", DisplayName: "Mary Ann Smith", IsActive: true},
	}
}

func newService(items *itemsFake, roster *rosterFake, assigner *assignerFake, events *eventBusFake, metrics *metricsFake) assignment.Service {
	if events == nil {
		events = &eventBusFake{}
	}
	if metrics == nil {
		metrics = &metricsFake{}
	}
	return assignment.NewService(items, roster, assigner, engine(), events, metrics, nil)
}

func TestGetAutoAssignSuggestions(t *testing.T) {
	events := &eventBusFake{}
	metrics := &metricsFake{}
	svc := newService(&itemsFake{items: sprintItems()}, &rosterFake{members: sprintRoster()}, newAssignerFake(), events, metrics)

	got, err := svc.GetAutoAssignSuggestions(context.Background(), sprint)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Mary Ann Smith", recommend.ExtractDeveloperName(got["54993"]))
	assert.Contains(t, got["54993"], "past expertise (6 similar tasks)")
	assert.NotContains(t, got, "70000")

	assert.Equal(t, []int{2}, metrics.suggestions)
	assert.Equal(t, 1, events.count(domain.EventAssignmentSuggest))
}

func TestGetAutoAssignSuggestions_FetchFailure(t *testing.T) {
	boom := errors.New("tracker unavailable")

	svc := newService(&itemsFake{err: boom}, &rosterFake{members: sprintRoster()}, newAssignerFake(), nil, nil)
	_, err := svc.GetAutoAssignSuggestions(context.Background(), sprint)
	require.ErrorIs(t, err, boom)

	svc = newService(&itemsFake{items: sprintItems()}, &rosterFake{err: boom}, newAssignerFake(), nil, nil)
	_, err = svc.GetAutoAssignSuggestions(context.Background(), sprint)
	require.ErrorIs(t, err, boom)
	assert.ErrorContains(t, err, "fetch roster")
}

func TestGetAutoAssignSuggestions_EmptyStatesAreNotErrors(t *testing.T) {
	svc := newService(&itemsFake{items: sprintItems()}, &rosterFake{}, newAssignerFake(), nil, nil)
	got, err := svc.GetAutoAssignSuggestions(context.Background(), sprint)
	require.NoError(t, err)
	assert.Empty(t, got)

	svc = newService(&itemsFake{}, &rosterFake{members: sprintRoster()}, newAssignerFake(), nil, nil)
	got, err = svc.GetAutoAssignSuggestions(context.Background(), sprint)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetAutoAssignSuggestionsForRoster(t *testing.T) {
	svc := newService(&itemsFake{items: sprintItems()}, &rosterFake{members: sprintRoster()}, newAssignerFake(), nil, nil)

	all, err := svc.GetAutoAssignSuggestions(context.Background(), sprint)
	require.NoError(t, err)

	got, err := svc.GetAutoAssignSuggestionsForRoster(context.Background(), sprint, []string{"mary ann smith"})
	require.NoError(t, err)
	for id, text := range got {
		assert.Equal(t, "Mary Ann Smith", recommend.ExtractDeveloperName(text))
		assert.Equal(t, all[id], text)
	}
	assert.NotEmpty(t, got)

	none, err := svc.GetAutoAssignSuggestionsForRoster(context.Background(), sprint, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestApplyAutoAssignments_AllSucceed(t *testing.T) {
	assigner := newAssignerFake()
	events := &eventBusFake{}
	metrics := &metricsFake{}
	svc := newService(&itemsFake{items: sprintItems()}, &rosterFake{members: sprintRoster()}, assigner, events, metrics)

	ok, err := svc.ApplyAutoAssignments(context.Background(), sprint)
	require.NoError(t, err)
	assert.True(t, ok)

	assert.Equal(t, []int{54993, 58865}, assigner.calls)
	for _, name := range assigner.applied {
		assert.Contains(t, []string{"Herbert Albert", "Mary Ann Smith"}, name)
	}
	assert.Equal(t, 2, metrics.applied)
	assert.Equal(t, 2, events.count(domain.EventAssignmentApplied))
}

func TestApplyAutoAssignments_PartialFailureKeepsGoing(t *testing.T) {
	assigner := newAssignerFake()
	assigner.errOn[54993] = errors.New("409 conflict")
	events := &eventBusFake{}
	metrics := &metricsFake{}
	svc := newService(&itemsFake{items: sprintItems()}, &rosterFake{members: sprintRoster()}, assigner, events, metrics)

	ok, err := svc.ApplyAutoAssignments(context.Background(), sprint)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, []int{54993, 58865}, assigner.calls)
	assert.Contains(t, assigner.applied, 58865)
	assert.Equal(t, 1, metrics.failed)
	assert.Equal(t, 1, metrics.applied)
	assert.Equal(t, 1, events.count(domain.EventAssignmentRejected))
}

func TestApplyAutoAssignments_NothingToDo(t *testing.T) {
	assigner := newAssignerFake()
	svc := newService(&itemsFake{}, &rosterFake{members: sprintRoster()}, assigner, nil, nil)

	ok, err := svc.ApplyAutoAssignments(context.Background(), sprint)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, assigner.calls)
}

func TestApplyAutoAssignments_FetchFailure(t *testing.T) {
	svc := newService(&itemsFake{err: errors.New("down")}, &rosterFake{}, newAssignerFake(), nil, nil)

	ok, err := svc.ApplyAutoAssignments(context.Background(), sprint)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestAssignSingleTask(t *testing.T) {
	assigner := newAssignerFake()
	svc := newService(&itemsFake{}, &rosterFake{members: sprintRoster()}, assigner, nil, nil)

	ok, err := svc.AssignSingleTask(context.Background(), 10, "u1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Herbert Albert", assigner.applied[10])

	ok, err = svc.AssignSingleTask(context.Background(), 11, "mary ann SMITH")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Mary Ann Smith", assigner.applied[11])
}

func TestAssignSingleTask_UnknownMember(t *testing.T) {
	assigner := newAssignerFake()
	svc := newService(&itemsFake{}, &rosterFake{members: sprintRoster()}, assigner, nil, nil)

	ok, err := svc.AssignSingleTask(context.Background(), 10, "Nobody")
	assert.False(t, ok)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.ErrorCodeMemberNotFound, de.Code)
	assert.Empty(t, assigner.calls)
}

func TestAssignSingleTask_EmptyRosterUsesLiteralName(t *testing.T) {
	assigner := newAssignerFake()
	svc := newService(&itemsFake{}, &rosterFake{}, assigner, nil, nil)

	ok, err := svc.AssignSingleTask(context.Background(), 10, "Demo User")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Demo User", assigner.applied[10])
}

func TestAssignSingleTask_InactiveMemberStillResolves(t *testing.T) {
	assigner := newAssignerFake()
	roster := &rosterFake{members: []member.Member{
		{ID: "u1", DisplayName: "Herbert Albert", IsActive: true},
		{ID: "u2", DisplayName: "Mary Ann Smith", IsActive: false},
	}}
	svc := newService(&itemsFake{}, roster, assigner, nil, nil)

	ok, err := svc.AssignSingleTask(context.Background(), 10, "mary ann smith")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Mary Ann Smith", assigner.applied[10])
}

func TestAssignSingleTask_AllInactiveRosterIsNotEmpty(t *testing.T) {
	assigner := newAssignerFake()
	roster := &rosterFake{members: []member.Member{
		{ID: "u2", DisplayName: "Mary Ann Smith", IsActive: false},
	}}
	svc := newService(&itemsFake{}, roster, assigner, nil, nil)

	ok, err := svc.AssignSingleTask(context.Background(), 11, "Totally Made Up")
	assert.False(t, ok)

	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.ErrorCodeMemberNotFound, de.Code)
	assert.Empty(t, assigner.calls)
}

func TestGetAutoAssignSuggestions_SkipsInactiveMembers(t *testing.T) {
	roster := &rosterFake{members: []member.Member{
		{ID: "u1", DisplayName: "Herbert Albert", IsActive: true},
		{ID: "u2", DisplayName: "Mary Ann Smith", IsActive: false},
	}}
	svc := newService(&itemsFake{items: sprintItems()}, roster, newAssignerFake(), nil, nil)

	got, err := svc.GetAutoAssignSuggestions(context.Background(), sprint)
	require.NoError(t, err)
	require.NotEmpty(t, got)
	for _, text := range got {
		assert.Equal(t, "Herbert Albert", recommend.ExtractDeveloperName(text))
	}
}

func TestAssignSingleTask_Errors(t *testing.T) {
	assigner := newAssignerFake()
	assigner.missing[99] = true
	svc := newService(&itemsFake{}, &rosterFake{}, assigner, nil, nil)

	_, err := svc.AssignSingleTask(context.Background(), 10, "  ")
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.ErrorCodeInvalidArgument, de.Code)

	_, err = svc.AssignSingleTask(context.Background(), 99, "Demo User")
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.ErrorCodeNotFound, de.Code)

	svc = newService(&itemsFake{}, &rosterFake{err: errors.New("down")}, assigner, nil, nil)
	_, err = svc.AssignSingleTask(context.Background(), 10, "Demo User")
	assert.ErrorContains(t, err, "fetch roster")
}

func TestGetWeightedTaskCounts(t *testing.T) {
	items := append(sprintItems(), workitem.WorkItem{ID: 1, Status: "Done", AssignedTo: "Herbert Albert", IterationPath: sprint})
	svc := newService(&itemsFake{items: items}, &rosterFake{}, newAssignerFake(), nil, nil)

	got, err := svc.GetWeightedTaskCounts(context.Background(), sprint)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"Herbert Albert": 2, "Mary Ann Smith": 1}, got)
}
