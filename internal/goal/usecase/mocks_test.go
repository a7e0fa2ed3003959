package usecase_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"goal-planner/internal/busy"
	"goal-planner/internal/goal"
	"goal-planner/internal/goal/repository"
	"goal-planner/pkg/gcalendar"
	"goal-planner/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type mockRepo struct {
	mu sync.Mutex

	busy      []busy.Block
	busyErr   error
	createErr error
	// gate, when set, holds ListBusyIntervals until closed.
	gate chan struct{}

	created  []goal.Goal
	lastList repository.ListGoalsOptions
}

func (m *mockRepo) CreateGoalWithSchedules(ctx context.Context, opt repository.CreateGoalOptions) (goal.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return goal.Goal{}, m.createErr
	}
	g := opt.Goal
	g.ID = fmt.Sprintf("goal-%d", len(m.created)+1)
	g.CreatedAt = time.Date(2025, 8, 26, 10, 0, 0, 0, time.UTC)
	for i := range g.Schedules {
		g.Schedules[i].ID = fmt.Sprintf("%s-day-%d", g.ID, g.Schedules[i].DayNumber)
	}
	m.created = append(m.created, g)
	return g, nil
}

func (m *mockRepo) GetGoal(ctx context.Context, opt repository.GetGoalOptions) (goal.Goal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, g := range m.created {
		if g.ID == opt.ID && g.UserID == opt.UserID {
			return g, nil
		}
	}
	return goal.Goal{}, nil
}

func (m *mockRepo) ListGoals(ctx context.Context, opt repository.ListGoalsOptions) ([]goal.Goal, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lastList = opt
	var out []goal.Goal
	for _, g := range m.created {
		if g.UserID == opt.UserID {
			out = append(out, g)
		}
	}
	return out, len(out), nil
}

func (m *mockRepo) ListBusyIntervals(ctx context.Context, opt repository.ListBusyOptions) ([]busy.Block, error) {
	m.mu.Lock()
	gate := m.gate
	m.mu.Unlock()
	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.busyErr != nil {
		return nil, m.busyErr
	}
	return m.busy, nil
}

func (m *mockRepo) createdGoals() []goal.Goal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]goal.Goal(nil), m.created...)
}

// mockOracle answers with handler, which sees the 1-based call number.
type mockOracle struct {
	mu       sync.Mutex
	calls    int
	requests []*llmprovider.Request
	handler  func(call int, req *llmprovider.Request) (string, error)
}

func (m *mockOracle) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	m.mu.Lock()
	m.calls++
	call := m.calls
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	text, err := m.handler(call, req)
	if err != nil {
		return nil, err
	}
	return &llmprovider.Response{Text: text, ProviderName: "mock", ModelName: "mock-1"}, nil
}

func (m *mockOracle) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockCalendar struct {
	mu      sync.Mutex
	events  []gcalendar.Event
	listErr error
	created []gcalendar.CreateEventRequest
}

func (m *mockCalendar) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.events, nil
}

func (m *mockCalendar) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created = append(m.created, req)
	return &gcalendar.Event{ID: fmt.Sprintf("evt-%d", len(m.created))}, nil
}
