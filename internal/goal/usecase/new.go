package usecase

import (
	"context"
	"sync"
	"time"

	"goal-planner/internal/busy"
	"goal-planner/internal/goal/repository"
	"goal-planner/internal/schedule"
	"goal-planner/internal/validation"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/eventbus"
	"goal-planner/pkg/gcalendar"
	"goal-planner/pkg/interval"
	"goal-planner/pkg/llmprovider"
	pkgLog "goal-planner/pkg/log"
	"goal-planner/pkg/metrics"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	DefaultCreatedSubject = "planner.goal.created"
)

// Oracle is the text-generation backend. *llmprovider.Manager satisfies it.
type Oracle interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Calendar is the external calendar. *gcalendar.Client satisfies it.
type Calendar interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

type Config struct {
	Schedule schedule.Config
	// Sleep and WorkingHours are expanded into the busy set; nil disables them.
	Sleep        *interval.DailySlot
	WorkingHours *busy.WorkingHours
	// OracleRetries is how many times a failed oracle call is repeated.
	OracleRetries int
	// UseOracleContent writes daily activities with the oracle instead of templates.
	UseOracleContent bool
	CreatedSubject   string
	CalendarID       string
	// ExportEvents copies each new schedule item to the calendar.
	ExportEvents bool
	Clock        func() time.Time
}

// Deps groups the collaborators of the use case. Oracle, Calendar, Publisher
// and Metrics are optional.
type Deps struct {
	Repo      repository.Repository
	Validator *validation.Validator
	Dates     *datemath.Parser
	Oracle    Oracle
	Calendar  Calendar
	Publisher eventbus.Publisher
	Metrics   *metrics.Planner
}

type implUseCase struct {
	l         pkgLog.Logger
	repo      repository.Repository
	validator *validation.Validator
	dates     *datemath.Parser
	synth     *schedule.Synthesizer
	oracle    Oracle
	calendar  Calendar
	publisher eventbus.Publisher
	metrics   *metrics.Planner
	cfg       Config
	now       func() time.Time

	mu       sync.Mutex
	inFlight map[string]struct{}
}

// New creates a new goal UseCase implementation.
func New(l pkgLog.Logger, deps Deps, cfg Config) *implUseCase {
	if cfg.OracleRetries < 0 {
		cfg.OracleRetries = 0
	}
	if cfg.CreatedSubject == "" {
		cfg.CreatedSubject = DefaultCreatedSubject
	}
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.Schedule.DefaultSlot == (interval.DailySlot{}) {
		cfg.Schedule.DefaultSlot = schedule.DefaultSlot
	}
	now := cfg.Clock
	if now == nil {
		now = time.Now
	}
	publisher := deps.Publisher
	if publisher == nil {
		publisher = eventbus.Nop{}
	}

	uc := &implUseCase{
		l:         l,
		repo:      deps.Repo,
		validator: deps.Validator,
		dates:     deps.Dates,
		oracle:    deps.Oracle,
		calendar:  deps.Calendar,
		publisher: publisher,
		metrics:   deps.Metrics,
		cfg:       cfg,
		now:       now,
		inFlight:  make(map[string]struct{}),
	}

	var content schedule.ContentSource = schedule.TemplateContent{}
	if cfg.UseOracleContent && deps.Oracle != nil {
		content = &oracleContent{uc: uc}
	}
	uc.synth = schedule.New(l, content, cfg.Schedule)
	return uc
}

// acquire reserves the single creation slot of a user.
func (uc *implUseCase) acquire(userID string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if _, busy := uc.inFlight[userID]; busy {
		return false
	}
	uc.inFlight[userID] = struct{}{}
	return true
}

func (uc *implUseCase) release(userID string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, userID)
}

func (uc *implUseCase) today() time.Time {
	return uc.dates.StartOfDay(uc.now())
}
