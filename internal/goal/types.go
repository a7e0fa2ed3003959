package goal

import (
	"time"

	"goal-planner/pkg/datemath"
	"goal-planner/pkg/interval"
)

// --- Goal Domain Model ---

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusAbandoned Status = "ABANDONED"
)

// Goal owns its schedule items; they are created and stored together.
type Goal struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Emoji       string
	StartDate   time.Time
	EndDate     time.Time
	Status      Status
	Schedules   []ScheduleItem
	CreatedAt   time.Time
}

// ScheduleItem is one day of a goal's plan.
type ScheduleItem struct {
	ID              string
	DayNumber       int
	Date            time.Time
	Interval        interval.Interval
	Title           string
	Description     string
	Emoji           string
	ProgressPercent float64
	// BestEffort marks a slot that could not avoid the busy set.
	BestEffort bool
	Warning    string
}

// --- Validation ---

// Draft is the accumulated, possibly partial, description of a goal.
// Empty strings and nil dates mean "not provided".
type Draft struct {
	InitialValue string
	Title        string
	Description  string
	StartDate    *time.Time
	EndDate      *time.Time
	Emoji        string
}

// Merge fills the empty fields of d from other. Filled fields are never replaced.
func (d Draft) Merge(other Draft) Draft {
	if d.InitialValue == "" {
		d.InitialValue = other.InitialValue
	}
	if d.Title == "" {
		d.Title = other.Title
	}
	if d.Description == "" {
		d.Description = other.Description
	}
	if d.StartDate == nil {
		d.StartDate = other.StartDate
	}
	if d.EndDate == nil {
		d.EndDate = other.EndDate
	}
	if d.Emoji == "" {
		d.Emoji = other.Emoji
	}
	return d
}

type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldStartDate   Field = "startDate"
	FieldEndDate     Field = "endDate"
)

type ResultStatus string

const (
	ResultValid      ResultStatus = "valid"
	ResultIncomplete ResultStatus = "incomplete"
	ResultInvalid    ResultStatus = "invalid"
)

// Suggestion holds concrete values the caller may offer the user.
type Suggestion struct {
	Title       string
	Description string
	StartDate   *time.Time
	EndDate     *time.Time
}

// ValidationResult is a tagged union discriminated by Status:
//   - valid: every field is set, Duration is the classified span
//   - incomplete: the known fields are set, MissingFields and Messages explain the rest
//   - invalid: Reason explains the rule that failed
//
// Suggestion is set for incomplete and invalid results.
type ValidationResult struct {
	Status        ResultStatus
	Title         string
	Description   string
	Emoji         string
	StartDate     *time.Time
	EndDate       *time.Time
	Duration      *datemath.Duration
	MissingFields []Field
	Messages      []string
	Reason        string
	Suggestion    *Suggestion
}

func (r ValidationResult) IsValid() bool {
	return r.Status == ResultValid
}

// Missing reports whether f is listed in MissingFields.
func (r ValidationResult) Missing(f Field) bool {
	for _, m := range r.MissingFields {
		if m == f {
			return true
		}
	}
	return false
}

// --- Progress ---

type Stage string

const (
	StageValidating Stage = "validating"
	StageIncomplete Stage = "incomplete"
	StageInvalid    Stage = "invalid"
	StageGenerating Stage = "generating"
	StageSaving     Stage = "saving"
	StageDone       Stage = "done"
	StageFailed     Stage = "failed"
)

// Terminal reports whether no event follows s.
func (s Stage) Terminal() bool {
	switch s {
	case StageIncomplete, StageInvalid, StageDone, StageFailed:
		return true
	}
	return false
}

// ProgressEvent is one step of a goal-creation run.
type ProgressEvent struct {
	Stage   Stage
	Percent float64
	// Item is set for StageGenerating events.
	Item *ScheduleItem
	// Result is set for StageIncomplete and StageInvalid.
	Result *ValidationResult
	// Goal is set for StageDone.
	Goal *Goal
	// Err is set for StageFailed.
	Err error
}

// --- UseCase Inputs ---

type ValidateInput struct {
	Draft Draft
}

type CreateInput struct {
	Draft Draft
	// PreferredSlot overrides the configured default daily slot.
	PreferredSlot *interval.DailySlot
}

type ListInput struct {
	Status Status
	Limit  int
	Offset int
}

// --- UseCase Outputs ---

type CreateOutput struct {
	Goal      Goal
	TotalDays int
}

type ListOutput struct {
	Goals  []Goal
	Total  int
	Limit  int
	Offset int
}
