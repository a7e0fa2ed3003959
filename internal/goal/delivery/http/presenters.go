package http

import (
	"strings"
	"time"

	"goal-planner/internal/goal"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/interval"
	"goal-planner/pkg/response"
)

// --- Request DTOs ---

type draftReq struct {
	InitialValue string `json:"initial_value" binding:"max=2000"`
	Title        string `json:"title"         binding:"max=255"`
	Description  string `json:"description"   binding:"max=2000"`
	StartDate    string `json:"start_date"    example:"2025-08-27"`
	EndDate      string `json:"end_date"      example:"2025-09-27"`
	Emoji        string `json:"emoji"         binding:"max=16"`
}

func (r draftReq) validate() error {
	if strings.TrimSpace(r.InitialValue) == "" && strings.TrimSpace(r.Title) == "" && strings.TrimSpace(r.Description) == "" {
		return errEmptyDraft
	}
	for _, d := range []string{r.StartDate, r.EndDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return errInvalidDate
		}
	}
	return nil
}

func (r draftReq) toDraft(loc *time.Location) goal.Draft {
	return goal.Draft{
		InitialValue: strings.TrimSpace(r.InitialValue),
		Title:        strings.TrimSpace(r.Title),
		Description:  strings.TrimSpace(r.Description),
		StartDate:    parseDate(r.StartDate, loc),
		EndDate:      parseDate(r.EndDate, loc),
		Emoji:        strings.TrimSpace(r.Emoji),
	}
}

type validateReq struct {
	draftReq
}

func (r validateReq) toInput(loc *time.Location) goal.ValidateInput {
	return goal.ValidateInput{Draft: r.toDraft(loc)}
}

// ---

type createReq struct {
	draftReq
	// PreferredSlot is "HH:MM-HH:MM", e.g. "19:30-20:15".
	PreferredSlot string `json:"preferred_slot" example:"09:00-10:00"`
}

func (r createReq) validate() error {
	if err := r.draftReq.validate(); err != nil {
		return err
	}
	if r.PreferredSlot == "" {
		return nil
	}
	slot, err := interval.ParseDailySlot(r.PreferredSlot)
	if err != nil || slot.CrossesMidnight() {
		return errInvalidSlot
	}
	return nil
}

func (r createReq) toInput(loc *time.Location) goal.CreateInput {
	in := goal.CreateInput{Draft: r.toDraft(loc)}
	if r.PreferredSlot != "" {
		slot := interval.MustParseDailySlot(r.PreferredSlot)
		in.PreferredSlot = &slot
	}
	return in
}

// ---

type listReq struct {
	Status string `form:"status"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

func (r listReq) validate() error {
	switch goal.Status(strings.ToUpper(r.Status)) {
	case "", goal.StatusActive, goal.StatusCompleted, goal.StatusAbandoned:
		return nil
	}
	return errInvalidState
}

func (r listReq) toInput() goal.ListInput {
	return goal.ListInput{
		Status: goal.Status(strings.ToUpper(r.Status)),
		Limit:  r.Limit,
		Offset: r.Offset,
	}
}

// --- Response DTOs ---

type durationResp struct {
	Value int    `json:"value"`
	Unit  string `json:"unit"`
	Text  string `json:"text"`
}

type suggestionResp struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartDate   *response.Date `json:"start_date,omitempty"`
	EndDate     *response.Date `json:"end_date,omitempty"`
}

type validationResp struct {
	Status        string          `json:"status"`
	Title         string          `json:"title,omitempty"`
	Description   string          `json:"description,omitempty"`
	Emoji         string          `json:"emoji,omitempty"`
	StartDate     *response.Date  `json:"start_date,omitempty"`
	EndDate       *response.Date  `json:"end_date,omitempty"`
	Duration      *durationResp   `json:"duration,omitempty"`
	MissingFields []string        `json:"missing_fields,omitempty"`
	Messages      []string        `json:"messages,omitempty"`
	Reason        string          `json:"reason,omitempty"`
	Suggestion    *suggestionResp `json:"suggestion,omitempty"`
}

func newValidationResp(res goal.ValidationResult) validationResp {
	resp := validationResp{
		Status:      string(res.Status),
		Title:       res.Title,
		Description: res.Description,
		Emoji:       res.Emoji,
		StartDate:   response.NewDate(res.StartDate),
		EndDate:     response.NewDate(res.EndDate),
		Messages:    res.Messages,
		Reason:      res.Reason,
	}
	if res.Duration != nil {
		resp.Duration = &durationResp{
			Value: res.Duration.Value,
			Unit:  string(res.Duration.Unit),
			Text:  datemath.FormatDuration(*res.Duration, datemath.LangID),
		}
	}
	for _, f := range res.MissingFields {
		resp.MissingFields = append(resp.MissingFields, string(f))
	}
	if s := res.Suggestion; s != nil {
		resp.Suggestion = &suggestionResp{
			Title:       s.Title,
			Description: s.Description,
			StartDate:   response.NewDate(s.StartDate),
			EndDate:     response.NewDate(s.EndDate),
		}
	}
	return resp
}

// scheduleItemResp.ProgressPercent is a whole number for goals of up to 100
// days; longer goals carry the fraction needed to keep values distinct.
type scheduleItemResp struct {
	ID              string            `json:"id,omitempty"`
	DayNumber       int               `json:"day_number"`
	Date            response.Date     `json:"date"`
	StartTime       response.DateTime `json:"start_time"`
	EndTime         response.DateTime `json:"end_time"`
	Title           string            `json:"title"`
	Description     string            `json:"description"`
	Emoji           string            `json:"emoji"`
	ProgressPercent float64           `json:"progress_percent"`
	BestEffort      bool              `json:"best_effort"`
	Warning         string            `json:"warning,omitempty"`
}

func newScheduleItemResp(it goal.ScheduleItem) scheduleItemResp {
	return scheduleItemResp{
		ID:              it.ID,
		DayNumber:       it.DayNumber,
		Date:            response.Date(it.Date),
		StartTime:       response.DateTime(it.Interval.Start),
		EndTime:         response.DateTime(it.Interval.End),
		Title:           it.Title,
		Description:     it.Description,
		Emoji:           it.Emoji,
		ProgressPercent: it.ProgressPercent,
		BestEffort:      it.BestEffort,
		Warning:         it.Warning,
	}
}

type goalResp struct {
	ID          string             `json:"id"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Emoji       string             `json:"emoji"`
	StartDate   response.Date      `json:"start_date"`
	EndDate     response.Date      `json:"end_date"`
	Status      string             `json:"status"`
	CreatedAt   response.DateTime  `json:"created_at"`
	Schedules   []scheduleItemResp `json:"schedules,omitempty"`
}

func newGoalResp(g goal.Goal) goalResp {
	resp := goalResp{
		ID:          g.ID,
		Title:       g.Title,
		Description: g.Description,
		Emoji:       g.Emoji,
		StartDate:   response.Date(g.StartDate),
		EndDate:     response.Date(g.EndDate),
		Status:      string(g.Status),
		CreatedAt:   response.DateTime(g.CreatedAt),
	}
	if len(g.Schedules) > 0 {
		resp.Schedules = make([]scheduleItemResp, len(g.Schedules))
		for i, it := range g.Schedules {
			resp.Schedules[i] = newScheduleItemResp(it)
		}
	}
	return resp
}

type createResp struct {
	Goal      goalResp `json:"goal"`
	TotalDays int      `json:"total_days"`
}

func (h *handler) newCreateResp(out goal.CreateOutput) createResp {
	return createResp{Goal: newGoalResp(out.Goal), TotalDays: out.TotalDays}
}

type detailResp struct {
	Goal goalResp `json:"goal"`
}

func (h *handler) newDetailResp(g goal.Goal) detailResp {
	return detailResp{Goal: newGoalResp(g)}
}

type listResp struct {
	Goals  []goalResp `json:"goals"`
	Total  int        `json:"total"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func (h *handler) newListResp(out goal.ListOutput) listResp {
	goals := make([]goalResp, len(out.Goals))
	for i, g := range out.Goals {
		goals[i] = newGoalResp(g)
	}
	return listResp{
		Goals:  goals,
		Total:  out.Total,
		Limit:  out.Limit,
		Offset: out.Offset,
	}
}

// progressResp is the data of one server-sent progress event.
type progressResp struct {
	Status  string            `json:"status"`
	Percent float64           `json:"percent"`
	Item    *scheduleItemResp `json:"item,omitempty"`
	Result  *validationResp   `json:"result,omitempty"`
	Goal    *createResp       `json:"goal,omitempty"`
	Error   string            `json:"error,omitempty"`
}

func (h *handler) newProgressResp(ev goal.ProgressEvent) progressResp {
	resp := progressResp{Status: string(ev.Stage), Percent: ev.Percent}
	if ev.Item != nil {
		item := newScheduleItemResp(*ev.Item)
		resp.Item = &item
	}
	if ev.Result != nil {
		result := newValidationResp(*ev.Result)
		resp.Result = &result
	}
	if ev.Goal != nil {
		created := h.newCreateResp(goal.CreateOutput{Goal: *ev.Goal, TotalDays: len(ev.Goal.Schedules)})
		resp.Goal = &created
	}
	if ev.Err != nil {
		resp.Error = h.mapError(ev.Err).Error()
	}
	return resp
}

func parseDate(s string, loc *time.Location) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.ParseInLocation(time.DateOnly, s, loc)
	if err != nil {
		return nil
	}
	return &t
}
