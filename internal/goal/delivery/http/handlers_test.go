package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/config"
	"goal-planner/internal/goal"
	"goal-planner/internal/middleware"
	"goal-planner/internal/model"
	"goal-planner/pkg/interval"
	"goal-planner/pkg/log"
	"goal-planner/pkg/response"
	"goal-planner/pkg/scope"
)

type fakeUseCase struct {
	validateRes goal.ValidationResult
	err         error
	createOut   goal.CreateOutput
	events      []goal.ProgressEvent
	detail      goal.Goal
	listOut     goal.ListOutput

	gotScope    model.Scope
	gotValidate goal.ValidateInput
	gotCreate   goal.CreateInput
	gotList     goal.ListInput
}

func (f *fakeUseCase) Validate(ctx context.Context, sc model.Scope, input goal.ValidateInput) (goal.ValidationResult, error) {
	f.gotScope = sc
	f.gotValidate = input
	return f.validateRes, f.err
}

func (f *fakeUseCase) Start(ctx context.Context, sc model.Scope, input goal.CreateInput) (<-chan goal.ProgressEvent, error) {
	if f.err != nil {
		return nil, f.err
	}
	ch := make(chan goal.ProgressEvent, len(f.events))
	for _, ev := range f.events {
		ch <- ev
	}
	close(ch)
	return ch, nil
}

func (f *fakeUseCase) Create(ctx context.Context, sc model.Scope, input goal.CreateInput) (goal.CreateOutput, error) {
	f.gotScope = sc
	f.gotCreate = input
	return f.createOut, f.err
}

func (f *fakeUseCase) Detail(ctx context.Context, sc model.Scope, id string) (goal.Goal, error) {
	return f.detail, f.err
}

func (f *fakeUseCase) List(ctx context.Context, sc model.Scope, input goal.ListInput) (goal.ListOutput, error) {
	f.gotList = input
	return f.listOut, f.err
}

var wib = time.FixedZone("WIB", 7*3600)

func newRouter(uc goal.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), scope.New("secret"), config.AuthConfig{Disabled: true, DevUserID: "dev"}, config.RateLimitConfig{})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc, wib), mw)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	// The gin recorder supports CloseNotify, which c.Stream needs.
	w := gin.CreateTestResponseRecorder()
	r.ServeHTTP(w, req)
	return w.ResponseRecorder
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) response.Resp {
	t.Helper()
	resp := response.Resp{Data: data}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleGoal() goal.Goal {
	start := time.Date(2025, 8, 27, 0, 0, 0, 0, wib)
	items := make([]goal.ScheduleItem, 2)
	for i := range items {
		date := start.AddDate(0, 0, i)
		items[i] = goal.ScheduleItem{
			DayNumber:       i + 1,
			Date:            date,
			Interval:        interval.MustParseDailySlot("09:00-10:00").On(date),
			Title:           fmt.Sprintf("Hari %d", i+1),
			ProgressPercent: float64(50 * (i + 1)),
		}
	}
	return goal.Goal{
		ID:        "goal-1",
		Title:     "Belajar gitar",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 1),
		Status:    goal.StatusActive,
		Schedules: items,
	}
}

func TestValidate(t *testing.T) {
	start := time.Date(2025, 8, 27, 0, 0, 0, 0, wib)
	end := start.AddDate(0, 2, 0)
	uc := &fakeUseCase{validateRes: goal.ValidationResult{
		Status:        goal.ResultIncomplete,
		Title:         "Tadabur Alquran selama 2 bulan",
		MissingFields: []goal.Field{goal.FieldStartDate},
		Messages:      []string{"Kapan kamu ingin mulai?"},
		Suggestion:    &goal.Suggestion{Title: "Tadabur Alquran selama 2 bulan", StartDate: &start, EndDate: &end},
	}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/goals/validate", `{"initial_value":"Tadabur Alquran selama 2 bulan"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got validationResp
	decode(t, w, &got)
	assert.Equal(t, "incomplete", got.Status)
	assert.Equal(t, []string{"startDate"}, got.MissingFields)
	require.NotNil(t, got.Suggestion)
	require.NotNil(t, got.Suggestion.StartDate)
	assert.Equal(t, "2025-08-27", got.Suggestion.StartDate.String())
	assert.Equal(t, "2025-10-27", got.Suggestion.EndDate.String())
	assert.Nil(t, got.StartDate)
	assert.NotContains(t, w.Body.String(), `"end_date":""`)
	assert.Equal(t, "dev", uc.gotScope.UserID)

	w = do(r, http.MethodPost, "/api/v1/goals/validate", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/api/v1/goals/validate", `{"title":"Lari","start_date":"YYYY-MM-DD"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidate_DescriptionOnly(t *testing.T) {
	uc := &fakeUseCase{validateRes: goal.ValidationResult{
		Status:        goal.ResultIncomplete,
		Description:   "Latihan chord 30 menit",
		MissingFields: []goal.Field{goal.FieldTitle},
	}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/goals/validate", `{
		"description": "Latihan chord 30 menit",
		"start_date": "2025-08-27",
		"end_date": "2025-09-27"
	}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Latihan chord 30 menit", uc.gotValidate.Draft.Description)

	var got validationResp
	decode(t, w, &got)
	assert.Equal(t, []string{"title"}, got.MissingFields)
}

func TestValidate_OracleDown(t *testing.T) {
	r := newRouter(&fakeUseCase{err: fmt.Errorf("%w: status 503", goal.ErrOracleUnavailable)})

	w := do(r, http.MethodPost, "/api/v1/goals/validate", `{"initial_value":"Belajar gitar"}`)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w, nil)
	assert.Equal(t, goal.ErrOracleUnavailable.Error(), resp.Message)
}

func TestCreate(t *testing.T) {
	uc := &fakeUseCase{createOut: goal.CreateOutput{Goal: sampleGoal(), TotalDays: 2}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/goals", `{
		"title": "Belajar gitar",
		"description": "Latihan chord",
		"start_date": "2025-08-27",
		"end_date": "2025-08-28",
		"preferred_slot": "19:30-20:15"
	}`)
	require.Equal(t, http.StatusOK, w.Code)

	var got createResp
	decode(t, w, &got)
	assert.Equal(t, 2, got.TotalDays)
	assert.Equal(t, "goal-1", got.Goal.ID)
	require.Len(t, got.Goal.Schedules, 2)
	assert.Equal(t, "2025-08-28", got.Goal.Schedules[1].Date.String())
	assert.Equal(t, "2025-08-28T09:00:00+07:00", got.Goal.Schedules[1].StartTime.String())
	assert.Equal(t, "2025-08-27", got.Goal.StartDate.String())
	assert.Contains(t, w.Body.String(), `"start_time":"2025-08-27T09:00:00+07:00"`)
	assert.Equal(t, float64(100), got.Goal.Schedules[1].ProgressPercent)

	require.NotNil(t, uc.gotCreate.PreferredSlot)
	assert.Equal(t, 19*60+30, uc.gotCreate.PreferredSlot.StartMinute)
	require.NotNil(t, uc.gotCreate.Draft.StartDate)
	assert.Equal(t, time.Date(2025, 8, 27, 0, 0, 0, 0, wib), *uc.gotCreate.Draft.StartDate)
}

func TestCreate_Errors(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, wib)
	end := time.Date(2025, 8, 1, 0, 0, 0, 0, wib)
	invalid := &goal.ValidationError{
		Result: goal.ValidationResult{Status: goal.ResultInvalid, Reason: "durasi melebihi 6 bulan", StartDate: &start, EndDate: &end},
		Err:    goal.ErrDurationExceeded,
	}

	tests := []struct {
		name     string
		err      error
		body     string
		wantCode int
	}{
		{name: "invalid draft", err: invalid, body: `{"title":"Lari"}`, wantCode: http.StatusUnprocessableEntity},
		{name: "in flight", err: goal.ErrSynthesisInFlight, body: `{"title":"Lari"}`, wantCode: http.StatusConflict},
		{name: "storage", err: fmt.Errorf("insert: disk full"), body: `{"title":"Lari"}`, wantCode: http.StatusInternalServerError},
		{name: "slot crossing midnight", body: `{"title":"Lari","preferred_slot":"22:00-06:00"}`, wantCode: http.StatusBadRequest},
		{name: "malformed slot", body: `{"title":"Lari","preferred_slot":"pagi"}`, wantCode: http.StatusBadRequest},
		{name: "malformed json", body: `{"title":`, wantCode: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRouter(&fakeUseCase{err: tt.err})
			w := do(r, http.MethodPost, "/api/v1/goals", tt.body)
			assert.Equal(t, tt.wantCode, w.Code)
		})
	}

	t.Run("validation result is returned as data", func(t *testing.T) {
		r := newRouter(&fakeUseCase{err: invalid})
		w := do(r, http.MethodPost, "/api/v1/goals", `{"title":"Lari"}`)

		var got validationResp
		resp := decode(t, w, &got)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.ErrorCode)
		assert.Equal(t, "invalid", got.Status)
		assert.Equal(t, "durasi melebihi 6 bulan", got.Reason)
	})
}

func TestStream(t *testing.T) {
	g := sampleGoal()
	uc := &fakeUseCase{events: []goal.ProgressEvent{
		{Stage: goal.StageValidating},
		{Stage: goal.StageGenerating},
		{Stage: goal.StageGenerating, Percent: 50, Item: &g.Schedules[0]},
		{Stage: goal.StageGenerating, Percent: 100, Item: &g.Schedules[1]},
		{Stage: goal.StageSaving, Percent: 100},
		{Stage: goal.StageDone, Percent: 100, Goal: &g},
	}}
	r := newRouter(uc)

	w := do(r, http.MethodPost, "/api/v1/goals/stream", `{"title":"Belajar gitar"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/event-stream")

	body := w.Body.String()
	assert.Equal(t, 6, strings.Count(body, "event:progress"))
	validating := strings.Index(body, `"status":"validating"`)
	saving := strings.Index(body, `"status":"saving"`)
	done := strings.Index(body, `"status":"done"`)
	assert.True(t, validating >= 0 && validating < saving && saving < done, body)
	assert.Contains(t, body, `"total_days":2`)
}

func TestStream_Failed(t *testing.T) {
	uc := &fakeUseCase{events: []goal.ProgressEvent{
		{Stage: goal.StageValidating},
		{Stage: goal.StageFailed, Err: fmt.Errorf("%w: timeout", goal.ErrOracleUnavailable)},
	}}
	w := do(newRouter(uc), http.MethodPost, "/api/v1/goals/stream", `{"title":"Belajar gitar"}`)

	assert.Contains(t, w.Body.String(), `"status":"failed"`)
	assert.Contains(t, w.Body.String(), goal.ErrOracleUnavailable.Error())
}

func TestStream_InFlight(t *testing.T) {
	w := do(newRouter(&fakeUseCase{err: goal.ErrSynthesisInFlight}), http.MethodPost, "/api/v1/goals/stream", `{"title":"Lari"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestDetail(t *testing.T) {
	w := do(newRouter(&fakeUseCase{detail: sampleGoal()}), http.MethodGet, "/api/v1/goals/goal-1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var got detailResp
	decode(t, w, &got)
	assert.Equal(t, "goal-1", got.Goal.ID)
	assert.Len(t, got.Goal.Schedules, 2)

	w = do(newRouter(&fakeUseCase{err: goal.ErrGoalNotFound}), http.MethodGet, "/api/v1/goals/missing", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestList(t *testing.T) {
	g := sampleGoal()
	g.Schedules = nil
	uc := &fakeUseCase{listOut: goal.ListOutput{Goals: []goal.Goal{g}, Total: 1, Limit: 20}}
	r := newRouter(uc)

	w := do(r, http.MethodGet, "/api/v1/goals?status=active&limit=5&offset=10", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, goal.ListInput{Status: goal.StatusActive, Limit: 5, Offset: 10}, uc.gotList)

	var got listResp
	decode(t, w, &got)
	assert.Equal(t, 1, got.Total)
	require.Len(t, got.Goals, 1)
	assert.Empty(t, got.Goals[0].Schedules)

	w = do(r, http.MethodGet, "/api/v1/goals?status=paused", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
