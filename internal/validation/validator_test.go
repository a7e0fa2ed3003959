package validation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goal-planner/internal/goal"
	"goal-planner/internal/validation"
	"goal-planner/pkg/datemath"
)

func newValidator(t *testing.T) (*validation.Validator, *time.Location) {
	t.Helper()
	parser, err := datemath.NewParser("Asia/Jakarta")
	require.NoError(t, err)
	return validation.New(parser, validation.Config{}), parser.Location()
}

func day(loc *time.Location, y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return &t
}

func TestValidate_DurationPhraseOnly(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 26, 14, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{InitialValue: "Tadabur Alquran selama 2 bulan"}, today)

	assert.Equal(t, goal.ResultIncomplete, res.Status)
	assert.Equal(t, []goal.Field{goal.FieldStartDate}, res.MissingFields)
	assert.Len(t, res.Messages, 1)
	assert.Nil(t, res.StartDate)
	assert.Nil(t, res.EndDate)
	assert.Equal(t, "📖", res.Emoji)

	require.NotNil(t, res.Suggestion)
	assert.Equal(t, *day(loc, 2025, 8, 27), *res.Suggestion.StartDate)
	assert.Equal(t, *day(loc, 2025, 10, 27), *res.Suggestion.EndDate)
}

func TestValidate_NeverFabricatesDates(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 26, 9, 0, 0, 0, loc)

	drafts := []goal.Draft{
		{InitialValue: "membaca buku"},
		{Title: "Belajar gitar", Description: "latihan kunci dasar"},
		{InitialValue: "mulai kapan-kapan belajar masak"},
		{},
	}
	for _, d := range drafts {
		res := v.Validate(d, today)
		assert.Equal(t, goal.ResultIncomplete, res.Status, d)
		assert.Nil(t, res.StartDate, d)
		assert.Nil(t, res.EndDate, d)
		assert.True(t, res.Missing(goal.FieldStartDate), d)
		assert.True(t, res.Missing(goal.FieldEndDate), d)

		require.NotNil(t, res.Suggestion)
		assert.True(t, res.Suggestion.StartDate.After(today), "suggested start is a real future date")
		assert.True(t, res.Suggestion.EndDate.After(*res.Suggestion.StartDate))
		assert.NotEmpty(t, res.Suggestion.Title)
		assert.NotEmpty(t, res.Suggestion.Description)
	}
}

func TestValidate_ExceedsCap(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2024, 12, 20, 0, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{
		Title:       "Belajar bahasa Jepang",
		Description: "Hafalan kosakata harian",
		StartDate:   day(loc, 2025, 1, 1),
		EndDate:     day(loc, 2025, 8, 1),
	}, today)

	assert.Equal(t, goal.ResultInvalid, res.Status)
	assert.Contains(t, res.Reason, "6 bulan")
	require.NotNil(t, res.Suggestion)
	assert.Equal(t, *day(loc, 2025, 1, 1), *res.Suggestion.StartDate)
	assert.Equal(t, *day(loc, 2025, 7, 1), *res.Suggestion.EndDate)
}

func TestValidate_CapBoundary(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2024, 12, 20, 0, 0, 0, 0, loc)
	start := day(loc, 2025, 1, 31)

	for months := 1; months <= 9; months++ {
		end := start.AddDate(0, months, 0)
		res := v.Validate(goal.Draft{Title: "t", Description: "d", StartDate: start, EndDate: &end}, today)
		if months <= 6 {
			assert.NotEqual(t, goal.ResultInvalid, res.Status, "%d months", months)
		} else {
			assert.Equal(t, goal.ResultInvalid, res.Status, "%d months", months)
		}
	}

	sixMonthsAndADay := start.AddDate(0, 6, 1)
	res := v.Validate(goal.Draft{Title: "t", Description: "d", StartDate: start, EndDate: &sixMonthsAndADay}, today)
	assert.Equal(t, goal.ResultInvalid, res.Status)
}

func TestValidate_ValidReconcilesTitle(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{
		Title:       "berolahraga selama 3 bulan",
		Description: "Jogging pagi",
		StartDate:   day(loc, 2025, 8, 27),
		EndDate:     day(loc, 2025, 9, 27),
	}, today)

	require.Equal(t, goal.ResultValid, res.Status)
	assert.Equal(t, "berolahraga selama 1 bulan", res.Title)
	assert.Equal(t, &datemath.Duration{Value: 1, Unit: datemath.UnitMonths}, res.Duration)
	assert.Empty(t, res.MissingFields)
	assert.Nil(t, res.Suggestion)
}

func TestValidate_StartPhraseAndDuration(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 26, 21, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{InitialValue: "Mulai besok belajar gitar selama 3 minggu"}, today)

	require.Equal(t, goal.ResultValid, res.Status)
	assert.Equal(t, *day(loc, 2025, 8, 27), *res.StartDate)
	assert.Equal(t, *day(loc, 2025, 9, 17), *res.EndDate)
	assert.Equal(t, "Mulai besok belajar gitar selama 3 minggu", res.Title)
	assert.Equal(t, "🎸", res.Emoji)
}

func TestValidate_MissingEndOnly(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{Title: "Lari pagi", Description: "5 km", StartDate: day(loc, 2025, 9, 1)}, today)

	assert.Equal(t, goal.ResultIncomplete, res.Status)
	assert.Equal(t, []goal.Field{goal.FieldEndDate}, res.MissingFields)
	require.NotNil(t, res.Suggestion)
	assert.Equal(t, *day(loc, 2025, 9, 1), *res.Suggestion.StartDate)
	assert.Equal(t, *day(loc, 2025, 10, 1), *res.Suggestion.EndDate)
}

func TestValidate_EndBeforeStart(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{
		Title: "Menabung", Description: "Sisihkan uang",
		StartDate: day(loc, 2025, 9, 10), EndDate: day(loc, 2025, 9, 1),
	}, today)

	assert.Equal(t, goal.ResultInvalid, res.Status)
	require.NotNil(t, res.Suggestion)
	assert.Equal(t, *day(loc, 2025, 9, 1), *res.Suggestion.StartDate)
	assert.Equal(t, *day(loc, 2025, 9, 10), *res.Suggestion.EndDate)
}

func TestValidate_MissingTextFields(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{StartDate: day(loc, 2025, 9, 1), EndDate: day(loc, 2025, 9, 5)}, today)

	assert.Equal(t, goal.ResultIncomplete, res.Status)
	assert.Equal(t, []goal.Field{goal.FieldTitle, goal.FieldDescription}, res.MissingFields)
	assert.Len(t, res.Messages, 2)
	require.NotNil(t, res.Suggestion)
	assert.NotEmpty(t, res.Suggestion.Title)
	assert.Contains(t, res.Suggestion.Description, "1 September 2025")
}

func TestValidate_NormalizesTimeOfDay(t *testing.T) {
	v, loc := newValidator(t)
	today := time.Date(2025, 8, 20, 0, 0, 0, 0, loc)
	start := time.Date(2025, 9, 1, 17, 45, 0, 0, loc)
	end := time.Date(2025, 9, 8, 3, 0, 0, 0, loc)

	res := v.Validate(goal.Draft{Title: "Yoga", Description: "pagi", StartDate: &start, EndDate: &end}, today)

	require.Equal(t, goal.ResultValid, res.Status)
	assert.Equal(t, *day(loc, 2025, 9, 1), *res.StartDate)
	assert.Equal(t, &datemath.Duration{Value: 1, Unit: datemath.UnitWeeks}, res.Duration)
}

func TestPickEmoji(t *testing.T) {
	assert.Equal(t, "🏃", validation.PickEmoji("Olahraga rutin"))
	assert.Equal(t, validation.DefaultEmoji, validation.PickEmoji("something else"))
}
