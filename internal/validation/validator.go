package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"goal-planner/internal/goal"
	"goal-planner/pkg/datemath"
)

const (
	DefaultMaxMonths = 6
	maxTitleRunes    = 80
)

type Config struct {
	// MaxMonths caps the span of a goal in calendar months.
	MaxMonths int
}

// Validator decides whether a draft holds enough to build a schedule.
// It holds no per-draft state and is safe for concurrent use.
type Validator struct {
	dates     *datemath.Parser
	maxMonths int
}

func New(dates *datemath.Parser, cfg Config) *Validator {
	if cfg.MaxMonths <= 0 {
		cfg.MaxMonths = DefaultMaxMonths
	}
	return &Validator{dates: dates, maxMonths: cfg.MaxMonths}
}

func (v *Validator) MaxMonths() int {
	return v.maxMonths
}

// Validate is a pure function of draft and today. Dates that cannot be read
// from explicit input or a resolvable phrase stay nil; nothing is defaulted.
func (v *Validator) Validate(draft goal.Draft, today time.Time) goal.ValidationResult {
	today = v.dates.StartOfDay(today)

	title := strings.TrimSpace(draft.Title)
	description := strings.TrimSpace(draft.Description)
	texts := []string{title, draft.InitialValue, description}

	// The free-text statement is the user's own wording of the goal.
	if initial := strings.TrimSpace(draft.InitialValue); initial != "" {
		if title == "" {
			title = suggestTitle(initial, "")
		}
		if description == "" {
			description = initial
		}
	}

	phrase, hasPhrase := firstDurationPhrase(texts)

	start := v.dayPtr(draft.StartDate)
	if start == nil {
		start = v.resolveStart(texts, today)
	}
	end := v.dayPtr(draft.EndDate)
	if end == nil && start != nil && hasPhrase {
		e := phrase.Duration.AddTo(*start)
		end = &e
	}

	emoji := draft.Emoji
	if emoji == "" {
		emoji = PickEmoji(strings.Join(texts, " "))
	}

	res := goal.ValidationResult{
		Title:       title,
		Description: description,
		Emoji:       emoji,
		StartDate:   start,
		EndDate:     end,
	}

	// Missing dates come first. A duration phrase already implies the end,
	// so only the start is reported in that case.
	if start == nil {
		res.MissingFields = append(res.MissingFields, goal.FieldStartDate)
		res.Messages = append(res.Messages, msgMissingStart)
	}
	if end == nil && !hasPhrase {
		res.MissingFields = append(res.MissingFields, goal.FieldEndDate)
		if start == nil {
			res.Messages = append(res.Messages, msgMissingEndNoPhrase)
		} else {
			res.Messages = append(res.Messages, msgMissingEnd)
		}
	}
	if len(res.MissingFields) > 0 {
		v.addMissingText(&res)
		res.Status = goal.ResultIncomplete
		res.Suggestion = v.suggest(res, draft, phrase, hasPhrase, today)
		return res
	}

	if end.Before(*start) {
		res.Status = goal.ResultInvalid
		res.Reason = msgEndBeforeStart
		s, e := *end, *start
		if limit := s.AddDate(0, v.maxMonths, 0); e.After(limit) {
			e = limit
		}
		res.Suggestion = &goal.Suggestion{Title: title, Description: description, StartDate: &s, EndDate: &e}
		return res
	}

	if limit := start.AddDate(0, v.maxMonths, 0); end.After(limit) {
		res.Status = goal.ResultInvalid
		res.Reason = fmt.Sprintf(msgDurationExceeded, v.maxMonths, v.maxMonths)
		s := *start
		res.Suggestion = &goal.Suggestion{Title: title, Description: description, StartDate: &s, EndDate: &limit}
		return res
	}

	v.addMissingText(&res)
	if len(res.MissingFields) > 0 {
		res.Status = goal.ResultIncomplete
		res.Suggestion = v.suggest(res, draft, phrase, hasPhrase, today)
		return res
	}

	d := datemath.Classify(*start, *end)
	res.Status = goal.ResultValid
	res.Title = datemath.ReconcileTitleDuration(title, d)
	res.Duration = &d
	return res
}

func (v *Validator) addMissingText(res *goal.ValidationResult) {
	if res.Title == "" {
		res.MissingFields = append(res.MissingFields, goal.FieldTitle)
		res.Messages = append(res.Messages, msgMissingTitle)
	}
	if res.Description == "" {
		res.MissingFields = append(res.MissingFields, goal.FieldDescription)
		res.Messages = append(res.Messages, msgMissingDescription)
	}
}

// suggest proposes a concrete value for every field, keeping what is known.
func (v *Validator) suggest(res goal.ValidationResult, draft goal.Draft, phrase datemath.Phrase, hasPhrase bool, today time.Time) *goal.Suggestion {
	start := today.AddDate(0, 0, 1)
	if res.StartDate != nil {
		start = *res.StartDate
	}

	var end time.Time
	switch {
	case res.EndDate != nil:
		end = *res.EndDate
	case hasPhrase:
		end = phrase.Duration.AddTo(start)
	default:
		end = start.AddDate(0, 1, 0)
	}
	if limit := start.AddDate(0, v.maxMonths, 0); end.After(limit) {
		end = limit
	}
	if end.Before(start) {
		end = start
	}

	title := res.Title
	if title == "" {
		title = suggestTitle(draft.InitialValue, res.Description)
	}
	description := res.Description
	if description == "" {
		description = fmt.Sprintf("Rutin %s setiap hari mulai %s sampai %s.",
			lowerFirst(title), start.Format("2 January 2006"), end.Format("2 January 2006"))
	}

	return &goal.Suggestion{
		Title:       title,
		Description: description,
		StartDate:   &start,
		EndDate:     &end,
	}
}

func (v *Validator) dayPtr(t *time.Time) *time.Time {
	if t == nil || t.IsZero() {
		return nil
	}
	d := v.dates.StartOfDay(*t)
	return &d
}

func (v *Validator) resolveStart(texts []string, today time.Time) *time.Time {
	for _, text := range texts {
		p, ok := datemath.FindStartPhrase(text)
		if !ok {
			continue
		}
		t, err := v.dates.ResolveRelativePhrase(p, today)
		if err != nil {
			continue
		}
		return &t
	}
	return nil
}

func firstDurationPhrase(texts []string) (datemath.Phrase, bool) {
	for _, text := range texts {
		if p, ok := datemath.FindDurationPhrase(text); ok {
			return p, true
		}
	}
	return datemath.Phrase{}, false
}

func suggestTitle(initialValue, description string) string {
	src := strings.TrimSpace(initialValue)
	if src == "" {
		src = strings.TrimSpace(description)
	}
	if src == "" {
		return defaultTitle
	}
	if utf8.RuneCountInString(src) > maxTitleRunes {
		src = strings.TrimSpace(string([]rune(src)[:maxTitleRunes]))
	}
	r, size := utf8.DecodeRuneInString(src)
	return string(unicode.ToUpper(r)) + src[size:]
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
