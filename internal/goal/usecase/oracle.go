package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/pkg/datemath"
	"goal-planner/pkg/llmprovider"
	"goal-planner/pkg/oracle"
)

const (
	opExtract = "extract"
	opContent = "content"

	recentGoalsInPrompt = 5
)

var explicitDateRe = regexp.MustCompile(`(?i)\b(\d{4}-\d{1,2}-\d{1,2}|\d{1,2}[/-]\d{1,2}([/-]\d{2,4})?|\d{1,2}\s+(jan|feb|mar|apr|mei|may|jun|jul|agu|aug|sep|okt|oct|nov|des|dec)[a-z]*)\b`)

// extraction is the JSON object the oracle returns for a draft.
type extraction struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	StartDate   *string `json:"startDate"`
	EndDate     *string `json:"endDate"`
	Emoji       string  `json:"emoji"`
}

// callOracle sends req and hands the reply to decode. Transient and parse
// failures are repeated up to OracleRetries times with the same request.
func (uc *implUseCase) callOracle(ctx context.Context, op string, req *llmprovider.Request, decode func(raw string) error) error {
	attempts := uc.cfg.OracleRetries + 1

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			uc.metrics.ObserveOracleRetry(op)
			uc.l.Warnf(ctx, "goal/usecase.callOracle: %s attempt %d/%d after: %v", op, attempt+1, attempts, lastErr)
		}

		resp, err := uc.oracle.GenerateContent(ctx, req)
		if err == nil {
			err = decode(resp.Text)
		}
		uc.metrics.ObserveOracle(op, err)
		if err == nil {
			return nil
		}
		lastErr = err

		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if !llmprovider.IsTransient(err) && !oracle.IsParseError(err) {
			break
		}
	}

	uc.l.Errorf(ctx, "goal/usecase.callOracle: %s failed: %v", op, lastErr)
	return fmt.Errorf("%w: %v", goal.ErrOracleUnavailable, lastErr)
}

// extractDraft asks the oracle to read the free text of draft. Only fields
// the draft lacks are taken from the reply.
func (uc *implUseCase) extractDraft(ctx context.Context, userID string, draft goal.Draft) (goal.Draft, error) {
	recent, _, err := uc.repo.ListGoals(ctx, repo.ListGoalsOptions{
		UserID: userID,
		Status: goal.StatusActive,
		Limit:  recentGoalsInPrompt,
	})
	if err != nil {
		uc.l.Warnf(ctx, "goal/usecase.extractDraft: recent goals unavailable: %v", err)
		recent = nil
	}

	req := &llmprovider.Request{
		SystemInstruction: buildExtractionSystemPrompt(uc.today()),
		Messages:          []llmprovider.Message{llmprovider.UserMessage(buildExtractionPrompt(draft, recent))},
		Temperature:       0.1,
		MaxTokens:         512,
		JSONOutput:        true,
	}

	var ex extraction
	err = uc.callOracle(ctx, opExtract, req, func(raw string) error {
		decoded, err := oracle.DecodeJSON[extraction](raw)
		if err != nil {
			return err
		}
		ex = decoded
		return nil
	})
	if err != nil {
		return goal.Draft{}, err
	}

	return uc.extractionToDraft(draft, ex), nil
}

// extractionToDraft keeps an oracle start date only when the user's text names
// a start or an explicit date. An oracle end date is kept only once the start
// is known; a duration phrase alone leaves the end to the validator.
func (uc *implUseCase) extractionToDraft(draft goal.Draft, ex extraction) goal.Draft {
	d := goal.Draft{
		Title:       strings.TrimSpace(ex.Title),
		Description: strings.TrimSpace(ex.Description),
		Emoji:       strings.TrimSpace(ex.Emoji),
	}

	_, hasStart := datemath.FindStartPhrase(draft.InitialValue)
	explicit := explicitDateRe.MatchString(draft.InitialValue)

	if hasStart || explicit {
		d.StartDate = uc.parseOracleDate(ex.StartDate)
	}
	if draft.StartDate != nil || d.StartDate != nil {
		d.EndDate = uc.parseOracleDate(ex.EndDate)
	}
	return d
}

func (uc *implUseCase) parseOracleDate(s *string) *time.Time {
	if s == nil {
		return nil
	}
	t, err := uc.dates.ParseDate(*s)
	if err != nil {
		return nil
	}
	return &t
}

// needsExtraction reports whether draft has free text and lacks a field the
// oracle could fill.
func needsExtraction(d goal.Draft) bool {
	if strings.TrimSpace(d.InitialValue) == "" {
		return false
	}
	return d.Title == "" || d.Description == "" || d.StartDate == nil || d.EndDate == nil
}
