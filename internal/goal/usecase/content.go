package usecase

import (
	"context"
	"strconv"
	"strings"

	"goal-planner/internal/schedule"
	"goal-planner/pkg/llmprovider"
	"goal-planner/pkg/oracle"
)

// contentBatchDays bounds how many days one oracle call writes.
const contentBatchDays = 31

type dayPayload struct {
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// oracleContent writes daily activities with the oracle. Days the reply
// leaves out get the templated text.
type oracleContent struct {
	uc *implUseCase
}

func (c *oracleContent) Generate(ctx context.Context, req schedule.ContentRequest, days []schedule.Day) ([]schedule.DayContent, error) {
	out := make([]schedule.DayContent, 0, len(days))
	for from := 0; from < len(days); from += contentBatchDays {
		to := min(from+contentBatchDays, len(days))
		batch, err := c.generateBatch(ctx, req, days[from:to], len(days))
		if err != nil {
			return nil, err
		}
		out = append(out, batch...)
	}
	return out, nil
}

func (c *oracleContent) generateBatch(ctx context.Context, req schedule.ContentRequest, days []schedule.Day, total int) ([]schedule.DayContent, error) {
	llmReq := &llmprovider.Request{
		SystemInstruction: contentSystemPrompt,
		Messages:          []llmprovider.Message{llmprovider.UserMessage(buildContentPrompt(req, days, total))},
		Temperature:       0,
		MaxTokens:         4096,
		JSONOutput:        true,
	}

	var byDay map[int]dayPayload
	err := c.uc.callOracle(ctx, opContent, llmReq, func(raw string) error {
		decoded, err := decodeDays(raw)
		if err != nil {
			return err
		}
		byDay = decoded
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]schedule.DayContent, len(days))
	for i, d := range days {
		p, ok := byDay[d.Number]
		if !ok || p.Title == "" {
			out[i] = schedule.TemplateDay(req, d, total)
			continue
		}
		out[i] = schedule.DayContent{Title: p.Title, Description: p.Description}
	}
	return out, nil
}

// decodeDays reads a JSON array of days, falling back to CSV lines of
// day,title,description.
func decodeDays(raw string) (map[int]dayPayload, error) {
	items, err := oracle.DecodeJSON[[]dayPayload](raw)
	if err != nil {
		records, csvErr := oracle.CSVRecords(raw, 3, "day", "title", "description")
		if csvErr != nil {
			return nil, err
		}
		items = items[:0]
		for _, rec := range records {
			n, convErr := strconv.Atoi(strings.TrimSpace(rec[0]))
			if convErr != nil {
				continue
			}
			items = append(items, dayPayload{Day: n, Title: rec[1], Description: rec[2]})
		}
	}

	byDay := make(map[int]dayPayload, len(items))
	for _, it := range items {
		it.Title = strings.TrimSpace(it.Title)
		it.Description = strings.TrimSpace(it.Description)
		if _, dup := byDay[it.Day]; it.Day > 0 && !dup {
			byDay[it.Day] = it
		}
	}
	if len(byDay) == 0 {
		return nil, &oracle.ParseError{Reason: "no day entries in reply"}
	}
	return byDay, nil
}
