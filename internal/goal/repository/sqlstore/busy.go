package sqlstore

import (
	"context"
	"fmt"

	"goal-planner/internal/busy"
	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
	"goal-planner/pkg/interval"
)

// ListBusyIntervals returns the schedule items of the user's active goals
// overlapping [From, To) as existing-schedule blocks, ordered by start.
func (r *implRepository) ListBusyIntervals(ctx context.Context, opt repo.ListBusyOptions) ([]busy.Block, error) {
	if opt.UserID == "" || !opt.To.After(opt.From) {
		return nil, fmt.Errorf("%w: user and a non-empty range are required", repo.ErrInvalidOptions)
	}

	const query = `
		SELECT s.start_time, s.end_time, g.title, s.title
		FROM goal_schedules s
		JOIN goals g ON g.id = s.goal_id
		WHERE g.user_id = ? AND g.status = ? AND s.start_time < ? AND s.end_time > ?
		ORDER BY s.start_time`
	rows, err := r.db.QueryContext(ctx, r.q(query),
		opt.UserID, string(goal.StatusActive), formatTime(opt.To), formatTime(opt.From),
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBusyIntervals"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var blocks []busy.Block
	for rows.Next() {
		var start, end, goalTitle, itemTitle string
		if err := rows.Scan(&start, &end, &goalTitle, &itemTitle); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListBusyIntervals"), err)
			return nil, repo.ErrFailedToList
		}
		var iv interval.Interval
		if iv.Start, err = r.parseTime(start); err != nil {
			return nil, repo.ErrFailedToList
		}
		if iv.End, err = r.parseTime(end); err != nil {
			return nil, repo.ErrFailedToList
		}
		blocks = append(blocks, busy.Block{
			Interval: iv,
			Kind:     busy.KindExistingSchedule,
			Label:    goalTitle + ": " + itemTitle,
		})
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListBusyIntervals"), err)
		return nil, repo.ErrFailedToList
	}
	return blocks, nil
}
