package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"goal-planner/internal/goal"
	repo "goal-planner/internal/goal/repository"
)

// CreateGoalWithSchedules inserts the goal row and every schedule row in a
// single transaction.
func (r *implRepository) CreateGoalWithSchedules(ctx context.Context, opt repo.CreateGoalOptions) (goal.Goal, error) {
	g := opt.Goal
	if g.UserID == "" || g.Title == "" {
		return goal.Goal{}, fmt.Errorf("%w: goal needs a user and a title", repo.ErrInvalidOptions)
	}
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	if g.Status == "" {
		g.Status = goal.StatusActive
	}
	if g.CreatedAt.IsZero() {
		g.CreatedAt = time.Now()
	}
	g.Schedules = append([]goal.ScheduleItem(nil), g.Schedules...)
	for i := range g.Schedules {
		if g.Schedules[i].ID == "" {
			g.Schedules[i].ID = uuid.NewString()
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateGoalWithSchedules"), err)
		return goal.Goal{}, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	if err := r.insertGoal(ctx, tx, g); err != nil {
		r.l.Errorf(ctx, "%s goal: %v", r.dsn("CreateGoalWithSchedules"), err)
		return goal.Goal{}, repo.ErrFailedToInsert
	}
	if err := r.insertSchedules(ctx, tx, g.ID, g.Schedules); err != nil {
		r.l.Errorf(ctx, "%s schedules: %v", r.dsn("CreateGoalWithSchedules"), err)
		return goal.Goal{}, repo.ErrFailedToInsert
	}
	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateGoalWithSchedules"), err)
		return goal.Goal{}, repo.ErrFailedToInsert
	}
	return g, nil
}

func (r *implRepository) insertGoal(ctx context.Context, tx *sql.Tx, g goal.Goal) error {
	const query = `
		INSERT INTO goals (id, user_id, title, description, emoji, start_date, end_date, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, r.q(query),
		g.ID, g.UserID, g.Title, g.Description, g.Emoji,
		formatTime(g.StartDate), formatTime(g.EndDate), string(g.Status), formatTime(g.CreatedAt),
	)
	return err
}

func (r *implRepository) insertSchedules(ctx context.Context, tx *sql.Tx, goalID string, items []goal.ScheduleItem) error {
	if len(items) == 0 {
		return nil
	}

	const query = `
		INSERT INTO goal_schedules (id, goal_id, day_number, date, start_time, end_time, title, description, emoji, progress_percent, best_effort, warning)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	stmt, err := tx.PrepareContext(ctx, r.q(query))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, it := range items {
		_, err := stmt.ExecContext(ctx,
			it.ID, goalID, it.DayNumber, formatTime(it.Date),
			formatTime(it.Interval.Start), formatTime(it.Interval.End),
			it.Title, it.Description, it.Emoji, it.ProgressPercent, it.BestEffort, it.Warning,
		)
		if err != nil {
			return fmt.Errorf("day %d: %w", it.DayNumber, err)
		}
	}
	return nil
}

const goalColumns = `id, user_id, title, description, emoji, start_date, end_date, status, created_at`

// GetGoal retrieves a single goal. Not found is a zero Goal and no error.
func (r *implRepository) GetGoal(ctx context.Context, opt repo.GetGoalOptions) (goal.Goal, error) {
	if opt.ID == "" {
		return goal.Goal{}, fmt.Errorf("%w: id is required", repo.ErrInvalidOptions)
	}

	where, args := buildGetGoalQuery(opt)
	query := fmt.Sprintf("SELECT %s FROM goals WHERE %s LIMIT 1", goalColumns, where)

	g, err := r.scanGoal(r.db.QueryRowContext(ctx, r.q(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return goal.Goal{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetGoal"), err)
		return goal.Goal{}, repo.ErrFailedToGet
	}

	if opt.WithSchedules {
		g.Schedules, err = r.listSchedules(ctx, g.ID)
		if err != nil {
			r.l.Errorf(ctx, "%s schedules: %v", r.dsn("GetGoal"), err)
			return goal.Goal{}, repo.ErrFailedToGet
		}
	}
	return g, nil
}

// ListGoals returns a page of goals, newest first, and the total count.
func (r *implRepository) ListGoals(ctx context.Context, opt repo.ListGoalsOptions) ([]goal.Goal, int, error) {
	where, args := buildListGoalsFilter(opt)

	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM goals WHERE %s", where)
	if err := r.db.QueryRowContext(ctx, r.q(countQuery), args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s count: %v", r.dsn("ListGoals"), err)
		return nil, 0, repo.ErrFailedToList
	}

	page, pageArgs := buildPagination(opt.Limit, opt.Offset)
	query := fmt.Sprintf("SELECT %s FROM goals WHERE %s ORDER BY created_at DESC, id %s", goalColumns, where, page)
	rows, err := r.db.QueryContext(ctx, r.q(query), append(args, pageArgs...)...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListGoals"), err)
		return nil, 0, repo.ErrFailedToList
	}
	defer rows.Close()

	var goals []goal.Goal
	for rows.Next() {
		g, err := r.scanGoal(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListGoals"), err)
			return nil, 0, repo.ErrFailedToList
		}
		goals = append(goals, g)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListGoals"), err)
		return nil, 0, repo.ErrFailedToList
	}
	return goals, total, nil
}

func (r *implRepository) listSchedules(ctx context.Context, goalID string) ([]goal.ScheduleItem, error) {
	const query = `
		SELECT id, day_number, date, start_time, end_time, title, description, emoji, progress_percent, best_effort, warning
		FROM goal_schedules
		WHERE goal_id = ?
		ORDER BY day_number`
	rows, err := r.db.QueryContext(ctx, r.q(query), goalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []goal.ScheduleItem
	for rows.Next() {
		var (
			it               goal.ScheduleItem
			date, start, end string
		)
		if err := rows.Scan(&it.ID, &it.DayNumber, &date, &start, &end, &it.Title, &it.Description, &it.Emoji, &it.ProgressPercent, &it.BestEffort, &it.Warning); err != nil {
			return nil, err
		}
		if it.Date, err = r.parseTime(date); err != nil {
			return nil, err
		}
		if it.Interval.Start, err = r.parseTime(start); err != nil {
			return nil, err
		}
		if it.Interval.End, err = r.parseTime(end); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *implRepository) scanGoal(row rowScanner) (goal.Goal, error) {
	var (
		g                             goal.Goal
		status                        string
		startDate, endDate, createdAt string
	)
	if err := row.Scan(&g.ID, &g.UserID, &g.Title, &g.Description, &g.Emoji, &startDate, &endDate, &status, &createdAt); err != nil {
		return goal.Goal{}, err
	}
	g.Status = goal.Status(status)

	var err error
	if g.StartDate, err = r.parseTime(startDate); err != nil {
		return goal.Goal{}, err
	}
	if g.EndDate, err = r.parseTime(endDate); err != nil {
		return goal.Goal{}, err
	}
	if g.CreatedAt, err = r.parseTime(createdAt); err != nil {
		return goal.Goal{}, err
	}
	return g, nil
}

func buildGetGoalQuery(opt repo.GetGoalOptions) (string, []any) {
	conditions := []string{"id = ?"}
	args := []any{opt.ID}
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	return strings.Join(conditions, " AND "), args
}

func buildListGoalsFilter(opt repo.ListGoalsOptions) (string, []any) {
	var conditions []string
	var args []any
	if opt.UserID != "" {
		conditions = append(conditions, "user_id = ?")
		args = append(args, opt.UserID)
	}
	if opt.Status != "" {
		conditions = append(conditions, "status = ?")
		args = append(args, string(opt.Status))
	}
	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

func buildPagination(limit, offset int) (string, []any) {
	if limit <= 0 {
		return "", nil
	}
	if offset < 0 {
		offset = 0
	}
	return "LIMIT ? OFFSET ?", []any{limit, offset}
}
