package sqlstore

import (
	"database/sql"
	"fmt"
	"time"

	"goal-planner/internal/goal/repository"
	"goal-planner/pkg/log"
)

type implRepository struct {
	db      *sql.DB
	dialect Dialect
	loc     *time.Location
	l       log.Logger
}

// New creates a SQL-backed Repository for the goal domain. Times read back
// are converted to loc.
func New(db *sql.DB, dialect Dialect, loc *time.Location, l log.Logger) repository.Repository {
	if db == nil {
		panic("goal/repository/sqlstore: db is required")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &implRepository{db: db, dialect: dialect, loc: loc, l: l}
}

// dsn returns a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("goal/repository/sqlstore.%s", method)
}

func (r *implRepository) q(query string) string {
	return r.dialect.Rebind(query)
}

const tsLayout = time.RFC3339

func formatTime(t time.Time) string {
	return t.UTC().Format(tsLayout)
}

func (r *implRepository) parseTime(s string) (time.Time, error) {
	t, err := time.Parse(tsLayout, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(r.loc), nil
}
