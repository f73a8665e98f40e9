package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Chamion/time-management/internal/db"
	"github.com/Chamion/time-management/internal/domain"
)

// SQLiteEventRepo implements EventRepo over a DBTX, so it can run
// against the shared *sql.DB or inside a transaction.
type SQLiteEventRepo struct {
	db db.DBTX
}

// NewSQLiteEventRepo creates a new SQLiteEventRepo.
func NewSQLiteEventRepo(db db.DBTX) *SQLiteEventRepo {
	return &SQLiteEventRepo{db: db}
}

func (r *SQLiteEventRepo) Append(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (action, date, time, message) VALUES (?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query, string(e.Action), e.Date, e.Time, e.Message)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted event id: %w", err)
	}
	e.ID = id
	return nil
}

func (r *SQLiteEventRepo) LatestForDate(ctx context.Context, date string) (*domain.Event, error) {
	query := `SELECT id, action, date, time, message FROM events
		WHERE date = ? ORDER BY time DESC, id DESC LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, date)
	return r.scanEvent(row)
}

func (r *SQLiteEventRepo) ListByDate(ctx context.Context, date string) ([]domain.Event, error) {
	query := `SELECT id, action, date, time, message FROM events
		WHERE date = ? ORDER BY time, id`
	rows, err := r.db.QueryContext(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("listing events by date: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

func (r *SQLiteEventRepo) ListAll(ctx context.Context) ([]domain.Event, error) {
	query := `SELECT id, action, date, time, message FROM events
		ORDER BY date, time, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	defer rows.Close()
	return r.scanEvents(rows)
}

// scanEvent scans a single event from a *sql.Row.
func (r *SQLiteEventRepo) scanEvent(row *sql.Row) (*domain.Event, error) {
	var e domain.Event
	var action string
	err := row.Scan(&e.ID, &action, &e.Date, &e.Time, &e.Message)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("event: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning event: %w", err)
	}
	e.Action = domain.Action(action)
	return &e, nil
}

// scanEvents scans multiple events from *sql.Rows.
func (r *SQLiteEventRepo) scanEvents(rows *sql.Rows) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		var action string
		if err := rows.Scan(&e.ID, &action, &e.Date, &e.Time, &e.Message); err != nil {
			return nil, fmt.Errorf("scanning event row: %w", err)
		}
		e.Action = domain.Action(action)
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}
