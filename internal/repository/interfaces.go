package repository

import (
	"context"
	"errors"

	"github.com/Chamion/time-management/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// EventRepo is the append-only store of work-time events.
type EventRepo interface {
	// Append inserts a new event and assigns its ID. The only mutating
	// operation in the system; rows are never updated or deleted.
	Append(ctx context.Context, e *domain.Event) error
	// LatestForDate returns the event with the greatest time for the
	// date, ties broken by insertion order (last inserted wins).
	LatestForDate(ctx context.Context, date string) (*domain.Event, error)
	// ListByDate returns a date's events ordered by time, then
	// insertion order.
	ListByDate(ctx context.Context, date string) ([]domain.Event, error)
	// ListAll returns every event ordered by date, time, insertion
	// order.
	ListAll(ctx context.Context) ([]domain.Event, error)
}
