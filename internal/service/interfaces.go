package service

import (
	"context"

	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
)

// LogService owns the single mutating path: validate a candidate event
// against the stored log and append it.
type LogService interface {
	// Log appends a validated event and returns the resulting day
	// report for the affected date. Fails atomically: a transition or
	// temporal-order violation leaves the log untouched.
	Log(ctx context.Context, req contract.LogRequest) (*contract.DayReport, error)
	// LegalActions returns the candidate actions currently valid for
	// the date, given its latest stored event.
	LegalActions(ctx context.Context, date string) ([]domain.Action, error)
}

// ReportService exposes the read-only aggregations.
type ReportService interface {
	DailyStatus(ctx context.Context, date string) (*contract.DayReport, error)
	Average(ctx context.Context) (*contract.AverageReport, error)
	History(ctx context.Context, date string) ([]domain.Event, error)
}
