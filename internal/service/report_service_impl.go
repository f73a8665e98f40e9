package service

import (
	"context"
	"fmt"

	"github.com/Chamion/time-management/internal/aggregate"
	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/repository"
	"github.com/Chamion/time-management/internal/timeutil"
)

type reportService struct {
	events repository.EventRepo
	clock  timeutil.Clock
}

func NewReportService(events repository.EventRepo, clock timeutil.Clock) ReportService {
	return &reportService{events: events, clock: clock}
}

func (s *reportService) DailyStatus(ctx context.Context, date string) (*contract.DayReport, error) {
	return dayReport(ctx, s.events, date, s.clock.Now())
}

func (s *reportService) Average(ctx context.Context) (*contract.AverageReport, error) {
	events, err := s.events.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	report, err := aggregate.Average(events)
	if err != nil {
		return nil, fmt.Errorf("aggregating averages: %w", err)
	}
	return &report, nil
}

func (s *reportService) History(ctx context.Context, date string) ([]domain.Event, error) {
	return s.events.ListByDate(ctx, date)
}

// dayReport loads a date's events and replays them up to now.
func dayReport(ctx context.Context, events repository.EventRepo, date, now string) (*contract.DayReport, error) {
	list, err := events.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	report, err := aggregate.DailyStatus(date, list, now)
	if err != nil {
		return nil, fmt.Errorf("aggregating day %s: %w", date, err)
	}
	return &report, nil
}
