package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/db"
	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/repository"
	"github.com/Chamion/time-management/internal/timeutil"
)

type logService struct {
	events repository.EventRepo
	uow    db.UnitOfWork
	clock  timeutil.Clock
}

func NewLogService(events repository.EventRepo, uow db.UnitOfWork, clock timeutil.Clock) LogService {
	return &logService{events: events, uow: uow, clock: clock}
}

func (s *logService) Log(ctx context.Context, req contract.LogRequest) (*contract.DayReport, error) {
	// Check-then-insert runs inside one transaction so a concurrent
	// invocation cannot slip an event between the lookup and the write.
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txEvents := repository.NewSQLiteEventRepo(tx)

		last, err := latestAction(ctx, txEvents, req.Date, req.Time)
		if err != nil {
			return err
		}
		if err := domain.ValidateTransition(req.Action, last); err != nil {
			return err
		}

		return txEvents.Append(ctx, &domain.Event{
			Action:  req.Action,
			Date:    req.Date,
			Time:    req.Time,
			Message: req.Message,
		})
	})
	if err != nil {
		return nil, err
	}

	return dayReport(ctx, s.events, req.Date, s.clock.Now())
}

func (s *logService) LegalActions(ctx context.Context, date string) ([]domain.Action, error) {
	latest, err := s.events.LatestForDate(ctx, date)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	var last *domain.Action
	if latest != nil {
		last = &latest.Action
	}

	all := []domain.Action{domain.ActionStart, domain.ActionStop, domain.ActionLunch, domain.ActionCoffee, domain.ActionResume}
	var legal []domain.Action
	for _, a := range all {
		if domain.ValidateTransition(a, last) == nil {
			legal = append(legal, a)
		}
	}
	return legal, nil
}

// latestAction loads the latest stored action for the date and applies
// the temporal guard: a candidate time before it is rejected outright,
// even when the action transition itself would be legal.
func latestAction(ctx context.Context, events repository.EventRepo, date, candidateTime string) (*domain.Action, error) {
	latest, err := events.LatestForDate(ctx, date)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading latest event: %w", err)
	}

	min, err := timeutil.MinutesBetween(latest.Time, candidateTime)
	if err != nil {
		return nil, err
	}
	if min < 0 {
		return nil, domain.ErrOutOfOrder
	}
	return &latest.Action, nil
}
