package service

import (
	"context"
	"testing"

	"github.com/Chamion/time-management/internal/contract"
	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/repository"
	"github.com/Chamion/time-management/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServices(t *testing.T, clock testutil.FixedClock) (LogService, ReportService) {
	t.Helper()
	database := testutil.NewTestDB(t)
	events := repository.NewSQLiteEventRepo(database)
	uow := testutil.NewTestUoW(database)
	return NewLogService(events, uow, clock), NewReportService(events, clock)
}

func TestDailyStatus_UsesInjectedClock(t *testing.T) {
	clock := testutil.FixedClock{Date: "2026-08-31", Time: "09:45"}
	logSvc, reports := newTestServices(t, clock)
	ctx := context.Background()

	_, err := logSvc.Log(ctx, contract.LogRequest{Action: domain.ActionStart, Date: "2026-08-31", Time: "09:00"})
	require.NoError(t, err)

	report, err := reports.DailyStatus(ctx, "2026-08-31")
	require.NoError(t, err)

	assert.Equal(t, 45, report.WorkMin)
	assert.Equal(t, "working", report.Status)
}

func TestDailyStatus_EmptyDate(t *testing.T) {
	clock := testutil.FixedClock{Date: "2026-08-31", Time: "12:00"}
	_, reports := newTestServices(t, clock)

	report, err := reports.DailyStatus(context.Background(), "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, "not working", report.Status)
	assert.Equal(t, 0, report.PaidMin)
}

func TestAverage_AcrossStoredDays(t *testing.T) {
	clock := testutil.FixedClock{Date: "2026-08-31", Time: "20:00"}
	logSvc, reports := newTestServices(t, clock)
	ctx := context.Background()

	for _, date := range []string{"2026-08-27", "2026-08-28"} {
		_, err := logSvc.Log(ctx, contract.LogRequest{Action: domain.ActionStart, Date: date, Time: "09:00"})
		require.NoError(t, err)
		_, err = logSvc.Log(ctx, contract.LogRequest{Action: domain.ActionStop, Date: date, Time: "17:00"})
		require.NoError(t, err)
	}
	// Open day: excluded from the average.
	_, err := logSvc.Log(ctx, contract.LogRequest{Action: domain.ActionStart, Date: "2026-08-31", Time: "09:00"})
	require.NoError(t, err)

	report, err := reports.Average(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.DaysLogged)
	assert.Equal(t, 480, report.AvgWorkMin)
	assert.Equal(t, 480, report.AvgPaidMin)
}

func TestAverage_EmptyLogIsNotAnError(t *testing.T) {
	clock := testutil.FixedClock{Date: "2026-08-31", Time: "12:00"}
	_, reports := newTestServices(t, clock)

	report, err := reports.Average(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, report.DaysLogged)
}

func TestHistory_ReturnsDateEventsInOrder(t *testing.T) {
	clock := testutil.FixedClock{Date: "2026-08-31", Time: "20:00"}
	logSvc, reports := newTestServices(t, clock)
	ctx := context.Background()

	_, err := logSvc.Log(ctx, contract.LogRequest{Action: domain.ActionStart, Date: "2026-08-31", Time: "09:00", Message: "early"})
	require.NoError(t, err)
	_, err = logSvc.Log(ctx, contract.LogRequest{Action: domain.ActionStop, Date: "2026-08-31", Time: "17:00"})
	require.NoError(t, err)

	events, err := reports.History(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionStart, events[0].Action)
	assert.Equal(t, "early", events[0].Message)
	assert.Equal(t, domain.ActionStop, events[1].Action)
}
