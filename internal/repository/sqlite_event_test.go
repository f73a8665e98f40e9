package repository

import (
	"context"
	"testing"

	"github.com/Chamion/time-management/internal/domain"
	"github.com/Chamion/time-management/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepo_AppendAssignsSequence(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	first := testutil.NewTestEvent(domain.ActionStart, "09:00", testutil.WithMessage("morning"))
	require.NoError(t, repo.Append(ctx, first))
	assert.Greater(t, first.ID, int64(0))

	second := testutil.NewTestEvent(domain.ActionStop, "17:00")
	require.NoError(t, repo.Append(ctx, second))
	assert.Greater(t, second.ID, first.ID)
}

func TestEventRepo_AppendRejectsUnknownAction(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	err := repo.Append(ctx, testutil.NewTestEvent(domain.Action("nap"), "09:00"))
	assert.Error(t, err)
}

func TestEventRepo_LatestForDate(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "09:00")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionLunch, "12:00")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "08:00", testutil.WithDate("2026-09-01"))))

	latest, err := repo.LatestForDate(ctx, "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionLunch, latest.Action)
	assert.Equal(t, "12:00", latest.Time)
}

func TestEventRepo_LatestForDate_EqualTimesLastInsertedWins(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "09:00")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStop, "09:00")))

	latest, err := repo.LatestForDate(ctx, "2026-08-31")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionStop, latest.Action)
}

func TestEventRepo_LatestForDate_NotFound(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))

	_, err := repo.LatestForDate(context.Background(), "2026-08-31")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventRepo_ListByDate_Ordering(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	// Inserted out of wall-clock order; retroactive entries land where
	// their time puts them.
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "09:00")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStop, "17:00")))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "08:00", testutil.WithDate("2026-08-30"))))

	events, err := repo.ListByDate(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, domain.ActionStart, events[0].Action)
	assert.Equal(t, domain.ActionStop, events[1].Action)
}

func TestEventRepo_ListAll_GroupedByDateThenTime(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "09:00", testutil.WithDate("2026-08-31"))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "10:00", testutil.WithDate("2026-08-30"))))
	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStop, "16:00", testutil.WithDate("2026-08-30"))))

	events, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "2026-08-30", events[0].Date)
	assert.Equal(t, "2026-08-30", events[1].Date)
	assert.Equal(t, "2026-08-31", events[2].Date)
	assert.Equal(t, domain.ActionStart, events[0].Action)
	assert.Equal(t, domain.ActionStop, events[1].Action)
}

func TestEventRepo_MessagePersisted(t *testing.T) {
	repo := NewSQLiteEventRepo(testutil.NewTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testutil.NewTestEvent(domain.ActionStart, "09:00", testutil.WithMessage("standup ran long"))))

	events, err := repo.ListByDate(ctx, "2026-08-31")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "standup ran long", events[0].Message)
}
