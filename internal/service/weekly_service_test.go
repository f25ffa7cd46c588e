package service

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/zeitrechner/internal/domain"
	"github.com/alexanderramin/zeitrechner/internal/testutil"
	"github.com/alexanderramin/zeitrechner/internal/timecalc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeeklyService_SaveToday(t *testing.T) {
	ctx := context.Background()
	now := testutil.At(12, 0, 30)
	env := setupServices(t, now)

	state := timecalc.Compute(testutil.NewTestInput(), now)
	result, err := env.week.SaveToday(ctx, state)
	require.NoError(t, err)
	assert.True(t, result.Saved)
	assert.Equal(t, "2025-06-11", result.Date)
	assert.Equal(t, 211, result.Minutes)

	entries, err := env.week.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyEntries{"2025-06-11": 211}, entries)
}

func TestWeeklyService_SaveTodayOverwrites(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t, testutil.At(12, 0, 0))
	require.NoError(t, env.weekly.Store(ctx, domain.WeeklyEntries{"2025-06-10": 480, "2025-06-11": 100}))

	state := timecalc.Compute(testutil.NewTestInput(), testutil.At(16, 30, 0))
	_, err := env.week.SaveToday(ctx, state)
	require.NoError(t, err)

	entries, err := env.week.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyEntries{"2025-06-10": 480, "2025-06-11": 480}, entries)
}

func TestWeeklyService_SaveTodayKeepsDaysNextToBadValue(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t, testutil.At(12, 0, 0))
	require.NoError(t, env.kv.Set(ctx, domain.KeyWeeklyEntries, `{"2025-06-09":480,"2025-06-10":450.5}`))

	state := timecalc.Compute(testutil.NewTestInput(), testutil.At(16, 30, 0))
	_, err := env.week.SaveToday(ctx, state)
	require.NoError(t, err)

	entries, err := env.week.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyEntries{"2025-06-09": 480, "2025-06-10": 451, "2025-06-11": 480}, entries)
}

func TestWeeklyService_SaveTodayNoop(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t, testutil.At(8, 10, 0))

	cases := map[string]domain.SessionState{
		"invalid": timecalc.Compute(testutil.NewTestInput(testutil.WithStart("")), testutil.At(12, 0, 0)),
		"zero":    timecalc.Compute(testutil.NewTestInput(), testutil.At(8, 10, 0)),
	}
	for name, state := range cases {
		t.Run(name, func(t *testing.T) {
			result, err := env.week.SaveToday(ctx, state)
			require.NoError(t, err)
			assert.False(t, result.Saved)

			rev, err := env.weekly.Revision(ctx)
			require.NoError(t, err)
			assert.Zero(t, rev.Number, "nothing may be written")
		})
	}
}

func TestWeeklyService_SaveTodayRollsBack(t *testing.T) {
	ctx := context.Background()
	now := testutil.At(12, 0, 0)
	env := setupServices(t, now)
	require.NoError(t, env.weekly.Store(ctx, domain.WeeklyEntries{"2025-06-10": 480}))

	boom := errors.New("disk full")
	failing := NewWeeklyService(env.weekly, &testutil.FailOnNthExecUoW{DB: env.db, FailOn: 1, Err: boom}, testOrigin, nil, env.clock.Now)

	_, err := failing.SaveToday(ctx, timecalc.Compute(testutil.NewTestInput(), now))
	require.ErrorIs(t, err, boom)

	entries, err := env.week.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyEntries{"2025-06-10": 480}, entries)
}

func TestWeeklyService_ClearCurrentWeek(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t, testutil.At(12, 0, 0))
	require.NoError(t, env.weekly.Store(ctx, domain.WeeklyEntries{
		"2025-06-06": 300, // previous Friday
		"2025-06-09": 480,
		"2025-06-11": 455,
		"2025-06-15": 60, // Sunday, same week
		"2025-06-16": 90, // next Monday
	}))

	removed, err := env.week.ClearCurrentWeek(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, removed)

	entries, err := env.week.Entries(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.WeeklyEntries{"2025-06-06": 300, "2025-06-16": 90}, entries)
}

func TestWeeklyService_ClearEmptyWeekWritesNothing(t *testing.T) {
	ctx := context.Background()
	env := setupServices(t, testutil.At(12, 0, 0))
	require.NoError(t, env.weekly.Store(ctx, domain.WeeklyEntries{"2025-06-02": 300}))
	before, err := env.weekly.Revision(ctx)
	require.NoError(t, err)

	removed, err := env.week.ClearCurrentWeek(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	after, err := env.weekly.Revision(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestWeeklyService_Week(t *testing.T) {
	ctx := context.Background()
	now := testutil.At(12, 0, 30)
	env := setupServices(t, now)
	require.NoError(t, env.weekly.Store(ctx, domain.WeeklyEntries{"2025-06-09": 480, "2025-06-11": 100}))

	week, err := env.week.Week(ctx, timecalc.Compute(testutil.NewTestInput(), now))
	require.NoError(t, err)
	assert.Equal(t, "2025-06-09", week.WeekStart)
	assert.Equal(t, 580, week.TotalMin)
	require.Len(t, week.Days, 2)
	assert.Equal(t, "Mi", week.Days[1].Label)
	assert.True(t, week.Days[1].ShowLive)
	assert.Equal(t, 211, week.Days[1].LiveMin)
	assert.Equal(t, 111, week.Days[1].DiffMin)
}
