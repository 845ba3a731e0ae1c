package store

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rrsched"
)

func testStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelError}))
	st, err := NewSQLiteStore(":memory:", logger)
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { st.Close() })
	return st
}

func sampleRun(t *testing.T) *Run {
	t.Helper()
	table := []rrsched.Proc{
		{Pid: 1, ArrivalTime: 0, BurstTime: 4},
		{Pid: 2, ArrivalTime: 0, BurstTime: 4},
	}
	res, err := rrsched.Simulate(table, 2, nil)
	require.NoError(t, err)
	rep := rrsched.NewReport(res)
	return &Run{
		Source:  "procs.txt",
		Metrics: *rep.Metrics,
		Procs:   rep.Procs,
	}
}

func TestSaveAndGetRun(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	run := sampleRun(t)
	require.NoError(t, st.SaveRun(ctx, run))
	assert.NotEmpty(t, run.ID)
	assert.False(t, run.CreatedAt.IsZero())

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "procs.txt", got.Source)
	assert.Equal(t, rrsched.Ttick(2), got.Metrics.Quantum)
	assert.InDelta(t, 3.0, got.Metrics.AvgWaiting, 1e-9)
	assert.InDelta(t, 1.0, got.Metrics.AvgResponse, 1e-9)
	assert.Equal(t, run.Procs, got.Procs)
	assert.True(t, run.CreatedAt.Equal(got.CreatedAt))
}

func TestGetRun_NotFound(t *testing.T) {
	st := testStore(t)
	got, err := st.GetRun(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestListRuns_NewestFirst(t *testing.T) {
	st := testStore(t)
	ctx := context.Background()

	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, src := range []string{"a", "b", "c"} {
		run := sampleRun(t)
		run.Source = src
		run.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		require.NoError(t, st.SaveRun(ctx, run))
	}

	runs, err := st.ListRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].Source)
	assert.Equal(t, "b", runs[1].Source)

	all, err := st.ListRuns(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMigrate_Idempotent(t *testing.T) {
	st := testStore(t)
	assert.NoError(t, st.Migrate(context.Background()))
}
