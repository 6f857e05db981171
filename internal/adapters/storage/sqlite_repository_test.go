package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/renato0307/punch/internal/domain"
)

func newTestRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := NewSQLiteRepository(filepath.Join(t.TempDir(), "nested", "timesheet.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

func TestFindOpen_NoEntries(t *testing.T) {
	repo := newTestRepository(t)

	entry, err := repo.FindOpen(context.Background(), "1")

	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestCreateAndClose(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Create(ctx, domain.TimeEntry{ID: "e1", UserID: "1", ClockIn: start}))

	open, err := repo.FindOpen(ctx, "1")
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, "e1", open.ID)
	assert.True(t, start.Equal(open.ClockIn))
	assert.True(t, open.IsOpen())

	// Other users are unaffected
	other, err := repo.FindOpen(ctx, "2")
	require.NoError(t, err)
	assert.Nil(t, other)

	end := start.Add(8 * time.Hour)
	require.NoError(t, repo.CloseEntry(ctx, "e1", end))

	open, err = repo.FindOpen(ctx, "1")
	require.NoError(t, err)
	assert.Nil(t, open)

	entries, err := repo.ListByUser(ctx, "1", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].ClockOut)
	assert.True(t, end.Equal(*entries[0].ClockOut))
	assert.Equal(t, 8*time.Hour, entries[0].Duration(time.Time{}))
}

func TestCloseEntry_Missing(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	start := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	err := repo.CloseEntry(ctx, "missing", start)
	assert.ErrorIs(t, err, ErrEntryNotFound)

	require.NoError(t, repo.Create(ctx, domain.TimeEntry{ID: "e1", UserID: "1", ClockIn: start}))
	require.NoError(t, repo.CloseEntry(ctx, "e1", start.Add(time.Hour)))

	// Already closed
	err = repo.CloseEntry(ctx, "e1", start.Add(2*time.Hour))
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestListByUser_NewestFirstWithLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	for i, id := range []string{"a", "b", "c"} {
		in := base.Add(time.Duration(i) * 24 * time.Hour)
		out := in.Add(time.Hour)
		require.NoError(t, repo.Create(ctx, domain.TimeEntry{ID: id, UserID: "1", ClockIn: in, ClockOut: &out}))
	}
	require.NoError(t, repo.Create(ctx, domain.TimeEntry{ID: "x", UserID: "2", ClockIn: base}))

	entries, err := repo.ListByUser(ctx, "1", 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "b", entries[1].ID)

	all, err := repo.ListByUser(ctx, "1", 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestWithRetry(t *testing.T) {
	t.Run("retries busy errors", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			if calls < 3 {
				return sqlite3.Error{Code: sqlite3.ErrBusy}
			}
			return nil
		}, 3)

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after max retries", func(t *testing.T) {
		calls := 0
		err := withRetry(func() error {
			calls++
			return sqlite3.Error{Code: sqlite3.ErrLocked}
		}, 2)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "after 2 retries")
		assert.Equal(t, 2, calls)
	})

	t.Run("returns other errors immediately", func(t *testing.T) {
		calls := 0
		boom := errors.New("boom")
		err := withRetry(func() error {
			calls++
			return boom
		}, 3)

		assert.ErrorIs(t, err, boom)
		assert.Equal(t, 1, calls)
	})
}
