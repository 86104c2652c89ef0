package store

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil db")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestOpenFileDB.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpenFileDB(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "binomen.db")
	require.NoError(t, EnsureDir(path))

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var mode string
	require.NoError(t, s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{"kv", "session_events"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestKV_GetAbsent(t *testing.T) {
	kv := openTestStore(t).KV()

	v, ok, err := kv.Get(context.Background(), "quizSettings")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestKV_SetOverwriteDelete(t *testing.T) {
	kv := openTestStore(t).KV()
	ctx := context.Background()

	require.NoError(t, kv.Set(ctx, "quizSettings", `{"showHints":true}`))
	require.NoError(t, kv.Set(ctx, "quizSettings", `{"showHints":false}`))

	v, ok, err := kv.Get(ctx, "quizSettings")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"showHints":false}`, v)

	require.NoError(t, kv.Delete(ctx, "quizSettings"))
	_, ok, err = kv.Get(ctx, "quizSettings")
	require.NoError(t, err)
	assert.False(t, ok)

	// Deleting again is fine.
	assert.NoError(t, kv.Delete(ctx, "quizSettings"))
}

func TestKV_ClosedStoreErrors(t *testing.T) {
	s := openTestStore(t)
	kv := s.KV()
	s.Close()

	err := kv.Set(context.Background(), "k", "v")
	assert.Error(t, err)
}

func TestInsertEvent_Sequence(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	for i := 1; i <= 5; i++ {
		seq, err := insertEvent(ctx, s.DB(), at, SessionEventData{
			SessionID: "s", Action: ActionStart, Range: "all",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq, "sequence should count up from 1")
	}

	var ts time.Time
	require.NoError(t, s.DB().QueryRow(
		`SELECT timestamp FROM session_events WHERE sequence = 1`,
	).Scan(&ts))
	assert.True(t, at.Equal(ts), "timestamp = %v", ts)
}

func TestSessionEvents_RecentSessions(t *testing.T) {
	repo := openTestStore(t).SessionRepo()
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		id := fmt.Sprintf("session-%d", i)
		require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID: id, Action: ActionStart, Range: "1-13", QuestionsTotal: 13,
		}))
		require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{
			SessionID:      id,
			Action:         ActionEnd,
			Range:          "1-13",
			QuestionsTotal: 13,
			CorrectAnswers: 10 + i,
			Skipped:        1,
			Completed:      i != 2,
			DurationSecs:   60 * i,
		}))
	}

	recs, err := repo.RecentSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, recs, 3, "only end events are sessions")

	assert.Equal(t, "session-3", recs[0].SessionID)
	assert.Equal(t, 13, recs[0].CorrectAnswers)
	assert.True(t, recs[0].Completed)
	assert.False(t, recs[1].Completed)
	assert.Equal(t, "1-13", recs[2].Range)
	assert.Greater(t, recs[0].Sequence, recs[1].Sequence)
	assert.False(t, recs[0].Timestamp.IsZero())

	limited, err := repo.RecentSessions(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestSessionEvents_Validation(t *testing.T) {
	repo := openTestStore(t).SessionRepo()
	ctx := context.Background()

	assert.Error(t, repo.AppendSessionEvent(ctx, SessionEventData{Action: ActionStart}))
	assert.Error(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "x", Action: "pause"}))
}

func TestSessionEvents_DefaultRange(t *testing.T) {
	repo := openTestStore(t).SessionRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendSessionEvent(ctx, SessionEventData{SessionID: "x", Action: ActionEnd}))
	recs, err := repo.RecentSessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "all", recs[0].Range)
}

func TestDefaultDBPath_Env(t *testing.T) {
	want := filepath.Join(t.TempDir(), "x", "custom.db")
	t.Setenv("BINOMEN_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.DirExists(t, filepath.Dir(want))
}

func TestDefaultDBPath_XDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("BINOMEN_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "binomen", "binomen.db"), got)
}
