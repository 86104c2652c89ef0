package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/binomen/internal/router"
	"github.com/abhisek/binomen/internal/store"
)

type mockSessionRepo struct {
	records []store.SessionRecord
	err     error
	limit   int
}

func (m *mockSessionRepo) AppendSessionEvent(context.Context, store.SessionEventData) error {
	return nil
}

func (m *mockSessionRepo) RecentSessions(_ context.Context, limit int) ([]store.SessionRecord, error) {
	m.limit = limit
	return m.records, m.err
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command")
	}
	s.Update(cmd())
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&mockSessionRepo{})
	if !strings.Contains(s.View(80, 24), "Loading") {
		t.Error("expected loading state before data arrives")
	}
	load(t, s)
	if !strings.Contains(s.View(80, 24), "No sessions yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_ListsAndExpands(t *testing.T) {
	repo := &mockSessionRepo{records: []store.SessionRecord{
		{SessionID: "a", Timestamp: time.Now(), Range: "1-13", QuestionsTotal: 13, CorrectAnswers: 13, Completed: true, DurationSecs: 95},
		{SessionID: "b", Timestamp: time.Now(), Range: "all", QuestionsTotal: 15, CorrectAnswers: 3, Skipped: 2},
	}}
	s := New(repo)
	load(t, s)

	if repo.limit != historyLimit {
		t.Errorf("expected limit %d, got %d", historyLimit, repo.limit)
	}
	view := s.View(100, 24)
	if !strings.Contains(view, "13/13") || !strings.Contains(view, "3/15") {
		t.Errorf("missing scores:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 24), "abandoned in 0:00, 2 skipped") {
		t.Error("expected details of the second session")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&mockSessionRepo{err: errors.New("db locked")})
	load(t, s)
	if !strings.Contains(s.View(80, 24), "db locked") {
		t.Error("expected error text")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(nil)
	load(t, s)
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
