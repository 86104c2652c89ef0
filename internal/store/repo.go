package store

import (
	"context"
	"time"
)

// KV is a string key-value store. Values are opaque text.
type KV interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Session event actions.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures one lifecycle event of a quiz run.
type SessionEventData struct {
	SessionID      string
	Action         string
	Range          string
	QuestionsTotal int
	CorrectAnswers int
	Skipped        int
	Completed      bool
	DurationSecs   int
}

// SessionRecord is a finished (or abandoned) quiz run.
type SessionRecord struct {
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	Range          string
	QuestionsTotal int
	CorrectAnswers int
	Skipped        int
	Completed      bool
	DurationSecs   int
}

// SessionRepo provides append and query access to session events.
type SessionRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// RecentSessions returns up to limit ended sessions, newest first.
	// limit <= 0 means no limit.
	RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error)
}
