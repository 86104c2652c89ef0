package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// insertEventSQL numbers the row in the same statement that writes it.
// SQLite runs one writer at a time, so sequences stay unique and gap-free
// without a separate counter.
const insertEventSQL = `INSERT INTO session_events
	(sequence, timestamp, session_id, action, range_descriptor,
	 questions_total, correct_answers, skipped, completed, duration_secs)
VALUES (
	(SELECT COALESCE(MAX(sequence), 0) + 1 FROM session_events),
	?, ?, ?, ?, ?, ?, ?, ?, ?)
RETURNING sequence`

// insertEvent writes one session event stamped at and returns its sequence.
func insertEvent(ctx context.Context, db *sql.DB, at time.Time, d SessionEventData) (int64, error) {
	var seq int64
	err := db.QueryRowContext(ctx, insertEventSQL,
		at.UTC(), d.SessionID, d.Action, d.Range,
		d.QuestionsTotal, d.CorrectAnswers, d.Skipped, d.Completed, d.DurationSecs,
	).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("insert %s event: %w", d.Action, err)
	}
	return seq, nil
}
