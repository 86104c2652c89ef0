package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// sessionRepo implements SessionRepo on the session_events table.
type sessionRepo struct {
	db  *sql.DB
	now func() time.Time
}

func (r *sessionRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	if data.SessionID == "" {
		return fmt.Errorf("save session event: empty session id")
	}
	if data.Action != ActionStart && data.Action != ActionEnd {
		return fmt.Errorf("save session event: unknown action %q", data.Action)
	}

	if data.Range == "" {
		data.Range = "all"
	}
	if _, err := insertEvent(ctx, r.db, r.now(), data); err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *sessionRepo) RecentSessions(ctx context.Context, limit int) ([]SessionRecord, error) {
	query := `SELECT sequence, timestamp, session_id, range_descriptor,
			questions_total, correct_answers, skipped, completed, duration_secs
		FROM session_events
		WHERE action = ?
		ORDER BY sequence DESC`
	args := []any{ActionEnd}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionRecord
	for rows.Next() {
		var rec SessionRecord
		if err := rows.Scan(
			&rec.Sequence, &rec.Timestamp, &rec.SessionID, &rec.Range,
			&rec.QuestionsTotal, &rec.CorrectAnswers, &rec.Skipped, &rec.Completed, &rec.DurationSecs,
		); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session records: %w", err)
	}
	return out, nil
}
