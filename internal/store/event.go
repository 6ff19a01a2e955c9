package store

import (
	"context"
	"fmt"
	"time"
)

// AnswerEventData captures one answered or skipped question.
type AnswerEventData struct {
	SessionID      string
	QuestionID     string
	Result         string
	ResponseSecs   float64
	UserRating     float64
	QuestionRating float64
}

// AppendAnswerEvent records an answer event.
func (s *Store) AppendAnswerEvent(ctx context.Context, data AnswerEventData, now time.Time) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(session_id, question_id, result, response_secs, user_rating, question_rating, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.QuestionID, data.Result, data.ResponseSecs,
		data.UserRating, data.QuestionRating, now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save answer event: %w", err)
	}
	return nil
}

// SessionEventData summarizes one finished study session.
type SessionEventData struct {
	SessionID string
	Questions int
	Correct   int
	Incorrect int
	Skipped   int
	Accuracy  float64
	StartedAt time.Time
	EndedAt   time.Time
}

// AppendSessionEvent records a finished session.
func (s *Store) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO session_events
			(session_id, questions, correct, incorrect, skipped, accuracy, started_at, ended_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.Questions, data.Correct, data.Incorrect, data.Skipped,
		data.Accuracy, data.StartedAt.Format(time.RFC3339Nano), data.EndedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

// SessionSummary is one row of the session history report.
type SessionSummary struct {
	SessionID string
	Questions int
	Correct   int
	Incorrect int
	Skipped   int
	Accuracy  float64
	StartedAt time.Time
	EndedAt   time.Time
}

// RecentSessions returns the most recent finished sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT session_id, questions, correct, incorrect, skipped, accuracy, started_at, ended_at
		 FROM session_events ORDER BY id DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var out []SessionSummary
	for rows.Next() {
		var sum SessionSummary
		var started, ended string
		if err := rows.Scan(&sum.SessionID, &sum.Questions, &sum.Correct, &sum.Incorrect,
			&sum.Skipped, &sum.Accuracy, &started, &ended); err != nil {
			return nil, fmt.Errorf("scan session event: %w", err)
		}
		if sum.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("parse started_at: %w", err)
		}
		if sum.EndedAt, err = time.Parse(time.RFC3339Nano, ended); err != nil {
			return nil, fmt.Errorf("parse ended_at: %w", err)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}
