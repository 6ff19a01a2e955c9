package bank

import (
	"time"

	"github.com/google/uuid"
)

// StudySession records which questions were selected for one sitting and
// how each was answered. A session is open until EndedAt is set; once
// sealed it is appended to the repository's history and never mutated.
type StudySession struct {
	ID          string
	QuestionIDs []string

	// Results maps question id to the recorded outcome. At most one entry
	// per question; re-answering overwrites the prior entry.
	Results map[string]Result

	StartedAt time.Time
	EndedAt   *time.Time
}

// NewStudySession creates an open session over the given question ids.
func NewStudySession(questionIDs []string, startedAt time.Time) *StudySession {
	return &StudySession{
		ID:          uuid.NewString(),
		QuestionIDs: questionIDs,
		Results:     make(map[string]Result),
		StartedAt:   startedAt,
	}
}

// Record stores the result for a question. Last write wins.
func (s *StudySession) Record(questionID string, r Result) {
	s.Results[questionID] = r
}

// Seal sets the end time, closing the session.
func (s *StudySession) Seal(endedAt time.Time) {
	t := endedAt
	s.EndedAt = &t
}

// Ended reports whether the session has been sealed.
func (s *StudySession) Ended() bool {
	return s.EndedAt != nil
}

func (s *StudySession) countByResult(r Result) int {
	n := 0
	for _, got := range s.Results {
		if got == r {
			n++
		}
	}
	return n
}

// CorrectCount returns the number of correctly answered questions.
func (s *StudySession) CorrectCount() int { return s.countByResult(ResultCorrect) }

// IncorrectCount returns the number of incorrectly answered questions.
func (s *StudySession) IncorrectCount() int { return s.countByResult(ResultIncorrect) }

// SkippedCount returns the number of skipped questions.
func (s *StudySession) SkippedCount() int { return s.countByResult(ResultSkipped) }

// Accuracy returns the session accuracy as a percentage. Skipped questions
// are excluded from the denominator; returns 0 if nothing was answered.
func (s *StudySession) Accuracy() float64 {
	answered := s.CorrectCount() + s.IncorrectCount()
	if answered == 0 {
		return 0
	}
	return float64(s.CorrectCount()) / float64(answered) * 100
}

// Duration returns the session length, or 0 if the session is still open.
func (s *StudySession) Duration() time.Duration {
	if s.EndedAt == nil {
		return 0
	}
	return s.EndedAt.Sub(s.StartedAt)
}
