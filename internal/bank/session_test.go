package bank

import (
	"math"
	"testing"
	"time"
)

func TestStudySession_Lifecycle(t *testing.T) {
	started := time.Date(2026, 2, 1, 19, 0, 0, 0, time.UTC)
	s := NewStudySession([]string{"q1", "q2"}, started)

	if s.ID == "" {
		t.Error("expected a generated session id")
	}
	if s.Ended() {
		t.Error("new session should be open")
	}
	if s.Duration() != 0 {
		t.Errorf("open session Duration = %v, want 0", s.Duration())
	}

	ended := started.Add(12 * time.Minute)
	s.Seal(ended)

	if !s.Ended() {
		t.Error("sealed session should report ended")
	}
	if s.Duration() != 12*time.Minute {
		t.Errorf("Duration = %v, want 12m", s.Duration())
	}
}

func TestStudySession_Counts(t *testing.T) {
	s := NewStudySession([]string{"a", "b", "c", "d"}, time.Now())
	s.Record("a", ResultCorrect)
	s.Record("b", ResultCorrect)
	s.Record("c", ResultIncorrect)
	s.Record("d", ResultSkipped)

	if got := s.CorrectCount(); got != 2 {
		t.Errorf("CorrectCount = %d, want 2", got)
	}
	if got := s.IncorrectCount(); got != 1 {
		t.Errorf("IncorrectCount = %d, want 1", got)
	}
	if got := s.SkippedCount(); got != 1 {
		t.Errorf("SkippedCount = %d, want 1", got)
	}
}

func TestStudySession_AccuracyExcludesSkips(t *testing.T) {
	s := NewStudySession([]string{"a", "b", "c", "d"}, time.Now())
	s.Record("a", ResultCorrect)
	s.Record("b", ResultCorrect)
	s.Record("c", ResultIncorrect)
	s.Record("d", ResultSkipped)

	want := 2.0 / 3.0 * 100
	if got := s.Accuracy(); math.Abs(got-want) > 1e-9 {
		t.Errorf("Accuracy = %v, want %v (skips excluded)", got, want)
	}
}

func TestStudySession_AccuracyAllSkipped(t *testing.T) {
	s := NewStudySession([]string{"a"}, time.Now())
	s.Record("a", ResultSkipped)

	if got := s.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %v, want 0 with nothing answered", got)
	}
}

func TestStudySession_RecordLastWriteWins(t *testing.T) {
	s := NewStudySession([]string{"a"}, time.Now())
	s.Record("a", ResultIncorrect)
	s.Record("a", ResultCorrect)

	if got := s.CorrectCount(); got != 1 {
		t.Errorf("CorrectCount = %d, want 1 after overwrite", got)
	}
	if got := s.IncorrectCount(); got != 0 {
		t.Errorf("IncorrectCount = %d, want 0 after overwrite", got)
	}
}
