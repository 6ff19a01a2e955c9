package srs

import (
	"fmt"
	"testing"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

func TestRedistribute_DefersOverflow(t *testing.T) {
	s := NewScheduler(DefaultParams())
	day := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	var qs []*bank.Question
	for i := 0; i < 3; i++ {
		qs = append(qs, questionAt(t, fmt.Sprintf("q%d", i), timePtr(day.Add(time.Duration(i)*time.Minute))))
	}

	s.Redistribute(qs, 2, 7)

	counts := make(map[string]int)
	for _, q := range qs {
		counts[q.NextReview.Format(time.DateOnly)]++
	}
	if counts["2026-03-02"] != 2 {
		t.Errorf("first day has %d reviews, want 2", counts["2026-03-02"])
	}
	if counts["2026-03-03"] != 1 {
		t.Errorf("second day has %d reviews, want the 1 deferred review", counts["2026-03-03"])
	}
}

func TestRedistribute_PreservesTimeOfDay(t *testing.T) {
	s := NewScheduler(DefaultParams())
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	early := questionAt(t, "early", timePtr(day.Add(8*time.Hour)))
	late := questionAt(t, "late", timePtr(day.Add(21*time.Hour+30*time.Minute)))

	s.Redistribute([]*bank.Question{early, late}, 1, 7)

	if h := late.NextReview.Hour(); h != 21 {
		t.Errorf("deferred review hour = %d, want 21", h)
	}
	if m := late.NextReview.Minute(); m != 30 {
		t.Errorf("deferred review minute = %d, want 30", m)
	}
}

func TestRedistribute_LeavesUnderloadedDaysAlone(t *testing.T) {
	s := NewScheduler(DefaultParams())
	day := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	a := questionAt(t, "a", timePtr(day))
	b := questionAt(t, "b", timePtr(day.AddDate(0, 0, 1)))
	wantA, wantB := *a.NextReview, *b.NextReview

	s.Redistribute([]*bank.Question{a, b}, 50, 7)

	if !a.NextReview.Equal(wantA) || !b.NextReview.Equal(wantB) {
		t.Error("redistribute moved reviews on days under the limit")
	}
}

func TestRedistribute_SkipsUnscheduled(t *testing.T) {
	s := NewScheduler(DefaultParams())

	q := questionAt(t, "new", nil)
	s.Redistribute([]*bank.Question{q}, 1, 7)

	if q.NextReview != nil {
		t.Errorf("unscheduled question got a review date: %v", q.NextReview)
	}
}

func TestRedistribute_FullWindowLeavesQuestion(t *testing.T) {
	s := NewScheduler(DefaultParams())
	day := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)

	// Three questions, one slot per day, two-day window: the third has
	// nowhere to go and keeps its original date.
	var qs []*bank.Question
	for i := 0; i < 3; i++ {
		qs = append(qs, questionAt(t, fmt.Sprintf("q%d", i), timePtr(day.Add(time.Duration(i)*time.Minute))))
	}
	want := *qs[2].NextReview

	s.Redistribute(qs, 1, 2)

	if !qs[2].NextReview.Equal(want) {
		t.Errorf("question with a full defer window moved to %v, want %v", qs[2].NextReview, want)
	}
}
