package srs

import (
	"sort"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

// IsDue reports whether a question's review time has arrived. Questions
// that were never scheduled are always due.
func IsDue(q *bank.Question, now time.Time) bool {
	return q.NextReview == nil || !q.NextReview.After(now)
}

// OverdueHours returns how many hours past its review time a question is.
// Returns 0 for never-scheduled or not-yet-due questions.
func OverdueHours(q *bank.Question, now time.Time) float64 {
	if q.NextReview == nil || q.NextReview.After(now) {
		return 0
	}
	return now.Sub(*q.NextReview).Hours()
}

// SelectDue returns the due subset of questions in priority order:
// never-scheduled questions first, then the rest by most overdue.
// Within each group, higher ease factors come first.
func (s *Scheduler) SelectDue(questions []*bank.Question, now time.Time) []*bank.Question {
	var due []*bank.Question
	for _, q := range questions {
		if IsDue(q, now) {
			due = append(due, q)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		a, b := due[i], due[j]
		aNew, bNew := a.NextReview == nil, b.NextReview == nil
		if aNew != bNew {
			return aNew
		}
		if !aNew {
			ao, bo := OverdueHours(a, now), OverdueHours(b, now)
			if ao != bo {
				return ao > bo
			}
		}
		return a.EaseFactor > b.EaseFactor
	})
	return due
}

// SuggestSessionSize recommends how many questions fit in a session of
// targetMinutes, given the number currently due. avgSecondsPerQuestion <= 0
// uses DefaultAvgSecondsPerQuestion.
func SuggestSessionSize(dueCount, targetMinutes int, avgSecondsPerQuestion float64) int {
	if avgSecondsPerQuestion <= 0 {
		avgSecondsPerQuestion = DefaultAvgSecondsPerQuestion
	}
	fit := int(float64(targetMinutes*60) / avgSecondsPerQuestion)
	if fit > dueCount {
		return dueCount
	}
	return fit
}

// DefaultAvgSecondsPerQuestion is the assumed time to answer one question.
const DefaultAvgSecondsPerQuestion = 45.0
