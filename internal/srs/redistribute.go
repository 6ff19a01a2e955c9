package srs

import (
	"sort"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

// Defaults for the redistribution maintenance pass.
const (
	DefaultMaxPerDay    = 50
	DefaultMaxDeferDays = 7
)

// Redistribute levels the daily review load. It walks scheduled questions
// in ascending review order and, for each, picks the earliest date at or
// after its scheduled date with fewer than maxPerDay reviews already
// assigned, deferring at most maxDeferDays days. Reassigned reviews keep
// their time of day. A question whose whole defer window is full is left
// untouched. This is an explicit maintenance operation, independent of the
// per-answer scheduling path.
func (s *Scheduler) Redistribute(questions []*bank.Question, maxPerDay, maxDeferDays int) {
	if maxPerDay <= 0 {
		maxPerDay = DefaultMaxPerDay
	}
	if maxDeferDays <= 0 {
		maxDeferDays = DefaultMaxDeferDays
	}

	var scheduled []*bank.Question
	for _, q := range questions {
		if q.NextReview != nil {
			scheduled = append(scheduled, q)
		}
	}
	sort.SliceStable(scheduled, func(i, j int) bool {
		return scheduled[i].NextReview.Before(*scheduled[j].NextReview)
	})

	dailyCounts := make(map[string]int)
	for _, q := range scheduled {
		original := *q.NextReview
		for offset := 0; offset < maxDeferDays; offset++ {
			candidate := original.AddDate(0, 0, offset)
			key := candidate.Format(time.DateOnly)
			if dailyCounts[key] < maxPerDay {
				dailyCounts[key]++
				if offset > 0 {
					q.NextReview = &candidate
				}
				break
			}
		}
	}
}
