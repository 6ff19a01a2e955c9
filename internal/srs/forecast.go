package srs

import (
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

// ForecastDay is the projected review load for one calendar date.
type ForecastDay struct {
	Date  string // YYYY-MM-DD
	Count int
}

// Forecast projects how many questions come due on each of the next days
// calendar dates, starting with today. Dates with no reviews are included
// with a zero count.
func (s *Scheduler) Forecast(questions []*bank.Question, days int, now time.Time) []ForecastDay {
	counts := make(map[string]int)
	for _, q := range questions {
		if q.NextReview == nil {
			continue
		}
		counts[q.NextReview.Format(time.DateOnly)]++
	}

	out := make([]ForecastDay, 0, days)
	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, i).Format(time.DateOnly)
		out = append(out, ForecastDay{Date: date, Count: counts[date]})
	}
	return out
}

// RetentionEstimate estimates how well a question is retained, in [0, 1].
// Never-answered questions score a neutral 0.5. Otherwise the estimate
// blends lifetime accuracy (70%) with the normalized ease factor (30%).
func (s *Scheduler) RetentionEstimate(q *bank.Question) float64 {
	if q.TimesAnswered == 0 {
		return 0.5
	}
	accuracy := float64(q.TimesCorrect) / float64(q.TimesAnswered)
	normalizedEase := (q.EaseFactor - s.params.MinEase) / (s.params.MaxEase - s.params.MinEase)
	return clamp(0.7*accuracy+0.3*normalizedEase, 0, 1)
}
