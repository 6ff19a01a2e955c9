package srs

import (
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

// Scheduler computes review intervals using a modified SM-2 algorithm.
// It holds only tuning parameters; all scheduling state lives on the
// questions it operates on.
type Scheduler struct {
	params Params
}

// NewScheduler creates a scheduler with the given parameters.
func NewScheduler(p Params) *Scheduler {
	return &Scheduler{params: p}
}

// Params returns the scheduler's tuning parameters.
func (s *Scheduler) Params() Params {
	return s.params
}

// NextState computes the next interval and ease factor for a question
// given an answer outcome. responseTimeSecs <= 0 means the response time
// was not measured; a measured time under five seconds earns a small
// ease and interval bonus.
func (s *Scheduler) NextState(q *bank.Question, result bank.Result, responseTimeSecs float64) (intervalDays, ease float64) {
	if result == bank.ResultSkipped {
		// Skips halve the interval but never below a day.
		interval := q.IntervalDays * 0.5
		if interval < 1.0 {
			interval = 1.0
		}
		return clamp(interval, s.params.MinInterval, s.params.MaxInterval), q.EaseFactor
	}

	currentEase := q.EaseFactor
	currentInterval := q.IntervalDays

	var newInterval, newEase float64
	if result == bank.ResultCorrect {
		switch q.RepetitionCount {
		case 0:
			newInterval = 1.0
		case 1:
			newInterval = 6.0
		default:
			newInterval = currentInterval * currentEase
		}
		newEase = currentEase + s.params.EaseBonus
		if newEase > s.params.MaxEase {
			newEase = s.params.MaxEase
		}

		if responseTimeSecs > 0 && responseTimeSecs < fastAnswerSecs {
			newEase += fastEaseBonus
			if newEase > s.params.MaxEase {
				newEase = s.params.MaxEase
			}
			newInterval *= fastIntervalFactor
		}
	} else {
		newInterval = 1.0
		newEase = currentEase - s.params.EasePenalty
		if q.RepetitionCount > 2 {
			newEase -= s.params.HardPenalty
		}
		if newEase < s.params.MinEase {
			newEase = s.params.MinEase
		}
	}

	newInterval = clamp(newInterval, s.params.MinInterval, s.params.MaxInterval)
	newEase = clamp(newEase, s.params.MinEase, s.params.MaxEase)
	return newInterval, newEase
}

// ApplyReview records one review of a question: it updates the interval,
// ease factor, last-studied time, and repetition count, schedules the next
// review, and returns the new review time. A correct answer extends the
// repetition streak, an incorrect answer resets it, and a skip leaves it
// unchanged.
func (s *Scheduler) ApplyReview(q *bank.Question, result bank.Result, responseTimeSecs float64, now time.Time) time.Time {
	newInterval, newEase := s.NextState(q, result, responseTimeSecs)

	q.IntervalDays = newInterval
	q.EaseFactor = newEase
	studied := now
	q.LastStudied = &studied

	switch result {
	case bank.ResultCorrect:
		q.RepetitionCount++
	case bank.ResultIncorrect:
		q.RepetitionCount = 0
	}

	next := now.Add(time.Duration(newInterval * 24 * float64(time.Hour)))
	q.NextReview = &next
	return next
}
