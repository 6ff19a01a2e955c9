package rating

import (
	"math"
	"sort"

	"github.com/haxx0rman/qBank/internal/bank"
)

// DefaultTargetSuccessRate is the success probability RankByFit aims for
// when matching questions to a user's skill.
const DefaultTargetSuccessRate = 0.7

// Tracker owns one rating per user id, created lazily on first access.
type Tracker struct {
	system  System
	ratings map[string]float64
}

// NewTracker creates a Tracker with the default ELO system.
func NewTracker() *Tracker {
	return &Tracker{
		system:  NewSystem(),
		ratings: make(map[string]float64),
	}
}

// NewTrackerWith creates a Tracker seeded with previously stored ratings.
func NewTrackerWith(ratings map[string]float64) *Tracker {
	t := NewTracker()
	for id, r := range ratings {
		t.ratings[id] = r
	}
	return t
}

// Rating returns the user's current rating, initializing it to the default
// on first access.
func (t *Tracker) Rating(userID string) float64 {
	r, ok := t.ratings[userID]
	if !ok {
		r = InitialRating
		t.ratings[userID] = r
	}
	return r
}

// Level returns the display label for the user's current rating.
func (t *Tracker) Level(userID string) string {
	return SkillLevel(t.Rating(userID))
}

// ApplyResult updates both the user's stored rating and the question's
// rating for one answer outcome, returning the new values.
func (t *Tracker) ApplyResult(userID string, q *bank.Question, result bank.Result) (newUserRating, newQuestionRating float64) {
	userRating := t.Rating(userID)

	newQuestionRating, newUserRating = t.system.UpdateRatings(q.Rating, userRating, result)

	t.ratings[userID] = newUserRating
	q.Rating = newQuestionRating
	return newUserRating, newQuestionRating
}

// PredictSuccess returns the user's success probability against a question.
func (t *Tracker) PredictSuccess(userID string, q *bank.Question) float64 {
	return t.system.PredictSuccess(t.Rating(userID), q.Rating)
}

// RankByFit orders candidates by how close the user's predicted success
// probability is to targetRate, best fit first. Ties keep the input order.
// Pass targetRate <= 0 to use DefaultTargetSuccessRate.
func (t *Tracker) RankByFit(userID string, candidates []*bank.Question, targetRate float64) []*bank.Question {
	if targetRate <= 0 {
		targetRate = DefaultTargetSuccessRate
	}
	userRating := t.Rating(userID)

	ranked := make([]*bank.Question, len(candidates))
	copy(ranked, candidates)
	score := func(q *bank.Question) float64 {
		p := t.system.PredictSuccess(userRating, q.Rating)
		return 1 - math.Abs(p-targetRate)
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return score(ranked[i]) > score(ranked[j])
	})
	return ranked
}

// Snapshot exports the stored ratings for persistence.
func (t *Tracker) Snapshot() map[string]float64 {
	out := make(map[string]float64, len(t.ratings))
	for id, r := range t.ratings {
		out[id] = r
	}
	return out
}
