package rating

import (
	"math"

	"github.com/haxx0rman/qBank/internal/bank"
)

const (
	// DefaultK is the standard K-factor for rating updates.
	DefaultK = 32.0

	// InitialRating is the starting rating for new questions and users.
	InitialRating = 1200.0
)

// System implements the ELO expected-score and update formulas for
// user-versus-question pairings.
type System struct {
	K float64
}

// NewSystem returns a System with the default K-factor.
func NewSystem() System {
	return System{K: DefaultK}
}

// ExpectedScore returns the expected score for a rating a against rating b.
// ExpectedScore(a, b) + ExpectedScore(b, a) == 1 for all a, b.
func ExpectedScore(a, b float64) float64 {
	return 1 / (1 + math.Pow(10, (b-a)/400))
}

// UpdateRatings applies one answer outcome to a question/user rating pair.
// A correct answer means the user beat the question; incorrect means the
// question won. Skips leave both ratings untouched. The pairing is
// zero-sum: the two deltas are equal in magnitude and opposite in sign.
func (s System) UpdateRatings(questionRating, userRating float64, result bank.Result) (newQuestionRating, newUserRating float64) {
	if result == bank.ResultSkipped {
		return questionRating, userRating
	}

	userExpected := ExpectedScore(userRating, questionRating)
	questionExpected := ExpectedScore(questionRating, userRating)

	var userActual, questionActual float64
	if result == bank.ResultCorrect {
		userActual, questionActual = 1, 0
	} else {
		userActual, questionActual = 0, 1
	}

	newUserRating = userRating + s.K*(userActual-userExpected)
	newQuestionRating = questionRating + s.K*(questionActual-questionExpected)
	return newQuestionRating, newUserRating
}

// PredictSuccess returns the probability that a user at userRating answers
// a question at questionRating correctly.
func (s System) PredictSuccess(userRating, questionRating float64) float64 {
	return ExpectedScore(userRating, questionRating)
}

// DifficultyCategory maps a question rating to a display label.
func DifficultyCategory(r float64) string {
	switch {
	case r < 1000:
		return "Very Easy"
	case r < 1200:
		return "Easy"
	case r < 1400:
		return "Medium"
	case r < 1600:
		return "Hard"
	case r < 1800:
		return "Very Hard"
	default:
		return "Expert"
	}
}

// SkillLevel maps a user rating to a display label.
func SkillLevel(r float64) string {
	switch {
	case r < 1000:
		return "Beginner"
	case r < 1200:
		return "Novice"
	case r < 1400:
		return "Intermediate"
	case r < 1600:
		return "Advanced"
	case r < 1800:
		return "Expert"
	default:
		return "Master"
	}
}
