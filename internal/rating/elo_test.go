package rating

import (
	"math"
	"testing"

	"github.com/haxx0rman/qBank/internal/bank"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestExpectedScore_EqualRatings(t *testing.T) {
	got := ExpectedScore(1200, 1200)
	if !almostEqual(got, 0.5) {
		t.Errorf("ExpectedScore(1200, 1200) = %v, want 0.5", got)
	}
}

func TestExpectedScore_SumsToOne(t *testing.T) {
	pairs := [][2]float64{
		{1200, 1200},
		{1000, 1400},
		{800, 2000},
		{1550, 1549},
	}
	for _, p := range pairs {
		sum := ExpectedScore(p[0], p[1]) + ExpectedScore(p[1], p[0])
		if !almostEqual(sum, 1.0) {
			t.Errorf("ExpectedScore(%v, %v) + reverse = %v, want 1", p[0], p[1], sum)
		}
	}
}

func TestExpectedScore_HigherRatingFavored(t *testing.T) {
	if ExpectedScore(1400, 1200) <= 0.5 {
		t.Error("higher-rated side should have expected score above 0.5")
	}
	if ExpectedScore(1000, 1200) >= 0.5 {
		t.Error("lower-rated side should have expected score below 0.5")
	}
}

func TestUpdateRatings_CorrectAtEqualRatings(t *testing.T) {
	s := NewSystem()
	newQ, newU := s.UpdateRatings(1200, 1200, bank.ResultCorrect)

	if !almostEqual(newU, 1216) {
		t.Errorf("new user rating = %v, want 1216", newU)
	}
	if !almostEqual(newQ, 1184) {
		t.Errorf("new question rating = %v, want 1184", newQ)
	}
}

func TestUpdateRatings_IncorrectAtEqualRatings(t *testing.T) {
	s := NewSystem()
	newQ, newU := s.UpdateRatings(1200, 1200, bank.ResultIncorrect)

	if !almostEqual(newU, 1184) {
		t.Errorf("new user rating = %v, want 1184", newU)
	}
	if !almostEqual(newQ, 1216) {
		t.Errorf("new question rating = %v, want 1216", newQ)
	}
}

func TestUpdateRatings_ZeroSum(t *testing.T) {
	s := NewSystem()
	cases := []struct {
		question, user float64
		result         bank.Result
	}{
		{1200, 1200, bank.ResultCorrect},
		{1500, 1100, bank.ResultCorrect},
		{900, 1600, bank.ResultIncorrect},
		{1234.5, 1456.7, bank.ResultIncorrect},
	}
	for _, c := range cases {
		newQ, newU := s.UpdateRatings(c.question, c.user, c.result)
		qDelta := newQ - c.question
		uDelta := newU - c.user
		if !almostEqual(qDelta+uDelta, 0) {
			t.Errorf("UpdateRatings(%v, %v, %v): deltas %v and %v are not zero-sum",
				c.question, c.user, c.result, qDelta, uDelta)
		}
	}
}

func TestUpdateRatings_SkipIsNoOp(t *testing.T) {
	s := NewSystem()
	newQ, newU := s.UpdateRatings(1350, 1280, bank.ResultSkipped)
	if newQ != 1350 || newU != 1280 {
		t.Errorf("skip changed ratings: got (%v, %v), want (1350, 1280)", newQ, newU)
	}
}

func TestUpdateRatings_UpsetMovesMore(t *testing.T) {
	s := NewSystem()

	// Beating a much harder question should move the user more than
	// beating an equal one.
	_, afterUpset := s.UpdateRatings(1600, 1200, bank.ResultCorrect)
	_, afterEven := s.UpdateRatings(1200, 1200, bank.ResultCorrect)

	if afterUpset-1200 <= afterEven-1200 {
		t.Errorf("upset gain %v should exceed even gain %v", afterUpset-1200, afterEven-1200)
	}
}

func TestPredictSuccess_MatchesExpectedScore(t *testing.T) {
	s := NewSystem()
	if got, want := s.PredictSuccess(1300, 1200), ExpectedScore(1300, 1200); !almostEqual(got, want) {
		t.Errorf("PredictSuccess = %v, want %v", got, want)
	}
}

func TestDifficultyCategory(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{800, "Very Easy"},
		{999.9, "Very Easy"},
		{1000, "Easy"},
		{1199, "Easy"},
		{1200, "Medium"},
		{1399, "Medium"},
		{1400, "Hard"},
		{1599, "Hard"},
		{1600, "Very Hard"},
		{1799, "Very Hard"},
		{1800, "Expert"},
		{2400, "Expert"},
	}
	for _, tt := range tests {
		if got := DifficultyCategory(tt.rating); got != tt.want {
			t.Errorf("DifficultyCategory(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}

func TestSkillLevel(t *testing.T) {
	tests := []struct {
		rating float64
		want   string
	}{
		{500, "Beginner"},
		{1000, "Novice"},
		{1200, "Intermediate"},
		{1400, "Advanced"},
		{1600, "Expert"},
		{1800, "Master"},
		{2500, "Master"},
	}
	for _, tt := range tests {
		if got := SkillLevel(tt.rating); got != tt.want {
			t.Errorf("SkillLevel(%v) = %q, want %q", tt.rating, got, tt.want)
		}
	}
}
