package rating

import (
	"testing"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
)

func testQuestion(t *testing.T, text string, rating float64) *bank.Question {
	t.Helper()
	q, err := bank.NewQuestion(bank.NewQuestionInput{
		Text:    text,
		Correct: "right",
		Wrong:   []string{"wrong"},
	}, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}
	q.Rating = rating
	return q
}

func TestRating_LazyInit(t *testing.T) {
	tr := NewTracker()
	if got := tr.Rating("alice"); got != InitialRating {
		t.Errorf("Rating(alice) = %v, want %v", got, InitialRating)
	}

	snap := tr.Snapshot()
	if _, ok := snap["alice"]; !ok {
		t.Error("first access should persist the default rating")
	}
}

func TestNewTrackerWith_SeedsRatings(t *testing.T) {
	tr := NewTrackerWith(map[string]float64{"alice": 1420.5})
	if got := tr.Rating("alice"); got != 1420.5 {
		t.Errorf("Rating(alice) = %v, want 1420.5", got)
	}
	if got := tr.Rating("bob"); got != InitialRating {
		t.Errorf("Rating(bob) = %v, want default %v", got, InitialRating)
	}
}

func TestApplyResult_UpdatesBothSides(t *testing.T) {
	tr := NewTracker()
	q := testQuestion(t, "q", 1200)

	newUser, newQuestion := tr.ApplyResult("alice", q, bank.ResultCorrect)

	if !almostEqual(newUser, 1216) {
		t.Errorf("user rating = %v, want 1216", newUser)
	}
	if !almostEqual(newQuestion, 1184) {
		t.Errorf("question rating = %v, want 1184", newQuestion)
	}
	if !almostEqual(tr.Rating("alice"), 1216) {
		t.Errorf("stored user rating = %v, want 1216", tr.Rating("alice"))
	}
	if !almostEqual(q.Rating, 1184) {
		t.Errorf("stored question rating = %v, want 1184", q.Rating)
	}
}

func TestApplyResult_SkipLeavesRatings(t *testing.T) {
	tr := NewTrackerWith(map[string]float64{"alice": 1300})
	q := testQuestion(t, "q", 1450)

	newUser, newQuestion := tr.ApplyResult("alice", q, bank.ResultSkipped)

	if newUser != 1300 || newQuestion != 1450 {
		t.Errorf("skip changed ratings: got (%v, %v)", newUser, newQuestion)
	}
}

func TestApplyResult_IndependentUsers(t *testing.T) {
	tr := NewTracker()
	q := testQuestion(t, "q", 1200)

	tr.ApplyResult("alice", q, bank.ResultCorrect)

	if got := tr.Rating("bob"); got != InitialRating {
		t.Errorf("bob's rating = %v, want untouched default %v", got, InitialRating)
	}
}

func TestRankByFit_BestFitFirst(t *testing.T) {
	tr := NewTracker() // user at 1200
	// At target 0.7 the ideal question sits below the user's rating.
	easy := testQuestion(t, "easy", 900)
	fit := testQuestion(t, "fit", 1053) // predicted success ~0.70
	hard := testQuestion(t, "hard", 1600)

	ranked := tr.RankByFit("alice", []*bank.Question{hard, easy, fit}, 0.7)

	if len(ranked) != 3 {
		t.Fatalf("len(ranked) = %d, want 3", len(ranked))
	}
	if ranked[0].Text != "fit" {
		t.Errorf("ranked[0] = %q, want the closest-fit question", ranked[0].Text)
	}
	if ranked[2].Text != "hard" {
		t.Errorf("ranked[2] = %q, want the worst-fit question", ranked[2].Text)
	}
}

func TestRankByFit_StableOnTies(t *testing.T) {
	tr := NewTracker()
	a := testQuestion(t, "a", 1200)
	b := testQuestion(t, "b", 1200)
	c := testQuestion(t, "c", 1200)

	ranked := tr.RankByFit("alice", []*bank.Question{a, b, c}, 0.7)

	want := []string{"a", "b", "c"}
	for i, q := range ranked {
		if q.Text != want[i] {
			t.Errorf("ranked[%d] = %q, want %q (ties must keep input order)", i, q.Text, want[i])
		}
	}
}

func TestRankByFit_DoesNotMutateInput(t *testing.T) {
	tr := NewTracker()
	a := testQuestion(t, "a", 1600)
	b := testQuestion(t, "b", 1100)
	in := []*bank.Question{a, b}

	tr.RankByFit("alice", in, 0.7)

	if in[0] != a || in[1] != b {
		t.Error("RankByFit reordered the caller's slice")
	}
}

func TestRankByFit_ZeroTargetUsesDefault(t *testing.T) {
	tr := NewTracker()
	a := testQuestion(t, "a", 1053)
	b := testQuestion(t, "b", 1600)

	withDefault := tr.RankByFit("alice", []*bank.Question{b, a}, 0)
	explicit := tr.RankByFit("alice", []*bank.Question{b, a}, DefaultTargetSuccessRate)

	for i := range withDefault {
		if withDefault[i] != explicit[i] {
			t.Fatalf("targetRate 0 should behave like the default rate")
		}
	}
}

func TestSnapshot_Copies(t *testing.T) {
	tr := NewTrackerWith(map[string]float64{"alice": 1400})
	snap := tr.Snapshot()
	snap["alice"] = 1

	if got := tr.Rating("alice"); got != 1400 {
		t.Errorf("mutating the snapshot changed the tracker: rating = %v", got)
	}
}
