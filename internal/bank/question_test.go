package bank

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)

func TestNewQuestion_Defaults(t *testing.T) {
	q, err := NewQuestion(NewQuestionInput{
		Text:    "What is the capital of France?",
		Correct: "Paris",
		Wrong:   []string{"London", "Berlin"},
		Tags:    []string{"Geography", " europe "},
	}, testNow)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}

	if q.ID == "" {
		t.Error("expected a generated id")
	}
	if q.Rating != DefaultRating {
		t.Errorf("Rating = %v, want %v", q.Rating, DefaultRating)
	}
	if q.IntervalDays != DefaultInterval {
		t.Errorf("IntervalDays = %v, want %v", q.IntervalDays, DefaultInterval)
	}
	if q.EaseFactor != DefaultEase {
		t.Errorf("EaseFactor = %v, want %v", q.EaseFactor, DefaultEase)
	}
	if q.NextReview != nil {
		t.Error("new question should not be scheduled yet")
	}
	if !q.CreatedAt.Equal(testNow) {
		t.Errorf("CreatedAt = %v, want %v", q.CreatedAt, testNow)
	}
	if len(q.Answers) != 3 {
		t.Fatalf("len(Answers) = %d, want 3", len(q.Answers))
	}
	if !q.HasTag("geography") || !q.HasTag("europe") {
		t.Errorf("tags not normalized: %v", q.TagList())
	}
}

func TestNewQuestion_RejectsEmptyText(t *testing.T) {
	_, err := NewQuestion(NewQuestionInput{Text: "  ", Correct: "a", Wrong: []string{"b"}}, testNow)
	if !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("err = %v, want ErrInvalidQuestion", err)
	}
}

func TestNewQuestion_RequiresWrongAnswer(t *testing.T) {
	_, err := NewQuestion(NewQuestionInput{Text: "q", Correct: "a"}, testNow)
	if !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("err = %v, want ErrInvalidQuestion", err)
	}
}

func TestNewQuestion_Explanations(t *testing.T) {
	q, err := NewQuestion(NewQuestionInput{
		Text:    "q",
		Correct: "a",
		Wrong:   []string{"b"},
		Explanations: map[string]string{
			"a": "because a",
			"b": "a common mix-up",
		},
	}, testNow)
	if err != nil {
		t.Fatalf("NewQuestion: %v", err)
	}

	if got := q.CorrectAnswer().Explanation; got != "because a" {
		t.Errorf("correct explanation = %q, want %q", got, "because a")
	}
}

func TestValidate(t *testing.T) {
	valid, err := NewQuestion(NewQuestionInput{Text: "q", Correct: "a", Wrong: []string{"b"}}, testNow)
	if err != nil {
		t.Fatal(err)
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid question failed validation: %v", err)
	}

	noID := &Question{Answers: []Answer{{Correct: true}, {}}}
	if err := noID.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("missing id: err = %v, want ErrInvalidQuestion", err)
	}

	oneAnswer := &Question{ID: "x", Answers: []Answer{{Correct: true}}}
	if err := oneAnswer.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("single answer: err = %v, want ErrInvalidQuestion", err)
	}

	twoCorrect := &Question{ID: "x", Answers: []Answer{{Correct: true}, {Correct: true}}}
	if err := twoCorrect.Validate(); !errors.Is(err, ErrInvalidQuestion) {
		t.Errorf("two correct: err = %v, want ErrInvalidQuestion", err)
	}
}

func TestParseResult(t *testing.T) {
	for _, s := range []string{"correct", "incorrect", "skipped"} {
		if _, err := ParseResult(s); err != nil {
			t.Errorf("ParseResult(%q): %v", s, err)
		}
	}
	if _, err := ParseResult("maybe"); err == nil {
		t.Error("ParseResult should reject unknown results")
	}
}

func TestTags(t *testing.T) {
	q, _ := NewQuestion(NewQuestionInput{Text: "q", Correct: "a", Wrong: []string{"b"}}, testNow)

	q.AddTag("Math")
	q.AddTag("math") // duplicate after normalization
	q.AddTag("")
	if got := q.TagList(); len(got) != 1 || got[0] != "math" {
		t.Errorf("TagList = %v, want [math]", got)
	}

	q.RemoveTag("MATH")
	if q.HasTag("math") {
		t.Error("tag should be removed case-insensitively")
	}
}

func TestAnswerLookups(t *testing.T) {
	q, _ := NewQuestion(NewQuestionInput{Text: "q", Correct: "right", Wrong: []string{"wrong"}}, testNow)

	correct := q.CorrectAnswer()
	if correct == nil || correct.Text != "right" {
		t.Fatalf("CorrectAnswer = %+v, want the right answer", correct)
	}
	if got := q.AnswerByID(correct.ID); got == nil || got.ID != correct.ID {
		t.Error("AnswerByID should find the answer by id")
	}
	if q.AnswerByID("nope") != nil {
		t.Error("AnswerByID should return nil for unknown ids")
	}
}

func TestAccuracy(t *testing.T) {
	q, _ := NewQuestion(NewQuestionInput{Text: "q", Correct: "a", Wrong: []string{"b"}}, testNow)

	if got := q.Accuracy(); got != 0 {
		t.Errorf("Accuracy of unanswered question = %v, want 0", got)
	}

	q.TimesAnswered = 4
	q.TimesCorrect = 3
	if got := q.Accuracy(); got != 75 {
		t.Errorf("Accuracy = %v, want 75", got)
	}
}
