package bank

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rating and scheduling defaults for newly created questions.
const (
	DefaultRating   = 1200.0
	DefaultInterval = 1.0
	DefaultEase     = 2.5
)

// ErrInvalidQuestion is returned when a question fails shape validation.
var ErrInvalidQuestion = errors.New("invalid question")

// Result is the outcome of a single attempt at a question.
type Result string

const (
	ResultCorrect   Result = "correct"
	ResultIncorrect Result = "incorrect"
	ResultSkipped   Result = "skipped"
)

// ParseResult converts a stored result string back to a Result.
func ParseResult(s string) (Result, error) {
	switch Result(s) {
	case ResultCorrect, ResultIncorrect, ResultSkipped:
		return Result(s), nil
	}
	return "", fmt.Errorf("unknown result %q", s)
}

// Answer is a single answer option belonging to a question.
type Answer struct {
	ID          string
	Text        string
	Correct     bool
	Explanation string
}

// Question is a multiple-choice question together with its ELO rating and
// spaced repetition scheduling state. Rating and scheduling fields are
// mutated only by the rating tracker and the review scheduler while an
// answer is being processed.
type Question struct {
	ID        string
	Text      string
	Objective string
	Answers   []Answer

	// Tags is the set of normalized tags on this question.
	Tags map[string]bool

	// Rating is the question's ELO rating. Higher means harder.
	Rating float64

	TimesAnswered int
	TimesCorrect  int

	CreatedAt   time.Time
	LastStudied *time.Time

	// NextReview is the scheduled review time. Nil means the question has
	// never been scheduled and is due immediately.
	NextReview *time.Time

	IntervalDays    float64
	EaseFactor      float64
	RepetitionCount int
}

// NewQuestionInput carries the fields needed to build a question.
type NewQuestionInput struct {
	Text      string
	Correct   string
	Wrong     []string
	Tags      []string
	Objective string

	// Explanations maps answer text to an optional explanation.
	Explanations map[string]string
}

// NewQuestion builds a multiple-choice question with one correct answer and
// at least one wrong answer, applying the default rating and scheduling state.
func NewQuestion(in NewQuestionInput, now time.Time) (*Question, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, fmt.Errorf("%w: question text is empty", ErrInvalidQuestion)
	}
	if strings.TrimSpace(in.Correct) == "" {
		return nil, fmt.Errorf("%w: correct answer is empty", ErrInvalidQuestion)
	}
	if len(in.Wrong) == 0 {
		return nil, fmt.Errorf("%w: need at least one wrong answer", ErrInvalidQuestion)
	}

	answers := make([]Answer, 0, len(in.Wrong)+1)
	answers = append(answers, Answer{
		ID:          uuid.NewString(),
		Text:        in.Correct,
		Correct:     true,
		Explanation: in.Explanations[in.Correct],
	})
	for _, w := range in.Wrong {
		answers = append(answers, Answer{
			ID:          uuid.NewString(),
			Text:        w,
			Explanation: in.Explanations[w],
		})
	}

	q := &Question{
		ID:           uuid.NewString(),
		Text:         in.Text,
		Objective:    in.Objective,
		Answers:      answers,
		Tags:         make(map[string]bool),
		Rating:       DefaultRating,
		CreatedAt:    now,
		IntervalDays: DefaultInterval,
		EaseFactor:   DefaultEase,
	}
	for _, t := range in.Tags {
		q.AddTag(t)
	}
	return q, nil
}

// Validate checks the multiple-choice shape: at least two answers with
// exactly one correct, and a non-empty id. Used on imported records.
func (q *Question) Validate() error {
	if q.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidQuestion)
	}
	if len(q.Answers) < 2 {
		return fmt.Errorf("%w: question %s has %d answers, need at least 2", ErrInvalidQuestion, q.ID, len(q.Answers))
	}
	correct := 0
	for _, a := range q.Answers {
		if a.Correct {
			correct++
		}
	}
	if correct != 1 {
		return fmt.Errorf("%w: question %s has %d correct answers, need exactly 1", ErrInvalidQuestion, q.ID, correct)
	}
	return nil
}

// NormalizeTag lowercases and trims a tag.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// AddTag adds a normalized tag to the question. Empty tags are ignored.
func (q *Question) AddTag(tag string) {
	t := NormalizeTag(tag)
	if t == "" {
		return
	}
	if q.Tags == nil {
		q.Tags = make(map[string]bool)
	}
	q.Tags[t] = true
}

// RemoveTag removes a tag from the question.
func (q *Question) RemoveTag(tag string) {
	delete(q.Tags, NormalizeTag(tag))
}

// HasTag reports whether the question carries the given tag.
func (q *Question) HasTag(tag string) bool {
	return q.Tags[NormalizeTag(tag)]
}

// TagList returns the question's tags sorted alphabetically.
func (q *Question) TagList() []string {
	tags := make([]string, 0, len(q.Tags))
	for t := range q.Tags {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// CorrectAnswer returns the question's correct answer, or nil if the
// question is malformed and has none.
func (q *Question) CorrectAnswer() *Answer {
	for i := range q.Answers {
		if q.Answers[i].Correct {
			return &q.Answers[i]
		}
	}
	return nil
}

// AnswerByID returns the answer with the given id, or nil.
func (q *Question) AnswerByID(id string) *Answer {
	for i := range q.Answers {
		if q.Answers[i].ID == id {
			return &q.Answers[i]
		}
	}
	return nil
}

// Accuracy returns the question's lifetime accuracy as a percentage.
// Returns 0 if the question has never been answered.
func (q *Question) Accuracy() float64 {
	if q.TimesAnswered == 0 {
		return 0
	}
	return float64(q.TimesCorrect) / float64(q.TimesAnswered) * 100
}
