// Package bankfile reads and writes the question-bank interchange format:
// a single JSON document holding every question with its rating and
// scheduling state, plus the study session history. Imports are validated
// against an embedded JSON schema before decoding.
package bankfile

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/haxx0rman/qBank/internal/bank"
)

// ErrInvalidBank is returned when an imported document is malformed:
// schema violations, missing required fields, or duplicate ids.
var ErrInvalidBank = errors.New("invalid bank file")

// File is the top-level interchange document.
type File struct {
	Name      string           `json:"name"`
	CreatedAt time.Time        `json:"createdAt"`
	Questions []QuestionRecord `json:"questions" validate:"dive"`
	Sessions  []SessionRecord  `json:"sessions" validate:"dive"`
}

// AnswerRecord is one answer option in the interchange format.
type AnswerRecord struct {
	ID          string `json:"id" validate:"required"`
	Text        string `json:"text" validate:"required"`
	IsCorrect   bool   `json:"isCorrect"`
	Explanation string `json:"explanation,omitempty"`
}

// QuestionRecord is one question in the interchange format. Absent
// optional timestamps serialize as null.
type QuestionRecord struct {
	ID              string         `json:"id" validate:"required"`
	Text            string         `json:"text" validate:"required"`
	Objective       string         `json:"objective,omitempty"`
	Answers         []AnswerRecord `json:"answers" validate:"min=2,dive"`
	Tags            []string       `json:"tags"`
	EloRating       float64        `json:"eloRating"`
	TimesAnswered   int            `json:"timesAnswered" validate:"min=0"`
	TimesCorrect    int            `json:"timesCorrect" validate:"min=0"`
	CreatedAt       time.Time      `json:"createdAt"`
	LastStudied     *time.Time     `json:"lastStudied"`
	NextReview      *time.Time     `json:"nextReview"`
	IntervalDays    float64        `json:"intervalDays"`
	EaseFactor      float64        `json:"easeFactor"`
	RepetitionCount int            `json:"repetitionCount" validate:"min=0"`
}

// SessionRecord is one study session in the interchange format.
type SessionRecord struct {
	SessionID   string            `json:"sessionId" validate:"required"`
	QuestionIDs []string          `json:"questionIds"`
	Results     map[string]string `json:"results" validate:"dive,oneof=correct incorrect skipped"`
	StartTime   time.Time         `json:"startTime"`
	EndTime     *time.Time        `json:"endTime"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// FromRepository converts a repository into an interchange document.
// Questions keep their insertion order.
func FromRepository(repo *bank.Repository, name string, createdAt time.Time) *File {
	// Empty slices, not nil: the schema wants arrays, never null.
	f := &File{
		Name:      name,
		CreatedAt: createdAt,
		Questions: []QuestionRecord{},
		Sessions:  []SessionRecord{},
	}

	for _, q := range repo.All() {
		rec := QuestionRecord{
			ID:              q.ID,
			Text:            q.Text,
			Objective:       q.Objective,
			Tags:            q.TagList(),
			EloRating:       q.Rating,
			TimesAnswered:   q.TimesAnswered,
			TimesCorrect:    q.TimesCorrect,
			CreatedAt:       q.CreatedAt,
			LastStudied:     copyTime(q.LastStudied),
			NextReview:      copyTime(q.NextReview),
			IntervalDays:    q.IntervalDays,
			EaseFactor:      q.EaseFactor,
			RepetitionCount: q.RepetitionCount,
		}
		for _, a := range q.Answers {
			rec.Answers = append(rec.Answers, AnswerRecord{
				ID:          a.ID,
				Text:        a.Text,
				IsCorrect:   a.Correct,
				Explanation: a.Explanation,
			})
		}
		f.Questions = append(f.Questions, rec)
	}

	for _, s := range repo.Sessions() {
		ids := s.QuestionIDs
		if ids == nil {
			ids = []string{}
		}
		rec := SessionRecord{
			SessionID:   s.ID,
			QuestionIDs: ids,
			Results:     make(map[string]string, len(s.Results)),
			StartTime:   s.StartedAt,
			EndTime:     copyTime(s.EndedAt),
		}
		for qid, res := range s.Results {
			rec.Results[qid] = string(res)
		}
		f.Sessions = append(f.Sessions, rec)
	}
	return f
}

// Repository converts the document back into an owning repository,
// validating every record on the way in.
func (f *File) Repository() (*bank.Repository, error) {
	if err := validate.Struct(f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBank, err)
	}

	repo := bank.NewRepository()
	for _, rec := range f.Questions {
		q := &bank.Question{
			ID:              rec.ID,
			Text:            rec.Text,
			Objective:       rec.Objective,
			Tags:            make(map[string]bool),
			Rating:          rec.EloRating,
			TimesAnswered:   rec.TimesAnswered,
			TimesCorrect:    rec.TimesCorrect,
			CreatedAt:       rec.CreatedAt,
			LastStudied:     copyTime(rec.LastStudied),
			NextReview:      copyTime(rec.NextReview),
			IntervalDays:    rec.IntervalDays,
			EaseFactor:      rec.EaseFactor,
			RepetitionCount: rec.RepetitionCount,
		}
		for _, t := range rec.Tags {
			q.AddTag(t)
		}
		for _, a := range rec.Answers {
			q.Answers = append(q.Answers, bank.Answer{
				ID:          a.ID,
				Text:        a.Text,
				Correct:     a.IsCorrect,
				Explanation: a.Explanation,
			})
		}
		if err := repo.Add(q); err != nil {
			return nil, fmt.Errorf("%w: question %s: %v", ErrInvalidBank, rec.ID, err)
		}
	}

	for _, rec := range f.Sessions {
		s := &bank.StudySession{
			ID:          rec.SessionID,
			QuestionIDs: rec.QuestionIDs,
			Results:     make(map[string]bank.Result, len(rec.Results)),
			StartedAt:   rec.StartTime,
			EndedAt:     copyTime(rec.EndTime),
		}
		for qid, raw := range rec.Results {
			res, err := bank.ParseResult(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: session %s: %v", ErrInvalidBank, rec.SessionID, err)
			}
			s.Results[qid] = res
		}
		repo.AppendSession(s)
	}
	return repo, nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
