package bank

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Repository is the owning collection of questions and session history.
// All other components hold question ids and request mutation through the
// entities the repository hands out; the repository itself is not safe for
// concurrent use.
type Repository struct {
	questions map[string]*Question
	order     []string
	sessions  []*StudySession
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{questions: make(map[string]*Question)}
}

// Add inserts a question. Duplicate ids are rejected.
func (r *Repository) Add(q *Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	if _, exists := r.questions[q.ID]; exists {
		return fmt.Errorf("%w: duplicate question id %s", ErrInvalidQuestion, q.ID)
	}
	r.questions[q.ID] = q
	r.order = append(r.order, q.ID)
	return nil
}

// Remove deletes a question by id. Reports whether it existed.
func (r *Repository) Remove(id string) bool {
	if _, exists := r.questions[id]; !exists {
		return false
	}
	delete(r.questions, id)
	for i, qid := range r.order {
		if qid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Question returns the question with the given id.
func (r *Repository) Question(id string) (*Question, bool) {
	q, ok := r.questions[id]
	return q, ok
}

// All returns every question in insertion order.
func (r *Repository) All() []*Question {
	out := make([]*Question, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.questions[id])
	}
	return out
}

// Len returns the number of questions in the repository.
func (r *Repository) Len() int {
	return len(r.questions)
}

// ByTag returns all questions carrying the given tag, in insertion order.
func (r *Repository) ByTag(tag string) []*Question {
	var out []*Question
	for _, id := range r.order {
		if q := r.questions[id]; q.HasTag(tag) {
			out = append(out, q)
		}
	}
	return out
}

// Search returns questions whose text or any answer text contains the
// query, case-insensitively, in insertion order.
func (r *Repository) Search(query string) []*Question {
	needle := strings.ToLower(query)
	var out []*Question
	for _, id := range r.order {
		q := r.questions[id]
		if strings.Contains(strings.ToLower(q.Text), needle) {
			out = append(out, q)
			continue
		}
		for _, a := range q.Answers {
			if strings.Contains(strings.ToLower(a.Text), needle) {
				out = append(out, q)
				break
			}
		}
	}
	return out
}

// Tags returns every distinct tag across all questions, sorted.
func (r *Repository) Tags() []string {
	set := make(map[string]bool)
	for _, q := range r.questions {
		for t := range q.Tags {
			set[t] = true
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// AppendSession adds a sealed session to the history.
func (r *Repository) AppendSession(s *StudySession) {
	r.sessions = append(r.sessions, s)
}

// Sessions returns the session history, oldest first.
func (r *Repository) Sessions() []*StudySession {
	return r.sessions
}

// Stats summarizes the state of the whole bank.
type Stats struct {
	TotalQuestions  int
	TotalSessions   int
	AverageAccuracy float64 // mean accuracy over answered questions, percent
	Hardest         []*Question
	Easiest         []*Question
	TagCounts       map[string]int
	DueNow          int
}

// Stats computes bank-wide statistics. Hardest and Easiest hold up to five
// answered questions ranked by accuracy and rating.
func (r *Repository) Stats(now time.Time) Stats {
	st := Stats{
		TotalQuestions: len(r.questions),
		TotalSessions:  len(r.sessions),
		TagCounts:      make(map[string]int),
	}

	var answered []*Question
	var accSum float64
	for _, id := range r.order {
		q := r.questions[id]
		for t := range q.Tags {
			st.TagCounts[t]++
		}
		if q.NextReview == nil || !q.NextReview.After(now) {
			st.DueNow++
		}
		if q.TimesAnswered > 0 {
			answered = append(answered, q)
			accSum += q.Accuracy()
		}
	}
	if len(answered) > 0 {
		st.AverageAccuracy = accSum / float64(len(answered))
	}

	// Low accuracy plus high rating means hard.
	ranked := make([]*Question, len(answered))
	copy(ranked, answered)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Accuracy() != ranked[j].Accuracy() {
			return ranked[i].Accuracy() < ranked[j].Accuracy()
		}
		return ranked[i].Rating > ranked[j].Rating
	})

	n := len(ranked)
	top := n
	if top > 5 {
		top = 5
	}
	st.Hardest = append(st.Hardest, ranked[:top]...)
	for i := n - 1; i >= n-top; i-- {
		st.Easiest = append(st.Easiest, ranked[i])
	}
	return st
}
