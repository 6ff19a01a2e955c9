package study

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/rating"
	"github.com/haxx0rman/qBank/internal/srs"
)

// Config wires a Controller's collaborators and defaults. Zero fields are
// replaced by sensible defaults in NewController.
type Config struct {
	// UserID identifies whose rating the controller updates.
	UserID string

	// TargetSuccessRate steers question selection toward this predicted
	// success probability.
	TargetSuccessRate float64

	// Now supplies the current time. Defaults to time.Now. Injected so the
	// session lifecycle is testable against a fixed clock.
	Now func() time.Time

	// Rand drives the presentation shuffle. Seed it for deterministic
	// selection tests.
	Rand *rand.Rand
}

// DefaultUserID is used when no user id is configured.
const DefaultUserID = "default_user"

// Controller runs one study session at a time: it selects due questions,
// applies rating and scheduling updates per answer, and seals finished
// sessions into the repository's history.
type Controller struct {
	repo    *bank.Repository
	ratings *rating.Tracker
	sched   *srs.Scheduler

	userID     string
	targetRate float64
	now        func() time.Time
	rng        *rand.Rand

	current *bank.StudySession
}

// NewController creates a Controller over the given repository, rating
// tracker, and scheduler.
func NewController(repo *bank.Repository, ratings *rating.Tracker, sched *srs.Scheduler, cfg Config) *Controller {
	if cfg.UserID == "" {
		cfg.UserID = DefaultUserID
	}
	if cfg.TargetSuccessRate <= 0 {
		cfg.TargetSuccessRate = rating.DefaultTargetSuccessRate
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Rand == nil {
		cfg.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{
		repo:       repo,
		ratings:    ratings,
		sched:      sched,
		userID:     cfg.UserID,
		targetRate: cfg.TargetSuccessRate,
		now:        cfg.Now,
		rng:        cfg.Rand,
	}
}

// RatingRange is an inclusive question-rating filter.
type RatingRange struct {
	Min float64
	Max float64
}

// StartOptions filter and cap the questions selected for a session.
type StartOptions struct {
	// MaxQuestions caps the session size. 0 means no cap.
	MaxQuestions int

	// Tags keeps only questions sharing at least one of these tags.
	Tags []string

	// Rating keeps only questions whose rating falls in the range.
	Rating *RatingRange
}

// Active reports whether a session is in progress.
func (c *Controller) Active() bool {
	return c.current != nil
}

// Session returns the open session, or nil.
func (c *Controller) Session() *bank.StudySession {
	return c.current
}

// UserID returns the user this controller tracks.
func (c *Controller) UserID() string {
	return c.userID
}

// Start opens a new session. Due questions are filtered by tags and rating
// range, ranked by fit to the user's skill, capped, and shuffled for
// presentation. Fails with ErrSessionActive if a session is already open.
func (c *Controller) Start(opts StartOptions) ([]*bank.Question, error) {
	if c.current != nil {
		return nil, ErrSessionActive
	}

	now := c.now()
	candidates := c.sched.SelectDue(c.repo.All(), now)

	if len(opts.Tags) > 0 {
		var filtered []*bank.Question
		for _, q := range candidates {
			for _, t := range opts.Tags {
				if q.HasTag(t) {
					filtered = append(filtered, q)
					break
				}
			}
		}
		candidates = filtered
	}

	if opts.Rating != nil {
		var filtered []*bank.Question
		for _, q := range candidates {
			if q.Rating >= opts.Rating.Min && q.Rating <= opts.Rating.Max {
				filtered = append(filtered, q)
			}
		}
		candidates = filtered
	}

	selected := c.ratings.RankByFit(c.userID, candidates, c.targetRate)
	if opts.MaxQuestions > 0 && len(selected) > opts.MaxQuestions {
		selected = selected[:opts.MaxQuestions]
	}

	c.rng.Shuffle(len(selected), func(i, j int) {
		selected[i], selected[j] = selected[j], selected[i]
	})

	ids := make([]string, len(selected))
	for i, q := range selected {
		ids[i] = q.ID
	}
	c.current = bank.NewStudySession(ids, now)

	return selected, nil
}

// Outcome reports the effect of one submitted answer.
type Outcome struct {
	Correct          bool
	CorrectAnswer    bank.Answer
	SelectedAnswer   bank.Answer
	Explanation      string
	UserRating       float64
	QuestionRating   float64
	NextReview       time.Time
	QuestionAccuracy float64
}

// Answer submits an answer for a question in the open session. All
// validation happens before any state changes, so a failed call leaves the
// session and question untouched. responseTimeSecs <= 0 means unmeasured.
func (c *Controller) Answer(questionID, answerID string, responseTimeSecs float64) (*Outcome, error) {
	if c.current == nil {
		return nil, ErrNoSession
	}
	q, ok := c.repo.Question(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}
	selected := q.AnswerByID(answerID)
	if selected == nil {
		return nil, fmt.Errorf("%w: %s on question %s", ErrAnswerNotFound, answerID, questionID)
	}

	result := bank.ResultIncorrect
	if selected.Correct {
		result = bank.ResultCorrect
	}

	q.TimesAnswered++
	if result == bank.ResultCorrect {
		q.TimesCorrect++
	}

	newUserRating, newQuestionRating := c.ratings.ApplyResult(c.userID, q, result)
	nextReview := c.sched.ApplyReview(q, result, responseTimeSecs, c.now())

	c.current.Record(questionID, result)

	return &Outcome{
		Correct:          result == bank.ResultCorrect,
		CorrectAnswer:    *q.CorrectAnswer(),
		SelectedAnswer:   *selected,
		Explanation:      selected.Explanation,
		UserRating:       newUserRating,
		QuestionRating:   newQuestionRating,
		NextReview:       nextReview,
		QuestionAccuracy: q.Accuracy(),
	}, nil
}

// Skip marks a question skipped: its review is rescheduled on the short
// skip interval but ratings and the repetition streak are untouched.
func (c *Controller) Skip(questionID string) error {
	if c.current == nil {
		return ErrNoSession
	}
	q, ok := c.repo.Question(questionID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrQuestionNotFound, questionID)
	}

	c.sched.ApplyReview(q, bank.ResultSkipped, 0, c.now())
	c.current.Record(questionID, bank.ResultSkipped)
	return nil
}

// End seals the open session, appends it to the repository's history, and
// returns it. Ending early is a normal transition; recorded answers stand.
func (c *Controller) End() (*bank.StudySession, error) {
	if c.current == nil {
		return nil, ErrNoSession
	}

	done := c.current
	done.Seal(c.now())
	c.repo.AppendSession(done)
	c.current = nil
	return done, nil
}
