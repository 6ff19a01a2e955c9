package study

import (
	"github.com/haxx0rman/qBank/internal/srs"
)

// recentSessionWindow is how many trailing sessions feed the recent
// accuracy figure.
const recentSessionWindow = 10

// UserStats summarizes a user's standing against the bank.
type UserStats struct {
	Rating            float64
	Level             string
	TotalSessions     int
	RecentAccuracy    float64 // percent, over the last few sessions
	QuestionsStudied  int     // questions selected across those sessions
	QuestionsDue      int
	TotalQuestions    int
	SuggestedQuestion int // suggested session size for a 30 minute sitting
}

// UserStats computes the current user's statistics from the repository's
// session history and due queue.
func (c *Controller) UserStats() UserStats {
	st := UserStats{
		Rating:         c.ratings.Rating(c.userID),
		Level:          c.ratings.Level(c.userID),
		TotalQuestions: c.repo.Len(),
	}

	sessions := c.repo.Sessions()
	st.TotalSessions = len(sessions)
	recent := sessions
	if len(recent) > recentSessionWindow {
		recent = recent[len(recent)-recentSessionWindow:]
	}
	if len(recent) > 0 {
		var accSum float64
		for _, s := range recent {
			accSum += s.Accuracy()
			st.QuestionsStudied += len(s.QuestionIDs)
		}
		st.RecentAccuracy = accSum / float64(len(recent))
	}

	due := c.sched.SelectDue(c.repo.All(), c.now())
	st.QuestionsDue = len(due)
	st.SuggestedQuestion = srs.SuggestSessionSize(len(due), 30, 0)
	return st
}

// Forecast projects the review load over the coming days.
func (c *Controller) Forecast(days int) []srs.ForecastDay {
	return c.sched.Forecast(c.repo.All(), days, c.now())
}
