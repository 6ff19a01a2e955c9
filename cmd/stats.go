package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/study"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show bank and user statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		ctrl := study.NewController(state.repo, state.tracker, state.sched, study.Config{
			UserID:            state.cfg.User,
			TargetSuccessRate: state.cfg.TargetSuccessRate,
		})
		user := ctrl.UserStats()

		fmt.Println(titleStyle.Render("You"))
		fmt.Printf("  Rating: %.1f (%s)\n", user.Rating, user.Level)
		fmt.Printf("  Sessions: %d  Recent accuracy: %.1f%%  Questions studied: %d\n",
			user.TotalSessions, user.RecentAccuracy, user.QuestionsStudied)
		fmt.Printf("  Due now: %d of %d, suggested session: %d question(s)\n",
			user.QuestionsDue, user.TotalQuestions, user.SuggestedQuestion)

		bankStats := state.repo.Stats(time.Now())
		fmt.Println(titleStyle.Render("Bank"))
		fmt.Printf("  Questions: %d  Average accuracy: %.1f%%\n",
			bankStats.TotalQuestions, bankStats.AverageAccuracy)
		if len(bankStats.TagCounts) > 0 {
			fmt.Print("  Tags:")
			for _, tag := range state.repo.Tags() {
				fmt.Printf(" %s(%d)", tag, bankStats.TagCounts[tag])
			}
			fmt.Println()
		}
		if len(bankStats.Hardest) > 0 {
			fmt.Println(titleStyle.Render("Hardest questions"))
			for _, q := range bankStats.Hardest {
				fmt.Printf("  %s  %-40.40s  %.0f%% correct\n",
					dimStyle.Render(shortID(q.ID)), q.Text, q.Accuracy())
			}
		}

		history, err := state.st.RecentSessions(cmd.Context(), recentHistoryLimit)
		if err != nil {
			return err
		}
		if len(history) > 0 {
			fmt.Println(titleStyle.Render("Recent sessions"))
			for _, s := range history {
				fmt.Printf("  %s  %2d questions  %5.1f%%  %s\n",
					s.StartedAt.Format("2006-01-02 15:04"), s.Questions, s.Accuracy,
					dimStyle.Render(shortID(s.SessionID)))
			}
		}
		return nil
	},
}

const recentHistoryLimit = 10
