package cmd

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bank"
	"github.com/haxx0rman/qBank/internal/store"
	"github.com/haxx0rman/qBank/internal/study"
)

var (
	studyMax       int
	studyTags      []string
	studyMinRating float64
	studyMaxRating float64
	studySeed      int64
)

var studyCmd = &cobra.Command{
	Use:   "study",
	Short: "Start an interactive study session",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		seed := studySeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		ctrl := study.NewController(state.repo, state.tracker, state.sched, study.Config{
			UserID:            state.cfg.User,
			TargetSuccessRate: state.cfg.TargetSuccessRate,
			Rand:              rng,
		})

		opts := study.StartOptions{
			MaxQuestions: studyMax,
			Tags:         studyTags,
		}
		if studyMinRating > 0 || studyMaxRating > 0 {
			max := studyMaxRating
			if max == 0 {
				max = 4000
			}
			opts.Rating = &study.RatingRange{Min: studyMinRating, Max: max}
		}
		if opts.MaxQuestions == 0 {
			opts.MaxQuestions = state.cfg.Session.MaxQuestions
		}

		questions, err := ctrl.Start(opts)
		if err != nil {
			return err
		}
		if len(questions) == 0 {
			_, _ = ctrl.End()
			fmt.Println("No questions due. Come back later!")
			return nil
		}

		fmt.Println(titleStyle.Render(fmt.Sprintf("Study session: %d question(s)", len(questions))))
		reader := bufio.NewReader(os.Stdin)

		for i, q := range questions {
			fmt.Printf("\n[%d/%d] %s\n", i+1, len(questions), labelStyle.Render(q.Text))

			// Shuffle the display order so the correct answer doesn't sit
			// in a predictable slot.
			display := make([]bank.Answer, len(q.Answers))
			copy(display, q.Answers)
			rng.Shuffle(len(display), func(a, b int) {
				display[a], display[b] = display[b], display[a]
			})
			for n, a := range display {
				fmt.Printf("  %d) %s\n", n+1, a.Text)
			}

			fmt.Print("Answer (number, s=skip, q=quit): ")
			started := time.Now()
			input, _ := reader.ReadString('\n')
			input = strings.TrimSpace(input)

			if input == "q" {
				break
			}
			if input == "s" {
				if err := ctrl.Skip(q.ID); err != nil {
					return err
				}
				recordAnswerEvent(cmd, state, ctrl.Session().ID, q.ID, string(bank.ResultSkipped), 0, 0, 0)
				fmt.Println(dimStyle.Render("Skipped."))
				continue
			}

			choice, err := strconv.Atoi(input)
			if err != nil || choice < 1 || choice > len(display) {
				fmt.Println(dimStyle.Render("Invalid input, question skipped."))
				if err := ctrl.Skip(q.ID); err != nil {
					return err
				}
				continue
			}

			elapsed := time.Since(started).Seconds()
			outcome, err := ctrl.Answer(q.ID, display[choice-1].ID, elapsed)
			if err != nil {
				return err
			}

			if outcome.Correct {
				fmt.Println(correctStyle.Render("Correct!"))
			} else {
				fmt.Println(wrongStyle.Render("Wrong."), "Correct answer:", outcome.CorrectAnswer.Text)
			}
			if outcome.Explanation != "" {
				fmt.Println(dimStyle.Render("  " + outcome.Explanation))
			}
			fmt.Printf("  Your rating: %.1f  Question: %.1f  Next review: %s\n",
				outcome.UserRating, outcome.QuestionRating,
				outcome.NextReview.Format("2006-01-02"))

			res := bank.ResultIncorrect
			if outcome.Correct {
				res = bank.ResultCorrect
			}
			recordAnswerEvent(cmd, state, ctrl.Session().ID, q.ID, string(res),
				elapsed, outcome.UserRating, outcome.QuestionRating)
		}

		sess, err := ctrl.End()
		if err != nil {
			return err
		}

		fmt.Println()
		fmt.Println(titleStyle.Render("Session complete"))
		fmt.Printf("  Correct: %d  Incorrect: %d  Skipped: %d\n",
			sess.CorrectCount(), sess.IncorrectCount(), sess.SkippedCount())
		fmt.Printf("  Accuracy: %.1f%%  Duration: %s\n", sess.Accuracy(), sess.Duration().Round(time.Second))

		now := time.Now()
		if err := state.st.AppendSessionEvent(cmd.Context(), store.SessionEventData{
			SessionID: sess.ID,
			Questions: len(sess.QuestionIDs),
			Correct:   sess.CorrectCount(),
			Incorrect: sess.IncorrectCount(),
			Skipped:   sess.SkippedCount(),
			Accuracy:  sess.Accuracy(),
			StartedAt: sess.StartedAt,
			EndedAt:   *sess.EndedAt,
		}); err != nil {
			return err
		}
		return state.save(cmd.Context(), now)
	},
}

func recordAnswerEvent(cmd *cobra.Command, state *appState, sessionID, questionID, result string, secs, userRating, questionRating float64) {
	// Event logging is best-effort; a failed insert shouldn't abort the session.
	_ = state.st.AppendAnswerEvent(cmd.Context(), store.AnswerEventData{
		SessionID:      sessionID,
		QuestionID:     questionID,
		Result:         result,
		ResponseSecs:   secs,
		UserRating:     userRating,
		QuestionRating: questionRating,
	}, time.Now())
}

func init() {
	studyCmd.Flags().IntVarP(&studyMax, "max", "m", 0, "Maximum questions in the session (0 = config default)")
	studyCmd.Flags().StringSliceVarP(&studyTags, "tag", "t", nil, "Only study questions with these tags")
	studyCmd.Flags().Float64Var(&studyMinRating, "min-rating", 0, "Minimum question rating")
	studyCmd.Flags().Float64Var(&studyMaxRating, "max-rating", 0, "Maximum question rating")
	studyCmd.Flags().Int64Var(&studySeed, "seed", 0, "Random seed for question and answer order (0 = random)")
}
