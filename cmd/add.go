package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bank"
)

var (
	addCorrect   string
	addWrong     []string
	addTags      []string
	addObjective string
)

var addCmd = &cobra.Command{
	Use:   "add <question text>",
	Short: "Add a question to the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		now := time.Now()
		q, err := bank.NewQuestion(bank.NewQuestionInput{
			Text:      args[0],
			Correct:   addCorrect,
			Wrong:     addWrong,
			Tags:      addTags,
			Objective: addObjective,
		}, now)
		if err != nil {
			return err
		}
		if err := state.repo.Add(q); err != nil {
			return err
		}
		if err := state.save(cmd.Context(), now); err != nil {
			return err
		}

		fmt.Println(correctStyle.Render("Added"), shortID(q.ID), q.Text)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addCorrect, "correct", "c", "", "The correct answer (required)")
	addCmd.Flags().StringSliceVarP(&addWrong, "wrong", "w", nil, "A wrong answer (repeatable, at least one required)")
	addCmd.Flags().StringSliceVarP(&addTags, "tag", "t", nil, "Tag for the question (repeatable)")
	addCmd.Flags().StringVarP(&addObjective, "objective", "o", "", "What the question is testing for")
	addCmd.MarkFlagRequired("correct")
	addCmd.MarkFlagRequired("wrong")
}
