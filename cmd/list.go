package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bank"
)

var (
	listTag     string
	listHardest bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions in the bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		var questions []*bank.Question
		switch {
		case listHardest:
			questions = state.repo.Stats(time.Now()).Hardest
		case listTag != "":
			questions = state.repo.ByTag(listTag)
		default:
			questions = state.repo.All()
		}

		if len(questions) == 0 {
			fmt.Println("No questions found.")
			return nil
		}
		for _, q := range questions {
			printQuestionLine(q)
		}
		fmt.Println(dimStyle.Render(fmt.Sprintf("%d question(s)", len(questions))))
		return nil
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search questions by text content",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		matches := state.repo.Search(args[0])
		if len(matches) == 0 {
			fmt.Println("No matching questions.")
			return nil
		}
		for _, q := range matches {
			printQuestionLine(q)
		}
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <question id>",
	Short: "Remove a question from the bank",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		if !state.repo.Remove(args[0]) {
			return fmt.Errorf("question %s not found", args[0])
		}
		if err := state.save(cmd.Context(), time.Now()); err != nil {
			return err
		}
		fmt.Println("Deleted", args[0])
		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Only list questions with this tag")
	listCmd.Flags().BoolVar(&listHardest, "hardest", false, "List the hardest answered questions")
}
