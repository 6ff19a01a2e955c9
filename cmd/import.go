package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bankfile"
)

var importMerge bool

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a bank from JSON",
	Long: "Import reads a previously exported JSON bank. By default it replaces the " +
		"current bank; with --merge, imported questions are added alongside existing " +
		"ones and duplicates are skipped.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		imported, err := bankfile.ImportFile(args[0])
		if err != nil {
			return err
		}

		added := imported.Len()
		if importMerge {
			added = 0
			for _, q := range imported.All() {
				if err := state.repo.Add(q); err == nil {
					added++
				}
			}
			for _, s := range imported.Sessions() {
				state.repo.AppendSession(s)
			}
		} else {
			state.repo = imported
		}

		if err := state.save(cmd.Context(), time.Now()); err != nil {
			return err
		}
		fmt.Printf("Imported %d question(s) from %s\n", added, args[0])
		return nil
	},
}

func init() {
	importCmd.Flags().BoolVar(&importMerge, "merge", false, "Merge into the existing bank instead of replacing it")
}
