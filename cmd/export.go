package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/bankfile"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the bank as JSON",
	Long:  "Export writes the full question bank, including scheduling state, to a JSON file. With no argument it writes to stdout.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		state, err := openState(cmd)
		if err != nil {
			return err
		}
		defer state.Close()

		now := time.Now()
		if len(args) == 0 {
			return bankfile.Export(os.Stdout, state.repo, state.cfg.BankName, now)
		}
		if err := bankfile.ExportFile(args[0], state.repo, state.cfg.BankName, now); err != nil {
			return err
		}
		fmt.Printf("Exported %d question(s) to %s\n", state.repo.Len(), args[0])
		return nil
	},
}
