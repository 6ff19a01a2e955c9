package cmd

import (
	"github.com/spf13/cobra"

	"github.com/haxx0rman/qBank/internal/config"
	"github.com/haxx0rman/qBank/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "qbank",
	Short: "Personal question bank with adaptive scheduling",
	Long: "qBank is a study-question repository that rates questions and learners " +
		"with ELO and schedules reviews with spaced repetition.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QBANK_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "User id for ratings and sessions")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dueCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(forecastCmd)
	rootCmd.AddCommand(redistributeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration from defaults, file, env, and flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path, cmd.Flags())
}

// resolveDBPath returns the database path using the config (which already
// folds in the --db flag and QBANK_DB), falling back to the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DB != "" {
		return cfg.DB, store.EnsureDir(cfg.DB)
	}
	return store.DefaultDBPath()
}
