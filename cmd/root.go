package cmd

import (
	"github.com/spf13/cobra"

	"github.com/studyplan/qengine/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "qengine",
	Short: "Adaptive practice question generator",
	Long: `qengine builds practice batches for language exams from a template bank and
a vocabulary list, concentrating on the learner's weakest skill areas.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides QENGINE_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./qengine.yaml)")
	rootCmd.PersistentFlags().String("templates", "", "Path to template bank (overrides templates.path)")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(categoryCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(vocabCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then database.path from config, then QENGINE_DB env var, then the default
// XDG path.
func resolveDBPath(cmd *cobra.Command, configured string) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if configured != "" {
		return configured, store.EnsureDir(configured)
	}
	return store.DefaultDBPath()
}
