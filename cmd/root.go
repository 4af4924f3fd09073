package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "repaso",
	Short: "Spaced-repetition trainer for the CCSE exam",
	Long: `repaso drills the CCSE citizenship-exam question bank. It schedules each
question with FSRS, builds study sessions from due, weak and new questions,
and runs timed 25-question practice exams (simulacros).`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (overrides REPASO_CONFIG)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides REPASO_DB env var)")
	rootCmd.PersistentFlags().String("dataset", "", "Path to the question bank JSON (overrides REPASO_DATASET)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(studyCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(examCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(weakCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
