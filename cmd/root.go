package cmd

import (
	"fmt"
	"os"

	"finmentor/internal/content"
	"finmentor/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "finmentor",
	Short: "Financial literacy mentor in your terminal",
	Long:  "FinMentor — a chat mentor that teaches personal finance basics through short scripted lessons.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides FINMENTOR_DB env var)")
	rootCmd.PersistentFlags().String("learner", "", "Learner profile name (overrides FINMENTOR_LEARNER env var)")
	rootCmd.PersistentFlags().String("lessons", "", "Path to a JSON lesson bundle (overrides FINMENTOR_LESSONS env var; default: built-in curriculum)")

	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then FINMENTOR_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// loadRegistry builds the lesson catalog: a bundle file named by --lessons or
// FINMENTOR_LESSONS when given, otherwise the built-in curriculum.
func loadRegistry(cmd *cobra.Command) (*content.Registry, error) {
	path, _ := cmd.Flags().GetString("lessons")
	if path == "" {
		path = os.Getenv("FINMENTOR_LESSONS")
	}
	if path == "" {
		return content.NewRegistry(content.SeedLessons())
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lesson bundle: %w", err)
	}
	lessons, err := content.LoadBundle(data)
	if err != nil {
		return nil, fmt.Errorf("lesson bundle %s: %w", path, err)
	}
	return content.NewRegistry(lessons)
}

// resolveLearner returns the learner profile: --learner flag, then the
// FINMENTOR_LEARNER env var, then "default". Progress and saved attempts are
// kept per profile.
func resolveLearner(cmd *cobra.Command) string {
	if l, _ := cmd.Flags().GetString("learner"); l != "" {
		return l
	}
	if l := os.Getenv("FINMENTOR_LEARNER"); l != "" {
		return l
	}
	return "default"
}
