package cmd

import (
	"fmt"
	"strings"

	"finmentor/internal/store"
	"github.com/spf13/cobra"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons",
	Short: "List lessons and your progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := loadRegistry(cmd)
		if err != nil {
			return fmt.Errorf("load lesson catalog: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		learner := resolveLearner(cmd)
		recs, err := st.Progress().List(cmd.Context(), learner)
		if err != nil {
			return fmt.Errorf("query progress: %w", err)
		}
		byLesson := make(map[string]store.Progress, len(recs))
		for _, p := range recs {
			byLesson[p.LessonID] = p
		}

		fmt.Printf("%-24s  %-34s  %-6s  %-8s  %s\n",
			"ID", "Title", "Topics", "Best", "Attempts")
		fmt.Println(strings.Repeat("─", 84))

		for _, l := range registry.All() {
			best := "-"
			attempts := "-"
			if p, ok := byLesson[l.ID]; ok {
				best = fmt.Sprintf("%d%%", p.Percent())
				attempts = fmt.Sprintf("%d", p.Attempts)
			}
			fmt.Printf("%-24s  %-34s  %-6d  %-8s  %s\n",
				l.ID, truncate(l.Title, 34), len(l.Topics), best, attempts)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
