package cmd

import (
	"fmt"

	"finmentor/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset [lesson-id]",
	Short: "Discard saved lesson attempts",
	Long: `Discard the saved mid-lesson attempt for one lesson, or for every lesson
with --all. Recorded best scores are kept unless --progress is also given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		all, _ := cmd.Flags().GetBool("all")
		alsoProgress, _ := cmd.Flags().GetBool("progress")

		if !all && len(args) == 0 {
			return fmt.Errorf("pass a lesson id or --all")
		}

		registry, err := loadRegistry(cmd)
		if err != nil {
			return fmt.Errorf("load lesson catalog: %w", err)
		}

		var ids []string
		if all {
			for _, l := range registry.All() {
				ids = append(ids, l.ID)
			}
		} else {
			if _, ok := registry.Get(args[0]); !ok {
				return fmt.Errorf("unknown lesson %q (run 'finmentor lessons' for the list)", args[0])
			}
			ids = []string{args[0]}
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

		ctx := cmd.Context()
		learner := resolveLearner(cmd)
		states := st.SavedStates()
		progress := st.Progress()

		for _, id := range ids {
			if err := states.Delete(ctx, learner, id); err != nil {
				return fmt.Errorf("delete attempt for %s: %w", id, err)
			}
			if alsoProgress {
				if err := progress.Delete(ctx, learner, id); err != nil {
					return fmt.Errorf("delete progress for %s: %w", id, err)
				}
			}
		}

		what := "saved attempts"
		if alsoProgress {
			what = "saved attempts and recorded progress"
		}
		fmt.Printf("Cleared %s for %d lesson(s).\n", what, len(ids))
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("all", false, "Reset every lesson")
	resetCmd.Flags().Bool("progress", false, "Also delete recorded best scores")
}
