package cmd

import (
	"fmt"
	"os"

	"finmentor/internal/app"
	"finmentor/internal/llm"
	"finmentor/internal/qa"
	"finmentor/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

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

	opts := app.Options{
		Registry:  registry,
		States:    st.SavedStates(),
		Progress:  st.Progress(),
		LearnerID: resolveLearner(cmd),
		Status:    "scripted mode",
	}

	// Explicit FINMENTOR_* config wins; otherwise probe well-known API key
	// env vars. Lessons run fully scripted without a provider.
	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		var found bool
		if cfg, found = llm.DiscoverConfig(); !found {
			fmt.Fprintln(os.Stderr, "No LLM API key found; free questions get scripted answers.")
			return app.Run(opts)
		}
	}

	provider, err := llm.NewProvider(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Free questions get scripted answers.")
	} else {
		opts.Asker = qa.NewService(provider, 0)
		opts.Status = "AI mentor ready"
	}

	return app.Run(opts)
}
