package cmd

import (
	"fmt"
	"os"

	"github.com/Rakshit-11/CareerFinder/internal/app"
	"github.com/Rakshit-11/CareerFinder/internal/attempt"
	"github.com/Rakshit-11/CareerFinder/internal/badges"
	"github.com/Rakshit-11/CareerFinder/internal/grader"
	"github.com/Rakshit-11/CareerFinder/internal/llm"
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/spf13/cobra"
)

// defaultUserID identifies the single local profile.
const defaultUserID = "local"

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
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
		Store:  st,
		UserID: defaultUserID,
	}

	// Explicit CAREERFINDER_* settings win over discovered API keys.
	var g grader.Grader
	cfg := llm.ConfigFromEnv()
	if os.Getenv("CAREERFINDER_LLM_PROVIDER") == "" {
		if discovered, found := llm.DiscoverConfig(); found {
			cfg = discovered
		}
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Grading will run locally without coaching feedback.")
		g = grader.NewRuleGrader()
		opts.GraderLocal = true
	} else {
		provider, perr := llm.NewProvider(ctx, cfg, st.EventRepo())
		if perr != nil {
			fmt.Fprintln(os.Stderr, "LLM provider setup failed:", perr)
			fmt.Fprintln(os.Stderr, "Grading will run locally without coaching feedback.")
			g = grader.NewRuleGrader()
			opts.GraderLocal = true
		} else {
			g = grader.NewLLMGrader(provider, grader.DefaultLLMGraderConfig())
		}
	}

	issuer := badges.NewIssuer(st.ProfileRepo(), st.EventRepo())
	opts.Engine = attempt.NewEngine(g, st.ProfileRepo(), st.AttemptRepo(), st.EventRepo(), issuer)

	return app.Run(opts)
}
