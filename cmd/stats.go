package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show career progress: score, badges, completions, attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		profile, err := st.ProfileRepo().Get(ctx, defaultUserID)
		if err != nil {
			return fmt.Errorf("load profile: %w", err)
		}
		counts, err := st.AttemptRepo().ForUser(ctx, defaultUserID)
		if err != nil {
			return fmt.Errorf("load attempts: %w", err)
		}
		attempts := make(map[string]int, len(counts))
		for _, c := range counts {
			attempts[c.SimulationID] = c.Count
		}

		fmt.Printf("Total score:  %d\n", profile.TotalScore)
		fmt.Printf("Badges:       %d of %d\n", len(profile.SkillBadges), len(catalog.All()))
		fmt.Printf("Completed:    %d of %d simulations\n\n", len(profile.CompletedSimulations), len(catalog.All()))

		fmt.Printf("%-34s  %-8s  %8s  %6s\n", "Simulation", "Status", "Attempts", "Score")
		fmt.Println(strings.Repeat("─", 64))

		for _, sim := range catalog.All() {
			status := "-"
			score := ""
			for _, c := range profile.CompletedSimulations {
				if c.SimulationID == sim.ID {
					status = "done"
					score = fmt.Sprintf("%d", c.Score)
					break
				}
			}
			if status == "-" && attempts[sim.ID] > 0 {
				status = "tried"
			}
			title := sim.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}
			fmt.Printf("%-34s  %-8s  %8d  %6s\n", title, status, attempts[sim.ID], score)
		}

		if len(profile.SkillBadges) > 0 {
			fmt.Println("\nBadges")
			fmt.Println(strings.Repeat("─", 64))
			for _, b := range profile.SkillBadges {
				fmt.Printf("  %-32s  %s\n", b.Name, b.EarnedAt.Local().Format("2006-01-02"))
			}
		}

		return nil
	},
}
