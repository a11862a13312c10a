package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/spf13/cobra"
)

var simsCmd = &cobra.Command{
	Use:   "sims",
	Short: "Browse the simulation catalog",
}

var simsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all simulations (optionally filtered by field)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fieldVal, _ := cmd.Flags().GetString("field")

		var sims []catalog.Simulation
		if fieldVal != "" {
			sims = catalog.ByField(fieldVal)
			if len(sims) == 0 {
				var ids []string
				for _, f := range catalog.Fields() {
					ids = append(ids, f.ID)
				}
				return fmt.Errorf("no simulations for field %q (known fields: %s)",
					fieldVal, strings.Join(ids, ", "))
			}
		} else {
			sims = catalog.All()
		}

		// Header.
		fmt.Printf("%-18s  %-34s  %-22s  %-6s  %4s  %s\n",
			"ID", "Title", "Field", "Level", "Mins", "Badge")
		fmt.Println(strings.Repeat("─", 120))

		for _, s := range sims {
			title := s.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}
			fmt.Printf("%-18s  %-34s  %-22s  %-6s  %4d  %s\n",
				s.ID, title, s.FieldID, s.Difficulty, s.EstimatedMins, s.Badge)
		}

		fmt.Printf("\n%d simulations\n", len(sims))
		return nil
	},
}

var simsExportCmd = &cobra.Command{
	Use:   "export <simulation-id>",
	Short: "Write a simulation's work file to the current directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sim := catalog.ByID(args[0])
		if sim == nil {
			return fmt.Errorf("unknown simulation %q (try: careerfinder sims list)", args[0])
		}
		if sim.Artifact == nil {
			return fmt.Errorf("simulation %q has no work file", sim.ID)
		}

		out, _ := cmd.Flags().GetString("out")
		if out == "" {
			out = sim.Artifact.Filename
		}
		if err := os.WriteFile(out, sim.Artifact.Content(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}

		fmt.Printf("Wrote %s (%d bytes)\n", out, sim.Artifact.Size())
		return nil
	},
}

func init() {
	simsListCmd.Flags().String("field", "", "Filter by career field ID (e.g. cybersecurity)")
	simsExportCmd.Flags().StringP("out", "o", "", "Output path (defaults to the artifact's filename)")

	simsCmd.AddCommand(simsListCmd)
	simsCmd.AddCommand(simsExportCmd)
}
