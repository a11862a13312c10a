package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Rakshit-11/CareerFinder/internal/llm"
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/spf13/cobra"
)

var graderCmd = &cobra.Command{
	Use:   "grader",
	Short: "Inspect grader request/response events",
}

// gradingEvents loads grading request events, newest first.
func gradingEvents(cmd *cobra.Command, limit int) ([]store.Event, *store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve database path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	events, err := st.EventRepo().Recent(context.Background(),
		[]string{store.EventGradingRequest}, limit)
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("query events: %w", err)
	}
	return events, st, nil
}

var graderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent grader calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		events, st, err := gradingEvents(cmd, limit)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(events) == 0 {
			fmt.Println("No grader events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-12s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"Seq", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 100))

		for _, e := range events {
			var d store.GradingRequestEventData
			if err := json.Unmarshal(e.Data, &d); err != nil {
				continue
			}
			ok := "✓"
			if !d.Success {
				ok = "✗"
			}
			model := d.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-12s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.Sequence,
				e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				d.Purpose,
				model,
				d.InputTokens,
				d.OutputTokens,
				d.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var graderViewCmd = &cobra.Command{
	Use:   "view <seq>",
	Short: "View full request/response for a grader call",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seq, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid sequence %q: %w", args[0], err)
		}

		events, st, err := gradingEvents(cmd, 0)
		if err != nil {
			return err
		}
		defer st.Close()

		for _, e := range events {
			if e.Sequence != seq {
				continue
			}
			var d store.GradingRequestEventData
			if err := json.Unmarshal(e.Data, &d); err != nil {
				return fmt.Errorf("decode event %d: %w", seq, err)
			}

			sep := strings.Repeat("─", 60)

			fmt.Printf("Seq:       %d\n", e.Sequence)
			fmt.Printf("Time:      %s\n", e.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("Provider:  %s\n", d.Provider)
			fmt.Printf("Model:     %s\n", d.Model)
			fmt.Printf("Purpose:   %s\n", d.Purpose)
			fmt.Printf("Tokens:    %d in / %d out\n", d.InputTokens, d.OutputTokens)
			fmt.Printf("Latency:   %dms\n", d.LatencyMs)
			fmt.Printf("Success:   %v\n", d.Success)
			if d.ErrorMessage != "" {
				fmt.Printf("Error:     %s\n", d.ErrorMessage)
			}

			fmt.Println()
			fmt.Println(sep)
			fmt.Println("REQUEST")
			fmt.Println(sep)
			if d.RequestBody != "" {
				fmt.Println(d.RequestBody)
			} else {
				fmt.Println("(not captured)")
			}

			fmt.Println(sep)
			fmt.Println("RESPONSE")
			fmt.Println(sep)
			if d.ResponseBody != "" {
				fmt.Println(d.ResponseBody)
			} else {
				fmt.Println("(not captured)")
			}
			return nil
		}

		return fmt.Errorf("event %d not found", seq)
	},
}

var graderStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated grader token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		events, st, err := gradingEvents(cmd, 0)
		if err != nil {
			return err
		}
		defer st.Close()

		if len(events) == 0 {
			fmt.Println("No grader usage recorded yet.")
			return nil
		}

		type usage struct {
			calls   int
			in, out int
		}
		byModel := make(map[string]*usage)
		var order []string

		for _, e := range events {
			var d store.GradingRequestEventData
			if err := json.Unmarshal(e.Data, &d); err != nil {
				continue
			}
			u, ok := byModel[d.Model]
			if !ok {
				u = &usage{}
				byModel[d.Model] = u
				order = append(order, d.Model)
			}
			u.calls++
			u.in += d.InputTokens
			u.out += d.OutputTokens
		}

		fmt.Println("Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 72))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 72))

		var totalCost float64
		var unknownModels []string
		for _, model := range order {
			u := byModel[model]
			cost := llm.LookupCost(model)
			if cost == nil {
				unknownModels = append(unknownModels, model)
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					truncate(model, 32), u.calls, u.in, u.out, "?")
				continue
			}
			c := cost.Cost(u.in, u.out)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %9s\n",
				truncate(model, 32), u.calls, u.in, u.out, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 72))
		label := "TOTAL"
		if len(unknownModels) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Printf("%-32s  %6s  %10s  %10s  %9s\n", label, "", "", "", formatCost(totalCost))

		if len(unknownModels) > 0 {
			fmt.Printf("\nPricing unavailable for: %s\n", strings.Join(unknownModels, ", "))
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

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	graderListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")

	graderCmd.AddCommand(graderListCmd)
	graderCmd.AddCommand(graderViewCmd)
	graderCmd.AddCommand(graderStatsCmd)
}
