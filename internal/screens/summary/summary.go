// Package summary shows the results screen after a simulation is
// finalized.
package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rakshit-11/CareerFinder/internal/attempt"
	"github.com/Rakshit-11/CareerFinder/internal/router"
	"github.com/Rakshit-11/CareerFinder/internal/screen"
	"github.com/Rakshit-11/CareerFinder/internal/ui/layout"
	"github.com/Rakshit-11/CareerFinder/internal/ui/theme"
)

// SummaryScreen displays the finalized run results.
type SummaryScreen struct {
	outcome *attempt.FinalizeOutcome
	run     *attempt.Run
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(outcome *attempt.FinalizeOutcome, run *attempt.Run) *SummaryScreen {
	return &SummaryScreen{outcome: outcome, run: run}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	if s.outcome == nil || s.run == nil {
		return ""
	}
	sim := s.run.Simulation

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Simulation complete!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(sim.Title))
	b.WriteString("\n\n")

	scoreLine := fmt.Sprintf("Score: %d        Attempt: %d", s.outcome.Score, s.run.DurableAttempts)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(scoreLine))
	b.WriteString("\n\n")

	if s.outcome.Summary != "" {
		fb := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(s.outcome.Summary)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
		b.WriteString("\n\n")
	}

	// Per-question breakdown.
	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Questions")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for i, q := range sim.Questions {
		qs := s.run.Question(q.ID)
		if qs == nil {
			continue
		}
		attemptStr := fmt.Sprintf("%d tries", qs.Attempts)
		if qs.Attempts == 1 {
			attemptStr = "1 try"
		}
		hintStr := ""
		if qs.HintsRevealed > 0 {
			hintStr = fmt.Sprintf("   %d hints", qs.HintsRevealed)
			if qs.HintsRevealed == 1 {
				hintStr = "   1 hint"
			}
		}
		line := fmt.Sprintf("  Q%d  %s    %s%s", i+1, qs.Answer, attemptStr, hintStr)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Success).Render(line)))
		b.WriteString("\n")
	}

	// Badge section.
	if s.outcome.BadgeAward != nil {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badge")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		line := fmt.Sprintf("  ⬡ %s — %s", s.outcome.BadgeAward.Badge, s.outcome.BadgeAward.Reason)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(line)))
		b.WriteString("\n")
	}

	// Career totals from the refreshed profile.
	if p := s.outcome.Profile; p != nil {
		b.WriteString("\n")
		totals := fmt.Sprintf("Total score: %d   Badges: %d   Simulations done: %d",
			p.TotalScore, len(p.SkillBadges), len(p.CompletedSimulations))
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render(totals))
		b.WriteString("\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
