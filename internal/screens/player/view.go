package player

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/Rakshit-11/CareerFinder/internal/ui/components"
	"github.com/Rakshit-11/CareerFinder/internal/ui/theme"
)

func (s *PlayerScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.run == nil {
		return renderLoading(width, "Preparing your simulation...")
	}
	if s.showingQuitConfirm {
		return renderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	if s.phase == phaseBriefing {
		return s.renderBriefing(width)
	}
	return s.renderActive(width)
}

// renderBriefing shows the scenario before the first question.
func (s *PlayerScreen) renderBriefing(width int) string {
	sim := s.run.Simulation
	var b strings.Builder
	b.WriteString("\n")

	title := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("%s · %s · ~%d min", sim.SubField, sim.Difficulty, sim.EstimatedMins))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, title))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Render(sim.Briefing)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body))
	b.WriteString("\n\n")

	if len(sim.Instructions) > 0 {
		var inst strings.Builder
		for i, line := range sim.Instructions {
			inst.WriteString(fmt.Sprintf("%d. %s", i+1, line))
			if i < len(sim.Instructions)-1 {
				inst.WriteString("\n")
			}
		}
		instBlock := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.TextDim).
			Render(inst.String())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, instBlock))
		b.WriteString("\n\n")
	}

	if sim.Artifact != nil {
		note := lipgloss.NewStyle().
			Foreground(theme.Accent).
			Render(fmt.Sprintf("Work file: %s (careerfinder sims export %s)", sim.Artifact.Filename, sim.ID))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, note))
		b.WriteString("\n\n")
	}

	if s.run.DurableAttempts > 0 {
		prev := lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Previous attempts: %d", s.run.DurableAttempts))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prev))
		b.WriteString("\n\n")
	}

	start := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("Press Enter to start")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, start))

	return b.String()
}

// renderActive shows the question list, current prompt, hints, and input.
func (s *PlayerScreen) renderActive(width int) string {
	sim := s.run.Simulation
	var b strings.Builder

	// Progress line: score, streak, answered count.
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Score: %d", s.run.Score))

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Streak %d  ✔ %d/%d", s.run.Streak.Current(), s.run.CorrectCount(), len(sim.Questions)))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	done := 0.0
	if len(sim.Questions) > 0 {
		done = float64(s.run.CorrectCount()) / float64(len(sim.Questions))
	}
	bar := components.NewProgressBar("", done, false, min(width-8, 44))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	// Question tabs.
	var tabs []string
	for i, q := range sim.Questions {
		qs := s.run.Question(q.ID)
		label := fmt.Sprintf("Q%d", i+1)
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case qs != nil && qs.Correct:
			label = "✔" + label
			style = style.Foreground(theme.Success)
		case qs != nil && qs.Attempts > 0:
			label = "✗" + label
			style = style.Foreground(theme.Error)
		}
		if i == s.selected {
			style = style.Bold(true).Underline(true)
		}
		tabs = append(tabs, style.Render(label))
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "   ")))
	b.WriteString("\n\n")

	q := s.currentQuestion()
	if q == nil {
		return b.String()
	}
	qs := s.run.Question(q.ID)

	prompt := lipgloss.NewStyle().
		Width(min(width-8, 72)).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, prompt))
	b.WriteString("\n\n")

	// Revealed hints.
	if qs != nil && qs.HintsRevealed > 0 {
		var hb strings.Builder
		for i := 0; i < qs.HintsRevealed && i < len(q.Hints); i++ {
			hb.WriteString(fmt.Sprintf("Hint %d: %s", i+1, q.Hints[i]))
			if i < qs.HintsRevealed-1 {
				hb.WriteString("\n")
			}
		}
		hints := lipgloss.NewStyle().
			Width(min(width-8, 72)).
			Foreground(theme.Accent).
			Render(hb.String())
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, hints))
		b.WriteString("\n\n")
	}

	// Answer area.
	switch {
	case s.grading:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Grading..."))
	case qs != nil && qs.Correct:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Render(fmt.Sprintf("Answered: %s ✓", qs.Answer)))
	default:
		answerLine := lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Render("Answer: " + s.input.View())
		b.WriteString(answerLine)
	}
	b.WriteString("\n")

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.notice))
	}

	return b.String()
}

// renderFeedback shows the grading verdict overlay.
func (s *PlayerScreen) renderFeedback(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	if s.lastResult != nil {
		res := s.lastResult
		if res.Correct {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Success).
				Bold(true).
				Render(fmt.Sprintf("Correct!  +%d points", res.ScoreDelta)))
		} else {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Error).
				Bold(true).
				Render("Not quite"))
		}
		b.WriteString("\n\n")

		if res.Feedback != "" {
			fb := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(res.Feedback)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
			b.WriteString("\n\n")
		}

		switch res.Milestone {
		case 3:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.ArcadeYellow).
				Bold(true).
				Render("🔥 3 in a row! You're on a streak!"))
			b.WriteString("\n\n")
		case 5:
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.ArcadeYellow).
				Bold(true).
				Render("⚡ 5 in a row! Unstoppable!"))
			b.WriteString("\n\n")
		}

		if res.ReadyToFinalize {
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Foreground(theme.Secondary).
				Render("All questions solved. Wrapping up..."))
			b.WriteString("\n\n")
		}
	}

	if s.lastBatch != nil {
		res := s.lastBatch
		correct := 0
		for _, qr := range res.PerQuestion {
			if qr.Correct {
				correct++
			}
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Bold(true).
			Render(fmt.Sprintf("%d of %d correct", correct, len(res.PerQuestion))))
		b.WriteString("\n\n")

		if res.Feedback != "" {
			fb := lipgloss.NewStyle().
				Width(min(width-8, 70)).
				Foreground(theme.Text).
				Render(res.Feedback)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, fb))
			b.WriteString("\n\n")
		}
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Leave this simulation?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Run progress is discarded. Your attempt count is kept."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, leave"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func renderLoading(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  " + text)
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
