// Package history displays the recent activity feed: submissions,
// streak milestones, and badge awards out of the event log.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/router"
	"github.com/Rakshit-11/CareerFinder/internal/screen"
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/Rakshit-11/CareerFinder/internal/ui/layout"
	"github.com/Rakshit-11/CareerFinder/internal/ui/theme"
)

const historyLimit = 50

type historyLoadedMsg struct {
	Events []store.Event
	Err    error
}

// HistoryScreen displays the recent event feed.
type HistoryScreen struct {
	eventRepo store.EventRepo
	events    []store.Event
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		events, err := s.eventRepo.Recent(context.Background(),
			[]string{store.EventSubmission, store.EventStreak, store.EventBadge},
			historyLimit)
		return historyLoadedMsg{Events: events, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.events = msg.Events
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.events)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.events) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing here yet. Play a simulation!")
	}

	var b strings.Builder
	b.WriteString("\n")

	maxVisible := height - 8
	if maxVisible < 5 {
		maxVisible = 5
	}
	end := len(s.events)
	if end > maxVisible {
		end = maxVisible
	}

	for i := 0; i < end; i++ {
		ev := s.events[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := prefix + ev.CreatedAt.Format("Jan 02 15:04") + "  " + s.describe(ev)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if s.expanded[i] {
			for _, detail := range s.details(ev) {
				b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
					lipgloss.NewStyle().Foreground(theme.TextDim).Render("    "+detail)))
				b.WriteString("\n")
			}
		}
	}

	return b.String()
}

// describe renders the one-line summary for an event row.
func (s *HistoryScreen) describe(ev store.Event) string {
	switch ev.Type {
	case store.EventSubmission:
		var d store.SubmissionEventData
		if err := json.Unmarshal(ev.Data, &d); err != nil {
			return "submission"
		}
		verdict := "✗"
		if d.Correct {
			verdict = "✔"
		}
		mode := ""
		if d.Batch {
			mode = " (batch)"
		}
		return fmt.Sprintf("%s %s%s", verdict, simTitle(d.SimulationID), mode)

	case store.EventStreak:
		var d store.StreakEventData
		if err := json.Unmarshal(ev.Data, &d); err != nil {
			return "streak"
		}
		return fmt.Sprintf("🔥 %d-answer streak in %s", d.Milestone, simTitle(d.SimulationID))

	case store.EventBadge:
		var d store.BadgeEventData
		if err := json.Unmarshal(ev.Data, &d); err != nil {
			return "badge"
		}
		return fmt.Sprintf("⬡ Earned %s", d.Badge)
	}
	return ev.Type
}

// details renders the expanded lines for an event row.
func (s *HistoryScreen) details(ev store.Event) []string {
	switch ev.Type {
	case store.EventSubmission:
		var d store.SubmissionEventData
		if err := json.Unmarshal(ev.Data, &d); err != nil {
			return nil
		}
		lines := []string{
			fmt.Sprintf("attempt %d, %d hints used, %+d points", d.Attempt, d.HintsUsed, d.ScoreDelta),
		}
		if d.QuestionID != "" {
			lines = append(lines, "question "+d.QuestionID)
		}
		return lines

	case store.EventBadge:
		var d store.BadgeEventData
		if err := json.Unmarshal(ev.Data, &d); err != nil {
			return nil
		}
		return []string{"for completing " + simTitle(d.SimulationID)}
	}
	return nil
}

// simTitle resolves a simulation ID to its display title, falling back
// to the raw ID for simulations removed from the catalog.
func simTitle(id string) string {
	if sim := catalog.ByID(id); sim != nil {
		return sim.Title
	}
	return id
}
