// Package picker lists the simulation catalog grouped by career field
// and starts playthroughs.
package picker

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rakshit-11/CareerFinder/internal/attempt"
	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/router"
	"github.com/Rakshit-11/CareerFinder/internal/screen"
	"github.com/Rakshit-11/CareerFinder/internal/screens/player"
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/Rakshit-11/CareerFinder/internal/ui/layout"
	"github.com/Rakshit-11/CareerFinder/internal/ui/theme"
)

type profileLoadedMsg struct {
	Profile  *store.Profile
	Attempts map[string]int
	Err      error
}

// row is one selectable simulation entry in the flattened list.
type row struct {
	field catalog.Field
	sim   catalog.Simulation
}

// PickerScreen lists simulations grouped by field. In browse mode Enter
// expands a detail pane; otherwise Enter starts the simulation.
type PickerScreen struct {
	engine   *attempt.Engine
	st       *store.Store
	userID   string
	browse   bool
	rows     []row
	selected int
	expanded bool
	profile  *store.Profile
	attempts map[string]int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen over the full catalog.
func New(engine *attempt.Engine, st *store.Store, userID string, browse bool) *PickerScreen {
	var rows []row
	for _, f := range catalog.Fields() {
		for _, s := range catalog.ByField(f.ID) {
			rows = append(rows, row{field: f, sim: s})
		}
	}
	return &PickerScreen{
		engine:   engine,
		st:       st,
		userID:   userID,
		browse:   browse,
		rows:     rows,
		attempts: make(map[string]int),
	}
}

func (s *PickerScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		profile, err := s.st.ProfileRepo().Get(ctx, s.userID)
		if err != nil {
			return profileLoadedMsg{Err: err}
		}
		counts, err := s.st.AttemptRepo().ForUser(ctx, s.userID)
		if err != nil {
			return profileLoadedMsg{Profile: profile, Attempts: map[string]int{}}
		}
		attempts := make(map[string]int, len(counts))
		for _, c := range counts {
			attempts[c.SimulationID] = c.Count
		}
		return profileLoadedMsg{Profile: profile, Attempts: attempts}
	}
}

func (s *PickerScreen) Title() string {
	if s.browse {
		return "Simulations"
	}
	return "Choose a Simulation"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	action := "Play"
	if s.browse {
		action = "Details"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: action},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.profile = msg.Profile
			s.attempts = msg.Attempts
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
				s.expanded = false
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.rows)-1 {
				s.selected++
				s.expanded = false
			}
			return s, nil
		case "enter":
			if len(s.rows) == 0 {
				return s, nil
			}
			if s.browse {
				s.expanded = !s.expanded
				return s, nil
			}
			sim := s.rows[s.selected].sim
			return s, func() tea.Msg {
				return router.PushScreenMsg{
					Screen: player.New(s.engine, sim.ID, s.userID),
				}
			}
		}
	}
	return s, nil
}

func (s *PickerScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading catalog...")
	}

	var b strings.Builder
	b.WriteString("\n")

	var lastField string
	for i, r := range s.rows {
		if r.field.Name != lastField {
			lastField = r.field.Name
			if i > 0 {
				b.WriteString("\n")
			}
			header := lipgloss.NewStyle().
				Foreground(theme.Secondary).
				Bold(true).
				Render("  " + strings.ToUpper(r.field.Name))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, header))
			b.WriteString("\n")
		}

		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.renderRow(i, r)))
		b.WriteString("\n")

		if s.expanded && i == s.selected {
			b.WriteString(s.renderDetail(r.sim, width))
		}
	}

	return b.String()
}

func (s *PickerScreen) renderRow(i int, r row) string {
	status := "·"
	statusStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	if s.profile != nil && s.profile.Completed(r.sim.ID) {
		status = "✔"
		statusStyle = statusStyle.Foreground(theme.Success)
	} else if s.attempts[r.sim.ID] > 0 {
		status = "▸"
		statusStyle = statusStyle.Foreground(theme.Accent)
	}

	attemptStr := ""
	if n := s.attempts[r.sim.ID]; n > 0 {
		attemptStr = fmt.Sprintf("  %d attempts", n)
		if n == 1 {
			attemptStr = "  1 attempt"
		}
	}

	line := fmt.Sprintf("%s %-38s %-8s %2d min%s",
		statusStyle.Render(status),
		r.sim.Title,
		r.sim.Difficulty,
		r.sim.EstimatedMins,
		attemptStr,
	)

	if i == s.selected {
		return lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("> " + line)
	}
	return lipgloss.NewStyle().Foreground(theme.Text).Render("  " + line)
}

func (s *PickerScreen) renderDetail(sim catalog.Simulation, width int) string {
	var b strings.Builder

	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	body := lipgloss.NewStyle().Foreground(theme.Text).Width(min(width-12, 64))

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, body.Render(sim.Description)))
	b.WriteString("\n")

	meta := fmt.Sprintf("%s · %d questions · badge: %s", sim.SubField, len(sim.Questions), sim.Badge)
	if sim.Artifact != nil {
		meta += fmt.Sprintf(" · file: %s", sim.Artifact.Filename)
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, dim.Render(meta)))
	b.WriteString("\n")

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
