// Package badgevault displays the user's badge collection grouped by
// career field, earned and still-locked alike.
package badgevault

import (
	"context"
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

type badgesLoadedMsg struct {
	Profile *store.Profile
	Err     error
}

// BadgeVaultScreen displays earned and locked badges per career field.
type BadgeVaultScreen struct {
	profileRepo   store.ProfileRepo
	userID        string
	profile       *store.Profile
	selectedField int
	scrollOffset  int
	loaded        bool
	errMsg        string
}

var _ screen.Screen = (*BadgeVaultScreen)(nil)
var _ screen.KeyHintProvider = (*BadgeVaultScreen)(nil)

// New creates a new BadgeVaultScreen.
func New(profileRepo store.ProfileRepo, userID string) *BadgeVaultScreen {
	return &BadgeVaultScreen{
		profileRepo: profileRepo,
		userID:      userID,
	}
}

func (s *BadgeVaultScreen) Init() tea.Cmd {
	return func() tea.Msg {
		profile, err := s.profileRepo.Get(context.Background(), s.userID)
		return badgesLoadedMsg{Profile: profile, Err: err}
	}
}

func (s *BadgeVaultScreen) Title() string {
	return "Badge Vault"
}

func (s *BadgeVaultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch field"},
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BadgeVaultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case badgesLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.profile = msg.Profile
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			fields := catalog.Fields()
			s.selectedField = (s.selectedField + 1) % len(fields)
			s.scrollOffset = 0
			return s, nil
		case "shift+tab":
			fields := catalog.Fields()
			s.selectedField = (s.selectedField - 1 + len(fields)) % len(fields)
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			if s.scrollOffset < len(s.fieldSims())-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *BadgeVaultScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading badges...")
	}

	var b strings.Builder

	earned := 0
	if s.profile != nil {
		earned = len(s.profile.SkillBadges)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned: %d of %d badges\n", earned, len(catalog.All()))))
	b.WriteString("\n")

	// Field tabs.
	fields := catalog.Fields()
	var tabs []string
	for i, f := range fields {
		label := fmt.Sprintf("%s (%d)", f.Name, s.countEarnedByField(f.ID))
		if i == s.selectedField {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	tabLine := strings.Join(tabs, "   ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, tabLine))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	sims := s.fieldSims()
	if len(sims) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No simulations in this field yet"))
		return b.String()
	}

	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(sims) {
		end = len(sims)
	}

	for i := start; i < end; i++ {
		sim := sims[i]
		if badge, ok := s.earnedBadge(sim.Badge); ok {
			line := fmt.Sprintf("  ⬡ %-32s %s", badge.Name, badge.EarnedAt.Format("Jan 02, 2006"))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Render(line)))
		} else {
			line := fmt.Sprintf("  ◌ %-32s %s", sim.Badge, "complete "+sim.Title)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(line)))
		}
		b.WriteString("\n")
	}

	if end < len(sims) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(sims)-end)))
	}

	return b.String()
}

func (s *BadgeVaultScreen) fieldSims() []catalog.Simulation {
	fields := catalog.Fields()
	if s.selectedField >= len(fields) {
		return nil
	}
	return catalog.ByField(fields[s.selectedField].ID)
}

func (s *BadgeVaultScreen) earnedBadge(name string) (store.Badge, bool) {
	if s.profile == nil {
		return store.Badge{}, false
	}
	for _, b := range s.profile.SkillBadges {
		if b.Name == name {
			return b, true
		}
	}
	return store.Badge{}, false
}

func (s *BadgeVaultScreen) countEarnedByField(fieldID string) int {
	count := 0
	for _, sim := range catalog.ByField(fieldID) {
		if _, ok := s.earnedBadge(sim.Badge); ok {
			count++
		}
	}
	return count
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
