package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/Rakshit-11/CareerFinder/internal/attempt"
	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/router"
	"github.com/Rakshit-11/CareerFinder/internal/screen"
	"github.com/Rakshit-11/CareerFinder/internal/screens/badgevault"
	"github.com/Rakshit-11/CareerFinder/internal/screens/history"
	"github.com/Rakshit-11/CareerFinder/internal/screens/picker"
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/Rakshit-11/CareerFinder/internal/ui/components"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	menu          components.Menu
	menuLabels    []string
	totalScore    int
	badgeCount    int
	completed     int
	graderLocal   bool
	mascotVariant MascotVariant
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(engine *attempt.Engine, st *store.Store, userID string, graderLocal bool) *HomeScreen {
	// Load the profile for the stats bar. A fresh database just shows
	// zeros.
	var totalScore, badgeCount, completed int
	var recentBadge, unfinished bool
	now := time.Now()

	profile, err := st.ProfileRepo().Get(context.Background(), userID)
	if err == nil && profile != nil {
		totalScore = profile.TotalScore
		badgeCount = len(profile.SkillBadges)
		completed = len(profile.CompletedSimulations)
		for _, b := range profile.SkillBadges {
			if now.Sub(b.EarnedAt) < 24*time.Hour {
				recentBadge = true
			}
		}
		if attempts, err := st.AttemptRepo().ForUser(context.Background(), userID); err == nil {
			for _, a := range attempts {
				if !profile.Completed(a.SimulationID) {
					unfinished = true
				}
			}
		}
	}

	mascotVariant := MascotIdle
	if unfinished {
		mascotVariant = MascotAlert
	} else if recentBadge {
		mascotVariant = MascotCelebrating
	}

	menuLabels := []string{"PLAY", "SIMULATIONS", "BADGE VAULT", "HISTORY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(engine, st, userID, false)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: picker.New(engine, st, userID, true)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: badgevault.New(st.ProfileRepo(), userID)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(st.EventRepo())}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:          components.NewMenu(items),
		menuLabels:    menuLabels,
		totalScore:    totalScore,
		badgeCount:    badgeCount,
		completed:     completed,
		graderLocal:   graderLocal,
		mascotVariant: mascotVariant,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := contentWidth(width)

	var sections []string

	// 1. Title
	sections = append(sections, renderTitle(cw, compact))

	// 2. Mascot (full mode only)
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant, cw))
	}

	// 3. Stats bar (double-bordered, same width)
	sections = append(sections, renderStatsBar(
		h.totalScore, h.badgeCount, h.completed, len(catalog.All()), cw, compact))

	// 4. Menu (same width box)
	sections = append(sections, renderArcadeMenu(
		h.menuLabels, h.menu.Selected, cw))

	// 5. Local-grading note
	if h.graderLocal && !compact {
		sections = append(sections, renderGraderBanner(cw))
	}

	content := strings.Join(sections, "\n\n")

	// Wrap in cabinet frame, centered in the full area
	return renderCabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
