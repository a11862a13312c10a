package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/Rakshit-11/CareerFinder/internal/attempt"
	"github.com/Rakshit-11/CareerFinder/internal/router"
	"github.com/Rakshit-11/CareerFinder/internal/screen"
	"github.com/Rakshit-11/CareerFinder/internal/screens/home"
	"github.com/Rakshit-11/CareerFinder/internal/screens/welcome"
	"github.com/Rakshit-11/CareerFinder/internal/store"
	"github.com/Rakshit-11/CareerFinder/internal/ui/layout"
)

// Options carries the wired dependencies for the TUI.
type Options struct {
	Store  *store.Store
	Engine *attempt.Engine
	UserID string

	// GraderLocal is set when no LLM provider is configured and grading
	// runs on the built-in rules.
	GraderLocal bool
}

// profileStatsMsg refreshes the header score and badge counters.
type profileStatsMsg struct {
	Score  int
	Badges int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int
	score  int
	badges int
}

// newAppModel creates a new AppModel starting on the welcome splash.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Engine, opts.Store, opts.UserID, opts.GraderLocal)
	}
	return AppModel{
		opts:   opts,
		router: router.New(welcome.New(homeFactory)),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(
		m.router.Active().Init(),
		m.refreshStats(),
	)
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileStatsMsg:
		m.score = msg.Score
		m.badges = msg.Badges
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}

	case router.PopScreenMsg, router.ReplaceScreenMsg:
		// Navigation back or forward may follow a finalized run, so the
		// header totals are re-read.
		cmd := m.router.Update(msg)
		return m, tea.Batch(cmd, m.refreshStats())
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.score, m.badges, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// refreshStats re-reads profile totals for the header.
func (m AppModel) refreshStats() tea.Cmd {
	st := m.opts.Store
	userID := m.opts.UserID
	return func() tea.Msg {
		profile, err := st.ProfileRepo().Get(context.Background(), userID)
		if err != nil {
			return profileStatsMsg{}
		}
		return profileStatsMsg{Score: profile.TotalScore, Badges: len(profile.SkillBadges)}
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
