// Package player runs a simulation playthrough: briefing, answering,
// hints, grading, and the finalization hand-off to the summary screen.
package player

import (
	"context"
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/Rakshit-11/CareerFinder/internal/attempt"
	"github.com/Rakshit-11/CareerFinder/internal/catalog"
	"github.com/Rakshit-11/CareerFinder/internal/grader"
	"github.com/Rakshit-11/CareerFinder/internal/router"
	"github.com/Rakshit-11/CareerFinder/internal/screen"
	"github.com/Rakshit-11/CareerFinder/internal/screens/summary"
	"github.com/Rakshit-11/CareerFinder/internal/ui/components"
	"github.com/Rakshit-11/CareerFinder/internal/ui/layout"
)

type phase int

const (
	phaseBriefing phase = iota
	phaseActive
)

// PlayerScreen implements screen.Screen for an active simulation run.
type PlayerScreen struct {
	engine       *attempt.Engine
	simulationID string
	userID       string

	run      *attempt.Run
	phase    phase
	selected int
	input    components.TextInput
	drafts   map[string]string

	// grading guards against duplicate submissions: while a grading
	// call is outstanding, Enter and Ctrl+S are ignored.
	grading bool

	// finalizing is set while the completion follow-up is outstanding.
	// finalizeFailed means the follow-up hit a grader outage and can
	// be retried without losing the run.
	finalizing     bool
	finalizeFailed bool

	showingFeedback    bool
	showingQuitConfirm bool
	lastResult         *attempt.SubmitResult
	lastBatch          *grader.Result
	pendingFinalize    bool

	notice string
	errMsg string
}

var _ screen.Screen = (*PlayerScreen)(nil)
var _ screen.KeyHintProvider = (*PlayerScreen)(nil)

// New creates a PlayerScreen for the given simulation.
func New(engine *attempt.Engine, simulationID, userID string) *PlayerScreen {
	return &PlayerScreen{
		engine:       engine,
		simulationID: simulationID,
		userID:       userID,
		drafts:       make(map[string]string),
		input:        components.NewTextInput("Type your answer...", false, 40),
	}
}

func (s *PlayerScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startRun(),
		s.input.Init(),
	)
}

func (s *PlayerScreen) Title() string {
	if s.run != nil {
		return s.run.Simulation.Title
	}
	return "Simulation"
}

func (s *PlayerScreen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	if s.phase == phaseBriefing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Tab", Description: "Next question"},
		{Key: "Ctrl+R", Description: "Hint"},
		{Key: "Ctrl+S", Description: "Submit all"},
		{Key: "Esc", Description: "Quit"},
	}
	if s.finalizeFailed {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+F", Description: "Retry finish"})
	}
	return hints
}

func (s *PlayerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case runStartedMsg:
		return s.handleRunStarted(msg)

	case gradeResultMsg:
		return s.handleGradeResult(msg)

	case gradeAllMsg:
		return s.handleGradeAll(msg)

	case finalizeMsg:
		return s.handleFinalize(msg)

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.inputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// inputActive reports whether keystrokes should flow into the answer
// field.
func (s *PlayerScreen) inputActive() bool {
	return s.run != nil &&
		s.phase == phaseActive &&
		!s.grading &&
		!s.showingFeedback &&
		!s.showingQuitConfirm &&
		!s.currentLocked()
}

// currentQuestion returns the catalog question at the cursor.
func (s *PlayerScreen) currentQuestion() *catalog.Question {
	if s.run == nil || s.selected >= len(s.run.Simulation.Questions) {
		return nil
	}
	return &s.run.Simulation.Questions[s.selected]
}

// currentLocked reports whether the selected question is already correct.
func (s *PlayerScreen) currentLocked() bool {
	q := s.currentQuestion()
	if q == nil {
		return false
	}
	qs := s.run.Question(q.ID)
	return qs != nil && qs.Correct
}

func (s *PlayerScreen) handleRunStarted(msg runStartedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.run = msg.Run
	s.phase = phaseBriefing
	return s, nil
}

func (s *PlayerScreen) handleGradeResult(msg gradeResultMsg) (screen.Screen, tea.Cmd) {
	s.grading = false
	if msg.Err != nil {
		s.notice = gradeErrNotice(msg.Err)
		return s, nil
	}

	s.lastResult = msg.Result
	s.lastBatch = nil
	s.showingFeedback = true
	s.pendingFinalize = msg.Result.ReadyToFinalize
	if msg.Result.Correct {
		delete(s.drafts, msg.QuestionID)
	}
	return s, nil
}

func (s *PlayerScreen) handleGradeAll(msg gradeAllMsg) (screen.Screen, tea.Cmd) {
	s.grading = false
	if msg.Err != nil {
		s.notice = gradeErrNotice(msg.Err)
		return s, nil
	}

	if msg.Result.Finalize != nil {
		outcome := msg.Result.Finalize
		run := s.run
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(outcome, run)}
		}
	}

	s.lastResult = nil
	s.lastBatch = msg.Result.Result
	s.showingFeedback = true
	return s, nil
}

func (s *PlayerScreen) handleFinalize(msg finalizeMsg) (screen.Screen, tea.Cmd) {
	s.finalizing = false
	if msg.Err != nil {
		s.finalizeFailed = true
		s.notice = "Couldn't confirm completion with the grader. Press Ctrl+F to retry."
		return s, nil
	}
	if msg.Outcome == nil {
		return s, nil
	}

	s.finalizeFailed = false
	outcome := msg.Outcome
	run := s.run
	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(outcome, run)}
	}
}

func (s *PlayerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Error state, any key goes back.
	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.run == nil {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "y", "Y":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	// Feedback overlay: any key dismisses, then the completion
	// follow-up fires if everything is correct.
	if s.showingFeedback {
		s.showingFeedback = false
		s.lastResult = nil
		s.lastBatch = nil
		s.advancePastLocked()
		if s.pendingFinalize && !s.finalizing {
			s.pendingFinalize = false
			s.finalizing = true
			return s, s.finalizeRun()
		}
		return s, nil
	}

	if s.phase == phaseBriefing {
		switch key {
		case "enter", " ":
			s.phase = phaseActive
			s.loadDraft()
			return s, s.input.Init()
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	// Active phase.
	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil

	case "tab", "down":
		s.moveCursor(1)
		return s, nil

	case "shift+tab", "up":
		s.moveCursor(-1)
		return s, nil

	case "enter":
		return s.submitCurrent()

	case "ctrl+s":
		return s.submitAll()

	case "ctrl+r":
		s.revealHint()
		return s, nil

	case "ctrl+f":
		if s.finalizeFailed && !s.finalizing {
			s.finalizing = true
			s.notice = ""
			return s, s.finalizeRun()
		}
		return s, nil
	}

	if s.inputActive() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// moveCursor shifts the question cursor, saving the draft answer.
func (s *PlayerScreen) moveCursor(delta int) {
	s.saveDraft()
	n := len(s.run.Simulation.Questions)
	s.selected = (s.selected + delta + n) % n
	s.notice = ""
	s.loadDraft()
}

// advancePastLocked moves the cursor off a locked question onto the
// next open one, if any remain.
func (s *PlayerScreen) advancePastLocked() {
	if !s.currentLocked() {
		return
	}
	for i := range s.run.Simulation.Questions {
		idx := (s.selected + 1 + i) % len(s.run.Simulation.Questions)
		qs := s.run.Question(s.run.Simulation.Questions[idx].ID)
		if qs != nil && !qs.Correct {
			s.selected = idx
			s.loadDraft()
			return
		}
	}
}

func (s *PlayerScreen) saveDraft() {
	if q := s.currentQuestion(); q != nil && !s.currentLocked() {
		s.drafts[q.ID] = s.input.Value()
	}
}

func (s *PlayerScreen) loadDraft() {
	q := s.currentQuestion()
	if q == nil {
		return
	}
	s.input = components.NewTextInput("Type your answer...", false, 40)
	s.input.Model.SetValue(s.drafts[q.ID])
}

func (s *PlayerScreen) submitCurrent() (screen.Screen, tea.Cmd) {
	if s.grading {
		return s, nil
	}
	q := s.currentQuestion()
	if q == nil {
		return s, nil
	}
	if s.currentLocked() {
		s.notice = "Already answered correctly."
		return s, nil
	}

	answer := s.input.Value()
	if strings.TrimSpace(answer) == "" {
		// Caught locally; the engine enforces the same rule.
		s.notice = "Answer cannot be empty"
		return s, nil
	}

	s.saveDraft()
	s.notice = ""
	s.grading = true

	run := s.run
	questionID := q.ID
	return s, func() tea.Msg {
		res, err := s.engine.SubmitQuestion(context.Background(), run, questionID, answer)
		return gradeResultMsg{QuestionID: questionID, Result: res, Err: err}
	}
}

func (s *PlayerScreen) submitAll() (screen.Screen, tea.Cmd) {
	if s.grading {
		return s, nil
	}
	s.saveDraft()

	var answers []grader.Answer
	for _, q := range s.run.Simulation.Questions {
		qs := s.run.Question(q.ID)
		answer := s.drafts[q.ID]
		if qs != nil && qs.Correct {
			answer = qs.Answer
		}
		if strings.TrimSpace(answer) == "" {
			s.notice = "Answer every question before submitting all."
			return s, nil
		}
		answers = append(answers, grader.Answer{QuestionID: q.ID, Answer: answer})
	}

	s.notice = ""
	s.grading = true
	run := s.run
	return s, func() tea.Msg {
		res, err := s.engine.SubmitAll(context.Background(), run, answers)
		return gradeAllMsg{Result: res, Err: err}
	}
}

func (s *PlayerScreen) revealHint() {
	q := s.currentQuestion()
	if q == nil {
		return
	}
	_, err := s.engine.RevealHint(s.run, q.ID)
	switch {
	case errors.Is(err, attempt.ErrNoMoreHints):
		s.notice = "No more hints for this question."
	case errors.Is(err, attempt.ErrAlreadyCorrect):
		s.notice = "Already answered correctly."
	case err != nil:
		s.notice = err.Error()
	default:
		s.notice = ""
	}
}

func (s *PlayerScreen) startRun() tea.Cmd {
	return func() tea.Msg {
		run, err := s.engine.Start(context.Background(), s.userID, s.simulationID)
		return runStartedMsg{Run: run, Err: err}
	}
}

func (s *PlayerScreen) finalizeRun() tea.Cmd {
	run := s.run
	return func() tea.Msg {
		outcome, err := s.engine.FinalizeIfComplete(context.Background(), run)
		return finalizeMsg{Outcome: outcome, Err: err}
	}
}

// gradeErrNotice maps a grading error to the inline notice text.
func gradeErrNotice(err error) string {
	var valErr *grader.ValidationError
	if errors.As(err, &valErr) {
		return valErr.Message
	}
	var unavail *grader.ErrGradingUnavailable
	if errors.As(err, &unavail) {
		return "Grading is unavailable right now. Your answers are safe, try again in a moment."
	}
	if errors.Is(err, attempt.ErrAlreadyCorrect) {
		return "Already answered correctly."
	}
	return "Grading failed: " + err.Error()
}
