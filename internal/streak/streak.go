// Package streak tracks runs of consecutive correct answers within a
// simulation and fires celebration milestones.
package streak

// Milestones are the streak lengths that trigger a celebration. Each
// fires exactly once per unbroken run; there is nothing past the last
// milestone until the streak breaks and rebuilds.
var Milestones = []int{3, 5}

// Monitor tracks the current streak within a single simulation run.
type Monitor struct {
	current int
	fired   map[int]bool
}

// NewMonitor returns a Monitor with no streak in progress.
func NewMonitor() *Monitor {
	return &Monitor{fired: make(map[int]bool)}
}

// Current returns the length of the streak in progress.
func (m *Monitor) Current() int {
	return m.current
}

// Record feeds one graded answer into the monitor. It returns the
// milestone reached by this answer, or 0. A wrong answer resets the
// streak and re-arms every milestone.
func (m *Monitor) Record(correct bool) int {
	if !correct {
		m.current = 0
		m.fired = make(map[int]bool)
		return 0
	}

	m.current++
	for _, ms := range Milestones {
		if m.current == ms && !m.fired[ms] {
			m.fired[ms] = true
			return ms
		}
	}
	return 0
}

// Reset clears all streak state, as when switching simulations.
func (m *Monitor) Reset() {
	m.current = 0
	m.fired = make(map[int]bool)
}
