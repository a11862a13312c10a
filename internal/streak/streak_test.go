package streak

import "testing"

func TestMilestonesFireAtThreeAndFive(t *testing.T) {
	m := NewMonitor()

	// correct answers 1..7: milestones only at 3 and 5
	want := []int{0, 0, 3, 0, 5, 0, 0}
	for i, w := range want {
		got := m.Record(true)
		if got != w {
			t.Errorf("answer %d: milestone = %d, want %d", i+1, got, w)
		}
	}
	if m.Current() != 7 {
		t.Errorf("Current() = %d, want 7", m.Current())
	}
}

func TestIncorrectResets(t *testing.T) {
	m := NewMonitor()
	m.Record(true)
	m.Record(true)
	if ms := m.Record(false); ms != 0 {
		t.Errorf("incorrect answer fired milestone %d", ms)
	}
	if m.Current() != 0 {
		t.Errorf("Current() = %d after reset, want 0", m.Current())
	}
}

func TestMilestonesRearmAfterReset(t *testing.T) {
	m := NewMonitor()
	for i := 0; i < 5; i++ {
		m.Record(true)
	}
	m.Record(false)

	if got := m.Record(true); got != 0 {
		t.Errorf("first correct after reset fired %d", got)
	}
	m.Record(true)
	if got := m.Record(true); got != 3 {
		t.Errorf("rebuilt streak of 3 fired %d, want 3", got)
	}
	m.Record(true)
	if got := m.Record(true); got != 5 {
		t.Errorf("rebuilt streak of 5 fired %d, want 5", got)
	}
}

func TestNoMilestoneAtFour(t *testing.T) {
	m := NewMonitor()
	m.Record(true)
	m.Record(true)
	m.Record(true)
	if got := m.Record(true); got != 0 {
		t.Errorf("streak of 4 fired milestone %d", got)
	}
}

func TestResetClearsEverything(t *testing.T) {
	m := NewMonitor()
	for i := 0; i < 3; i++ {
		m.Record(true)
	}
	m.Reset()
	if m.Current() != 0 {
		t.Errorf("Current() = %d after Reset, want 0", m.Current())
	}
	m.Record(true)
	m.Record(true)
	if got := m.Record(true); got != 3 {
		t.Errorf("milestone after Reset = %d, want 3", got)
	}
}
