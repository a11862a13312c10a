package scoring

import "testing"

func TestComputeDelta(t *testing.T) {
	tests := []struct {
		name    string
		correct bool
		hints   int
		attempt int
		want    int
	}{
		{"incorrect is worth nothing", false, 0, 1, 0},
		{"incorrect ignores hints and attempts", false, 3, 5, 0},
		{"clean first attempt", true, 0, 1, 95},
		{"one hint", true, 1, 1, 85},
		{"second attempt", true, 0, 2, 90},
		{"two hints third attempt", true, 2, 3, 65},
		{"floor at twenty", true, 5, 10, 20},
		{"exactly at floor", true, 3, 10, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDelta(tt.correct, tt.hints, tt.attempt)
			if got != tt.want {
				t.Errorf("ComputeDelta(%v, %d, %d) = %d, want %d",
					tt.correct, tt.hints, tt.attempt, got, tt.want)
			}
		})
	}
}

func TestApplyReveal(t *testing.T) {
	tests := []struct {
		name  string
		score int
		want  int
	}{
		{"normal deduction", 100, 95},
		{"clamps at zero", 3, 0},
		{"zero stays zero", 0, 0},
		{"exact penalty", 5, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApplyReveal(tt.score); got != tt.want {
				t.Errorf("ApplyReveal(%d) = %d, want %d", tt.score, got, tt.want)
			}
		})
	}
}
