package catalog

import (
	"strings"
	"testing"
)

func TestSeedIntegrity(t *testing.T) {
	sims := All()
	if len(sims) == 0 {
		t.Fatal("catalog is empty")
	}
	for _, s := range sims {
		if s.Badge == "" {
			t.Errorf("simulation %s has no badge", s.ID)
		}
		if len(s.Questions) == 0 {
			t.Errorf("simulation %s has no questions", s.ID)
		}
		for _, q := range s.Questions {
			if q.CorrectAnswer == "" {
				t.Errorf("simulation %s question %s has no correct answer", s.ID, q.ID)
			}
			if len(q.Hints) == 0 {
				t.Errorf("simulation %s question %s has no hints", s.ID, q.ID)
			}
		}
	}
}

func TestByID(t *testing.T) {
	s := ByID("se-debugging-1")
	if s == nil {
		t.Fatal("se-debugging-1 not found")
	}
	if s.Title != "Debug Shopping Cart Code" {
		t.Errorf("title = %q", s.Title)
	}
	if s.Artifact == nil {
		t.Error("expected a work artifact")
	}

	if ByID("no-such-sim") != nil {
		t.Error("unknown ID should return nil")
	}
}

func TestQuestionLookup(t *testing.T) {
	s := ByID("cyber-password-1")
	if s == nil {
		t.Fatal("cyber-password-1 not found")
	}
	q := s.Question("q2")
	if q == nil {
		t.Fatal("q2 not found")
	}
	if q.CorrectAnswer != "md5" {
		t.Errorf("correct answer = %q", q.CorrectAnswer)
	}
	if s.Question("q99") != nil {
		t.Error("unknown question should return nil")
	}
}

func TestMask(t *testing.T) {
	tests := []struct {
		name    string
		answer  string
		mask    string
		maxLen  int
	}{
		{"plain word", "md5", "***", 3},
		{"underscores count as spaces", "default_credentials", "*******************", 19},
		{"multi word", "route 53", "********", 8},
		{"empty", "", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{CorrectAnswer: tt.answer}
			if got := q.Mask(); got != tt.mask {
				t.Errorf("Mask() = %q, want %q", got, tt.mask)
			}
			if got := q.MaxLength(); got != tt.maxLen {
				t.Errorf("MaxLength() = %d, want %d", got, tt.maxLen)
			}
		})
	}
}

func TestByField(t *testing.T) {
	sims := ByField("software-engineering")
	if len(sims) != 3 {
		t.Fatalf("expected 3 software-engineering simulations, got %d", len(sims))
	}
	for _, s := range sims {
		if s.FieldID != "software-engineering" {
			t.Errorf("simulation %s has field %s", s.ID, s.FieldID)
		}
	}
}

func TestBadgeFor(t *testing.T) {
	if got := BadgeFor("ds-analysis-1"); got != "Data Analyst" {
		t.Errorf("BadgeFor(ds-analysis-1) = %q", got)
	}
	if got := BadgeFor("nope"); got != "" {
		t.Errorf("BadgeFor(nope) = %q, want empty", got)
	}
}

func TestArtifactContent(t *testing.T) {
	s := ByID("cyber-password-1")
	if s == nil || s.Artifact == nil {
		t.Fatal("cyber-password-1 artifact missing")
	}
	a := s.Artifact
	if a.Filename != "password_hashes.txt" {
		t.Errorf("filename = %q", a.Filename)
	}
	content := string(a.Content())
	if !strings.Contains(content, "482c811da5d5b4bc6d497ffa98491e38") {
		t.Error("hash dump missing expected hash")
	}
	if a.Size() != len(content) {
		t.Errorf("Size() = %d, want %d", a.Size(), len(content))
	}
	if a.Base64() == "" {
		t.Error("Base64() should not be empty")
	}
}
