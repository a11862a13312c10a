package grader

import (
	"testing"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
)

func TestCheckAnswerText(t *testing.T) {
	q := &catalog.Question{AnswerType: catalog.AnswerText, CorrectAnswer: "default_credentials"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact", "default_credentials", true},
		{"spaces for underscores", "default credentials", true},
		{"case insensitive", "Default Credentials", true},
		{"surrounding whitespace", "  default credentials  ", true},
		{"wrong answer", "weak passwords", false},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerNumber(t *testing.T) {
	q := &catalog.Question{AnswerType: catalog.AnswerNumber, CorrectAnswer: "5"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"exact", "5", true},
		{"float form", "5.0", true},
		{"leading zero", "05", true},
		{"wrong", "6", false},
		{"not a number", "five", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerPercentage(t *testing.T) {
	q := &catalog.Question{AnswerType: catalog.AnswerPercentage, CorrectAnswer: "85%"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"with percent", "85%", true},
		{"without percent", "85", true},
		{"internal space", "85 %", true},
		{"decimal equivalent", "85.0%", true},
		{"wrong value", "90%", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}

func TestCheckAnswerList(t *testing.T) {
	q := &catalog.Question{AnswerType: catalog.AnswerList, CorrectAnswer: "password123,admin,letmein"}

	tests := []struct {
		name   string
		answer string
		want   bool
	}{
		{"all items", "password123,admin,letmein", true},
		{"different order", "letmein, admin, password123", true},
		{"extras allowed", "password123,admin,letmein,qwerty", true},
		{"missing item", "password123,admin", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAnswer(tt.answer, q); got != tt.want {
				t.Errorf("CheckAnswer(%q) = %v, want %v", tt.answer, got, tt.want)
			}
		})
	}
}
