package grader

import (
	"strconv"
	"strings"

	"github.com/Rakshit-11/CareerFinder/internal/catalog"
)

// CheckAnswer compares the user's input against a question's correct
// answer. Returns true if the answer is correct.
//
// Normalization rules:
// - Whitespace is trimmed and comparison is case-insensitive
// - Text answers treat underscores and spaces as equivalent
//   (e.g. "default credentials" matches "default_credentials")
// - Number and percentage answers compare numerically after stripping
//   "%" and internal spaces (e.g. "85 %" matches "85%", "5.0" matches "5")
// - List answers are comma-separated sets; the user's list must contain
//   every expected item, extras are allowed
func CheckAnswer(userAnswer string, q *catalog.Question) bool {
	userAnswer = strings.TrimSpace(userAnswer)
	if userAnswer == "" {
		return false
	}

	user := strings.ToLower(userAnswer)
	correct := strings.ToLower(strings.TrimSpace(q.CorrectAnswer))

	switch q.AnswerType {
	case catalog.AnswerNumber, catalog.AnswerPercentage:
		return checkNumeric(user, correct)
	case catalog.AnswerList:
		return checkList(user, correct)
	default:
		return normalizeText(user) == normalizeText(correct)
	}
}

// checkNumeric compares after stripping percent signs and spaces. Falls
// back to string equality when either side doesn't parse.
func checkNumeric(user, correct string) bool {
	u := stripNumeric(user)
	c := stripNumeric(correct)

	uf, uerr := strconv.ParseFloat(u, 64)
	cf, cerr := strconv.ParseFloat(c, 64)
	if uerr == nil && cerr == nil {
		return uf == cf
	}
	return u == c
}

// checkList requires every expected item to be present in the user's
// comma-separated list.
func checkList(user, correct string) bool {
	userItems := splitList(normalizeText(user))
	correctItems := splitList(normalizeText(correct))
	if len(correctItems) == 0 {
		return false
	}

	have := make(map[string]bool, len(userItems))
	for _, item := range userItems {
		have[item] = true
	}
	for _, item := range correctItems {
		if !have[item] {
			return false
		}
	}
	return true
}

// normalizeText folds underscores into spaces and collapses edge space.
func normalizeText(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "_", " "))
}

func stripNumeric(s string) string {
	s = strings.ReplaceAll(s, "%", "")
	return strings.ReplaceAll(s, " ", "")
}

func splitList(s string) []string {
	var items []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
