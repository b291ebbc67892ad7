// Package quiz runs the interactive assessment session over a learning
// unit's question list: answer-then-immediate-feedback, forward-only,
// with a read-only review replay of stored results.
package quiz

import "strings"

// displayTokens maps the Vietnamese true/false display tokens to the
// canonical values the generator emits. The mapping is one-directional
// and applied symmetrically to both sides of a comparison, so "Đúng"
// matches "true" but "true" never becomes "Đúng".
var displayTokens = map[string]string{
	"đúng": "true",
	"sai":  "false",
}

// Normalize prepares an answer for comparison: surrounding whitespace is
// trimmed, the result lower-cased, and true/false display tokens mapped
// to their canonical pair. Idempotent.
func Normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if canonical, ok := displayTokens[s]; ok {
		return canonical
	}
	return s
}

// IsCorrect compares a learner answer against the correct answer using
// normalized exact equality. No partial credit, no fuzzy matching.
func IsCorrect(learnerAnswer, correctAnswer string) bool {
	return Normalize(learnerAnswer) == Normalize(correctAnswer)
}
