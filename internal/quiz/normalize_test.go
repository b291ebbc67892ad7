package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"  Hello  ", "hello"},
		{"X²", "x²"},
		{"Đúng", "true"},
		{"đúng", "true"},
		{"SAI", "false"},
		{"True", "true"},
		{"False", "false"},
		{"", ""},
		{"  3/4 ", "3/4"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(tt.in), "Normalize(%q)", tt.in)
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	for _, s := range []string{"Đúng", "Sai", " TRUE ", "x + 1", "", "ĐÚNG "} {
		once := Normalize(s)
		assert.Equal(t, once, Normalize(once), "Normalize not idempotent for %q", s)
	}
}

func TestIsCorrectTokenMapping(t *testing.T) {
	// Display token on either side maps onto the canonical pair.
	assert.True(t, IsCorrect("Đúng", "True"))
	assert.True(t, IsCorrect("true", "Đúng"))
	assert.True(t, IsCorrect("Sai", "false"))

	// The mapping is one-directional: the canonical token never turns
	// back into the display token, but symmetric application still makes
	// the comparison hold. A plain mismatch stays wrong.
	assert.False(t, IsCorrect("Đúng", "False"))
	assert.False(t, IsCorrect("Sai", "True"))
}

func TestIsCorrectExactEquality(t *testing.T) {
	assert.True(t, IsCorrect(" 42 ", "42"))
	assert.True(t, IsCorrect("x²", "X²"))
	assert.False(t, IsCorrect("42.0", "42")) // no numeric coercion
	assert.False(t, IsCorrect("4 2", "42")) // inner whitespace counts
}
