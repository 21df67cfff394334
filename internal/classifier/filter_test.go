package classifier

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterIsIdentityForNonDirectQuestions(t *testing.T) {
	user := "who is the current president"
	for _, text := range []string{
		"",
		"The answer is 42.",
		"x = 9",
		"1. first\n2. second",
	} {
		assert.Equal(t, text, FilterDirectAnswers(text, user))
	}
}

func TestFilterRemovesAnswerPhrase(t *testing.T) {
	got := FilterDirectAnswers("The answer is 42.", "solve this: x+1=43")
	assert.NotContains(t, got, "42")
	assert.NotEmpty(t, got)
}

func TestFilterRemovesEqualsDigits(t *testing.T) {
	got := FilterDirectAnswers("So 2 + 2 = 4, nice work", "what is 2+2")
	assert.NotContains(t, got, "= 4")
	assert.Contains(t, got, "nice work")
}

func TestFilterRemovesNumberedListArtifacts(t *testing.T) {
	got := FilterDirectAnswers("1. Think about it\n2. Try again", "solve this")
	assert.NotContains(t, got, "1.")
	assert.NotContains(t, got, "2.")
	assert.Contains(t, got, "Think about it")
}

func TestFilterYInterceptNineRule(t *testing.T) {
	user := "find the Y-Intercept of f(x) = 2x + 9"
	got := FilterDirectAnswers("Plug in x = 0 to get 9", user)
	assert.NotContains(t, got, "9")
	assert.Contains(t, got, "Plug in x")

	// Without the y-intercept or f(x) mention the 9 survives.
	got = FilterDirectAnswers("you should get 9 apples", "solve this word problem")
	assert.Contains(t, got, "9")
}

func TestFilterEmptyResultUsesFallback(t *testing.T) {
	assert.Equal(t, SocraticFallback, FilterDirectAnswers("", "what is 2+2"))
	assert.Equal(t, SocraticFallback, FilterDirectAnswers("   ", "what is 2+2"))
	assert.Equal(t, SocraticFallback, FilterDirectAnswers("= 4", "what is 2+2"))
}

func TestFilterKnownLimitation(t *testing.T) {
	// Answers that do not match the numeric shapes are not redacted.
	got := FilterDirectAnswers("It equals four.", "what is 2+2")
	assert.True(t, strings.Contains(got, "four"))
}

func TestFilterRemovesNonASCIIDigits(t *testing.T) {
	assert.Equal(t, " ok", FilterDirectAnswers("the answer is ٤٢ ok", "solve this"))

	got := FilterDirectAnswers("so x =\u00a0४ now", "solve for x")
	assert.NotContains(t, got, "४")
	assert.Contains(t, got, "now")
}
