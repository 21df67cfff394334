package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsDirectAnswerRequest(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"arithmetic", "what is 2+2", true},
		{"arithmetic no spaces inside sentence", "can you do 12*7 for me", true},
		{"spelled operator", "3 times 4", true},
		{"function definition", "f(x) = 2x^2 + 11x + 3", true},
		{"solve for", "please solve for x", true},
		{"derivative", "find the derivative of sin x", true},
		{"exponent", "simplify x^2", true},
		{"homework keyword", "Can you DO MY HOMEWORK", true},
		{"literary devices", "list the literary devices used here", true},
		{"symbolism regex", "what does the green light symbolize", true},
		{"theme", "the theme of the odyssey", true},
		{"poem analysis", "analyze this short poem", true},
		{"arabic-indic digits", "٣ times ٤", true},
		{"accented unknown", "please solve for ñ", true},
		{"factual lookup", "who is the current president", false},
		{"greeting", "hello, how are you today?", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDirectAnswerRequest(tt.text))
		})
	}
}

func TestIsFactualQuestion(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"current president", "who is the current president", true},
		{"conquest", "when did the ottomans conquer constantinople", true},
		{"how many", "how many moons does jupiter have", true},
		{"keyword only", "tell me about the roman empire", true},
		{"where is", "where is mount everest", true},
		{"accented name", "who is émile zola", true},
		{"accented place", "where is örebro", true},
		{"accented noun", "how many ñandúes live in chile", true},
		{"direct wins", "what is 2+2", false},
		{"direct keyword wins over capital", "what is the capital of france", false},
		{"neither", "hello there", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsFactualQuestion(tt.text))
		})
	}
}

func TestClassifyIsMutuallyExclusive(t *testing.T) {
	inputs := []string{
		"what is 2+2",
		"what is the population of the city in the year 1900",
		"who is the king",
		"solve for x in the treaty year equation",
		"",
		"random words",
	}
	for _, in := range inputs {
		r := Classify(in)
		if r.IsDirectAnswerRequest {
			assert.False(t, r.IsFactualQuestion, "factual must be false when direct is true: %q", in)
		}
		assert.Equal(t, IsDirectAnswerRequest(in), r.IsDirectAnswerRequest)
		assert.Equal(t, IsFactualQuestion(in), r.IsFactualQuestion)
	}
}

func TestClassifyExamples(t *testing.T) {
	assert.Equal(t, Result{IsDirectAnswerRequest: true}, Classify("what is 2+2"))
	assert.Equal(t, Result{IsFactualQuestion: true}, Classify("who is the current president"))
	assert.Equal(t, Result{}, Classify(""))
}

func TestArithmeticAlwaysDirect(t *testing.T) {
	for _, in := range []string{"1+1", "10 - 3", "7 * 8", "100/4", "so 5 + 6 then"} {
		assert.True(t, IsDirectAnswerRequest(in), in)
	}
}

func TestExplain(t *testing.T) {
	hit, ok := Explain("What is 2+2")
	require.True(t, ok)
	assert.Equal(t, "homework_keywords", hit.Set)
	assert.Equal(t, Keyword("what is"), hit.Rule)

	hit, ok = Explain("compute 3 plus 4")
	require.True(t, ok)
	assert.Equal(t, "math_patterns", hit.Set)
	assert.Equal(t, KindRegex, hit.Rule.Kind)

	_, ok = Explain("good morning")
	assert.False(t, ok)
}

func TestContextTag(t *testing.T) {
	assert.Equal(t, "[GUIDE LEARNING] Student asking for homework help: what is 2+2", ContextTag("what is 2+2"))
	assert.Equal(t,
		"[FACTUAL QUESTION] Provide direct answer then educational context: who is the current president",
		ContextTag("who is the current president"))
	assert.Equal(t, "good morning", ContextTag("good morning"))
}

func TestRecommendation(t *testing.T) {
	assert.Equal(t, "Reframe as learning opportunity", Recommendation(true))
	assert.Equal(t, "Safe to answer educationally", Recommendation(false))
}

func TestRuleTableSizes(t *testing.T) {
	assert.Len(t, HomeworkKeywords.Rules, 23)
	assert.Len(t, MathPatterns.Rules, 13)
	assert.Len(t, LiteraturePatterns.Rules, 9)
	assert.Len(t, FactualPatterns.Rules, 12)
	assert.Len(t, FactualKeywords.Rules, 30)
}
