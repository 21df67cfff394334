// Package classifier holds the keyword and regex heuristics that decide whether
// a student message asks for a direct homework answer or a factual lookup,
// and the filter that strips numeric answers from model output.
//
// The judgments are advisory. False positives and negatives are expected.
package classifier

import "strings"

// HomeworkKeywords are phrases that solicit a finished answer.
var HomeworkKeywords = RuleSet{
	Name: "homework_keywords",
	Rules: []Rule{
		Keyword("solve this"),
		Keyword("answer this"),
		Keyword("do my homework"),
		Keyword("calculate this"),
		Keyword("what's the answer to"),
		Keyword("give me the solution"),
		Keyword("find the answer"),
		Keyword("give the answer"),
		Keyword("just give"),
		Keyword("tell me the answer"),
		Keyword("what is"),
		Keyword("whats"),
		Keyword("find the literary"),
		Keyword("literary devices"),
		Keyword("what does this symbolize"),
		Keyword("what does it mean"),
		Keyword("analyze this"),
		Keyword("interpretation of"),
		Keyword("theme of"),
		Keyword("symbolism in"),
		Keyword("metaphor in"),
		Keyword("what represents"),
		Keyword("meaning of"),
	},
}

// MathPatterns recognise arithmetic and algebra problems.
var MathPatterns = RuleSet{
	Name: "math_patterns",
	Rules: []Rule{
		Regex(`\d+\s*[+\-*/]\s*\d+`),
		Regex(`what.s\s+\d+\s*[+\-*/]`),
		Regex(`whats\s+\d+\s*[+\-*/]`),
		Regex(`\d+\s*(times|plus|minus|divided by)\s*\d+`),
		Regex(`f\(x\)\s*=`),
		Regex(`y\s*=\s*\w+`),
		Regex(`solve\s+for\s+\w+`),
		Regex(`find\s+the\s+(derivative|integral|limit)`),
		Regex(`what.s\s+the\s+(slope|intercept)`),
		Regex(`calculate\s+the`),
		Regex(`\w+\^\d+`),
		Regex(`what\s+is\s+\d+`),
		Regex(`whats\s+\d+`),
	},
}

// LiteraturePatterns recognise requests for ready-made literary analysis.
var LiteraturePatterns = RuleSet{
	Name: "literature_patterns",
	Rules: []Rule{
		Regex(`literary\s+devices?`),
		Regex(`what\s+does.*symbolize`),
		Regex(`what\s+does.*represent`),
		Regex(`what\s+does.*mean`),
		Regex(`symbolism\s+in`),
		Regex(`metaphor\s+in`),
		Regex(`theme\s+of`),
		Regex(`analyze.*poem`),
		Regex(`interpretation\s+of`),
	},
}

// FactualPatterns recognise who/what/when/where style lookups.
var FactualPatterns = RuleSet{
	Name: "factual_patterns",
	Rules: []Rule{
		Regex(`who is (the )?(current |present )?\w+`),
		Regex(`what is (the )?(current |present )?\w+`),
		Regex(`when (did|was|is|does) \w+`),
		Regex(`where is \w+`),
		Regex(`how many \w+`),
		Regex(`which country \w+`),
		Regex(`what year \w+`),
		Regex(`when did .* conquer`),
		Regex(`when was .* conquered`),
		Regex(`when did .* happen`),
		Regex(`what date \w+`),
		Regex(`in what year \w+`),
	},
}

// FactualKeywords are real-world topics that usually have a verifiable answer.
var FactualKeywords = RuleSet{
	Name: "factual_keywords",
	Rules: []Rule{
		Keyword("president"), Keyword("capital"), Keyword("population"), Keyword("currency"), Keyword("language"),
		Keyword("founded"), Keyword("established"), Keyword("born"), Keyword("died"), Keyword("invented"),
		Keyword("discovered"), Keyword("country"), Keyword("city"), Keyword("continent"), Keyword("ocean"),
		Keyword("conquered"), Keyword("conquer"), Keyword("battle"), Keyword("war"), Keyword("empire"),
		Keyword("sultan"), Keyword("king"), Keyword("emperor"), Keyword("dynasty"), Keyword("reign"),
		Keyword("independence"), Keyword("revolution"), Keyword("treaty"), Keyword("date"), Keyword("year"),
	},
}

var (
	directAnswerMatcher = MustCompile(HomeworkKeywords, MathPatterns, LiteraturePatterns)
	factualMatcher      = MustCompile(FactualPatterns, FactualKeywords)
)

// Result holds both judgments for one message.
// IsFactualQuestion is always false when IsDirectAnswerRequest is true.
type Result struct {
	IsDirectAnswerRequest bool `json:"is_direct_answer_request"`
	IsFactualQuestion     bool `json:"is_factual_question"`
}

// Classify computes both judgments for text.
func Classify(text string) Result {
	if IsDirectAnswerRequest(text) {
		return Result{IsDirectAnswerRequest: true}
	}
	_, factual := factualMatcher.Match(strings.ToLower(text))
	return Result{IsFactualQuestion: factual}
}

// IsDirectAnswerRequest reports whether text looks like a request for a finished homework answer.
func IsDirectAnswerRequest(text string) bool {
	_, ok := directAnswerMatcher.Match(strings.ToLower(text))
	return ok
}

// IsFactualQuestion reports whether text looks like a factual lookup.
// Homework-style phrasing always wins: a direct-answer request is never factual.
func IsFactualQuestion(text string) bool {
	return Classify(text).IsFactualQuestion
}

// Explain returns the first rule that made text a direct-answer request, if any.
func Explain(text string) (Hit, bool) {
	return directAnswerMatcher.Match(strings.ToLower(text))
}

const (
	guideLearningTag = "[GUIDE LEARNING] Student asking for homework help: "
	factualTag       = "[FACTUAL QUESTION] Provide direct answer then educational context: "
)

// ContextTag prefixes text with a bracketed hint describing its classification.
// Text that is neither kind is returned unchanged.
//
// The relay does not send tagged text upstream; the model receives the raw
// message. Wiring this in is a product decision that has not been made.
func ContextTag(text string) string {
	r := Classify(text)
	switch {
	case r.IsDirectAnswerRequest:
		return guideLearningTag + text
	case r.IsFactualQuestion:
		return factualTag + text
	}
	return text
}

// Recommendation is the advice returned alongside a classification.
func Recommendation(isDirect bool) string {
	if isDirect {
		return "Reframe as learning opportunity"
	}
	return "Safe to answer educationally"
}
