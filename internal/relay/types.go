package relay

import (
	"errors"

	"github.com/ziadkadry99/edubot/internal/llm"
)

// Validation errors are reported as 400 before any upstream call.
var (
	ErrNoMessages  = errors.New("no messages provided")
	ErrLastNotUser = errors.New("last message must be from user")
)

// ChatRequest is the body of POST /chat and POST /analyze-question.
// Zero or absent sampling values fall back to configured defaults.
type ChatRequest struct {
	Messages    []llm.Message `json:"messages"`
	Temperature *float64      `json:"temperature,omitempty"`
	MaxTokens   *int          `json:"max_tokens,omitempty"`
}

// Validate checks the conversation and returns the text of the final user message.
func (r ChatRequest) Validate() (string, error) {
	if len(r.Messages) == 0 {
		return "", ErrNoMessages
	}
	last := r.Messages[len(r.Messages)-1]
	if last.Role != llm.RoleUser {
		return "", ErrLastNotUser
	}
	return last.Content, nil
}

// AnalyzeResponse is returned by POST /analyze-question.
type AnalyzeResponse struct {
	IsDirectAnswerRequest bool   `json:"is_direct_answer_request"`
	IsFactualQuestion     bool   `json:"is_factual_question"`
	Recommendation        string `json:"recommendation"`
}

// FallbackText is sent as a single content event when no model answered.
const FallbackText = "I'm having trouble connecting to my AI models right now. However, I can still help guide your learning! What subject are you working on? I can ask you guiding questions to help you think through the problem yourself."

// contentEvent mirrors the delta shape of an OpenAI streaming chunk.
type contentEvent struct {
	Choices []contentChoice `json:"choices"`
}

type contentChoice struct {
	Delta contentDelta `json:"delta"`
}

type contentDelta struct {
	Content string `json:"content"`
}

func newContentEvent(text string) contentEvent {
	return contentEvent{Choices: []contentChoice{{Delta: contentDelta{Content: text}}}}
}

type errorEvent struct {
	Error string `json:"error"`
}
