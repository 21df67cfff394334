package llm

import "time"

// Role represents the role of a message sender in a conversation.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents a single message in a conversation.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest contains the parameters for a non-streaming completion.
// Zero MaxTokens or Temperature means the configured default.
type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float64
}

// CompletionResponse contains the result of a non-streaming completion.
type CompletionResponse struct {
	Content      string
	InputTokens  int
	OutputTokens int
	Model        string
	FinishReason string
}

// Target is one upstream model. ID is sent on the wire, Name is for display.
type Target struct {
	ID   string
	Name string
}

// Sampling holds default generation parameters. Zero TopP and TopK are
// not sent upstream.
type Sampling struct {
	Temperature float64
	MaxTokens   int
	TopP        float64
	TopK        int
}

// GatewayConfig is built once at startup and never mutated.
type GatewayConfig struct {
	URL       string // full chat completions endpoint
	APIKey    string
	Referer   string
	Title     string
	Timeout   time.Duration
	Sampling  Sampling
	Primary   Target
	Secondary Target
}
