package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// diagnosticLimit bounds how much of a failed response body is logged.
const diagnosticLimit = 512

// CallRequest is one streamed chat call against a single target.
type CallRequest struct {
	Target      Target
	Preamble    string
	UserText    string
	Temperature float64
	MaxTokens   int
}

// Outcome is the upstream response for a call that reached the server.
// The consumer owns Body and must close it.
type Outcome struct {
	Target     Target
	StatusCode int
	Body       io.ReadCloser
}

// OK reports whether the upstream accepted the call.
func (o *Outcome) OK() bool {
	return o.StatusCode == http.StatusOK
}

// Diagnostic reads a bounded prefix of the body for logging and closes it.
func (o *Outcome) Diagnostic() string {
	defer o.Body.Close()
	b, _ := io.ReadAll(io.LimitReader(o.Body, diagnosticLimit))
	return strings.TrimSpace(string(b))
}

// chatRequest is the streamed request body. top_p and top_k are only
// sent when configured.
type chatRequest struct {
	Model       string                         `json:"model"`
	Messages    []openai.ChatCompletionMessage `json:"messages"`
	Temperature float64                        `json:"temperature"`
	MaxTokens   int                            `json:"max_tokens"`
	TopP        float64                        `json:"top_p,omitempty"`
	TopK        int                            `json:"top_k,omitempty"`
	Stream      bool                           `json:"stream"`
}

// Gateway issues streamed chat completion calls to an OpenAI-compatible endpoint.
type Gateway struct {
	cfg    GatewayConfig
	client *http.Client
}

// NewGateway creates a Gateway. A nil client gets a transport whose
// response-header timeout is cfg.Timeout; the body itself may stream for
// as long as the caller's context allows.
func NewGateway(cfg GatewayConfig, client *http.Client) *Gateway {
	if client == nil {
		client = &http.Client{Transport: streamingTransport(cfg)}
	}
	return &Gateway{cfg: cfg, client: client}
}

// CallModel performs a single attempt against req.Target. A transport
// failure returns an error and no outcome. Any HTTP response, including
// non-200, returns an outcome whose body the caller must close.
func (g *Gateway) CallModel(ctx context.Context, req CallRequest) (*Outcome, error) {
	body := chatRequest{
		Model: req.Target.ID,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: req.Preamble},
			{Role: openai.ChatMessageRoleUser, Content: req.UserText},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
		TopP:        g.cfg.Sampling.TopP,
		TopK:        g.cfg.Sampling.TopK,
		Stream:      true,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+g.cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")
	setAttribution(httpReq.Header, g.cfg)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("calling %s: %w", req.Target.ID, err)
	}
	return &Outcome{
		Target:     req.Target,
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}, nil
}

// setAttribution adds the OpenRouter app attribution headers when configured.
func setAttribution(h http.Header, cfg GatewayConfig) {
	if cfg.Referer != "" {
		h.Set("HTTP-Referer", cfg.Referer)
	}
	if cfg.Title != "" {
		h.Set("X-Title", cfg.Title)
	}
}

func streamingTransport(cfg GatewayConfig) http.RoundTripper {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.ResponseHeaderTimeout = cfg.Timeout
	return t
}
