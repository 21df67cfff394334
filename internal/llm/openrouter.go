package llm

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// OpenRouterProvider implements Provider for one target using the
// OpenAI-compatible API at the configured endpoint.
type OpenRouterProvider struct {
	client   *openai.Client
	target   Target
	sampling Sampling
}

// NewOpenRouterProvider creates a provider that completes against target.
func NewOpenRouterProvider(cfg GatewayConfig, target Target) *OpenRouterProvider {
	oc := openai.DefaultConfig(cfg.APIKey)
	oc.BaseURL = baseURL(cfg.URL)
	oc.HTTPClient = &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &attributionTransport{cfg: cfg, next: http.DefaultTransport},
	}
	return &OpenRouterProvider{
		client:   openai.NewClientWithConfig(oc),
		target:   target,
		sampling: cfg.Sampling,
	}
}

func (p *OpenRouterProvider) Name() string {
	return p.target.Name
}

func (p *OpenRouterProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	model := req.Model
	if model == "" {
		model = p.target.ID
	}

	maxTokens := req.MaxTokens
	if maxTokens == 0 {
		maxTokens = p.sampling.MaxTokens
	}
	temperature := req.Temperature
	if temperature == 0 {
		temperature = p.sampling.Temperature
	}

	var messages []openai.ChatCompletionMessage
	for _, msg := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	apiReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		MaxTokens:   maxTokens,
		Temperature: float32(temperature),
		TopP:        float32(p.sampling.TopP),
	}

	resp, err := p.client.CreateChatCompletion(ctx, apiReq)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", model, err)
	}

	var content, finishReason string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
		finishReason = string(resp.Choices[0].FinishReason)
	}

	return &CompletionResponse{
		Content:      content,
		InputTokens:  resp.Usage.PromptTokens,
		OutputTokens: resp.Usage.CompletionTokens,
		Model:        resp.Model,
		FinishReason: finishReason,
	}, nil
}

// attributionTransport adds the HTTP-Referer and X-Title headers that
// go-openai has no option for.
type attributionTransport struct {
	cfg  GatewayConfig
	next http.RoundTripper
}

func (t *attributionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	setAttribution(req.Header, t.cfg)
	return t.next.RoundTrip(req)
}

// baseURL strips the /chat/completions suffix that go-openai appends itself.
func baseURL(endpoint string) string {
	return strings.TrimSuffix(strings.TrimRight(endpoint, "/"), "/chat/completions")
}
