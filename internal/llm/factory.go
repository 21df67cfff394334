package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// NewCompleter returns a Provider that tries the primary target and then
// the secondary one.
func NewCompleter(cfg GatewayConfig) *FallbackProvider {
	return NewFallbackProvider(
		NewOpenRouterProvider(cfg, cfg.Primary),
		NewOpenRouterProvider(cfg, cfg.Secondary),
	)
}

// FallbackProvider tries each provider in order and returns the first success.
type FallbackProvider struct {
	providers []Provider
}

// NewFallbackProvider creates a FallbackProvider over providers.
func NewFallbackProvider(providers ...Provider) *FallbackProvider {
	return &FallbackProvider{providers: providers}
}

func (f *FallbackProvider) Name() string {
	names := make([]string, len(f.providers))
	for i, p := range f.providers {
		names[i] = p.Name()
	}
	return strings.Join(names, " -> ")
}

// Complete returns the first successful response. If every provider fails
// the returned error aggregates all of their errors. A request's Model is
// dropped so each provider uses its own target.
func (f *FallbackProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	if len(f.providers) == 0 {
		return nil, errors.New("no providers configured")
	}
	req.Model = ""

	var result *multierror.Error
	for _, p := range f.providers {
		resp, err := p.Complete(ctx, req)
		if err == nil {
			return resp, nil
		}
		result = multierror.Append(result, fmt.Errorf("%s: %w", p.Name(), err))
		if ctx.Err() != nil {
			break
		}
	}
	return nil, result.ErrorOrNil()
}
