// Package relay forwards a student's message to the primary model, falls
// back to the secondary one, and streams whatever comes back to the client.
package relay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ziadkadry99/edubot/internal/llm"
	"github.com/ziadkadry99/edubot/internal/logger"
	"github.com/ziadkadry99/edubot/internal/prompts"
)

// chunkSize is the read buffer for forwarding upstream bytes.
const chunkSize = 32 * 1024

// Caller performs one streamed upstream call. *llm.Gateway implements it.
type Caller interface {
	CallModel(ctx context.Context, req llm.CallRequest) (*llm.Outcome, error)
}

type state int

const (
	attemptPrimary state = iota
	attemptSecondary
	emitFallback
	done
)

// Relay runs the primary -> secondary -> fallback sequence for one message.
// It holds no per-request state and is safe for concurrent use.
type Relay struct {
	caller   Caller
	cfg      llm.GatewayConfig
	preamble string
	log      *slog.Logger
}

// New creates a Relay. cfg supplies the two targets and the sampling defaults.
func New(caller Caller, cfg llm.GatewayConfig, log *slog.Logger) *Relay {
	if log == nil {
		log = slog.Default()
	}
	return &Relay{
		caller:   caller,
		cfg:      cfg,
		preamble: prompts.Tutor,
		log:      log,
	}
}

// Stream answers userText into sink. It returns nil once a terminal event
// or the full upstream body has been written; a non-nil error is for
// logging only, since whatever the client will see has already been sent.
func (rl *Relay) Stream(ctx context.Context, sink Sink, userText string, temperature float64, maxTokens int) (err error) {
	defer func() {
		if p := recover(); p != nil {
			msg := fmt.Sprintf("Unexpected error: %v", p)
			rl.log.ErrorContext(ctx, "relay panic", "panic", p)
			_ = sink.Event(errorEvent{Error: msg})
			err = errors.New(msg)
		}
	}()

	if temperature == 0 {
		temperature = rl.cfg.Sampling.Temperature
	}
	if maxTokens == 0 {
		maxTokens = rl.cfg.Sampling.MaxTokens
	}

	var (
		lastTransportErr error
		allTransport     = true
	)
	for st := attemptPrimary; st != done; {
		switch st {
		case attemptPrimary, attemptSecondary:
			target := rl.cfg.Primary
			if st == attemptSecondary {
				target = rl.cfg.Secondary
			}
			rl.log.InfoContext(ctx, "calling model", "model", target.Name, "id", target.ID)

			out, callErr := rl.caller.CallModel(ctx, llm.CallRequest{
				Target:      target,
				Preamble:    rl.preamble,
				UserText:    userText,
				Temperature: temperature,
				MaxTokens:   maxTokens,
			})
			switch {
			case callErr != nil:
				if ctx.Err() != nil {
					return ctx.Err()
				}
				lastTransportErr = callErr
				rl.log.WarnContext(ctx, "model unreachable", "model", target.Name, logger.Err(callErr))
			case !out.OK():
				allTransport = false
				rl.log.WarnContext(ctx, "model failed",
					"model", target.Name,
					"status", out.StatusCode,
					"body", out.Diagnostic(),
				)
			default:
				rl.log.InfoContext(ctx, "streaming response", "model", target.Name)
				return rl.forward(ctx, sink, out)
			}
			st++

		case emitFallback:
			if allTransport {
				msg := fmt.Sprintf("Connection error to APIs: %v", lastTransportErr)
				rl.log.ErrorContext(ctx, "all models unreachable", logger.Err(lastTransportErr))
				return sink.Event(errorEvent{Error: msg})
			}
			rl.log.ErrorContext(ctx, "all models failed, sending fallback text")
			if err := sink.Event(newContentEvent(FallbackText)); err != nil {
				return err
			}
			if err := sink.Done(); err != nil {
				return err
			}
			st = done
		}
	}
	return nil
}

// forward copies the upstream body to sink in arrival order, flushing each chunk.
func (rl *Relay) forward(ctx context.Context, sink Sink, out *llm.Outcome) error {
	defer out.Body.Close()

	buf := make([]byte, chunkSize)
	for {
		n, readErr := out.Body.Read(buf)
		if n > 0 {
			if err := sink.Write(buf[:n]); err != nil {
				// Client went away.
				return fmt.Errorf("writing to client: %w", err)
			}
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			rl.log.ErrorContext(ctx, "upstream stream broken", "model", out.Target.Name, logger.Err(readErr))
			return sink.Event(errorEvent{Error: fmt.Sprintf("Connection error to APIs: %v", readErr)})
		}
	}
}
