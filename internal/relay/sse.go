package relay

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Sink receives the event stream for one client.
type Sink interface {
	// Write forwards raw upstream bytes unchanged.
	Write(p []byte) error
	// Event writes v as a single "data: <json>" event.
	Event(v any) error
	// Done writes the terminal "data: [DONE]" event.
	Done() error
}

// SSEWriter is a Sink over an http.ResponseWriter. Every write is flushed.
type SSEWriter struct {
	w       io.Writer
	flusher http.Flusher
}

// NewSSEWriter sets the event-stream headers on w and returns a sink for it.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("response writer does not implement http.Flusher")
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()
	return &SSEWriter{w: w, flusher: flusher}, nil
}

func (s *SSEWriter) Write(p []byte) error {
	if _, err := s.w.Write(p); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

func (s *SSEWriter) Event(v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding event: %w", err)
	}
	return s.Write([]byte("data: " + string(b) + "\n\n"))
}

func (s *SSEWriter) Done() error {
	return s.Write([]byte("data: [DONE]\n\n"))
}
