package relay

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/edubot/internal/classifier"
	"github.com/ziadkadry99/edubot/internal/logger"
)

// previewLen bounds how much of a student message is logged.
const previewLen = 100

// RegisterRoutes mounts the relay endpoints. /chat goes on stream, which
// must not carry a request timeout; /analyze-question goes on r.
func RegisterRoutes(r, stream chi.Router, rl *Relay) {
	stream.Post("/chat", chatHandler(rl))
	r.Post("/analyze-question", analyzeHandler())
}

func chatHandler(rl *Relay) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorEvent{Error: "invalid request body"})
			return
		}
		userText, err := req.Validate()
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorEvent{Error: err.Error()})
			return
		}

		var (
			temperature float64
			maxTokens   int
		)
		if req.Temperature != nil {
			temperature = *req.Temperature
		}
		if req.MaxTokens != nil {
			maxTokens = *req.MaxTokens
		}

		sink, err := NewSSEWriter(w)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, errorEvent{Error: "streaming not supported"})
			return
		}

		rl.log.InfoContext(r.Context(), "processing message", "preview", preview(userText))
		if err := rl.Stream(r.Context(), sink, userText, temperature, maxTokens); err != nil {
			rl.log.DebugContext(r.Context(), "stream ended early", logger.Err(err))
		}
	}
}

func analyzeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, errorEvent{Error: "invalid request body"})
			return
		}
		if len(req.Messages) == 0 {
			writeJSON(w, http.StatusBadRequest, errorEvent{Error: ErrNoMessages.Error()})
			return
		}

		result := classifier.Classify(req.Messages[len(req.Messages)-1].Content)
		writeJSON(w, http.StatusOK, AnalyzeResponse{
			IsDirectAnswerRequest: result.IsDirectAnswerRequest,
			IsFactualQuestion:     result.IsFactualQuestion,
			Recommendation:        classifier.Recommendation(result.IsDirectAnswerRequest),
		})
	}
}

func preview(s string) string {
	r := []rune(s)
	if len(r) <= previewLen {
		return s
	}
	return string(r[:previewLen]) + "..."
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
