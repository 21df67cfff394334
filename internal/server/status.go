package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/edubot/internal/llm"
	"github.com/ziadkadry99/edubot/internal/logger"
)

const (
	probeTimeout   = 10 * time.Second
	probeMaxTokens = 50
	probePreview   = 500
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status        string `json:"status"`
	PrimaryModel  string `json:"primary_model"`
	FallbackModel string `json:"fallback_model"`
	Mode          string `json:"mode"`
	Backend       string `json:"backend"`
}

// ModelInfoResponse is returned by GET /model-info.
type ModelInfoResponse struct {
	PrimaryModel       string `json:"primary_model"`
	FallbackModel      string `json:"fallback_model"`
	ContextWindow      string `json:"context_window"`
	Mode               string `json:"mode"`
	SystemPromptActive bool   `json:"system_prompt_active"`
	Backend            string `json:"backend"`
	FallbackEnabled    bool   `json:"fallback_enabled"`
}

// StatusResponse is returned by GET /test.
type StatusResponse struct {
	Status      string `json:"status"`
	Port        int    `json:"port"`
	APIKeySet   bool   `json:"api_key_set"`
	AdminKeySet bool   `json:"admin_key_set"`
}

// ProbeResponse is returned by GET /test-api. Error is set instead of the
// other fields when the call failed.
type ProbeResponse struct {
	Model        string `json:"model,omitempty"`
	ResponseText string `json:"response_text,omitempty"`
	OutputTokens int    `json:"output_tokens,omitempty"`
	Error        string `json:"error,omitempty"`
}

func (s *Server) registerStatusRoutes(r chi.Router) {
	r.Get("/health", s.handleHealth)
	r.Get("/model-info", s.handleModelInfo)
	r.Get("/test", s.handleStatus)
	r.Get("/test-api", s.handleProbe)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		PrimaryModel:  s.models.Primary.Name,
		FallbackModel: s.models.Secondary.Name,
		Mode:          "educational",
		Backend:       "cloud",
	})
}

func (s *Server) handleModelInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ModelInfoResponse{
		PrimaryModel:       s.models.Primary.Name,
		FallbackModel:      s.models.Secondary.Name,
		ContextWindow:      "128K tokens",
		Mode:               "Educational (Anti-Cheating)",
		SystemPromptActive: true,
		Backend:            "cloud",
		FallbackEnabled:    true,
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, StatusResponse{
		Status:      "Backend is working!",
		Port:        s.cfg.Port,
		APIKeySet:   s.cfg.APIKeySet,
		AdminKeySet: s.cfg.AdminKeySet,
	})
}

// handleProbe makes one short non-streaming call to check the upstream
// credential. Failures are reported in the body with a 200 status.
func (s *Server) handleProbe(w http.ResponseWriter, r *http.Request) {
	if !s.cfg.APIKeySet || s.llmProvider == nil {
		writeJSON(w, http.StatusOK, ProbeResponse{Error: "No API key configured"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), probeTimeout)
	defer cancel()

	resp, err := s.llmProvider.Complete(ctx, llm.CompletionRequest{
		Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Hello"}},
		MaxTokens: probeMaxTokens,
	})
	if err != nil {
		s.log.WarnContext(r.Context(), "upstream probe failed", "provider", s.llmProvider.Name(), logger.Err(err))
		writeJSON(w, http.StatusOK, ProbeResponse{Error: err.Error()})
		return
	}

	text := []rune(resp.Content)
	if len(text) > probePreview {
		text = text[:probePreview]
	}
	writeJSON(w, http.StatusOK, ProbeResponse{
		Model:        resp.Model,
		ResponseText: string(text),
		OutputTokens: resp.OutputTokens,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
