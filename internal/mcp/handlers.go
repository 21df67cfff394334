package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/edubot/internal/classifier"
)

// handleAnalyzeQuestion classifies one student message.
func (s *Server) handleAnalyzeQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}
	if strings.TrimSpace(message) == "" {
		return mcp.NewToolResultError("message must not be empty"), nil
	}

	return mcp.NewToolResultText(formatAnalysis(message)), nil
}

// handleFilterAnswer runs the direct-answer filter over a reply.
func (s *Server) handleFilterAnswer(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	answer, err := request.RequireString("answer")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: answer"), nil
	}
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: question"), nil
	}

	return mcp.NewToolResultText(classifier.FilterDirectAnswers(answer, question)), nil
}

// formatAnalysis renders a classification as plain text for an agent to read.
func formatAnalysis(message string) string {
	res := classifier.Classify(message)

	var sb strings.Builder
	fmt.Fprintf(&sb, "is_direct_answer_request: %t\n", res.IsDirectAnswerRequest)
	fmt.Fprintf(&sb, "is_factual_question: %t\n", res.IsFactualQuestion)
	fmt.Fprintf(&sb, "recommendation: %s\n", classifier.Recommendation(res.IsDirectAnswerRequest))

	if hit, ok := classifier.Explain(message); ok {
		fmt.Fprintf(&sb, "matched: %s %s %q\n", hit.Set, hit.Rule.Kind, hit.Rule.Pattern)
	}
	if tagged := classifier.ContextTag(message); tagged != message {
		fmt.Fprintf(&sb, "context: %s\n", tagged)
	}
	return sb.String()
}
