package mcp

import "github.com/mark3labs/mcp-go/mcp"

// analyzeQuestionTool defines the analyze_question MCP tool.
var analyzeQuestionTool = mcp.NewTool("analyze_question",
	mcp.WithDescription("Classify a student message as a direct-answer request, a factual question, or neither, and explain which rule matched."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The student's message"),
	),
)

// filterAnswerTool defines the filter_answer MCP tool.
var filterAnswerTool = mcp.NewTool("filter_answer",
	mcp.WithDescription("Strip bare numeric answers from a tutor reply when the student's question asked for a finished answer."),
	mcp.WithString("answer",
		mcp.Required(),
		mcp.Description("The tutor reply to filter"),
	),
	mcp.WithString("question",
		mcp.Required(),
		mcp.Description("The student message the reply answers"),
	),
)
