package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes the question classifier and the
// answer filter as tools.
type Server struct {
	mcp *server.MCPServer
}

// NewServer creates a new MCP server with every tool registered.
func NewServer() *Server {
	s := &Server{}

	s.mcp = server.NewMCPServer(
		"edubot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(analyzeQuestionTool, s.handleAnalyzeQuestion)
	s.mcp.AddTool(filterAnswerTool, s.handleFilterAnswer)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
