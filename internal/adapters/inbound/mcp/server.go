package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/codelens/codelens/internal/application"
)

// NewCodeLensMCPServer creates an MCP server with the analyze, fix and
// report tools registered. Services are injected so the fix tool shares
// the provider configuration with the rest of the process.
func NewCodeLensMCPServer(analyze *application.AnalyzeService, fix *application.FixService) *server.MCPServer {
	s := server.NewMCPServer(
		"codelens",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	registerTools(s, analyze, fix)

	return s
}
