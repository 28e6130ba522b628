package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewNamefixMCPServer creates a new MCP server with all namefix tools and
// resources registered. Paths passed to tools are resolved against
// projectPath and may not leave it.
func NewNamefixMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"namefix",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
