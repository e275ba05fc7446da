package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/PaulaAdelKamal/samsung-smartthings-mcp/pkg/gateway"
)

// Server wraps the MCP server with the SmartThings device gateway
type Server struct {
	mcpServer  *server.MCPServer
	controller gateway.Controller
}

// NewServer creates a new MCP server exposing the TV control tools
func NewServer(controller gateway.Controller) *Server {
	s := &Server{
		controller: controller,
	}

	s.mcpServer = server.NewMCPServer(
		"smartthings-mcp",
		"1.0.0",
		server.WithToolCapabilities(true),
	)

	s.registerTools()

	return s
}

// ServeStdio starts the MCP server using stdio transport.
// Stdout belongs to the protocol; logging must go to stderr.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
