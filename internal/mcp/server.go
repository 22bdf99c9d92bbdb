// ABOUTME: MCP server setup for the activity ledger.
// ABOUTME: Wraps the MCP server with a Ledger service connection.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/mtendies/ledger/internal/ledger"
)

// Server wraps the MCP server with ledger access.
type Server struct {
	mcpServer *mcp.Server
	ledger    *ledger.Ledger
}

// NewServer creates a new MCP server over the given ledger.
func NewServer(l *ledger.Ledger) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "ledger",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		ledger:    l,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
