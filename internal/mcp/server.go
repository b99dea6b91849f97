// ABOUTME: MCP server setup for the workout and nutrition log stores.
// ABOUTME: Wraps the MCP server with a storage Repository and the plan catalog.
package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/philturner/fitlog/internal/plan"
	"github.com/philturner/fitlog/internal/storage"
)

// Server wraps the MCP server with storage and catalog access.
type Server struct {
	mcpServer *mcp.Server
	repo      storage.Repository
	catalog   *plan.Catalog
}

// NewServer creates a new MCP server with the given storage and catalog.
func NewServer(repo storage.Repository, catalog *plan.Catalog) (*Server, error) {
	mcpServer := mcp.NewServer(
		&mcp.Implementation{
			Name:    "fitlog",
			Version: "1.0.0",
		},
		nil,
	)

	s := &Server{
		mcpServer: mcpServer,
		repo:      repo,
		catalog:   catalog,
	}

	s.registerTools()
	s.registerResources()

	return s, nil
}

// Serve starts the MCP server using stdio transport.
func (s *Server) Serve(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcp.StdioTransport{})
}
