package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/zoned/internal/config"
	"github.com/1broseidon/zoned/internal/store"
)

const (
	ServerName    = "zoned"
	ServerVersion = "0.1.0"
)

// Server is the MCP server exposing the zoned layout library and converter
// to agents over stdio.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	layouts   *store.Store
}

// NewServer creates a new MCP server backed by the default layout store.
func NewServer(cfg *config.Config) (*Server, error) {
	layouts, err := store.Default()
	if err != nil {
		return nil, fmt.Errorf("failed to open layout store: %w", err)
	}
	return newServer(cfg, layouts), nil
}

func newServer(cfg *config.Config, layouts *store.Store) *Server {
	s := &Server{
		config:  cfg,
		layouts: layouts,
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_layouts",
		Description: "List all available zone layouts: builtin and config-defined names, stored layout ids, and the configured default.",
	}, s.handleListLayouts)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "get_layout",
		Description: "Fetch a zone layout by name. Stored layouts take precedence over config-defined and builtin ones.",
	}, s.handleGetLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "save_layout",
		Description: "Store a zone layout in the layout library. The layout is first converted to its edge representation; layouts with unresolvable zones are rejected.",
	}, s.handleSaveLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "delete_layout",
		Description: "Delete a stored zone layout by id.",
	}, s.handleDeleteLayout)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "convert_to_edges",
		Description: "Convert a zone layout into its edge-based editing representation: shared borders become single identified edges, and each zone becomes a region of four edge references. Zones that cannot be resolved are reported as dropped, not fatal.",
	}, s.handleConvertToEdges)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "convert_to_zones",
		Description: "Reconstruct a zone layout from an edge layout by resolving each region's four edge references back into rectangle coordinates. Regions referencing missing edges are reported as dropped.",
	}, s.handleConvertToZones)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "validate_edge_layout",
		Description: "Structurally validate an edge layout before trusting it: collections present, boundary edges present, positions in range, region references resolvable.",
	}, s.handleValidateEdgeLayout)
}
