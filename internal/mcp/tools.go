package mcp

import (
	"context"
	"fmt"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/zoned/internal/layout"
)

func (s *Server) handleListLayouts(_ context.Context, _ *mcpsdk.CallToolRequest, _ ListLayoutsInput) (*mcpsdk.CallToolResult, ListLayoutsOutput, error) {
	stored, err := s.layouts.List()
	if err != nil {
		return nil, ListLayoutsOutput{}, fmt.Errorf("failed to list stored layouts: %w", err)
	}
	return nil, ListLayoutsOutput{
		Builtin:       s.config.LayoutNames(),
		Stored:        stored,
		DefaultLayout: s.config.DefaultLayout,
	}, nil
}

func (s *Server) handleGetLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args GetLayoutInput) (*mcpsdk.CallToolResult, GetLayoutOutput, error) {
	if zl, err := s.layouts.Read(args.Name); err == nil {
		return nil, GetLayoutOutput{Layout: *zl}, nil
	}
	zl, err := s.config.GetLayout(args.Name)
	if err != nil {
		return nil, GetLayoutOutput{}, err
	}
	return nil, GetLayoutOutput{Layout: *zl}, nil
}

func (s *Server) handleSaveLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args SaveLayoutInput) (*mcpsdk.CallToolResult, SaveLayoutOutput, error) {
	zl := args.Layout
	if zl.ID == "" {
		return nil, SaveLayoutOutput{}, fmt.Errorf("layout id is required")
	}
	if _, report := layout.ZonesToEdges(&zl); !report.Clean() {
		return nil, SaveLayoutOutput{}, fmt.Errorf("layout has unresolvable zones: %+v", report.Dropped)
	}
	if err := s.layouts.Write(&zl); err != nil {
		return nil, SaveLayoutOutput{}, err
	}
	return nil, SaveLayoutOutput{ID: zl.ID, ZoneCount: len(zl.Zones)}, nil
}

func (s *Server) handleDeleteLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args DeleteLayoutInput) (*mcpsdk.CallToolResult, DeleteLayoutOutput, error) {
	if err := s.layouts.Delete(args.Name); err != nil {
		return nil, DeleteLayoutOutput{}, err
	}
	return nil, DeleteLayoutOutput{Deleted: true}, nil
}

func (s *Server) handleConvertToEdges(_ context.Context, _ *mcpsdk.CallToolRequest, args ConvertToEdgesInput) (*mcpsdk.CallToolResult, ConvertToEdgesOutput, error) {
	el, report := layout.ZonesToEdges(&args.Layout)
	return nil, ConvertToEdgesOutput{Layout: *el, Dropped: report.Dropped}, nil
}

func (s *Server) handleConvertToZones(_ context.Context, _ *mcpsdk.CallToolRequest, args ConvertToZonesInput) (*mcpsdk.CallToolResult, ConvertToZonesOutput, error) {
	if err := layout.ValidateEdgeLayout(&args.Layout); err != nil {
		return nil, ConvertToZonesOutput{}, fmt.Errorf("edge layout is invalid: %w", err)
	}
	zl, report := layout.EdgesToZones(&args.Layout)
	return nil, ConvertToZonesOutput{Layout: *zl, Dropped: report.Dropped}, nil
}

func (s *Server) handleValidateEdgeLayout(_ context.Context, _ *mcpsdk.CallToolRequest, args ValidateEdgeLayoutInput) (*mcpsdk.CallToolResult, ValidateEdgeLayoutOutput, error) {
	if err := layout.ValidateEdgeLayout(&args.Layout); err != nil {
		return nil, ValidateEdgeLayoutOutput{Valid: false, Error: err.Error()}, nil
	}
	return nil, ValidateEdgeLayoutOutput{Valid: true}, nil
}
