package mcp

import (
	"context"
	"testing"

	"github.com/1broseidon/zoned/internal/config"
	"github.com/1broseidon/zoned/internal/layout"
	"github.com/1broseidon/zoned/internal/store"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return newServer(config.DefaultConfig(), store.New(t.TempDir()))
}

func TestHandleListLayouts(t *testing.T) {
	s := newTestServer(t)
	_, out, err := s.handleListLayouts(context.Background(), nil, ListLayoutsInput{})
	if err != nil {
		t.Fatalf("list_layouts: %v", err)
	}
	if out.DefaultLayout != "halves" {
		t.Errorf("expected default halves, got %q", out.DefaultLayout)
	}
	if len(out.Builtin) == 0 {
		t.Errorf("expected builtin layouts, got none")
	}
	if len(out.Stored) != 0 {
		t.Errorf("expected empty store, got %v", out.Stored)
	}
}

func TestHandleSaveAndGetLayout(t *testing.T) {
	s := newTestServer(t)

	zl := layout.ZoneLayout{
		ID:   "sidebar",
		Name: "Sidebar",
		Zones: []layout.Zone{
			{X: 0, Y: 0, W: 0.25, H: 1},
			{X: 0.25, Y: 0, W: 0.75, H: 1},
		},
	}
	_, saved, err := s.handleSaveLayout(context.Background(), nil, SaveLayoutInput{Layout: zl})
	if err != nil {
		t.Fatalf("save_layout: %v", err)
	}
	if saved.ID != "sidebar" || saved.ZoneCount != 2 {
		t.Errorf("unexpected save output: %+v", saved)
	}

	_, got, err := s.handleGetLayout(context.Background(), nil, GetLayoutInput{Name: "sidebar"})
	if err != nil {
		t.Fatalf("get_layout: %v", err)
	}
	if got.Layout.Name != "Sidebar" {
		t.Errorf("unexpected layout: %+v", got.Layout)
	}
}

func TestHandleSaveLayout_RequiresID(t *testing.T) {
	s := newTestServer(t)
	_, _, err := s.handleSaveLayout(context.Background(), nil, SaveLayoutInput{
		Layout: layout.ZoneLayout{Zones: []layout.Zone{{X: 0, Y: 0, W: 1, H: 1}}},
	})
	if err == nil {
		t.Fatalf("expected error for layout without id")
	}
}

func TestHandleConvertRoundTrip(t *testing.T) {
	s := newTestServer(t)

	zl := layout.ZoneLayout{
		ID: "L",
		Zones: []layout.Zone{
			{X: 0, Y: 0, W: 0.5, H: 1},
			{X: 0.5, Y: 0, W: 0.5, H: 1},
		},
	}
	_, edges, err := s.handleConvertToEdges(context.Background(), nil, ConvertToEdgesInput{Layout: zl})
	if err != nil {
		t.Fatalf("convert_to_edges: %v", err)
	}
	if len(edges.Dropped) != 0 {
		t.Fatalf("unexpected dropped zones: %+v", edges.Dropped)
	}
	if len(edges.Layout.Edges) != 5 {
		t.Errorf("expected 5 edges, got %d", len(edges.Layout.Edges))
	}

	_, zones, err := s.handleConvertToZones(context.Background(), nil, ConvertToZonesInput{Layout: edges.Layout})
	if err != nil {
		t.Fatalf("convert_to_zones: %v", err)
	}
	if len(zones.Layout.Zones) != 2 {
		t.Errorf("expected 2 zones back, got %d", len(zones.Layout.Zones))
	}
}

func TestHandleValidateEdgeLayout(t *testing.T) {
	s := newTestServer(t)

	el := layout.EdgeLayout{
		ID:      "ok",
		Edges:   layout.BoundaryEdges(),
		Regions: []layout.Region{},
	}
	_, out, err := s.handleValidateEdgeLayout(context.Background(), nil, ValidateEdgeLayoutInput{Layout: el})
	if err != nil {
		t.Fatalf("validate_edge_layout: %v", err)
	}
	if !out.Valid {
		t.Errorf("expected valid, got error %q", out.Error)
	}

	el.Edges = el.Edges[:3] // drop one boundary
	_, out, err = s.handleValidateEdgeLayout(context.Background(), nil, ValidateEdgeLayoutInput{Layout: el})
	if err != nil {
		t.Fatalf("validate_edge_layout: %v", err)
	}
	if out.Valid || out.Error == "" {
		t.Errorf("expected invalid with reason, got %+v", out)
	}
}
