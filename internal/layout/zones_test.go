package layout

import (
	"math"
	"testing"
)

func twoColumnEdgeLayout() *EdgeLayout {
	return &EdgeLayout{
		ID:   "cols",
		Name: "Columns",
		Edges: append(BoundaryEdges(),
			Edge{ID: "v0", Type: EdgeVertical, Position: 0.3, Start: 0, Length: 1},
		),
		Regions: []Region{
			{Name: "sidebar", Left: EdgeIDLeft, Right: "v0", Top: EdgeIDTop, Bottom: EdgeIDBottom},
			{Name: "main", Left: "v0", Right: EdgeIDRight, Top: EdgeIDTop, Bottom: EdgeIDBottom},
		},
	}
}

func TestEdgesToZones_ResolvesRegions(t *testing.T) {
	zl, report := EdgesToZones(twoColumnEdgeLayout())
	if !report.Clean() {
		t.Fatalf("unexpected dropped regions: %+v", report.Dropped)
	}
	if len(zl.Zones) != 2 {
		t.Fatalf("expected 2 zones, got %d", len(zl.Zones))
	}

	sidebar := zl.Zones[0]
	if sidebar.Name != "sidebar" {
		t.Errorf("expected name %q, got %q", "sidebar", sidebar.Name)
	}
	if sidebar.X != 0 || sidebar.Y != 0 || math.Abs(sidebar.W-0.3) > Tolerance || sidebar.H != 1 {
		t.Errorf("sidebar = %+v, want {0 0 0.3 1}", sidebar)
	}

	main := zl.Zones[1]
	if math.Abs(main.X-0.3) > Tolerance || math.Abs(main.W-0.7) > Tolerance {
		t.Errorf("main = %+v, want x=0.3 w=0.7", main)
	}
}

func TestEdgesToZones_DefaultsZoneNames(t *testing.T) {
	el := twoColumnEdgeLayout()
	el.Regions[0].Name = ""
	el.Regions[1].Name = ""

	zl, report := EdgesToZones(el)
	if !report.Clean() {
		t.Fatalf("unexpected dropped regions: %+v", report.Dropped)
	}
	if zl.Zones[0].Name != "Zone 1" || zl.Zones[1].Name != "Zone 2" {
		t.Errorf("expected default names Zone 1/Zone 2, got %q and %q", zl.Zones[0].Name, zl.Zones[1].Name)
	}
}

func TestEdgesToZones_DropsRegionWithMissingEdge(t *testing.T) {
	el := twoColumnEdgeLayout()
	el.Regions[1].Right = "v9"

	zl, report := EdgesToZones(el)
	if len(zl.Zones) != 1 {
		t.Fatalf("expected the resolvable region to survive, got %d zones", len(zl.Zones))
	}
	if zl.Zones[0].Name != "sidebar" {
		t.Errorf("wrong region dropped: kept %q", zl.Zones[0].Name)
	}
	if len(report.Dropped) != 1 {
		t.Fatalf("expected 1 dropped region, got %+v", report.Dropped)
	}
	d := report.Dropped[0]
	if d.Index != 1 || d.Name != "main" {
		t.Errorf("dropped = %+v, want index 1 name %q", d, "main")
	}
}

func TestEdgesToZones_EmptyRegions(t *testing.T) {
	el := &EdgeLayout{ID: "empty", Edges: BoundaryEdges(), Regions: []Region{}}
	zl, report := EdgesToZones(el)
	if !report.Clean() {
		t.Fatalf("unexpected report: %+v", report.Dropped)
	}
	if len(zl.Zones) != 0 {
		t.Fatalf("expected no zones, got %d", len(zl.Zones))
	}
}
