package tui

import (
	"testing"

	"github.com/1broseidon/zoned/internal/layout"
	"github.com/1broseidon/zoned/internal/store"
)

func thirdsEditor(t *testing.T) *Editor {
	t.Helper()
	zl := &layout.ZoneLayout{
		ID:   "thirds",
		Name: "Thirds",
		Zones: []layout.Zone{
			{Name: "left", X: 0, Y: 0, W: 1.0 / 3, H: 1},
			{Name: "center", X: 1.0 / 3, Y: 0, W: 1.0 / 3, H: 1},
			{Name: "right", X: 2.0 / 3, Y: 0, W: 1.0 / 3, H: 1},
		},
	}
	return NewEditor(store.New(t.TempDir()), zl, 0.2)
}

func TestEditorNudgeStopsAtNeighboringEdge(t *testing.T) {
	e := thirdsEditor(t)

	edge := e.selectedEdge()
	if edge == nil || edge.ID != "v0" {
		t.Fatalf("expected v0 selected, got %+v", edge)
	}

	// Push hard to the right: the edge must stop short of v1 at 2/3, not
	// cross it.
	for i := 0; i < 10; i++ {
		e.nudge(layout.EdgeVertical, e.step)
	}
	limit := 2.0/3 - 0.01
	if edge.Position > limit+1e-9 {
		t.Fatalf("edge crossed its neighbor: position %v, limit %v", edge.Position, limit)
	}
	if edge.Position <= 0.5 {
		t.Errorf("edge did not move right: position %v", edge.Position)
	}

	// No region between the edges may have collapsed or inverted.
	zl, report := layout.EdgesToZones(e.el)
	if !report.Clean() {
		t.Fatalf("unexpected dropped regions: %+v", report.Dropped)
	}
	for _, z := range zl.Zones {
		if z.W <= 0 || z.H <= 0 {
			t.Errorf("zone %q degenerated to %vx%v", z.Name, z.W, z.H)
		}
	}
}

func TestEditorNudgeStopsAtScreenBorder(t *testing.T) {
	e := thirdsEditor(t)
	edge := e.selectedEdge()

	for i := 0; i < 10; i++ {
		e.nudge(layout.EdgeVertical, -e.step)
	}
	if edge.Position != 0.01 {
		t.Errorf("expected edge clamped at 0.01, got %v", edge.Position)
	}
}

func TestEditorNudgeIgnoresWrongAxis(t *testing.T) {
	e := thirdsEditor(t)
	edge := e.selectedEdge()
	before := edge.Position

	e.nudge(layout.EdgeHorizontal, e.step)
	if edge.Position != before {
		t.Errorf("vertical edge moved on a horizontal nudge: %v -> %v", before, edge.Position)
	}
	if e.dirty {
		t.Errorf("editor marked dirty without a move")
	}
}
