package layout

import (
	"strings"
	"testing"
)

func validEdgeLayout() *EdgeLayout {
	return &EdgeLayout{
		ID:   "valid",
		Name: "Valid",
		Edges: append(BoundaryEdges(),
			Edge{ID: "v0", Type: EdgeVertical, Position: 0.5, Start: 0, Length: 1},
		),
		Regions: []Region{
			{Left: EdgeIDLeft, Right: "v0", Top: EdgeIDTop, Bottom: EdgeIDBottom},
			{Left: "v0", Right: EdgeIDRight, Top: EdgeIDTop, Bottom: EdgeIDBottom},
		},
	}
}

func TestValidateEdgeLayout_Valid(t *testing.T) {
	if err := ValidateEdgeLayout(validEdgeLayout()); err != nil {
		t.Fatalf("expected valid layout, got %v", err)
	}
}

func TestValidateEdgeLayout_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(el *EdgeLayout)
		wantSub string
	}{
		{
			name:    "nil edges collection",
			mutate:  func(el *EdgeLayout) { el.Edges = nil },
			wantSub: "no edges collection",
		},
		{
			name:    "nil regions collection",
			mutate:  func(el *EdgeLayout) { el.Regions = nil },
			wantSub: "no regions collection",
		},
		{
			name: "missing bottom boundary",
			mutate: func(el *EdgeLayout) {
				kept := el.Edges[:0]
				for _, e := range el.Edges {
					if e.ID != EdgeIDBottom {
						kept = append(kept, e)
					}
				}
				el.Edges = kept
			},
			wantSub: `missing boundary edge "bottom"`,
		},
		{
			name: "position above range",
			mutate: func(el *EdgeLayout) {
				for i := range el.Edges {
					if el.Edges[i].ID == "v0" {
						el.Edges[i].Position = 1.5
					}
				}
			},
			wantSub: "outside [0,1]",
		},
		{
			name: "position below range",
			mutate: func(el *EdgeLayout) {
				for i := range el.Edges {
					if el.Edges[i].ID == "v0" {
						el.Edges[i].Position = -0.1
					}
				}
			},
			wantSub: "outside [0,1]",
		},
		{
			name:    "dangling region reference",
			mutate:  func(el *EdgeLayout) { el.Regions[1].Right = "v7" },
			wantSub: `unknown edge "v7"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			el := validEdgeLayout()
			tt.mutate(el)
			err := ValidateEdgeLayout(el)
			if err == nil {
				t.Fatalf("expected validation failure")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q does not mention %q", err, tt.wantSub)
			}
		})
	}
}

func TestValidateEdgeLayout_Nil(t *testing.T) {
	if err := ValidateEdgeLayout(nil); err == nil {
		t.Fatalf("expected error for nil layout")
	}
}
