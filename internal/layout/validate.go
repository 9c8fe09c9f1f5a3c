package layout

import (
	"fmt"
	"math"
)

// ValidateEdgeLayout checks an edge layout structurally before it is
// trusted for reconstruction. It returns nil when the layout is valid and a
// descriptive error for the first failing check, in order: the edges and
// regions collections exist, the four boundary edges are present, every
// edge position lies in [0,1], and every region reference resolves. It does
// not check geometric consistency such as left < right.
func ValidateEdgeLayout(el *EdgeLayout) error {
	if el == nil {
		return fmt.Errorf("edge layout is nil")
	}
	if el.Edges == nil {
		return fmt.Errorf("edge layout %q has no edges collection", el.ID)
	}
	if el.Regions == nil {
		return fmt.Errorf("edge layout %q has no regions collection", el.ID)
	}

	byID := make(map[string]Edge, len(el.Edges))
	for _, e := range el.Edges {
		byID[e.ID] = e
	}
	for _, id := range []string{EdgeIDLeft, EdgeIDRight, EdgeIDTop, EdgeIDBottom} {
		if _, ok := byID[id]; !ok {
			return fmt.Errorf("edge layout %q is missing boundary edge %q", el.ID, id)
		}
	}

	for _, e := range el.Edges {
		if math.IsNaN(e.Position) || e.Position < 0 || e.Position > 1 {
			return fmt.Errorf("edge %q has position %v outside [0,1]", e.ID, e.Position)
		}
	}

	for i, r := range el.Regions {
		for _, ref := range []string{r.Left, r.Right, r.Top, r.Bottom} {
			if _, ok := byID[ref]; !ok {
				return fmt.Errorf("region %d (%q) references unknown edge %q", i, r.Name, ref)
			}
		}
	}

	return nil
}
