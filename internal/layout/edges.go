package layout

import (
	"fmt"
	"math"
	"sort"
)

// fragment is one zone side before merging: a candidate piece of an
// interior edge at a shared position.
type fragment struct {
	position float64
	start    float64
	end      float64
}

// groupKey identifies fragments that lie on the same boundary line. The
// position is rounded to 4 decimals so zones aligned within tolerance land
// in the same group without going through string formatting.
type groupKey struct {
	typ EdgeType
	pos int64
}

func keyFor(typ EdgeType, position float64) groupKey {
	return groupKey{typ: typ, pos: int64(math.Round(position * 10000))}
}

// onScreenBorder reports whether a coordinate coincides with the screen
// edge at 0 or 1. Sides on the border resolve directly to a fixed boundary
// edge and produce no interior fragment.
func onScreenBorder(p float64) bool {
	return p <= Tolerance || p >= 1-Tolerance
}

// ZonesToEdges converts a zone layout into its edge-based editing
// representation. The returned layout always contains the four fixed
// boundary edges; interior edges are synthesized by merging aligned zone
// sides into maximal contiguous runs, so a border shared by neighboring
// zones becomes a single edge. Zones whose sides cannot be resolved to an
// edge are omitted from the regions and recorded in the report.
func ZonesToEdges(zl *ZoneLayout) (*EdgeLayout, *Report) {
	report := &Report{}
	el := &EdgeLayout{
		ID:      zl.ID,
		Name:    zl.Name,
		Edges:   BoundaryEdges(),
		Regions: []Region{},
	}

	// Collect interior fragments from every zone side that is not on the
	// screen border.
	groups := make(map[groupKey][]fragment)
	add := func(typ EdgeType, position, start, end float64) {
		if onScreenBorder(position) {
			return
		}
		k := keyFor(typ, position)
		groups[k] = append(groups[k], fragment{position: position, start: start, end: end})
	}
	for _, z := range zl.Zones {
		add(EdgeVertical, z.X, z.Y, z.Y+z.H)
		add(EdgeVertical, z.X+z.W, z.Y, z.Y+z.H)
		add(EdgeHorizontal, z.Y, z.X, z.X+z.W)
		add(EdgeHorizontal, z.Y+z.H, z.X, z.X+z.W)
	}

	// Sort groups by type then position so synthesized edge ids are stable
	// across runs (map iteration order is not).
	keys := make([]groupKey, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].typ != keys[j].typ {
			return keys[i].typ == EdgeVertical
		}
		return keys[i].pos < keys[j].pos
	})

	// Merge each group's fragments into maximal contiguous runs. Fragments
	// must be sorted by start first so the overlap/adjacency test below is
	// correct. Aligned sides that touch (gap within tolerance) collapse to
	// one edge; aligned sides separated by a real gap stay distinct.
	var vCount, hCount int
	for _, k := range keys {
		frags := groups[k]
		sort.Slice(frags, func(i, j int) bool { return frags[i].start < frags[j].start })

		run := frags[0]
		flush := func() {
			var id string
			if k.typ == EdgeVertical {
				id = fmt.Sprintf("v%d", vCount)
				vCount++
			} else {
				id = fmt.Sprintf("h%d", hCount)
				hCount++
			}
			el.Edges = append(el.Edges, Edge{
				ID:       id,
				Type:     k.typ,
				Position: run.position,
				Start:    run.start,
				Length:   run.end - run.start,
			})
		}
		for _, f := range frags[1:] {
			if f.start <= run.end+Tolerance {
				if f.end > run.end {
					run.end = f.end
				}
				continue
			}
			flush()
			run = f
		}
		flush()
	}

	// Resolve every zone's four sides to edge ids. A zone with any
	// unresolvable side is dropped, not fatal: a partial layout is more
	// useful to an interactive editor than no layout.
	for i, z := range zl.Zones {
		region, err := resolveZone(el.Edges, z)
		if err != nil {
			report.drop(i, z.Name, "%v", err)
			continue
		}
		el.Regions = append(el.Regions, region)
	}

	return el, report
}

// resolveZone maps a zone's four sides to edge ids.
func resolveZone(edges []Edge, z Zone) (Region, error) {
	left, err := resolveSide(edges, EdgeVertical, z.X, z.Y, z.Y+z.H)
	if err != nil {
		return Region{}, err
	}
	right, err := resolveSide(edges, EdgeVertical, z.X+z.W, z.Y, z.Y+z.H)
	if err != nil {
		return Region{}, err
	}
	top, err := resolveSide(edges, EdgeHorizontal, z.Y, z.X, z.X+z.W)
	if err != nil {
		return Region{}, err
	}
	bottom, err := resolveSide(edges, EdgeHorizontal, z.Y+z.H, z.X, z.X+z.W)
	if err != nil {
		return Region{}, err
	}
	return Region{Name: z.Name, Left: left, Right: right, Top: top, Bottom: bottom}, nil
}

// resolveSide finds the edge a zone side lies on. Sides on the screen
// border map to the corresponding fixed edge; interior sides match the
// edge of the same type and position whose span contains the side's range
// (all comparisons within tolerance).
func resolveSide(edges []Edge, typ EdgeType, position, start, end float64) (string, error) {
	if position <= Tolerance {
		if typ == EdgeVertical {
			return EdgeIDLeft, nil
		}
		return EdgeIDTop, nil
	}
	if position >= 1-Tolerance {
		if typ == EdgeVertical {
			return EdgeIDRight, nil
		}
		return EdgeIDBottom, nil
	}

	for _, e := range edges {
		if e.Type != typ || e.Fixed {
			continue
		}
		if math.Abs(e.Position-position) > Tolerance {
			continue
		}
		if e.Start <= start+Tolerance && e.End() >= end-Tolerance {
			return e.ID, nil
		}
	}
	return "", fmt.Errorf("no %s edge at position %.4f containing range [%.4f, %.4f]", typ, position, start, end)
}
