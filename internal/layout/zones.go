package layout

import "fmt"

// EdgesToZones reconstructs a zone layout from an edge layout by resolving
// each region's four edge references back into rectangle coordinates. It is
// the structural inverse of ZonesToEdges and performs no merging or
// tolerance-sensitive search; callers should run ValidateEdgeLayout first.
// Regions referencing a missing edge are omitted and recorded in the report.
func EdgesToZones(el *EdgeLayout) (*ZoneLayout, *Report) {
	report := &Report{}
	zl := &ZoneLayout{ID: el.ID, Name: el.Name}

	byID := make(map[string]Edge, len(el.Edges))
	for _, e := range el.Edges {
		byID[e.ID] = e
	}

	for i, r := range el.Regions {
		left, right, top, bottom, missing := lookupEdges(byID, r)
		if missing != "" {
			report.drop(i, r.Name, "region references missing edge %q", missing)
			continue
		}

		name := r.Name
		if name == "" {
			name = fmt.Sprintf("Zone %d", i+1)
		}
		zl.Zones = append(zl.Zones, Zone{
			Name: name,
			X:    left.Position,
			Y:    top.Position,
			W:    right.Position - left.Position,
			H:    bottom.Position - top.Position,
		})
	}

	return zl, report
}

// lookupEdges fetches a region's four edges, returning the first missing
// reference's id when one is absent.
func lookupEdges(byID map[string]Edge, r Region) (left, right, top, bottom Edge, missing string) {
	var ok bool
	if left, ok = byID[r.Left]; !ok {
		return left, right, top, bottom, r.Left
	}
	if right, ok = byID[r.Right]; !ok {
		return left, right, top, bottom, r.Right
	}
	if top, ok = byID[r.Top]; !ok {
		return left, right, top, bottom, r.Top
	}
	if bottom, ok = byID[r.Bottom]; !ok {
		return left, right, top, bottom, r.Bottom
	}
	return left, right, top, bottom, ""
}
