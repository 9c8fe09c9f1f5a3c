// Package layout implements the bidirectional conversion between the two
// layout representations used by zoned: the zone-based form (independent
// normalized rectangles, used for storage and window placement) and the
// edge-based form (shared draggable boundary lines plus regions referencing
// them, used during interactive editing).
package layout

import "fmt"

// Tolerance is the threshold, in normalized 0..1 screen units, for all
// floating-point position and adjacency comparisons. Callers generating
// near-boundary zone coordinates must stay within this tolerance of true
// alignment for shared borders to be detected as one edge.
const Tolerance = 0.001

// EdgeType distinguishes vertical from horizontal edges.
type EdgeType string

const (
	EdgeVertical   EdgeType = "vertical"
	EdgeHorizontal EdgeType = "horizontal"
)

// IDs of the four permanent screen-boundary edges. They are always present
// in an EdgeLayout, always fixed, and always span the full [0,1] range.
const (
	EdgeIDLeft   = "left"
	EdgeIDRight  = "right"
	EdgeIDTop    = "top"
	EdgeIDBottom = "bottom"
)

// Zone is one rectangular tile, normalized to [0,1] relative to the screen.
// w and h are assumed positive and x+w, y+h are assumed to stay within the
// screen; the converter does not enforce this.
type Zone struct {
	Name string  `json:"name,omitempty" yaml:"name,omitempty"`
	X    float64 `json:"x" yaml:"x"`
	Y    float64 `json:"y" yaml:"y"`
	W    float64 `json:"w" yaml:"w"`
	H    float64 `json:"h" yaml:"h"`
}

// ZoneLayout is the canonical storage and runtime representation of a
// screen layout: a named set of zones.
type ZoneLayout struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Zones []Zone `json:"zones"`
}

// Edge is a shared boundary line. A vertical edge sits at x=Position and
// spans y from Start to Start+Length; horizontal is the transpose. Fixed
// marks the four permanent screen-boundary edges.
type Edge struct {
	ID       string   `json:"id"`
	Type     EdgeType `json:"type"`
	Position float64  `json:"position"`
	Start    float64  `json:"start"`
	Length   float64  `json:"length"`
	Fixed    bool     `json:"fixed"`
}

// End returns the coordinate where the edge's span ends.
func (e Edge) End() float64 {
	return e.Start + e.Length
}

// Region expresses one zone as four edge references instead of raw
// coordinates. Dragging a shared edge moves every region that references it
// in lock-step; that indirection is the reason the edge format exists.
type Region struct {
	Name   string `json:"name,omitempty"`
	Left   string `json:"left"`
	Right  string `json:"right"`
	Top    string `json:"top"`
	Bottom string `json:"bottom"`
}

// EdgeLayout is the editing-time representation: the edge graph plus the
// regions defined over it. It exists only for the duration of an edit
// session and always contains at least the four boundary edges.
type EdgeLayout struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Edges   []Edge   `json:"edges"`
	Regions []Region `json:"regions"`
}

// Dropped describes one input entity a conversion could not resolve and
// omitted from its output.
type Dropped struct {
	Index  int    `json:"index"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// Report collects the entities a conversion dropped. The converter never
// fails hard on malformed geometry; it returns a usable partial layout and
// leaves it to the caller to decide how to surface the report.
type Report struct {
	Dropped []Dropped `json:"dropped,omitempty"`
}

// Clean reports whether the conversion was lossless.
func (r *Report) Clean() bool {
	return r == nil || len(r.Dropped) == 0
}

func (r *Report) drop(index int, name, format string, args ...interface{}) {
	r.Dropped = append(r.Dropped, Dropped{
		Index:  index,
		Name:   name,
		Reason: fmt.Sprintf(format, args...),
	})
}

// BoundaryEdges returns fresh copies of the four fixed screen-boundary
// edges: left/right vertical at 0/1, top/bottom horizontal at 0/1, each
// spanning the full opposite axis.
func BoundaryEdges() []Edge {
	return []Edge{
		{ID: EdgeIDLeft, Type: EdgeVertical, Position: 0, Start: 0, Length: 1, Fixed: true},
		{ID: EdgeIDRight, Type: EdgeVertical, Position: 1, Start: 0, Length: 1, Fixed: true},
		{ID: EdgeIDTop, Type: EdgeHorizontal, Position: 0, Start: 0, Length: 1, Fixed: true},
		{ID: EdgeIDBottom, Type: EdgeHorizontal, Position: 1, Start: 0, Length: 1, Fixed: true},
	}
}
