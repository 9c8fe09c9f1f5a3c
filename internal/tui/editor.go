package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/1broseidon/zoned/internal/layout"
	"github.com/1broseidon/zoned/internal/store"
)

// editorClosedMsg is sent when the editor exits back to the browser.
type editorClosedMsg struct {
	saved bool
	id    string
}

// Editor is the sub-model for interactive edge editing. It holds the edge
// representation of one layout; edges are selected and nudged with the
// keyboard, then the layout is reconstructed and saved as zones.
type Editor struct {
	layouts *store.Store

	el         *layout.EdgeLayout
	selectable []int // indexes of non-fixed edges in el.Edges
	sel        int
	step       float64
	dirty      bool

	saving bool
	form   *huh.Form
	fName  string

	statusText string

	width  int
	height int
}

// NewEditor converts a zone layout into its edge representation and opens
// it for editing.
func NewEditor(layouts *store.Store, zl *layout.ZoneLayout, step float64) *Editor {
	el, report := layout.ZonesToEdges(zl)

	e := &Editor{
		layouts: layouts,
		el:      el,
		step:    step,
		fName:   zl.ID,
	}
	for i, edge := range el.Edges {
		if !edge.Fixed {
			e.selectable = append(e.selectable, i)
		}
	}
	if !report.Clean() {
		e.statusText = fmt.Sprintf("%d zone(s) could not be resolved and were dropped", len(report.Dropped))
	}
	return e
}

// selectedEdge returns the currently selected edge, or nil when the layout
// has no interior edges.
func (e *Editor) selectedEdge() *layout.Edge {
	if len(e.selectable) == 0 {
		return nil
	}
	return &e.el.Edges[e.selectable[e.sel]]
}

// Update implements the editor's event handling.
func (e *Editor) Update(msg tea.Msg) (*Editor, tea.Cmd) {
	if e.saving {
		return e.updateSaving(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		e.width = msg.Width
		e.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "q":
			return e, func() tea.Msg { return editorClosedMsg{} }

		case "tab", "n":
			if len(e.selectable) > 0 {
				e.sel = (e.sel + 1) % len(e.selectable)
			}
		case "shift+tab", "p":
			if len(e.selectable) > 0 {
				e.sel = (e.sel - 1 + len(e.selectable)) % len(e.selectable)
			}

		case "left", "h":
			e.nudge(layout.EdgeVertical, -e.step)
		case "right", "l":
			e.nudge(layout.EdgeVertical, e.step)
		case "up", "k":
			e.nudge(layout.EdgeHorizontal, -e.step)
		case "down", "j":
			e.nudge(layout.EdgeHorizontal, e.step)

		case "v":
			if err := layout.ValidateEdgeLayout(e.el); err != nil {
				e.statusText = fmt.Sprintf("invalid: %v", err)
			} else {
				e.statusText = "layout is valid"
			}

		case "s":
			e.startSaving()
			return e, e.form.Init()
		}
	}

	return e, nil
}

// nudge moves the selected edge along its axis. Keys for the wrong axis
// are ignored so vertical edges only respond to left/right and horizontal
// edges to up/down.
func (e *Editor) nudge(axis layout.EdgeType, delta float64) {
	edge := e.selectedEdge()
	if edge == nil || edge.Type != axis {
		return
	}

	lo, hi := e.bounds(edge)
	pos := edge.Position + delta
	if pos < lo {
		pos = lo
	}
	if pos > hi {
		pos = hi
	}
	if pos != edge.Position {
		edge.Position = pos
		e.dirty = true
		e.statusText = fmt.Sprintf("%s @ %.2f", edge.ID, edge.Position)
	}
}

// bounds returns the range the selected edge may occupy: strictly between
// the nearest parallel edges whose spans overlap its own, including the
// fixed screen boundaries. A nudge can therefore never push an edge across
// a neighbor and invert the regions between them.
func (e *Editor) bounds(edge *layout.Edge) (lo, hi float64) {
	const gap = 0.01
	lo, hi = gap, 1-gap
	for i := range e.el.Edges {
		o := &e.el.Edges[i]
		if o == edge || o.Type != edge.Type {
			continue
		}
		if o.End() <= edge.Start+layout.Tolerance || o.Start >= edge.End()-layout.Tolerance {
			continue
		}
		if o.Position <= edge.Position && o.Position+gap > lo {
			lo = o.Position + gap
		}
		if o.Position >= edge.Position && o.Position-gap < hi {
			hi = o.Position - gap
		}
	}
	return lo, hi
}

func (e *Editor) startSaving() {
	e.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("name").
				Title("Layout name").
				Description("Stored under ~/.config/zoned/layouts").
				Validate(func(s string) error { return store.ValidateID(s) }).
				Value(&e.fName),
		),
	).WithShowHelp(true).WithShowErrors(true)
	e.saving = true
}

func (e *Editor) updateSaving(msg tea.Msg) (*Editor, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		e.saving = false
		e.form = nil
		return e, nil
	}

	form, cmd := e.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		e.form = f
	}

	if e.form.State == huh.StateCompleted {
		e.saving = false
		e.form = nil
		return e, e.save()
	}

	return e, cmd
}

// save validates, reconstructs and writes the edited layout, then closes
// the editor.
func (e *Editor) save() tea.Cmd {
	if err := layout.ValidateEdgeLayout(e.el); err != nil {
		e.statusText = fmt.Sprintf("cannot save: %v", err)
		return nil
	}

	zl, report := layout.EdgesToZones(e.el)
	if !report.Clean() {
		e.statusText = fmt.Sprintf("cannot save: %d region(s) unresolvable", len(report.Dropped))
		return nil
	}

	zl.ID = e.fName
	zl.Name = e.fName
	if err := e.layouts.Write(zl); err != nil {
		e.statusText = fmt.Sprintf("save failed: %v", err)
		return nil
	}

	id := e.fName
	return func() tea.Msg { return editorClosedMsg{saved: true, id: id} }
}

// View renders the editor: the preview canvas with the selected edge
// highlighted, a status line and the key help.
func (e *Editor) View(width, height int) string {
	if e.saving && e.form != nil {
		return e.form.View()
	}

	canvasH := height - 3
	if canvasH < 3 {
		canvasH = 3
	}
	canvasW := width
	if canvasW < 10 {
		canvasW = 10
	}

	// The canvas is derived from the live edge graph, so every nudge is
	// visible immediately.
	zl, _ := layout.EdgesToZones(e.el)
	lines := renderZoneCanvas(zl, canvasW, canvasH)
	if edge := e.selectedEdge(); edge != nil {
		lines = overlayEdge(lines, *edge, canvasW, canvasH)
	}

	var header string
	if edge := e.selectedEdge(); edge != nil {
		header = editorTitleStyle.Render(fmt.Sprintf("editing %s • %s edge %s @ %.2f", e.el.Name, edge.Type, edge.ID, edge.Position))
	} else {
		header = editorTitleStyle.Render(fmt.Sprintf("editing %s • no interior edges", e.el.Name))
	}

	status := e.statusText
	if e.dirty && status == "" {
		status = "unsaved changes"
	}

	help := helpStyle.Render("tab: next edge • h/j/k/l: move • v: validate • s: save • esc: back")

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		strings.Join(lines, "\n"),
		statusStyle.Render(status),
		help,
	)
}
