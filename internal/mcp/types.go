package mcp

import "github.com/1broseidon/zoned/internal/layout"

// ListLayoutsInput is the input for the list_layouts tool.
type ListLayoutsInput struct{}

// ListLayoutsOutput is the output for the list_layouts tool.
type ListLayoutsOutput struct {
	Builtin       []string `json:"builtin"`
	Stored        []string `json:"stored"`
	DefaultLayout string   `json:"default_layout"`
}

// GetLayoutInput is the input for the get_layout tool.
type GetLayoutInput struct {
	Name string `json:"name" jsonschema:"required,Layout name (builtin, config-defined, or stored)"`
}

// GetLayoutOutput is the output for the get_layout tool.
type GetLayoutOutput struct {
	Layout layout.ZoneLayout `json:"layout"`
}

// SaveLayoutInput is the input for the save_layout tool.
type SaveLayoutInput struct {
	Layout layout.ZoneLayout `json:"layout" jsonschema:"required,Zone layout to store. Coordinates are normalized to the 0..1 screen."`
}

// SaveLayoutOutput is the output for the save_layout tool.
type SaveLayoutOutput struct {
	ID        string `json:"id"`
	ZoneCount int    `json:"zone_count"`
}

// DeleteLayoutInput is the input for the delete_layout tool.
type DeleteLayoutInput struct {
	Name string `json:"name" jsonschema:"required,Stored layout id to delete. Builtin layouts cannot be deleted."`
}

// DeleteLayoutOutput is the output for the delete_layout tool.
type DeleteLayoutOutput struct {
	Deleted bool `json:"deleted"`
}

// ConvertToEdgesInput is the input for the convert_to_edges tool.
type ConvertToEdgesInput struct {
	Layout layout.ZoneLayout `json:"layout" jsonschema:"required,Zone layout to convert into the edge-based editing representation"`
}

// ConvertToEdgesOutput is the output for the convert_to_edges tool.
type ConvertToEdgesOutput struct {
	Layout  layout.EdgeLayout `json:"layout"`
	Dropped []layout.Dropped  `json:"dropped,omitempty"`
}

// ConvertToZonesInput is the input for the convert_to_zones tool.
type ConvertToZonesInput struct {
	Layout layout.EdgeLayout `json:"layout" jsonschema:"required,Edge layout to reconstruct into independent zones"`
}

// ConvertToZonesOutput is the output for the convert_to_zones tool.
type ConvertToZonesOutput struct {
	Layout  layout.ZoneLayout `json:"layout"`
	Dropped []layout.Dropped  `json:"dropped,omitempty"`
}

// ValidateEdgeLayoutInput is the input for the validate_edge_layout tool.
type ValidateEdgeLayoutInput struct {
	Layout layout.EdgeLayout `json:"layout" jsonschema:"required,Edge layout to check structurally"`
}

// ValidateEdgeLayoutOutput is the output for the validate_edge_layout tool.
type ValidateEdgeLayoutOutput struct {
	Valid bool   `json:"valid"`
	Error string `json:"error,omitempty"`
}
