package config

import "github.com/1broseidon/zoned/internal/layout"

// BuiltinLayouts returns the built-in zone layout library.
//
// These are always available to users without needing to define them in
// YAML or save them to the layout store. Users can define additional
// layouts in their config file or through the editor.
func BuiltinLayouts() map[string]layout.ZoneLayout {
	return map[string]layout.ZoneLayout{
		"halves": {
			ID:   "halves",
			Name: "Halves",
			Zones: []layout.Zone{
				{Name: "left", X: 0, Y: 0, W: 0.5, H: 1},
				{Name: "right", X: 0.5, Y: 0, W: 0.5, H: 1},
			},
		},
		"thirds": {
			ID:   "thirds",
			Name: "Thirds",
			Zones: []layout.Zone{
				{Name: "left", X: 0, Y: 0, W: 1.0 / 3, H: 1},
				{Name: "center", X: 1.0 / 3, Y: 0, W: 1.0 / 3, H: 1},
				{Name: "right", X: 2.0 / 3, Y: 0, W: 1.0 / 3, H: 1},
			},
		},
		"quarters": {
			ID:   "quarters",
			Name: "Quarters",
			Zones: []layout.Zone{
				{Name: "top-left", X: 0, Y: 0, W: 0.5, H: 0.5},
				{Name: "top-right", X: 0.5, Y: 0, W: 0.5, H: 0.5},
				{Name: "bottom-left", X: 0, Y: 0.5, W: 0.5, H: 0.5},
				{Name: "bottom-right", X: 0.5, Y: 0.5, W: 0.5, H: 0.5},
			},
		},
		"main-left": {
			ID:   "main-left",
			Name: "Main Left",
			Zones: []layout.Zone{
				{Name: "main", X: 0, Y: 0, W: 0.65, H: 1},
				{Name: "stack-top", X: 0.65, Y: 0, W: 0.35, H: 0.5},
				{Name: "stack-bottom", X: 0.65, Y: 0.5, W: 0.35, H: 0.5},
			},
		},
		"focus": {
			ID:   "focus",
			Name: "Focus",
			Zones: []layout.Zone{
				{Name: "left", X: 0, Y: 0, W: 0.2, H: 1},
				{Name: "center", X: 0.2, Y: 0, W: 0.6, H: 1},
				{Name: "right", X: 0.8, Y: 0, W: 0.2, H: 1},
			},
		},
		"rows": {
			ID:   "rows",
			Name: "Rows",
			Zones: []layout.Zone{
				{Name: "top", X: 0, Y: 0, W: 1, H: 0.5},
				{Name: "bottom", X: 0, Y: 0.5, W: 1, H: 0.5},
			},
		},
	}
}
