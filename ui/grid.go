package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// GridStyle is the user-facing style for Grid.
type GridStyle struct {
	// Columns is the column count, clamped to [1, 24]. Zero means 1.
	Columns int

	// Gap is the spacing step between cells, clamped to [0, 12].
	Gap int
}

// GridNode is a normalized grid container.
type GridNode struct {
	Style    GridStyle
	Children []Component
}

// Grid creates a fixed-column grid container. Nil children are skipped.
func Grid(style GridStyle, children ...Component) *GridNode {
	style.Columns = clampInt(style.Columns, 1, 24)
	style.Gap = clampInt(style.Gap, 0, 12)
	return &GridNode{
		Style:    style,
		Children: compactChildren(children),
	}
}

// Type implements Component.
func (g *GridNode) Type() string { return "Grid" }

// Value implements Component.
func (g *GridNode) Value() schema.Value {
	return componentValue(g.Type(), map[string]schema.Value{
		"columns":  schema.Integer(int64(g.Style.Columns)),
		"gap":      schema.Integer(int64(g.Style.Gap)),
		"children": childValues(g.Children),
	})
}
