package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// BoxStyle is the user-facing style for Box.
type BoxStyle struct {
	// Direction is the layout axis. Defaults to Column.
	Direction Direction

	// Padding and Gap are spacing steps, clamped to [0, 12].
	Padding int
	Gap     int

	// Background is a color token; empty means transparent.
	Background string

	// Border draws a 1px border when true.
	Border bool

	// Width and Height are CSS-style sizes; empty means auto.
	Width  string
	Height string
}

// BoxNode is a normalized layout container.
type BoxNode struct {
	Style    BoxStyle
	Children []Component
}

// Box creates a layout container. Nil children are skipped.
func Box(style BoxStyle, children ...Component) *BoxNode {
	style.Direction = normalizeEnum(style.Direction, DirectionColumn, DirectionRow, DirectionColumn)
	style.Padding = clampInt(style.Padding, 0, 12)
	style.Gap = clampInt(style.Gap, 0, 12)
	return &BoxNode{
		Style:    style,
		Children: compactChildren(children),
	}
}

// HStack creates a row-direction Box.
func HStack(gap int, children ...Component) *BoxNode {
	return Box(BoxStyle{Direction: DirectionRow, Gap: gap}, children...)
}

// VStack creates a column-direction Box.
func VStack(gap int, children ...Component) *BoxNode {
	return Box(BoxStyle{Direction: DirectionColumn, Gap: gap}, children...)
}

// Type implements Component.
func (b *BoxNode) Type() string { return "Box" }

// Value implements Component.
func (b *BoxNode) Value() schema.Value {
	return componentValue(b.Type(), map[string]schema.Value{
		"direction":  schema.String_(string(b.Style.Direction)),
		"padding":    schema.Integer(int64(b.Style.Padding)),
		"gap":        schema.Integer(int64(b.Style.Gap)),
		"background": optionString(b.Style.Background),
		"border":     schema.Boolean(b.Style.Border),
		"width":      optionString(b.Style.Width),
		"height":     optionString(b.Style.Height),
		"children":   childValues(b.Children),
	})
}
