package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// CardStyle is the user-facing style for Card.
type CardStyle struct {
	Title    string
	Subtitle string

	// Elevation is the shadow depth, clamped to [0, 4].
	Elevation int
}

// CardNode is a normalized card with optional body and footer.
type CardNode struct {
	Style  CardStyle
	Body   Component
	Footer Component
}

// Card creates a card wrapping a body component. The body may be nil.
func Card(style CardStyle, body Component) *CardNode {
	style.Elevation = clampInt(style.Elevation, 0, 4)
	return &CardNode{Style: style, Body: body}
}

// WithFooter sets the card's footer component.
func (c *CardNode) WithFooter(footer Component) *CardNode {
	c.Footer = footer
	return c
}

// Type implements Component.
func (c *CardNode) Type() string { return "Card" }

// Value implements Component.
func (c *CardNode) Value() schema.Value {
	body := schema.None()
	if c.Body != nil {
		body = schema.Some(c.Body.Value())
	}
	footer := schema.None()
	if c.Footer != nil {
		footer = schema.Some(c.Footer.Value())
	}
	return componentValue(c.Type(), map[string]schema.Value{
		"title":     optionString(c.Style.Title),
		"subtitle":  optionString(c.Style.Subtitle),
		"elevation": schema.Integer(int64(c.Style.Elevation)),
		"body":      body,
		"footer":    footer,
	})
}
