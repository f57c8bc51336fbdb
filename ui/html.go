package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// HTMLNode is a raw markup fragment.
// Renderers sanitize the markup before output unless explicitly configured
// not to, since the content may be user-provided.
type HTMLNode struct {
	Markup string
}

// HTML creates a raw markup component.
func HTML(markup string) *HTMLNode {
	return &HTMLNode{Markup: markup}
}

// Type implements Component.
func (h *HTMLNode) Type() string { return "HTML" }

// Value implements Component.
func (h *HTMLNode) Value() schema.Value {
	return componentValue(h.Type(), map[string]schema.Value{
		"markup": schema.String_(h.Markup),
	})
}
