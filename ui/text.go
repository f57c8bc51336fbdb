package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// TextStyle is the user-facing style for Text.
type TextStyle struct {
	Size   Size
	Weight Weight
	Tone   Tone
	Italic bool
}

// TextNode is normalized inline text.
type TextNode struct {
	Content string
	Style   TextStyle
}

// Text creates a text component.
func Text(content string, style TextStyle) *TextNode {
	style.Size = normalizeEnum(style.Size, SizeMD, SizeXS, SizeSM, SizeMD, SizeLG, SizeXL)
	style.Weight = normalizeEnum(style.Weight, WeightNormal, WeightNormal, WeightMedium, WeightBold)
	style.Tone = normalizeEnum(style.Tone, ToneNeutral, ToneNeutral, ToneInfo, ToneSuccess, ToneWarning, ToneDanger)
	return &TextNode{Content: content, Style: style}
}

// Type implements Component.
func (t *TextNode) Type() string { return "Text" }

// Value implements Component.
func (t *TextNode) Value() schema.Value {
	return componentValue(t.Type(), map[string]schema.Value{
		"content": schema.String_(t.Content),
		"size":    schema.String_(string(t.Style.Size)),
		"weight":  schema.String_(string(t.Style.Weight)),
		"tone":    schema.String_(string(t.Style.Tone)),
		"italic":  schema.Boolean(t.Style.Italic),
	})
}

// HeadingNode is a normalized section heading.
type HeadingNode struct {
	Level   int
	Content string
}

// Heading creates a heading. The level is clamped to [1, 6].
func Heading(level int, content string) *HeadingNode {
	return &HeadingNode{Level: clampInt(level, 1, 6), Content: content}
}

// Type implements Component.
func (h *HeadingNode) Type() string { return "Heading" }

// Value implements Component.
func (h *HeadingNode) Value() schema.Value {
	return componentValue(h.Type(), map[string]schema.Value{
		"level":   schema.Integer(int64(h.Level)),
		"content": schema.String_(h.Content),
	})
}

// BadgeNode is a normalized badge.
type BadgeNode struct {
	Label string
	Tone  Tone
}

// Badge creates a small status badge.
func Badge(label string, tone Tone) *BadgeNode {
	return &BadgeNode{
		Label: label,
		Tone:  normalizeEnum(tone, ToneNeutral, ToneNeutral, ToneInfo, ToneSuccess, ToneWarning, ToneDanger),
	}
}

// Type implements Component.
func (b *BadgeNode) Type() string { return "Badge" }

// Value implements Component.
func (b *BadgeNode) Value() schema.Value {
	return componentValue(b.Type(), map[string]schema.Value{
		"label": schema.String_(b.Label),
		"tone":  schema.String_(string(b.Tone)),
	})
}
