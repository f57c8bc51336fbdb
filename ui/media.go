package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// ImageStyle is the user-facing style for Image.
type ImageStyle struct {
	Alt    string
	Fit    Fit
	Width  string
	Height string
}

// ImageNode is a normalized image.
type ImageNode struct {
	Src   string
	Style ImageStyle
}

// Image creates an image component.
func Image(src string, style ImageStyle) *ImageNode {
	style.Fit = normalizeEnum(style.Fit, FitContain, FitCover, FitContain, FitFill)
	return &ImageNode{Src: src, Style: style}
}

// Type implements Component.
func (i *ImageNode) Type() string { return "Image" }

// Value implements Component.
func (i *ImageNode) Value() schema.Value {
	return componentValue(i.Type(), map[string]schema.Value{
		"src":    schema.String_(i.Src),
		"alt":    optionString(i.Style.Alt),
		"fit":    schema.String_(string(i.Style.Fit)),
		"width":  optionString(i.Style.Width),
		"height": optionString(i.Style.Height),
	})
}

// ProgressNode is a normalized progress indicator.
type ProgressNode struct {
	Current       float64
	Max           float64
	Indeterminate bool
	Tone          Tone
}

// Progress creates a progress bar. Max defaults to 100 when non-positive;
// the current value is clamped to [0, max].
func Progress(current, max float64) *ProgressNode {
	if max <= 0 {
		max = 100
	}
	return &ProgressNode{
		Current: clampFloat(current, 0, max),
		Max:     max,
		Tone:    ToneInfo,
	}
}

// IndeterminateBar marks the progress bar as indeterminate.
func (p *ProgressNode) IndeterminateBar() *ProgressNode {
	p.Indeterminate = true
	return p
}

// WithTone sets the progress bar's tone.
func (p *ProgressNode) WithTone(tone Tone) *ProgressNode {
	p.Tone = normalizeEnum(tone, ToneInfo, ToneNeutral, ToneInfo, ToneSuccess, ToneWarning, ToneDanger)
	return p
}

// Type implements Component.
func (p *ProgressNode) Type() string { return "Progress" }

// Value implements Component.
func (p *ProgressNode) Value() schema.Value {
	return componentValue(p.Type(), map[string]schema.Value{
		"current":       schema.Float(p.Current),
		"max":           schema.Float(p.Max),
		"indeterminate": schema.Boolean(p.Indeterminate),
		"tone":          schema.String_(string(p.Tone)),
	})
}

// DividerNode is a normalized divider rule.
type DividerNode struct {
	Orientation Orientation
}

// Divider creates a horizontal or vertical rule.
func Divider(orientation Orientation) *DividerNode {
	return &DividerNode{
		Orientation: normalizeEnum(orientation, Horizontal, Horizontal, Vertical),
	}
}

// Type implements Component.
func (d *DividerNode) Type() string { return "Divider" }

// Value implements Component.
func (d *DividerNode) Value() schema.Value {
	return componentValue(d.Type(), map[string]schema.Value{
		"orientation": schema.String_(string(d.Orientation)),
	})
}
