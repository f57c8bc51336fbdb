package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// Component is a typed, serializable UI component.
type Component interface {
	// Type returns the component's variant case name (e.g. "Box").
	Type() string

	// Value returns the component's East value representation.
	Value() schema.Value
}

// Direction is a layout axis.
type Direction string

const (
	DirectionRow    Direction = "row"
	DirectionColumn Direction = "column"
)

// Tone is a semantic color tone.
type Tone string

const (
	ToneNeutral Tone = "neutral"
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneDanger  Tone = "danger"
)

// Align is a horizontal alignment.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// Size is a relative size step.
type Size string

const (
	SizeXS Size = "xs"
	SizeSM Size = "sm"
	SizeMD Size = "md"
	SizeLG Size = "lg"
	SizeXL Size = "xl"
)

// Weight is a font weight.
type Weight string

const (
	WeightNormal Weight = "normal"
	WeightMedium Weight = "medium"
	WeightBold   Weight = "bold"
)

// Fit controls how media fills its box.
type Fit string

const (
	FitCover   Fit = "cover"
	FitContain Fit = "contain"
	FitFill    Fit = "fill"
)

// Orientation is a horizontal/vertical switch.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// normalizeEnum returns value if it is one of allowed, otherwise def.
func normalizeEnum[T ~string](value, def T, allowed ...T) T {
	for _, a := range allowed {
		if value == a {
			return a
		}
	}
	return def
}

// clampInt clamps v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// clampFloat clamps v to [lo, hi].
func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// compactChildren copies children, dropping nil entries.
func compactChildren(children []Component) []Component {
	out := make([]Component, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

// childValues serializes children into an array value.
func childValues(children []Component) schema.Value {
	items := make([]schema.Value, 0, len(children))
	for _, c := range children {
		items = append(items, c.Value())
	}
	return schema.Array(items...)
}

// componentValue builds the variant envelope shared by all components.
func componentValue(typ string, fields map[string]schema.Value) schema.Value {
	return schema.Variant(typ, schema.Struct(fields))
}

// optionString serializes an optional string, with "" as the absent case.
func optionString(s string) schema.Value {
	if s == "" {
		return schema.None()
	}
	return schema.Some(schema.String_(s))
}
