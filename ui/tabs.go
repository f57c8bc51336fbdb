package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// Tab is one labelled tab panel.
type Tab struct {
	Label string
	Panel Component
}

// TabsNode is a normalized tab strip.
type TabsNode struct {
	Items  []Tab
	Active int
}

// Tabs creates a tab strip. The active index is clamped into range and nil
// panels are replaced with empty boxes so every tab can render.
func Tabs(active int, items ...Tab) *TabsNode {
	copied := make([]Tab, len(items))
	copy(copied, items)
	for i := range copied {
		if copied[i].Panel == nil {
			copied[i].Panel = Box(BoxStyle{})
		}
	}
	if len(copied) == 0 {
		active = 0
	} else {
		active = clampInt(active, 0, len(copied)-1)
	}
	return &TabsNode{Items: copied, Active: active}
}

// Type implements Component.
func (t *TabsNode) Type() string { return "Tabs" }

// Value implements Component.
func (t *TabsNode) Value() schema.Value {
	items := make([]schema.Value, 0, len(t.Items))
	for _, item := range t.Items {
		items = append(items, schema.Struct(map[string]schema.Value{
			"label": schema.String_(item.Label),
			"panel": item.Panel.Value(),
		}))
	}
	return componentValue(t.Type(), map[string]schema.Value{
		"items":  schema.Array(items...),
		"active": schema.Integer(int64(t.Active)),
	})
}
