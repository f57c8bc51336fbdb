package ui

import "github.com/elaraai/east-ui-sub007/pkg/schema"

// MenuItem is one entry of a menu. Items with children render as submenus;
// a Separator item ignores every other field.
type MenuItem struct {
	Label     string
	Icon      string
	Disabled  bool
	Separator bool
	Children  []MenuItem
}

// Separator returns a menu separator item.
func Separator() MenuItem {
	return MenuItem{Separator: true}
}

// MenuNode is a normalized menu.
type MenuNode struct {
	Items []MenuItem
}

// Menu creates a menu from items. Submenus nest recursively.
func Menu(items ...MenuItem) *MenuNode {
	copied := make([]MenuItem, len(items))
	copy(copied, items)
	return &MenuNode{Items: copied}
}

// Type implements Component.
func (m *MenuNode) Type() string { return "Menu" }

// Value implements Component.
func (m *MenuNode) Value() schema.Value {
	return componentValue(m.Type(), map[string]schema.Value{
		"items": menuItemValues(m.Items),
	})
}

func menuItemValues(items []MenuItem) schema.Value {
	out := make([]schema.Value, 0, len(items))
	for _, item := range items {
		if item.Separator {
			out = append(out, schema.Variant("Separator", schema.Null()))
			continue
		}
		out = append(out, schema.Variant("Item", schema.Struct(map[string]schema.Value{
			"label":    schema.String_(item.Label),
			"icon":     optionString(item.Icon),
			"disabled": schema.Boolean(item.Disabled),
			"children": menuItemValues(item.Children),
		})))
	}
	return schema.Array(out...)
}
