package ui

import (
	"sort"

	"github.com/elaraai/east-ui-sub007/pkg/schema"
)

// TreeItem is one node of a tree view.
type TreeItem struct {
	Key      string
	Label    string
	Children []TreeItem
}

// TreeViewNode is a normalized tree view.
type TreeViewNode struct {
	Roots    []TreeItem
	Expanded map[string]bool
}

// TreeView creates a tree view. Duplicate keys keep the first occurrence;
// later duplicates are dropped along with their subtrees. Expanded keys that
// name no surviving node are ignored.
func TreeView(roots []TreeItem, expanded ...string) *TreeViewNode {
	seen := make(map[string]bool)
	pruned := pruneTreeItems(roots, seen)

	exp := make(map[string]bool)
	for _, key := range expanded {
		if seen[key] {
			exp[key] = true
		}
	}
	return &TreeViewNode{Roots: pruned, Expanded: exp}
}

// pruneTreeItems drops items whose key was already seen, recursively.
func pruneTreeItems(items []TreeItem, seen map[string]bool) []TreeItem {
	out := make([]TreeItem, 0, len(items))
	for _, item := range items {
		if seen[item.Key] {
			continue
		}
		seen[item.Key] = true
		item.Children = pruneTreeItems(item.Children, seen)
		out = append(out, item)
	}
	return out
}

// Type implements Component.
func (t *TreeViewNode) Type() string { return "TreeView" }

// Value implements Component.
func (t *TreeViewNode) Value() schema.Value {
	// Sorted for deterministic serialization.
	keys := make([]string, 0, len(t.Expanded))
	for key := range t.Expanded {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	expanded := make([]schema.Value, 0, len(keys))
	for _, key := range keys {
		expanded = append(expanded, schema.String_(key))
	}
	return componentValue(t.Type(), map[string]schema.Value{
		"roots":    treeItemValues(t.Roots),
		"expanded": schema.Array(expanded...),
	})
}

func treeItemValues(items []TreeItem) schema.Value {
	out := make([]schema.Value, 0, len(items))
	for _, item := range items {
		out = append(out, schema.Struct(map[string]schema.Value{
			"key":      schema.String_(item.Key),
			"label":    schema.String_(item.Label),
			"children": treeItemValues(item.Children),
		}))
	}
	return schema.Array(out...)
}
