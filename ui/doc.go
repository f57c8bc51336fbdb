// Package ui provides the declarative component constructors.
//
// Each constructor normalizes an ergonomic style struct into a typed
// component whose Value method produces a serializable East value: a variant
// tagged with the component type, carrying a struct of normalized fields.
// Defaults are filled in, enum options outside their allowed set fall back
// to documented defaults, and numeric options are clamped, so a constructed
// component is always valid.
//
//	page := ui.Box(ui.BoxStyle{Direction: ui.DirectionColumn, Gap: 2},
//	    ui.Heading(1, "Dashboard"),
//	    ui.Card(ui.CardStyle{Title: "Revenue"}, ui.Text("up 4%", ui.TextStyle{})),
//	)
//	value := page.Value()
package ui
