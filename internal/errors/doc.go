// Package errors provides structured, actionable error messages for east-ui.
//
// Errors are organized into categories:
//   - schema: malformed or unserializable East values
//   - render: component trees the renderer cannot handle
//   - dataset: remote dataset store and cache failures
//   - config: configuration file problems
//   - cli: command-line usage errors
//
// Each registered error has a unique code (e.g. "E101") that maps to a short
// message, a detailed explanation, and a documentation URL.
//
// # Usage
//
//	err := errors.New("E201").
//	    WithSuggestion("Register the component type with the renderer")
//
//	fmt.Println(err.Format())
package errors
