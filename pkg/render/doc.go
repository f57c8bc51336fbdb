// Package render maps component trees onto HTML.
//
// The Renderer walks a ui.Component tree and emits markup, dispatching on
// the component type. Attribute output is deterministic (sorted keys), text
// content is escaped, and raw markup components are sanitized through
// bluemonday's UGC policy unless the renderer is configured otherwise.
package render
