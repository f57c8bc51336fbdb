package render

import "strings"

// Every plain string the renderer interpolates goes through one of these
// replacers. Rich content that callers opt into is handled separately by
// the bluemonday policy in renderer.go.
var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// Attribute values also encode whitespace, so a multi-line dataset
	// string cannot split out of its quoted attribute.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// escapeHTML escapes a string for element text content.
func escapeHTML(s string) string {
	return textEscaper.Replace(s)
}

// escapeAttr escapes a string for a quoted attribute value.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
