package render

import (
	"io"

	"github.com/elaraai/east-ui-sub007/ui"
)

// attrs holds the attributes of one emitted element.
// Keys are written in sorted order so output is deterministic.
type attrs map[string]string

// open writes an opening tag with its attributes.
func (r *Renderer) open(w io.Writer, depth int, tag string, a attrs) error {
	if r.config.Pretty {
		if err := r.indent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, key := range sortKeys(a) {
		if _, err := io.WriteString(w, " "+key+`="`+escapeAttr(a[key])+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	return r.newline(w)
}

// close writes a closing tag.
func (r *Renderer) close(w io.Writer, depth int, tag string) error {
	if r.config.Pretty {
		if err := r.indent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</"+tag+">"); err != nil {
		return err
	}
	return r.newline(w)
}

// leaf writes a complete element holding only escaped text.
func (r *Renderer) leaf(w io.Writer, depth int, tag string, a attrs, content string) error {
	if r.config.Pretty {
		if err := r.indent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, key := range sortKeys(a) {
		if _, err := io.WriteString(w, " "+key+`="`+escapeAttr(a[key])+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"+escapeHTML(content)+"</"+tag+">"); err != nil {
		return err
	}
	return r.newline(w)
}

// void writes a self-contained element with no content.
func (r *Renderer) void(w io.Writer, depth int, tag string, a attrs) error {
	if r.config.Pretty {
		if err := r.indent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, key := range sortKeys(a) {
		if _, err := io.WriteString(w, " "+key+`="`+escapeAttr(a[key])+`"`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	return r.newline(w)
}

// text writes escaped text content.
func (r *Renderer) text(w io.Writer, content string) error {
	_, err := io.WriteString(w, escapeHTML(content))
	return err
}

// container writes an element wrapping rendered children.
func (r *Renderer) container(w io.Writer, tag string, a attrs, children []ui.Component, depth int) error {
	if err := r.open(w, depth, tag, a); err != nil {
		return err
	}
	for _, child := range children {
		if err := r.renderComponent(w, child, depth+1); err != nil {
			return err
		}
	}
	return r.close(w, depth, tag)
}

// indent writes indentation for pretty printing.
func (r *Renderer) indent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}

// newline terminates a line in pretty mode.
func (r *Renderer) newline(w io.Writer) error {
	if !r.config.Pretty {
		return nil
	}
	_, err := io.WriteString(w, "\n")
	return err
}
