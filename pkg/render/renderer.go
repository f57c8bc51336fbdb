package render

import (
	"bytes"
	"io"
	"sort"
	"strconv"

	"github.com/microcosm-cc/bluemonday"

	"github.com/elaraai/east-ui-sub007/internal/errors"
	"github.com/elaraai/east-ui-sub007/pkg/schema"
	"github.com/elaraai/east-ui-sub007/ui"
)

// RendererConfig configures the HTML renderer.
type RendererConfig struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string

	// DisableSanitize skips bluemonday sanitization of raw markup
	// components. Only safe when all markup is trusted.
	DisableSanitize bool
}

// Renderer converts component trees to HTML.
type Renderer struct {
	config RendererConfig
	policy *bluemonday.Policy
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RendererConfig) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	r := &Renderer{config: config}
	if !config.DisableSanitize {
		r.policy = bluemonday.UGCPolicy()
	}
	return r
}

// RenderToString renders a component tree to an HTML string.
func (r *Renderer) RenderToString(c ui.Component) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, c); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a component tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, c ui.Component) error {
	return r.renderComponent(w, c, 0)
}

// renderComponent dispatches rendering based on the component type.
func (r *Renderer) renderComponent(w io.Writer, c ui.Component, depth int) error {
	if c == nil {
		return nil
	}

	switch node := c.(type) {
	case *ui.BoxNode:
		return r.renderBox(w, node, depth)
	case *ui.GridNode:
		return r.renderGrid(w, node, depth)
	case *ui.CardNode:
		return r.renderCard(w, node, depth)
	case *ui.TextNode:
		return r.renderText(w, node, depth)
	case *ui.HeadingNode:
		return r.renderHeading(w, node, depth)
	case *ui.BadgeNode:
		return r.renderBadge(w, node, depth)
	case *ui.ImageNode:
		return r.renderImage(w, node, depth)
	case *ui.ProgressNode:
		return r.renderProgress(w, node, depth)
	case *ui.DividerNode:
		return r.renderDivider(w, node, depth)
	case *ui.TabsNode:
		return r.renderTabs(w, node, depth)
	case *ui.MenuNode:
		return r.renderMenu(w, node, depth)
	case *ui.TreeViewNode:
		return r.renderTree(w, node, depth)
	case *ui.TableNode:
		return r.renderTable(w, node, depth)
	case *ui.PlannerNode:
		return r.renderPlanner(w, node, depth)
	case *ui.GanttNode:
		return r.renderGantt(w, node, depth)
	case *ui.HTMLNode:
		return r.renderHTML(w, node, depth)
	default:
		return errors.New("E201").WithDetail("type " + c.Type())
	}
}

func (r *Renderer) renderBox(w io.Writer, node *ui.BoxNode, depth int) error {
	a := attrs{
		"class":          "east-box",
		"data-direction": string(node.Style.Direction),
		"data-padding":   strconv.Itoa(node.Style.Padding),
		"data-gap":       strconv.Itoa(node.Style.Gap),
	}
	if node.Style.Background != "" {
		a["data-background"] = node.Style.Background
	}
	if node.Style.Border {
		a["data-border"] = "true"
	}
	if node.Style.Width != "" {
		a["data-width"] = node.Style.Width
	}
	if node.Style.Height != "" {
		a["data-height"] = node.Style.Height
	}
	return r.container(w, "div", a, node.Children, depth)
}

func (r *Renderer) renderGrid(w io.Writer, node *ui.GridNode, depth int) error {
	a := attrs{
		"class":        "east-grid",
		"data-columns": strconv.Itoa(node.Style.Columns),
		"data-gap":     strconv.Itoa(node.Style.Gap),
	}
	return r.container(w, "div", a, node.Children, depth)
}

func (r *Renderer) renderCard(w io.Writer, node *ui.CardNode, depth int) error {
	a := attrs{
		"class":          "east-card",
		"data-elevation": strconv.Itoa(node.Style.Elevation),
	}
	if err := r.open(w, depth, "section", a); err != nil {
		return err
	}
	if node.Style.Title != "" {
		if err := r.leaf(w, depth+1, "header", attrs{"class": "east-card-title"}, node.Style.Title); err != nil {
			return err
		}
	}
	if node.Style.Subtitle != "" {
		if err := r.leaf(w, depth+1, "p", attrs{"class": "east-card-subtitle"}, node.Style.Subtitle); err != nil {
			return err
		}
	}
	if node.Body != nil {
		if err := r.renderComponent(w, node.Body, depth+1); err != nil {
			return err
		}
	}
	if node.Footer != nil {
		if err := r.open(w, depth+1, "footer", attrs{"class": "east-card-footer"}); err != nil {
			return err
		}
		if err := r.renderComponent(w, node.Footer, depth+2); err != nil {
			return err
		}
		if err := r.close(w, depth+1, "footer"); err != nil {
			return err
		}
	}
	return r.close(w, depth, "section")
}

func (r *Renderer) renderText(w io.Writer, node *ui.TextNode, depth int) error {
	a := attrs{
		"class":       "east-text",
		"data-size":   string(node.Style.Size),
		"data-weight": string(node.Style.Weight),
		"data-tone":   string(node.Style.Tone),
	}
	if node.Style.Italic {
		a["data-italic"] = "true"
	}
	return r.leaf(w, depth, "span", a, node.Content)
}

func (r *Renderer) renderHeading(w io.Writer, node *ui.HeadingNode, depth int) error {
	tag := "h" + strconv.Itoa(node.Level)
	return r.leaf(w, depth, tag, attrs{"class": "east-heading"}, node.Content)
}

func (r *Renderer) renderBadge(w io.Writer, node *ui.BadgeNode, depth int) error {
	a := attrs{"class": "east-badge", "data-tone": string(node.Tone)}
	return r.leaf(w, depth, "span", a, node.Label)
}

func (r *Renderer) renderImage(w io.Writer, node *ui.ImageNode, depth int) error {
	a := attrs{
		"class":    "east-image",
		"src":      node.Src,
		"data-fit": string(node.Style.Fit),
	}
	if node.Style.Alt != "" {
		a["alt"] = node.Style.Alt
	}
	if node.Style.Width != "" {
		a["width"] = node.Style.Width
	}
	if node.Style.Height != "" {
		a["height"] = node.Style.Height
	}
	return r.void(w, depth, "img", a)
}

func (r *Renderer) renderProgress(w io.Writer, node *ui.ProgressNode, depth int) error {
	a := attrs{"class": "east-progress", "data-tone": string(node.Tone)}
	if !node.Indeterminate {
		a["value"] = formatFloat(node.Current)
		a["max"] = formatFloat(node.Max)
	}
	if err := r.open(w, depth, "progress", a); err != nil {
		return err
	}
	return r.close(w, depth, "progress")
}

func (r *Renderer) renderDivider(w io.Writer, node *ui.DividerNode, depth int) error {
	a := attrs{"class": "east-divider", "data-orientation": string(node.Orientation)}
	return r.void(w, depth, "hr", a)
}

func (r *Renderer) renderTabs(w io.Writer, node *ui.TabsNode, depth int) error {
	if err := r.open(w, depth, "div", attrs{"class": "east-tabs"}); err != nil {
		return err
	}
	if err := r.open(w, depth+1, "div", attrs{"class": "east-tabs-strip", "role": "tablist"}); err != nil {
		return err
	}
	for i, item := range node.Items {
		a := attrs{"class": "east-tab", "role": "tab"}
		if i == node.Active {
			a["aria-selected"] = "true"
		}
		if err := r.leaf(w, depth+2, "button", a, item.Label); err != nil {
			return err
		}
	}
	if err := r.close(w, depth+1, "div"); err != nil {
		return err
	}
	for i, item := range node.Items {
		a := attrs{"class": "east-tab-panel", "role": "tabpanel"}
		if i != node.Active {
			a["hidden"] = "hidden"
		}
		if err := r.open(w, depth+1, "div", a); err != nil {
			return err
		}
		if err := r.renderComponent(w, item.Panel, depth+2); err != nil {
			return err
		}
		if err := r.close(w, depth+1, "div"); err != nil {
			return err
		}
	}
	return r.close(w, depth, "div")
}

func (r *Renderer) renderMenu(w io.Writer, node *ui.MenuNode, depth int) error {
	return r.renderMenuItems(w, node.Items, "east-menu", depth)
}

func (r *Renderer) renderMenuItems(w io.Writer, items []ui.MenuItem, class string, depth int) error {
	if err := r.open(w, depth, "ul", attrs{"class": class, "role": "menu"}); err != nil {
		return err
	}
	for _, item := range items {
		if item.Separator {
			if err := r.void(w, depth+1, "hr", attrs{"class": "east-menu-separator"}); err != nil {
				return err
			}
			continue
		}
		a := attrs{"class": "east-menu-item", "role": "menuitem"}
		if item.Disabled {
			a["aria-disabled"] = "true"
		}
		if item.Icon != "" {
			a["data-icon"] = item.Icon
		}
		if len(item.Children) == 0 {
			if err := r.leaf(w, depth+1, "li", a, item.Label); err != nil {
				return err
			}
			continue
		}
		if err := r.open(w, depth+1, "li", a); err != nil {
			return err
		}
		if err := r.text(w, item.Label); err != nil {
			return err
		}
		if err := r.renderMenuItems(w, item.Children, "east-submenu", depth+2); err != nil {
			return err
		}
		if err := r.close(w, depth+1, "li"); err != nil {
			return err
		}
	}
	return r.close(w, depth, "ul")
}

func (r *Renderer) renderTree(w io.Writer, node *ui.TreeViewNode, depth int) error {
	return r.renderTreeItems(w, node, node.Roots, "east-tree", depth)
}

func (r *Renderer) renderTreeItems(w io.Writer, node *ui.TreeViewNode, items []ui.TreeItem, class string, depth int) error {
	if err := r.open(w, depth, "ul", attrs{"class": class, "role": "tree"}); err != nil {
		return err
	}
	for _, item := range items {
		a := attrs{"class": "east-tree-item", "data-key": item.Key}
		if node.Expanded[item.Key] {
			a["aria-expanded"] = "true"
		}
		if len(item.Children) == 0 {
			if err := r.leaf(w, depth+1, "li", a, item.Label); err != nil {
				return err
			}
			continue
		}
		if err := r.open(w, depth+1, "li", a); err != nil {
			return err
		}
		if err := r.text(w, item.Label); err != nil {
			return err
		}
		// Collapsed subtrees are still emitted so expansion is client-local.
		if err := r.renderTreeItems(w, node, item.Children, "east-tree-branch", depth+2); err != nil {
			return err
		}
		if err := r.close(w, depth+1, "li"); err != nil {
			return err
		}
	}
	return r.close(w, depth, "ul")
}

func (r *Renderer) renderTable(w io.Writer, node *ui.TableNode, depth int) error {
	rows, err := node.SortedRows()
	if err != nil {
		return err
	}

	if err := r.open(w, depth, "table", attrs{"class": "east-table"}); err != nil {
		return err
	}
	if err := r.open(w, depth+1, "thead", nil); err != nil {
		return err
	}
	if err := r.open(w, depth+2, "tr", nil); err != nil {
		return err
	}
	sortDirs := make(map[string]string)
	for _, s := range node.Sorter().Sorts() {
		sortDirs[s.Column] = string(s.Direction)
	}
	for _, col := range node.Columns {
		a := attrs{"data-align": string(col.Align)}
		if col.Sortable {
			a["data-sortable"] = "true"
		}
		if dir, ok := sortDirs[col.Key]; ok {
			a["data-sorted"] = dir
		}
		if err := r.leaf(w, depth+3, "th", a, col.Title); err != nil {
			return err
		}
	}
	if err := r.close(w, depth+2, "tr"); err != nil {
		return err
	}
	if err := r.close(w, depth+1, "thead"); err != nil {
		return err
	}

	if err := r.open(w, depth+1, "tbody", nil); err != nil {
		return err
	}
	for _, row := range rows {
		if err := r.open(w, depth+2, "tr", nil); err != nil {
			return err
		}
		for _, col := range node.Columns {
			a := attrs{"data-align": string(col.Align)}
			if err := r.leaf(w, depth+3, "td", a, valueText(row[col.Key])); err != nil {
				return err
			}
		}
		if err := r.close(w, depth+2, "tr"); err != nil {
			return err
		}
	}
	if err := r.close(w, depth+1, "tbody"); err != nil {
		return err
	}
	return r.close(w, depth, "table")
}

func (r *Renderer) renderPlanner(w io.Writer, node *ui.PlannerNode, depth int) error {
	if err := r.open(w, depth, "div", attrs{"class": "east-planner"}); err != nil {
		return err
	}
	for _, lane := range node.Lanes {
		if err := r.open(w, depth+1, "div", attrs{"class": "east-planner-lane", "data-title": lane.Title}); err != nil {
			return err
		}
		for _, e := range lane.Entries {
			a := attrs{
				"class":      "east-planner-entry",
				"data-key":   e.Key,
				"data-start": e.Start.Format(timeLayout),
				"data-end":   e.End.Format(timeLayout),
				"data-tone":  string(e.Tone),
			}
			if err := r.leaf(w, depth+2, "div", a, e.Label); err != nil {
				return err
			}
		}
		if err := r.close(w, depth+1, "div"); err != nil {
			return err
		}
	}
	return r.close(w, depth, "div")
}

func (r *Renderer) renderGantt(w io.Writer, node *ui.GanttNode, depth int) error {
	if err := r.open(w, depth, "div", attrs{"class": "east-gantt"}); err != nil {
		return err
	}
	for _, task := range node.Tasks {
		a := attrs{
			"class":         "east-gantt-task",
			"data-key":      task.Key,
			"data-start":    task.Start.Format(timeLayout),
			"data-end":      task.End.Format(timeLayout),
			"data-progress": formatFloat(task.Progress),
		}
		if len(task.DependsOn) > 0 {
			deps := task.DependsOn[0]
			for _, d := range task.DependsOn[1:] {
				deps += " " + d
			}
			a["data-deps"] = deps
		}
		if err := r.leaf(w, depth+1, "div", a, task.Label); err != nil {
			return err
		}
	}
	return r.close(w, depth, "div")
}

func (r *Renderer) renderHTML(w io.Writer, node *ui.HTMLNode, depth int) error {
	markup := node.Markup
	if r.policy != nil {
		markup = r.policy.Sanitize(markup)
	}
	if r.config.Pretty {
		if err := r.indent(w, depth); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, markup); err != nil {
		return err
	}
	return r.newline(w)
}

// valueText formats an East value for display in a table cell.
func valueText(v schema.Value) string {
	switch v.Kind {
	case schema.KindNull:
		return ""
	case schema.KindBoolean:
		return strconv.FormatBool(v.Bool)
	case schema.KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case schema.KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case schema.KindString:
		return v.Str
	case schema.KindDateTime:
		return v.Time.Format(timeLayout)
	default:
		data, err := schema.ToJSON(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

const timeLayout = "2006-01-02T15:04:05Z07:00"

// sortKeys returns the attribute keys in sorted order.
func sortKeys(a attrs) []string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
