package server

import (
	"net/http"
	"time"

	"github.com/elaraai/east-ui-sub007/pkg/render"
	"github.com/elaraai/east-ui-sub007/pkg/rowsort"
	"github.com/elaraai/east-ui-sub007/pkg/schema"
	"github.com/elaraai/east-ui-sub007/ui"
)

const demoPageHead = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>east-ui components</title>
</head>
<body>
`

const demoPageFoot = `</body>
</html>
`

// handleDemoPage renders a page exercising every component family.
// A pretty query parameter switches to indented output.
func (s *Server) handleDemoPage(w http.ResponseWriter, r *http.Request) {
	renderer := s.renderer
	if r.URL.Query().Get("pretty") != "" {
		renderer = render.NewRenderer(render.RendererConfig{Pretty: true})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(demoPageHead))
	if err := renderer.RenderToWriter(w, demoPage()); err != nil {
		s.logger.Error("demo page render failed", "error", err)
	}
	w.Write([]byte(demoPageFoot))
}

// demoPage builds the showcase component tree.
func demoPage() ui.Component {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 9, 0, 0, 0, time.UTC)
	}

	table := ui.Table(
		[]ui.Column{
			{Key: "name", Title: "Name", Sortable: true},
			{Key: "count", Title: "Count", Align: ui.AlignRight, Sortable: true, Kind: ui.ColumnNumber},
			{Key: "updated", Title: "Updated", Sortable: true, Kind: ui.ColumnDateTime},
		},
		[]map[string]schema.Value{
			{"name": schema.String_("alpha"), "count": schema.Integer(42), "updated": schema.DateTime(day(3))},
			{"name": schema.String_("beta"), "count": schema.Integer(7), "updated": schema.DateTime(day(1))},
			{"name": schema.String_("gamma"), "count": schema.Null(), "updated": schema.DateTime(day(2))},
		},
	)
	table.Sorter().Set("count", rowsort.Descending)

	planner := ui.Planner(
		ui.PlannerLane{Title: "Build", Entries: []ui.PlannerEntry{
			{Key: "design", Label: "Design", Start: day(1), End: day(3), Tone: ui.ToneInfo},
			{Key: "implement", Label: "Implement", Start: day(3), End: day(9), Tone: ui.ToneSuccess},
		}},
		ui.PlannerLane{Title: "Verify", Entries: []ui.PlannerEntry{
			{Key: "review", Label: "Review", Start: day(8), End: day(11), Tone: ui.ToneWarning},
		}},
	)

	gantt := ui.Gantt(
		ui.GanttTask{Key: "design", Label: "Design", Start: day(1), End: day(3), Progress: 100},
		ui.GanttTask{Key: "implement", Label: "Implement", Start: day(3), End: day(9), Progress: 60, DependsOn: []string{"design"}},
		ui.GanttTask{Key: "release", Label: "Release", Start: day(9), End: day(10), DependsOn: []string{"implement"}},
	)

	tree := ui.TreeView([]ui.TreeItem{
		{Key: "workspaces", Label: "Workspaces", Children: []ui.TreeItem{
			{Key: "demo", Label: "demo", Children: []ui.TreeItem{
				{Key: "demo/sales", Label: "sales.ds"},
				{Key: "demo/stock", Label: "stock.ds"},
			}},
		}},
	}, "workspaces", "demo")

	menu := ui.Menu(
		ui.MenuItem{Label: "Open", Icon: "folder"},
		ui.MenuItem{Label: "Export", Children: []ui.MenuItem{
			{Label: "JSON"},
			{Label: "CSV"},
		}},
		ui.Separator(),
		ui.MenuItem{Label: "Delete", Disabled: true},
	)

	return ui.VStack(2,
		ui.Heading(1, "Component showcase"),
		ui.HStack(2,
			ui.Badge("live", ui.ToneSuccess),
			ui.Progress(60, 100),
		),
		ui.Tabs(0,
			ui.Tab{Label: "Table", Panel: ui.Card(ui.CardStyle{Title: "Datasets", Elevation: 1}, table)},
			ui.Tab{Label: "Planner", Panel: planner},
			ui.Tab{Label: "Gantt", Panel: gantt},
		),
		ui.Divider(ui.Horizontal),
		ui.HStack(4, tree, menu),
		ui.Text("Rendered server side.", ui.TextStyle{Tone: ui.ToneNeutral}),
	)
}
