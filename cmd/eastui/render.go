package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/elaraai/east-ui-sub007/pkg/render"
	"github.com/elaraai/east-ui-sub007/pkg/schema"
	"github.com/elaraai/east-ui-sub007/ui"
)

func renderCmd() *cobra.Command {
	var (
		output string
		pretty bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the component showcase",
		Long: `Render the built-in component showcase to stdout or a file.

By default the output is HTML. With --json the serialized East value
of the component tree is emitted instead.

Examples:
  eastui render
  eastui render --pretty -o showcase.html
  eastui render --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(output, pretty, asJSON)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write to file instead of stdout")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the HTML output")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the East value as JSON instead of HTML")

	return cmd
}

func runRender(output string, pretty, asJSON bool) error {
	page := showcase()

	var out []byte
	if asJSON {
		data, err := schema.ToJSON(page.Value())
		if err != nil {
			return err
		}
		if pretty {
			var buf bytes.Buffer
			if err := json.Indent(&buf, data, "", "  "); err != nil {
				return err
			}
			data = buf.Bytes()
		}
		out = append(data, '\n')
	} else {
		renderer := render.NewRenderer(render.RendererConfig{Pretty: pretty})
		html, err := renderer.RenderToString(page)
		if err != nil {
			return err
		}
		out = []byte(html)
	}

	if output == "" {
		fmt.Print(string(out))
		return nil
	}
	if err := os.WriteFile(output, out, 0644); err != nil {
		return err
	}
	success("wrote %s (%d bytes)", output, len(out))
	return nil
}

// showcase builds the component tree rendered by the render command.
func showcase() ui.Component {
	day := func(d int) time.Time {
		return time.Date(2026, time.March, d, 9, 0, 0, 0, time.UTC)
	}

	table := ui.Table(
		[]ui.Column{
			{Key: "region", Title: "Region", Sortable: true},
			{Key: "revenue", Title: "Revenue", Align: ui.AlignRight, Sortable: true, Kind: ui.ColumnNumber},
		},
		[]map[string]schema.Value{
			{"region": schema.String_("north"), "revenue": schema.Float(1204.5)},
			{"region": schema.String_("south"), "revenue": schema.Float(980.0)},
			{"region": schema.String_("east"), "revenue": schema.Null()},
		},
	)

	return ui.VStack(2,
		ui.Heading(1, "east-ui showcase"),
		ui.Card(ui.CardStyle{Title: "Revenue by region", Elevation: 1}, table),
		ui.Planner(
			ui.PlannerLane{Title: "Rollout", Entries: []ui.PlannerEntry{
				{Key: "pilot", Label: "Pilot", Start: day(2), End: day(5), Tone: ui.ToneInfo},
				{Key: "launch", Label: "Launch", Start: day(5), End: day(12), Tone: ui.ToneSuccess},
			}},
		),
		ui.Gantt(
			ui.GanttTask{Key: "pilot", Label: "Pilot", Start: day(2), End: day(5), Progress: 100},
			ui.GanttTask{Key: "launch", Label: "Launch", Start: day(5), End: day(12), Progress: 30, DependsOn: []string{"pilot"}},
		),
	)
}
