package ui

import (
	"time"

	"github.com/elaraai/east-ui-sub007/pkg/schema"
)

// GanttTask is one bar of a gantt chart.
type GanttTask struct {
	Key      string
	Label    string
	Start    time.Time
	End      time.Time
	Progress float64 // percent complete, clamped to [0, 100]

	// DependsOn lists keys of tasks that must finish before this one.
	DependsOn []string
}

// GanttNode is a normalized gantt chart.
type GanttNode struct {
	Tasks []GanttTask
}

// Gantt creates a gantt chart. Duplicate task keys keep the first
// occurrence; dependencies naming unknown keys are dropped; end instants
// before start are normalized to the start instant.
func Gantt(tasks ...GanttTask) *GanttNode {
	seen := make(map[string]bool, len(tasks))
	copied := make([]GanttTask, 0, len(tasks))
	for _, task := range tasks {
		if seen[task.Key] {
			continue
		}
		seen[task.Key] = true
		task.Start = task.Start.UTC()
		task.End = task.End.UTC()
		if task.End.Before(task.Start) {
			task.End = task.Start
		}
		task.Progress = clampFloat(task.Progress, 0, 100)
		copied = append(copied, task)
	}

	for i := range copied {
		deps := make([]string, 0, len(copied[i].DependsOn))
		for _, dep := range copied[i].DependsOn {
			if seen[dep] && dep != copied[i].Key {
				deps = append(deps, dep)
			}
		}
		copied[i].DependsOn = deps
	}

	return &GanttNode{Tasks: copied}
}

// Type implements Component.
func (g *GanttNode) Type() string { return "Gantt" }

// Value implements Component.
func (g *GanttNode) Value() schema.Value {
	tasks := make([]schema.Value, 0, len(g.Tasks))
	for _, task := range g.Tasks {
		deps := make([]schema.Value, 0, len(task.DependsOn))
		for _, dep := range task.DependsOn {
			deps = append(deps, schema.String_(dep))
		}
		tasks = append(tasks, schema.Struct(map[string]schema.Value{
			"key":      schema.String_(task.Key),
			"label":    schema.String_(task.Label),
			"start":    schema.DateTime(task.Start),
			"end":      schema.DateTime(task.End),
			"progress": schema.Float(task.Progress),
			"deps":     schema.Array(deps...),
		}))
	}
	return componentValue(g.Type(), map[string]schema.Value{
		"tasks": schema.Array(tasks...),
	})
}
