package ui

import (
	"sort"
	"time"

	"github.com/elaraai/east-ui-sub007/pkg/schema"
)

// PlannerEntry is one scheduled block inside a planner lane.
type PlannerEntry struct {
	Key   string
	Label string
	Start time.Time
	End   time.Time
	Tone  Tone
}

// PlannerLane is one horizontal lane of a planner.
type PlannerLane struct {
	Title   string
	Entries []PlannerEntry
}

// PlannerNode is a normalized planner board.
type PlannerNode struct {
	Lanes []PlannerLane
}

// Planner creates a planner board. Entries whose end precedes their start
// are normalized to zero length at the start instant, and entries within a
// lane are ordered by start time.
func Planner(lanes ...PlannerLane) *PlannerNode {
	copied := make([]PlannerLane, len(lanes))
	copy(copied, lanes)
	for i := range copied {
		entries := make([]PlannerEntry, len(copied[i].Entries))
		copy(entries, copied[i].Entries)
		for j := range entries {
			entries[j].Start = entries[j].Start.UTC()
			entries[j].End = entries[j].End.UTC()
			if entries[j].End.Before(entries[j].Start) {
				entries[j].End = entries[j].Start
			}
			entries[j].Tone = normalizeEnum(entries[j].Tone, ToneInfo,
				ToneNeutral, ToneInfo, ToneSuccess, ToneWarning, ToneDanger)
		}
		sort.SliceStable(entries, func(a, b int) bool {
			return entries[a].Start.Before(entries[b].Start)
		})
		copied[i].Entries = entries
	}
	return &PlannerNode{Lanes: copied}
}

// Type implements Component.
func (p *PlannerNode) Type() string { return "Planner" }

// Value implements Component.
func (p *PlannerNode) Value() schema.Value {
	lanes := make([]schema.Value, 0, len(p.Lanes))
	for _, lane := range p.Lanes {
		entries := make([]schema.Value, 0, len(lane.Entries))
		for _, e := range lane.Entries {
			entries = append(entries, schema.Struct(map[string]schema.Value{
				"key":   schema.String_(e.Key),
				"label": schema.String_(e.Label),
				"start": schema.DateTime(e.Start),
				"end":   schema.DateTime(e.End),
				"tone":  schema.String_(string(e.Tone)),
			}))
		}
		lanes = append(lanes, schema.Struct(map[string]schema.Value{
			"title":   schema.String_(lane.Title),
			"entries": schema.Array(entries...),
		}))
	}
	return componentValue(p.Type(), map[string]schema.Value{
		"lanes": schema.Array(lanes...),
	})
}
