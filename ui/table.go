package ui

import (
	"github.com/elaraai/east-ui-sub007/pkg/rowsort"
	"github.com/elaraai/east-ui-sub007/pkg/schema"
)

// ColumnKind selects the comparator used when sorting a column.
type ColumnKind string

const (
	ColumnString   ColumnKind = "string"
	ColumnNumber   ColumnKind = "number"
	ColumnDateTime ColumnKind = "datetime"
	ColumnBoolean  ColumnKind = "boolean"
)

// Column describes one table column.
type Column struct {
	Key      string
	Title    string
	Align    Align
	Sortable bool
	Kind     ColumnKind
}

// TableNode is a normalized data table with its sort controller.
type TableNode struct {
	Columns []Column
	Rows    []map[string]schema.Value

	sorter *rowsort.Manager
}

// Table creates a data table. Column alignment and kind enums are
// normalized; duplicate column keys keep the first occurrence. A comparator
// matching each sortable column's kind is registered on the table's sort
// manager.
func Table(columns []Column, rows []map[string]schema.Value) *TableNode {
	sorter := rowsort.NewManager()

	seen := make(map[string]bool)
	cols := make([]Column, 0, len(columns))
	for _, col := range columns {
		if seen[col.Key] {
			continue
		}
		seen[col.Key] = true
		col.Align = normalizeEnum(col.Align, AlignLeft, AlignLeft, AlignCenter, AlignRight)
		col.Kind = normalizeEnum(col.Kind, ColumnString, ColumnString, ColumnNumber, ColumnDateTime, ColumnBoolean)
		if col.Sortable {
			sorter.Register(col.Key, comparatorFor(col.Kind))
		}
		cols = append(cols, col)
	}

	copied := make([]map[string]schema.Value, len(rows))
	for i, row := range rows {
		rowCopy := make(map[string]schema.Value, len(row))
		for k, v := range row {
			rowCopy[k] = v
		}
		copied[i] = rowCopy
	}

	return &TableNode{Columns: cols, Rows: copied, sorter: sorter}
}

// Sorter returns the table's sort manager.
func (t *TableNode) Sorter() *rowsort.Manager {
	return t.sorter
}

// SortedRows returns the table's rows ordered by the current sort state.
func (t *TableNode) SortedRows() ([]map[string]schema.Value, error) {
	raw := make([]rowsort.Row, len(t.Rows))
	for i, row := range t.Rows {
		cells := make(rowsort.Row, len(row))
		for k, v := range row {
			cells[k] = sortableCell(v)
		}
		cells[rowIndexKey] = i
		raw[i] = cells
	}

	sorted, err := t.sorter.SortRows(raw)
	if err != nil {
		return nil, err
	}

	// Re-associate sorted raw rows with the original value rows. Raw rows
	// keep identity through the row index cell planted below.
	out := make([]map[string]schema.Value, len(sorted))
	for i, row := range sorted {
		out[i] = t.Rows[row[rowIndexKey].(int)]
	}
	return out, nil
}

// rowIndexKey carries the original row position through the sort.
const rowIndexKey = "\x00row"

// sortableCell converts an East value to a comparator-friendly Go value.
// Null becomes nil, which the sorter treats as missing.
func sortableCell(v schema.Value) any {
	switch v.Kind {
	case schema.KindNull:
		return nil
	case schema.KindBoolean:
		return v.Bool
	case schema.KindInteger:
		return v.Int
	case schema.KindFloat:
		return v.Float
	case schema.KindString:
		return v.Str
	case schema.KindDateTime:
		return v.Time
	default:
		return nil
	}
}

// comparatorFor maps a column kind to its comparator.
func comparatorFor(kind ColumnKind) rowsort.Comparator {
	switch kind {
	case ColumnNumber:
		return rowsort.Numbers()
	case ColumnDateTime:
		return rowsort.Times()
	case ColumnBoolean:
		return rowsort.Booleans()
	default:
		return rowsort.Strings()
	}
}

// Type implements Component.
func (t *TableNode) Type() string { return "Table" }

// Value implements Component.
func (t *TableNode) Value() schema.Value {
	cols := make([]schema.Value, 0, len(t.Columns))
	for _, col := range t.Columns {
		cols = append(cols, schema.Struct(map[string]schema.Value{
			"key":      schema.String_(col.Key),
			"title":    schema.String_(col.Title),
			"align":    schema.String_(string(col.Align)),
			"sortable": schema.Boolean(col.Sortable),
			"kind":     schema.String_(string(col.Kind)),
		}))
	}

	rows := make([]schema.Value, 0, len(t.Rows))
	for _, row := range t.Rows {
		rows = append(rows, schema.Struct(row))
	}

	sorts := make([]schema.Value, 0)
	for _, s := range t.sorter.Sorts() {
		sorts = append(sorts, schema.Struct(map[string]schema.Value{
			"column":    schema.String_(s.Column),
			"direction": schema.String_(string(s.Direction)),
		}))
	}

	return componentValue(t.Type(), map[string]schema.Value{
		"columns": schema.Array(cols...),
		"rows":    schema.Array(rows...),
		"sorts":   schema.Array(sorts...),
	})
}
