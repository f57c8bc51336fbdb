package ui

import (
	"testing"

	"github.com/elaraai/east-ui-sub007/pkg/rowsort"
	"github.com/elaraai/east-ui-sub007/pkg/schema"
)

func sampleTable() *TableNode {
	columns := []Column{
		{Key: "name", Title: "Name", Sortable: true, Kind: ColumnString},
		{Key: "count", Title: "Count", Sortable: true, Kind: ColumnNumber, Align: AlignRight},
		{Key: "note", Title: "Note"},
	}
	rows := []map[string]schema.Value{
		{"name": schema.String_("widget"), "count": schema.Integer(7), "note": schema.String_("x")},
		{"name": schema.String_("axle"), "count": schema.Integer(31), "note": schema.Null()},
		{"name": schema.String_("motor"), "count": schema.Null(), "note": schema.String_("y")},
	}
	return Table(columns, rows)
}

func TestTableNormalization(t *testing.T) {
	t.Run("duplicate columns dropped", func(t *testing.T) {
		tbl := Table([]Column{{Key: "a", Title: "first"}, {Key: "a", Title: "second"}}, nil)
		if len(tbl.Columns) != 1 {
			t.Fatalf("columns = %d, want 1", len(tbl.Columns))
		}
		if tbl.Columns[0].Title != "first" {
			t.Error("first occurrence should win")
		}
	})

	t.Run("enums normalized", func(t *testing.T) {
		tbl := Table([]Column{{Key: "a", Align: "diagonal", Kind: "complex"}}, nil)
		if tbl.Columns[0].Align != AlignLeft {
			t.Errorf("Align = %v, want left", tbl.Columns[0].Align)
		}
		if tbl.Columns[0].Kind != ColumnString {
			t.Errorf("Kind = %v, want string", tbl.Columns[0].Kind)
		}
	})

	t.Run("rows copied", func(t *testing.T) {
		rows := []map[string]schema.Value{{"a": schema.Integer(1)}}
		tbl := Table([]Column{{Key: "a"}}, rows)
		rows[0]["a"] = schema.Integer(99)
		if tbl.Rows[0]["a"].Int != 1 {
			t.Error("Table should copy row maps")
		}
	})
}

func TestTableSortedRows(t *testing.T) {
	t.Run("by string column", func(t *testing.T) {
		tbl := sampleTable()
		tbl.Sorter().Set("name", rowsort.Ascending)

		rows, err := tbl.SortedRows()
		if err != nil {
			t.Fatal(err)
		}
		if rows[0]["name"].Str != "axle" || rows[2]["name"].Str != "widget" {
			t.Errorf("order = %v,%v,%v", rows[0]["name"].Str, rows[1]["name"].Str, rows[2]["name"].Str)
		}
	})

	t.Run("null cells sort last ascending", func(t *testing.T) {
		tbl := sampleTable()
		tbl.Sorter().Set("count", rowsort.Ascending)

		rows, err := tbl.SortedRows()
		if err != nil {
			t.Fatal(err)
		}
		if rows[2]["name"].Str != "motor" {
			t.Errorf("row with null count should be last, got %v", rows[2]["name"].Str)
		}
	})

	t.Run("unsortable column", func(t *testing.T) {
		tbl := sampleTable()
		tbl.Sorter().Set("note", rowsort.Ascending)
		if _, err := tbl.SortedRows(); err == nil {
			t.Error("sorting an unsortable column should fail")
		}
	})

	t.Run("no sorts preserves order", func(t *testing.T) {
		tbl := sampleTable()
		rows, err := tbl.SortedRows()
		if err != nil {
			t.Fatal(err)
		}
		if rows[0]["name"].Str != "widget" {
			t.Errorf("first row = %v, want widget", rows[0]["name"].Str)
		}
	})
}

func TestTableValue(t *testing.T) {
	tbl := sampleTable()
	tbl.Sorter().Set("count", rowsort.Descending)

	fields := variantFields(t, tbl.Value(), "Table")
	if len(fields["columns"].Items) != 3 {
		t.Errorf("columns = %d, want 3", len(fields["columns"].Items))
	}
	if len(fields["rows"].Items) != 3 {
		t.Errorf("rows = %d, want 3", len(fields["rows"].Items))
	}
	sorts := fields["sorts"].Items
	if len(sorts) != 1 {
		t.Fatalf("sorts = %d, want 1", len(sorts))
	}
	if sorts[0].Fields["column"].Str != "count" || sorts[0].Fields["direction"].Str != "desc" {
		t.Errorf("sort entry = %+v", sorts[0].Fields)
	}
}
