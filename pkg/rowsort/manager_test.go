package rowsort

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestToggleCycle(t *testing.T) {
	m := NewManager()

	m.Toggle("name")
	if diff := cmp.Diff([]Sort{{Column: "name", Direction: Ascending}}, m.Sorts()); diff != "" {
		t.Errorf("after first toggle (-want +got):\n%s", diff)
	}

	m.Toggle("name")
	if diff := cmp.Diff([]Sort{{Column: "name", Direction: Descending}}, m.Sorts()); diff != "" {
		t.Errorf("after second toggle (-want +got):\n%s", diff)
	}

	m.Toggle("name")
	if got := m.Sorts(); len(got) != 0 {
		t.Errorf("after third toggle = %v, want empty", got)
	}
}

func TestToggleKeepsPriorityPosition(t *testing.T) {
	m := NewManager()
	m.Toggle("a")
	m.Toggle("b")
	m.Toggle("a") // a -> desc, must stay first

	want := []Sort{
		{Column: "a", Direction: Descending},
		{Column: "b", Direction: Ascending},
	}
	if diff := cmp.Diff(want, m.Sorts()); diff != "" {
		t.Errorf("sort state (-want +got):\n%s", diff)
	}
}

func TestSetSetAllClear(t *testing.T) {
	m := NewManager()
	m.Toggle("a")
	m.Toggle("b")

	m.Set("c", Descending)
	if diff := cmp.Diff([]Sort{{Column: "c", Direction: Descending}}, m.Sorts()); diff != "" {
		t.Errorf("Set should replace state (-want +got):\n%s", diff)
	}

	want := []Sort{
		{Column: "x", Direction: Ascending},
		{Column: "y", Direction: Descending},
	}
	m.SetAll(want)
	if diff := cmp.Diff(want, m.Sorts()); diff != "" {
		t.Errorf("SetAll (-want +got):\n%s", diff)
	}

	// Mutating the caller's slice must not leak into the manager.
	want[0].Column = "mutated"
	if m.Sorts()[0].Column != "x" {
		t.Error("SetAll should copy the input slice")
	}

	m.Clear()
	if got := m.Sorts(); len(got) != 0 {
		t.Errorf("after Clear = %v, want empty", got)
	}
}

func TestSubscribeNotifiesSynchronously(t *testing.T) {
	m := NewManager()

	var got [][]Sort
	unsub := m.Subscribe(func(s []Sort) {
		got = append(got, s)
	})

	m.Toggle("a")
	m.Clear()
	if len(got) != 2 {
		t.Fatalf("notifications = %d, want 2", len(got))
	}
	if got[0][0].Column != "a" {
		t.Errorf("first notification = %v", got[0])
	}
	if len(got[1]) != 0 {
		t.Errorf("second notification = %v, want empty", got[1])
	}

	unsub()
	m.Toggle("b")
	if len(got) != 2 {
		t.Error("unsubscribed callback should not fire")
	}
}

func TestSortRows(t *testing.T) {
	rows := []Row{
		{"name": "carol", "age": int64(30)},
		{"name": "alice", "age": int64(41)},
		{"name": "bob", "age": int64(30)},
	}

	t.Run("single column", func(t *testing.T) {
		m := NewManager()
		m.Register("name", Strings())
		m.Set("name", Ascending)

		got, err := m.SortRows(rows)
		if err != nil {
			t.Fatal(err)
		}
		if got[0]["name"] != "alice" || got[2]["name"] != "carol" {
			t.Errorf("order = %v,%v,%v", got[0]["name"], got[1]["name"], got[2]["name"])
		}
	})

	t.Run("multi key stable", func(t *testing.T) {
		m := NewManager()
		m.Register("name", Strings())
		m.Register("age", Numbers())
		m.SetAll([]Sort{
			{Column: "age", Direction: Ascending},
			{Column: "name", Direction: Descending},
		})

		got, err := m.SortRows(rows)
		if err != nil {
			t.Fatal(err)
		}
		// age 30 first (carol before bob by descending name), then alice.
		wantNames := []string{"carol", "bob", "alice"}
		for i, w := range wantNames {
			if got[i]["name"] != w {
				t.Errorf("row %d = %v, want %v", i, got[i]["name"], w)
			}
		}
	})

	t.Run("input not mutated", func(t *testing.T) {
		m := NewManager()
		m.Register("name", Strings())
		m.Set("name", Descending)

		before := rows[0]["name"]
		if _, err := m.SortRows(rows); err != nil {
			t.Fatal(err)
		}
		if rows[0]["name"] != before {
			t.Error("SortRows mutated its input")
		}
	})

	t.Run("missing comparator", func(t *testing.T) {
		m := NewManager()
		m.Set("ghost", Ascending)
		if _, err := m.SortRows(rows); err == nil {
			t.Error("expected error for unregistered comparator")
		}
	})

	t.Run("no active sorts copies input", func(t *testing.T) {
		m := NewManager()
		got, err := m.SortRows(rows)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != len(rows) {
			t.Fatalf("len = %d", len(got))
		}
	})
}

func TestSortRowsNilCells(t *testing.T) {
	rows := []Row{
		{"score": nil},
		{"score": int64(10)},
		{"score": int64(5)},
	}

	m := NewManager()
	m.Register("score", Numbers())

	t.Run("nil sorts last ascending", func(t *testing.T) {
		m.Set("score", Ascending)
		got, err := m.SortRows(rows)
		if err != nil {
			t.Fatal(err)
		}
		if got[0]["score"] != int64(5) || got[2]["score"] != nil {
			t.Errorf("order = %v", []any{got[0]["score"], got[1]["score"], got[2]["score"]})
		}
	})

	t.Run("nil sorts first descending", func(t *testing.T) {
		m.Set("score", Descending)
		got, err := m.SortRows(rows)
		if err != nil {
			t.Fatal(err)
		}
		if got[0]["score"] != nil || got[1]["score"] != int64(10) {
			t.Errorf("order = %v", []any{got[0]["score"], got[1]["score"], got[2]["score"]})
		}
	})
}

func TestComparators(t *testing.T) {
	tests := []struct {
		name string
		cmp  Comparator
		a, b any
		want int
	}{
		{"strings less", Strings(), "a", "b", -1},
		{"strings equal", Strings(), "a", "a", 0},
		{"strings mixed type", Strings(), "a", 1, -1},
		{"numbers int vs float", Numbers(), int64(2), 2.5, -1},
		{"numbers greater", Numbers(), 3.0, 1.0, 1},
		{"booleans false first", Booleans(), false, true, -1},
		{"booleans equal", Booleans(), true, true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.cmp(tt.a, tt.b)
			switch {
			case tt.want < 0 && got >= 0,
				tt.want > 0 && got <= 0,
				tt.want == 0 && got != 0:
				t.Errorf("cmp(%v, %v) = %d, want sign of %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
