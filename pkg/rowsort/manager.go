package rowsort

import (
	"sort"
	"sync"

	"github.com/elaraai/east-ui-sub007/internal/errors"
)

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// Sort is one entry of the active sort state.
type Sort struct {
	Column    string
	Direction Direction
}

// Row is a single table row keyed by column.
// A nil cell value means the cell is missing.
type Row = map[string]any

// Comparator orders two non-nil cell values of one column.
// It returns a negative number if a < b, zero if equal, positive if a > b.
type Comparator func(a, b any) int

// Manager holds the sort state for one table.
// It is safe for concurrent use. Subscriber callbacks run synchronously on
// the mutating goroutine, outside the manager's lock.
type Manager struct {
	mu          sync.Mutex
	sorts       []Sort
	comparators map[string]Comparator

	subMu   sync.Mutex
	subs    map[uint64]func([]Sort)
	order   []uint64
	nextSub uint64
}

// NewManager creates an empty sort manager.
func NewManager() *Manager {
	return &Manager{
		comparators: make(map[string]Comparator),
		subs:        make(map[uint64]func([]Sort)),
	}
}

// Register installs the comparator used for the given column.
// Registering again replaces the previous comparator.
func (m *Manager) Register(column string, cmp Comparator) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.comparators[column] = cmp
}

// Sorts returns a copy of the current sort state in priority order.
func (m *Manager) Sorts() []Sort {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Toggle cycles the column through unsorted, ascending, and descending.
// A column already in the sort state keeps its priority position until it
// cycles back to unsorted.
func (m *Manager) Toggle(column string) {
	m.mu.Lock()
	found := false
	for i := range m.sorts {
		if m.sorts[i].Column != column {
			continue
		}
		found = true
		if m.sorts[i].Direction == Ascending {
			m.sorts[i].Direction = Descending
		} else {
			m.sorts = append(m.sorts[:i], m.sorts[i+1:]...)
		}
		break
	}
	if !found {
		m.sorts = append(m.sorts, Sort{Column: column, Direction: Ascending})
	}
	state := m.snapshot()
	m.mu.Unlock()

	m.notify(state)
}

// Set replaces the sort state with a single entry.
func (m *Manager) Set(column string, direction Direction) {
	m.mu.Lock()
	m.sorts = []Sort{{Column: column, Direction: direction}}
	state := m.snapshot()
	m.mu.Unlock()

	m.notify(state)
}

// SetAll replaces the entire sort state. The slice is copied.
func (m *Manager) SetAll(sorts []Sort) {
	m.mu.Lock()
	m.sorts = make([]Sort, len(sorts))
	copy(m.sorts, sorts)
	state := m.snapshot()
	m.mu.Unlock()

	m.notify(state)
}

// Clear removes all sort entries.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.sorts = nil
	state := m.snapshot()
	m.mu.Unlock()

	m.notify(state)
}

// Subscribe registers a callback invoked synchronously after each mutation
// with a snapshot of the new sort state. The returned function removes the
// subscription.
func (m *Manager) Subscribe(fn func([]Sort)) func() {
	m.subMu.Lock()
	id := m.nextSub
	m.nextSub++
	m.subs[id] = fn
	m.order = append(m.order, id)
	m.subMu.Unlock()

	return func() {
		m.subMu.Lock()
		defer m.subMu.Unlock()
		delete(m.subs, id)
		for i, sid := range m.order {
			if sid == id {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	}
}

// SortRows returns the rows ordered by the active sort state.
// The sort is stable and multi-key: ties on the first sort column fall
// through to the next. Missing (nil) cell values order last in ascending
// sorts and first in descending sorts; the column comparator is never
// called with a nil value. The input slice is not mutated.
//
// SortRows fails if any active sort column has no registered comparator.
func (m *Manager) SortRows(rows []Row) ([]Row, error) {
	m.mu.Lock()
	sorts := m.snapshot()
	cmps := make(map[string]Comparator, len(sorts))
	for _, s := range sorts {
		cmp, ok := m.comparators[s.Column]
		if !ok {
			m.mu.Unlock()
			return nil, errors.New("E202").WithDetail("column " + s.Column).
				WithSuggestion("Register a comparator for every sortable column")
		}
		cmps[s.Column] = cmp
	}
	m.mu.Unlock()

	out := make([]Row, len(rows))
	copy(out, rows)
	if len(sorts) == 0 {
		return out, nil
	}

	sort.SliceStable(out, func(i, j int) bool {
		for _, s := range sorts {
			c := compareCells(out[i][s.Column], out[j][s.Column], cmps[s.Column])
			if s.Direction == Descending {
				c = -c
			}
			if c != 0 {
				return c < 0
			}
		}
		return false
	})
	return out, nil
}

// compareCells orders two cells, treating nil as greater than any value so
// that missing cells sink to the end of an ascending sort.
func compareCells(a, b any, cmp Comparator) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp(a, b)
	}
}

// snapshot copies the sort state. Caller must hold mu.
func (m *Manager) snapshot() []Sort {
	state := make([]Sort, len(m.sorts))
	copy(state, m.sorts)
	return state
}

// notify delivers the state to subscribers in subscription order.
func (m *Manager) notify(state []Sort) {
	m.subMu.Lock()
	fns := make([]func([]Sort), 0, len(m.order))
	for _, id := range m.order {
		if fn, ok := m.subs[id]; ok {
			fns = append(fns, fn)
		}
	}
	m.subMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}
