// Package rowsort implements multi-column sort-state management for
// table-like renderers.
//
// A Manager holds an ordered list of (column, direction) pairs. Toggling a
// column cycles it through unsorted, ascending, and descending. SortRows
// performs a stable multi-key sort over row maps using per-column registered
// comparators, without mutating the input. Subscribers are notified
// synchronously after every state mutation.
package rowsort
