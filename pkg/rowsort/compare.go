package rowsort

import (
	"strings"
	"time"
)

// Strings compares cell values as strings, case-sensitively.
// Non-string values order after strings.
func Strings() Comparator {
	return func(a, b any) int {
		as, aok := a.(string)
		bs, bok := b.(string)
		if c := typeRank(aok, bok); c != 0 {
			return c
		}
		return strings.Compare(as, bs)
	}
}

// Numbers compares cell values as numbers, accepting int, int64 and float64.
// Non-numeric values order after numbers.
func Numbers() Comparator {
	return func(a, b any) int {
		af, aok := toFloat(a)
		bf, bok := toFloat(b)
		if c := typeRank(aok, bok); c != 0 {
			return c
		}
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
}

// Times compares cell values as time.Time.
// Non-time values order after times.
func Times() Comparator {
	return func(a, b any) int {
		at, aok := a.(time.Time)
		bt, bok := b.(time.Time)
		if c := typeRank(aok, bok); c != 0 {
			return c
		}
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	}
}

// Booleans compares cell values as bools, false before true.
// Non-bool values order after bools.
func Booleans() Comparator {
	return func(a, b any) int {
		ab, aok := a.(bool)
		bb, bok := b.(bool)
		if c := typeRank(aok, bok); c != 0 {
			return c
		}
		switch {
		case ab == bb:
			return 0
		case bb:
			return -1
		default:
			return 1
		}
	}
}

// typeRank orders values the comparator understands before ones it doesn't.
func typeRank(aok, bok bool) int {
	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	default:
		return 0
	}
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
