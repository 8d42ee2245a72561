package console

import (
	"sort"
	"strings"
)

// AllValues is the categorical filter sentinel meaning "no constraint".
const AllValues = "all"

// TextField extracts one free-text searchable field from a record.
type TextField[T Record] func(T) string

// Categorical is one exact-match filter dimension. A Value of AllValues (or
// empty) leaves the dimension unconstrained.
type Categorical[T Record] struct {
	Value string
	Get   func(T) string
}

// Unconstrained reports whether the dimension filters nothing.
func (c Categorical[T]) Unconstrained() bool {
	return c.Value == "" || c.Value == AllValues
}

// Filter applies the console predicate: case-insensitive substring match of
// term OR-ed across the text fields, AND-ed with every constrained
// categorical dimension. Source order is preserved. With an empty term and
// all dimensions unconstrained the input slice is returned as is.
func Filter[T Record](records []T, term string, fields []TextField[T], dims []Categorical[T]) []T {
	term = strings.TrimSpace(term)
	constrained := false
	for _, d := range dims {
		if !d.Unconstrained() {
			constrained = true
			break
		}
	}
	if term == "" && !constrained {
		return records
	}

	needle := strings.ToLower(term)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if term != "" && !matchesText(rec, needle, fields) {
			continue
		}
		if !matchesDims(rec, dims) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func matchesText[T Record](rec T, needle string, fields []TextField[T]) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f(rec)), needle) {
			return true
		}
	}
	return false
}

func matchesDims[T Record](rec T, dims []Categorical[T]) bool {
	for _, d := range dims {
		if d.Unconstrained() {
			continue
		}
		if d.Get(rec) != d.Value {
			return false
		}
	}
	return true
}

// SortDir is the ascending/descending toggle of an explicit column sort.
type SortDir int

const (
	Asc SortDir = iota
	Desc
)

// SortBy orders a copy of records by the key column. Equal keys keep their
// source order.
func SortBy[T Record](records []T, key func(T) string, dir SortDir) []T {
	out := append([]T(nil), records...)
	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return key(out[i]) > key(out[j])
		}
		return key(out[i]) < key(out[j])
	})
	return out
}
