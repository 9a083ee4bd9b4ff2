// Package view derives the lists the dashboard renders from fetched
// collections: search, one discrete filter and a stable column sort.
package view

import (
	"slices"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// FilterAll is the identity filter.
const FilterAll = "all"

// Sort is the active sort column.
type Sort struct {
	Key       string    `json:"key"`
	Direction Direction `json:"direction"`
}

// Toggle applies a click on column key: the same ascending column flips to
// descending, anything else sorts key ascending.
func (s Sort) Toggle(key string) Sort {
	if s.Key == key && s.Direction == Asc {
		return Sort{Key: key, Direction: Desc}
	}
	return Sort{Key: key, Direction: Asc}
}

// Query is everything the derived list depends on besides the raw data.
type Query struct {
	Search string `json:"search"`
	Filter string `json:"filter"`
	Sort   Sort   `json:"sort"`
}

// Comparator orders two items ascending: negative when a sorts first.
type Comparator[T any] func(a, b T) int

// Spec describes how one entity type is searched, filtered and sorted.
type Spec[T any] struct {
	// Visible drops items from every listing (sentinel records).
	Visible func(item T) bool
	// Fields returns the texts a search term is matched against.
	Fields func(item T) []string
	// Filter reports whether item passes the discrete filter value.
	Filter func(item T, value string) bool
	// Comparators holds typed comparators per sort key.
	Comparators map[string]Comparator[T]
	// Field is the string representation used for keys without a comparator.
	Field func(item T, key string) string
	// Collator compares strings for the fallback sort.
	Collator *Collator
}

// Derive returns a new slice with the items of raw that match q, ordered by
// q.Sort. raw is never modified. Equal items keep their input order in both
// directions.
func Derive[T any](raw []T, q Query, spec Spec[T]) []T {
	term := strings.ToLower(q.Search)
	filterOn := q.Filter != "" && q.Filter != FilterAll && spec.Filter != nil

	out := make([]T, 0, len(raw))
	for _, item := range raw {
		if spec.Visible != nil && !spec.Visible(item) {
			continue
		}
		if term != "" && spec.Fields != nil && !matches(spec.Fields(item), term) {
			continue
		}
		if filterOn && !spec.Filter(item, q.Filter) {
			continue
		}
		out = append(out, item)
	}

	cmp := spec.comparator(q.Sort.Key)
	if cmp == nil {
		return out
	}
	if q.Sort.Direction == Desc {
		slices.SortStableFunc(out, func(a, b T) int { return cmp(b, a) })
	} else {
		slices.SortStableFunc(out, cmp)
	}
	return out
}

func (s Spec[T]) comparator(key string) Comparator[T] {
	if key == "" {
		return nil
	}
	if cmp, ok := s.Comparators[key]; ok {
		return cmp
	}
	if s.Field == nil {
		return nil
	}
	coll := s.Collator
	if coll == nil {
		coll = DefaultCollator()
	}
	return func(a, b T) int {
		return coll.Compare(s.Field(a, key), s.Field(b, key))
	}
}

// matches reports whether any field contains term (already lower-cased).
func matches(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

// Ranked builds a comparator from an explicit rank table. Unknown values rank last.
func Ranked[T any, K comparable](rank map[K]int, key func(T) K) Comparator[T] {
	last := len(rank) + 1
	get := func(item T) int {
		if r, ok := rank[key(item)]; ok {
			return r
		}
		return last
	}
	return func(a, b T) int {
		return get(a) - get(b)
	}
}

// Numeric builds a comparator over an integer field.
func Numeric[T any](field func(T) int64) Comparator[T] {
	return func(a, b T) int {
		x, y := field(a), field(b)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
}
