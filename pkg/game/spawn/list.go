package spawn

import (
	"sort"

	"darkdelve/pkg/engine/world"
)

// List maps a coordinate to the kind spawned there. Keys are unique; a later
// Insert at an occupied coordinate replaces the earlier kind.
type List map[world.Point]Kind

// Entry is one coordinate/kind pair
type Entry struct {
	Pos  world.Point
	Kind Kind
}

// NewList creates an empty spawn list
func NewList() List {
	return make(List)
}

// Insert records kind at pos, overwriting any previous entry
func (l List) Insert(pos world.Point, kind Kind) {
	l[pos] = kind
}

// Has reports whether pos already holds a spawn
func (l List) Has(pos world.Point) bool {
	_, ok := l[pos]
	return ok
}

// Extend copies every entry of other into l, overwriting on collision
func (l List) Extend(other List) {
	for pos, kind := range other {
		l[pos] = kind
	}
}

// Clone returns an independent copy
func (l List) Clone() List {
	out := make(List, len(l))
	out.Extend(l)
	return out
}

// Sorted returns the entries ordered by row, then column
func (l List) Sorted() []Entry {
	entries := make([]Entry, 0, len(l))
	for pos, kind := range l {
		entries = append(entries, Entry{Pos: pos, Kind: kind})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Pos, entries[j].Pos
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		return a.X < b.X
	})
	return entries
}

// CountByKind returns how many entries hold each kind
func (l List) CountByKind() map[Kind]int {
	counts := make(map[Kind]int)
	for _, kind := range l {
		counts[kind]++
	}
	return counts
}
