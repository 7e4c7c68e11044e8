package random

import "math/rand"

// TableEntry is a single weighted item in a Table
type TableEntry[T any] struct {
	Item   T
	Weight int
}

// Table picks items with probability proportional to their weight
type Table[T any] struct {
	entries     []TableEntry[T]
	totalWeight int
}

// NewTable creates an empty table
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Add appends an item with the given weight and returns the table for chaining.
// Items with a non-positive weight can never be rolled and are not stored.
func (t *Table[T]) Add(item T, weight int) *Table[T] {
	if weight <= 0 {
		return t
	}
	t.entries = append(t.entries, TableEntry[T]{Item: item, Weight: weight})
	t.totalWeight += weight
	return t
}

// Len returns the number of stored entries
func (t *Table[T]) Len() int {
	return len(t.entries)
}

// TotalWeight returns the sum of all entry weights
func (t *Table[T]) TotalWeight() int {
	return t.totalWeight
}

// Entries returns a copy of the entries in insertion order
func (t *Table[T]) Entries() []TableEntry[T] {
	out := make([]TableEntry[T], len(t.entries))
	copy(out, t.entries)
	return out
}

// Roll draws one item. It reports false, consuming no randomness, when the
// table is empty.
func (t *Table[T]) Roll(rng *rand.Rand) (T, bool) {
	var zero T
	if t == nil || t.totalWeight <= 0 {
		return zero, false
	}

	roll := rng.Intn(t.totalWeight)
	for _, e := range t.entries {
		if roll < e.Weight {
			return e.Item, true
		}
		roll -= e.Weight
	}
	// Unreachable while totalWeight matches the stored weights.
	return zero, false
}
