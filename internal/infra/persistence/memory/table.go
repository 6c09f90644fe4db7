// Package memory implements the repositories on an in-process arena store.
package memory

import (
	"slices"

	"github.com/google/uuid"
)

type slot[T any] struct {
	value T
	seq   uint64 // Insertion sequence, used to list in insertion order.
	used  bool
}

// table is an arena of slots with an ID index. Removed slots go on a free list and are reused by later inserts.
type table[T any] struct {
	slots []slot[T]
	index map[uuid.UUID]int
	free  []int
	seq   uint64
}

func newTable[T any]() *table[T] {
	return &table[T]{index: make(map[uuid.UUID]int)}
}

func (t *table[T]) len() int {
	return len(t.index)
}

func (t *table[T]) has(id uuid.UUID) bool {
	_, ok := t.index[id]

	return ok
}

// insert stores value under id and returns the slot it landed in.
func (t *table[T]) insert(id uuid.UUID, value T) int {
	t.seq++
	s := slot[T]{value: value, seq: t.seq, used: true}

	var pos int
	if n := len(t.free); n > 0 {
		pos = t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[pos] = s
	} else {
		pos = len(t.slots)
		t.slots = append(t.slots, s)
	}
	t.index[id] = pos

	return pos
}

func (t *table[T]) get(id uuid.UUID) (T, bool) {
	pos, ok := t.index[id]
	if !ok {
		var zero T

		return zero, false
	}

	return t.slots[pos].value, true
}

// put replaces the value of an existing id, keeping its insertion position.
func (t *table[T]) put(id uuid.UUID, value T) bool {
	pos, ok := t.index[id]
	if !ok {
		return false
	}
	t.slots[pos].value = value

	return true
}

func (t *table[T]) remove(id uuid.UUID) bool {
	pos, ok := t.index[id]
	if !ok {
		return false
	}

	var zero slot[T]
	t.slots[pos] = zero
	t.free = append(t.free, pos)
	delete(t.index, id)

	return true
}

// values returns every live value in insertion order.
func (t *table[T]) values() []T {
	live := make([]slot[T], 0, len(t.index))
	for _, s := range t.slots {
		if s.used {
			live = append(live, s)
		}
	}
	slices.SortFunc(live, func(a, b slot[T]) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		default:
			return 0
		}
	})

	out := make([]T, len(live))
	for i, s := range live {
		out[i] = s.value
	}

	return out
}

// clone copies the table structure. Values are copied shallowly; stored values are never mutated in place.
func (t *table[T]) clone() *table[T] {
	index := make(map[uuid.UUID]int, len(t.index))
	for id, pos := range t.index {
		index[id] = pos
	}

	return &table[T]{
		slots: slices.Clone(t.slots),
		index: index,
		free:  slices.Clone(t.free),
		seq:   t.seq,
	}
}
