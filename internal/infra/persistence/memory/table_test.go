package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_ReusesFreedSlots(t *testing.T) {
	tbl := newTable[string]()

	a, b, c := uuid.New(), uuid.New(), uuid.New()
	assert.Equal(t, 0, tbl.insert(a, "a"))
	assert.Equal(t, 1, tbl.insert(b, "b"))

	require.True(t, tbl.remove(a))
	assert.False(t, tbl.has(a))
	assert.False(t, tbl.remove(a))

	// The freed slot is reused, but listing keeps insertion order.
	assert.Equal(t, 0, tbl.insert(c, "c"))
	assert.Equal(t, []string{"b", "c"}, tbl.values())
	assert.Equal(t, 2, tbl.len())
	assert.Len(t, tbl.slots, 2)
}

func TestTable_PutKeepsPosition(t *testing.T) {
	tbl := newTable[int]()
	a, b := uuid.New(), uuid.New()
	tbl.insert(a, 1)
	tbl.insert(b, 2)

	assert.True(t, tbl.put(a, 10))
	assert.False(t, tbl.put(uuid.New(), 3))

	got, ok := tbl.get(a)
	require.True(t, ok)
	assert.Equal(t, 10, got)
	assert.Equal(t, []int{10, 2}, tbl.values())
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := newTable[int]()
	a := uuid.New()
	tbl.insert(a, 1)

	snapshot := tbl.clone()
	tbl.remove(a)
	tbl.insert(uuid.New(), 2)

	got, ok := snapshot.get(a)
	require.True(t, ok)
	assert.Equal(t, 1, got)
	assert.Equal(t, []int{1}, snapshot.values())
}
