package sparse

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBitmapBasics(t *testing.T) {
	b := New()
	assert.True(t, b.IsEmpty())

	b.Add(7)
	b.Add(1_000_000)
	b.Add(7)
	assert.Equal(t, uint64(2), b.Cardinality())
	assert.True(t, b.Contains(7))
	assert.False(t, b.Contains(8))

	b.Remove(7)
	assert.False(t, b.Contains(7))

	b.Clear()
	assert.True(t, b.IsEmpty())
}

func TestBitmapSetOps(t *testing.T) {
	a := Of(1, 2, 3, 100)
	b := Of(2, 3, 4)

	u := a.Clone()
	u.Or(b)
	assert.Equal(t, []uint32{1, 2, 3, 4, 100}, slices.Collect(u.Values()))

	i := a.Clone()
	i.And(b)
	assert.Equal(t, []uint32{2, 3}, slices.Collect(i.Values()))

	d := a.Clone()
	d.AndNot(b)
	assert.Equal(t, []uint32{1, 100}, slices.Collect(d.Values()))

	// Clones do not share state with the original.
	assert.Equal(t, uint64(4), a.Cardinality())
}

func TestBitmapValuesEarlyBreak(t *testing.T) {
	b := Of(10, 20, 30)
	var got []uint32
	for v := range b.Values() {
		got = append(got, v)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []uint32{10, 20}, got)
}
