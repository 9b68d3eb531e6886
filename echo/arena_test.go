package echo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArena_StaleHandles(t *testing.T) {
	a := NewArena[string]()
	h1 := a.Insert("one")
	h2 := a.Insert("two")
	assert.Equal(t, 2, a.Len())

	require.True(t, a.Remove(h1))
	assert.False(t, a.Remove(h1), "second remove must fail")
	_, ok := a.Get(h1)
	assert.False(t, ok)

	// Slot reuse must not revive the old handle
	h3 := a.Insert("three")
	assert.Equal(t, h1.index, h3.index)
	assert.NotEqual(t, h1.gen, h3.gen)
	_, ok = a.Get(h1)
	assert.False(t, ok)

	v, ok := a.Get(h3)
	require.True(t, ok)
	assert.Equal(t, "three", *v)
	v, ok = a.Get(h2)
	require.True(t, ok)
	assert.Equal(t, "two", *v)
}

func TestArena_EachAllowsRemoval(t *testing.T) {
	a := NewArena[int]()
	for i := range 5 {
		a.Insert(i)
	}

	var seen []int
	a.Each(func(h Handle, v *int) {
		seen = append(seen, *v)
		if *v%2 == 0 {
			a.Remove(h)
		}
	})
	assert.Equal(t, []int{0, 1, 2, 3, 4}, seen)
	assert.Equal(t, 2, a.Len())

	a.Clear()
	assert.Equal(t, 0, a.Len())
	_, ok := a.Get(Handle{index: 99})
	assert.False(t, ok)
}
