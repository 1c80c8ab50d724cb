package slab_test

import (
	"testing"

	"github.com/delaneyj/propcore/internal/slab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroKeyNeverResolves(t *testing.T) {
	var s slab.Slab[int]
	s.Insert(1)
	_, ok := s.Get(slab.Key{})
	assert.False(t, ok)
	assert.False(t, slab.Key{}.Valid())
}

func TestInsertGetRemove(t *testing.T) {
	var s slab.Slab[string]
	a := s.Insert("a")
	b := s.Insert("b")
	assert.Equal(t, 2, s.Len())

	v, ok := s.Get(a)
	require.True(t, ok)
	assert.Equal(t, "a", *v)

	old, ok := s.Remove(a)
	require.True(t, ok)
	assert.Equal(t, "a", old)
	assert.False(t, s.Contains(a))
	assert.True(t, s.Contains(b))

	// removing twice is harmless
	_, ok = s.Remove(a)
	assert.False(t, ok)
	assert.Equal(t, 1, s.Len())
}

func TestStaleKeyAfterReuse(t *testing.T) {
	var s slab.Slab[int]
	a := s.Insert(1)
	s.Remove(a)
	c := s.Insert(2)

	// same slot, new generation
	assert.Equal(t, a.Index, c.Index)
	assert.NotEqual(t, a.Gen, c.Gen)
	assert.False(t, s.Contains(a))

	v, ok := s.Get(c)
	require.True(t, ok)
	assert.Equal(t, 2, *v)
}

func TestPointersSurviveGrowth(t *testing.T) {
	var s slab.Slab[int]
	first := s.Insert(42)
	p, ok := s.Get(first)
	require.True(t, ok)

	for i := 0; i < 10_000; i++ {
		s.Insert(i)
	}
	*p = 7

	v, ok := s.Get(first)
	require.True(t, ok)
	assert.Equal(t, 7, *v)
	assert.Equal(t, 10_001, s.Cap())
}
