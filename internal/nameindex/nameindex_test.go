package nameindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInsertAndContains(t *testing.T) {
	t.Parallel()
	idx := New()

	assert.False(t, idx.Insert([]string{"Foo", "bar"}))
	assert.True(t, idx.Insert([]string{"Foo", "bar"}), "second insert reports a duplicate")

	assert.True(t, idx.Contains([]string{"Foo", "bar"}))
	assert.False(t, idx.Contains([]string{"Foo"}), "prefix of a path is not a path")
	assert.False(t, idx.Contains([]string{"Foo", "bar", "baz"}))
	assert.False(t, idx.Contains([]string{"Other"}))
}

func TestLenCountsDistinctPaths(t *testing.T) {
	t.Parallel()
	idx := New()
	idx.Insert([]string{"A"})
	idx.Insert([]string{"A", "x"})
	idx.Insert([]string{"B"})
	idx.Insert([]string{"A"})
	assert.Equal(t, 3, idx.Len())
}

func TestEmptyPathMarksRoot(t *testing.T) {
	t.Parallel()
	idx := New()
	assert.False(t, idx.Contains(nil))
	idx.Insert(nil)
	assert.True(t, idx.Contains(nil))
}

func TestStringRendersSortedTrie(t *testing.T) {
	t.Parallel()
	idx := New()
	idx.Insert([]string{"b"})
	idx.Insert([]string{"a", "c"})
	assert.Equal(t, "a(c(*))b(*)", idx.String())
}
