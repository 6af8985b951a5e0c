package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byteLen(b []byte) int64 { return int64(len(b)) }

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	icons := NewLRU[string, []byte](2)
	icons.Set("github.com@64", []byte("gh"))
	icons.Set("go.dev@64", []byte("go"))

	_, ok := icons.Get("github.com@64")
	require.True(t, ok)

	icons.Set("example.com@64", []byte("ex"))

	_, ok = icons.Get("go.dev@64")
	assert.False(t, ok, "go.dev was the least recently used")
	got, ok := icons.Get("github.com@64")
	assert.True(t, ok)
	assert.Equal(t, []byte("gh"), got)
	assert.Equal(t, 2, icons.Len())
}

func TestLRU_SetReplacesAndRemoveIgnoresMissing(t *testing.T) {
	c := NewLRU[string, int](3)
	c.Set("a", 1)
	c.Set("a", 2)
	c.Remove("missing")

	got, ok := c.Get("a")
	assert.True(t, ok)
	assert.Equal(t, 2, got)
	assert.Equal(t, 1, c.Len())

	c.Remove("a")
	_, ok = c.Get("a")
	assert.False(t, ok)
	assert.Zero(t, c.Len())
}

func TestLRU_CapacityBelowOne(t *testing.T) {
	for _, capacity := range []int{0, -3} {
		c := NewLRU[string, int](capacity)
		c.Set("a", 1)
		c.Set("b", 2)
		assert.Equal(t, 1, c.Len(), "capacity %d", capacity)
		_, ok := c.Get("b")
		assert.True(t, ok)
	}
}

func TestLRU_MaxWeight(t *testing.T) {
	var evicted []string
	c := NewLRU[string, []byte](10).
		WithMaxWeight(10, byteLen).
		OnEvict(func(k string, _ []byte) { evicted = append(evicted, k) })

	c.Set("a", make([]byte, 4))
	c.Set("b", make([]byte, 4))
	assert.Equal(t, int64(8), c.Weight())

	c.Set("c", make([]byte, 4))
	assert.Equal(t, []string{"a"}, evicted)
	assert.Equal(t, int64(8), c.Weight())

	c.Set("b", make([]byte, 1))
	assert.Equal(t, int64(5), c.Weight(), "replacing a value re-weighs it")

	c.Set("huge", make([]byte, 11))
	_, ok := c.Get("huge")
	assert.False(t, ok, "values heavier than the cap are never stored")
	assert.Equal(t, []string{"a"}, evicted)
}

func TestLRU_ClearSkipsEvictHook(t *testing.T) {
	calls := 0
	c := NewLRU[string, []byte](4).
		WithMaxWeight(100, byteLen).
		OnEvict(func(string, []byte) { calls++ })
	c.Set("a", []byte("abc"))
	c.Set("b", []byte("de"))

	c.Clear()

	assert.Zero(t, c.Len())
	assert.Zero(t, c.Weight())
	assert.Zero(t, calls)
	c.Set("a", []byte("x"))
	assert.Equal(t, 1, c.Len())
}

func TestLRU_ConcurrentAccess(t *testing.T) {
	c := NewLRU[string, []byte](64).WithMaxWeight(1024, byteLen)

	var wg sync.WaitGroup
	for w := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa((w*200 + i) % 100)
				c.Set(key, make([]byte, i%32))
				c.Get(key)
				if i%7 == 0 {
					c.Remove(key)
				}
			}
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, c.Len(), 64)
	assert.LessOrEqual(t, c.Weight(), int64(1024))
}
