package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncMap_DeleteIf(t *testing.T) {
	m := NewSyncMap[string, int]()
	m.Put("a", 1)

	assert.False(t, m.DeleteIf("a", func(v int) bool { return v == 2 }))
	assert.True(t, m.DeleteIf("a", func(v int) bool { return v == 1 }))
	_, ok := m.Get("a")
	assert.False(t, ok)
	assert.False(t, m.DeleteIf("missing", func(int) bool { return true }))
}

func TestSyncMap_SwapAndRange(t *testing.T) {
	m := NewSyncMap[string, int]()
	_, ok := m.Swap("a", 1)
	assert.False(t, ok)
	prev, ok := m.Swap("a", 2)
	assert.True(t, ok)
	assert.Equal(t, 1, prev)
	m.Put("b", 3)

	sum := 0
	m.Range(func(_ string, v int) bool {
		m.Put("c", 10) // must not deadlock
		sum += v
		return true
	})
	assert.Equal(t, 5, sum)
	assert.Equal(t, 3, m.Len())
}
