package cascade

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitDiscardsStaleResponses(t *testing.T) {
	sel := &Select{}

	sel.Set("college-1")
	tag := sel.Current()

	// user changes the selection while the first fetch is in flight
	sel.Set("college-2")

	applied := false
	assert.False(t, sel.Commit(tag, func() { applied = true }))
	assert.False(t, applied, "stale response must not be applied")

	assert.True(t, sel.Commit("college-2", func() { applied = true }))
	assert.True(t, applied)
}

func TestCommitWithNilFn(t *testing.T) {
	sel := &Select{}
	sel.Set("c1")

	assert.True(t, sel.Commit("c1", nil))
	assert.False(t, sel.Commit("c0", nil))
}

func TestCommitEmptySelection(t *testing.T) {
	sel := &Select{}

	// nothing selected yet: only the empty tag matches
	assert.True(t, sel.Commit("", nil))
	assert.False(t, sel.Commit("college-1", nil))
}

func TestRegistryReturnsSameSelectPerKey(t *testing.T) {
	reg := &Registry{}

	a := reg.Get("session-a")
	require.Same(t, a, reg.Get("session-a"))
	assert.NotSame(t, a, reg.Get("session-b"))

	// selections are isolated per key
	a.Set("c1")
	assert.Equal(t, "c1", reg.Get("session-a").Current())
	assert.Empty(t, reg.Get("session-b").Current())
}

func TestRegistryConcurrentGet(t *testing.T) {
	reg := &Registry{}

	var wg sync.WaitGroup
	selects := make([]*Select, 32)
	for i := range selects {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			selects[i] = reg.Get("shared")
		}(i)
	}
	wg.Wait()

	for _, sel := range selects {
		assert.Same(t, selects[0], sel)
	}
}

func TestOnlyLatestSelectionCommits(t *testing.T) {
	sel := &Select{}

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		tag := string(rune('a' + i))
		wg.Add(1)
		go func(tag string) {
			defer wg.Done()
			sel.Set(tag)
			sel.Commit(tag, nil)
		}(tag)
	}
	wg.Wait()

	// whatever interleaving happened, the final selection still commits
	assert.True(t, sel.Commit(sel.Current(), nil))
}
