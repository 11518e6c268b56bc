package memo

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Missing(t *testing.T) {
	tbl := New()

	path, ok := tbl.Load("SchoolYard")
	assert.False(t, ok)
	assert.Empty(t, path)
	assert.Equal(t, 0, tbl.Len())
}

func TestLoadOrStore_FirstWriterWins(t *testing.T) {
	tbl := New()

	actual, loaded := tbl.LoadOrStore("SchoolYard", "first")
	assert.False(t, loaded)
	assert.Equal(t, "first", actual)

	actual, loaded = tbl.LoadOrStore("SchoolYard", "second")
	assert.True(t, loaded)
	assert.Equal(t, "first", actual)

	path, ok := tbl.Load("SchoolYard")
	require.True(t, ok)
	assert.Equal(t, "first", path)
	assert.Equal(t, 1, tbl.Len())
}

func TestSnapshot(t *testing.T) {
	tbl := New()
	tbl.LoadOrStore("Diamond", "https://example/moviestarplanet/diamond.png")
	tbl.LoadOrStore("Empty", "")

	assert.Equal(t, map[string]string{
		"Diamond": "https://example/moviestarplanet/diamond.png",
		"Empty":   "",
	}, tbl.Snapshot())
}

// TestTable_ConcurrentAccess verifies that racing writers on the same keys
// agree on one value per key and that the size counts each key once.
func TestTable_ConcurrentAccess(t *testing.T) {
	tbl := New()
	const numGoroutines = 100
	const numKeys = 10

	results := make([][numKeys]string, numGoroutines)
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for k := 0; k < numKeys; k++ {
				actual, _ := tbl.LoadOrStore(fmt.Sprintf("key-%d", k), fmt.Sprintf("writer-%d", g))
				results[g][k] = actual
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, numKeys, tbl.Len())
	for k := 0; k < numKeys; k++ {
		stored, ok := tbl.Load(fmt.Sprintf("key-%d", k))
		require.True(t, ok)
		for g := 0; g < numGoroutines; g++ {
			assert.Equal(t, stored, results[g][k], "goroutine %d saw a different value for key %d", g, k)
		}
	}
}
