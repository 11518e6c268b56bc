package memo

import (
	"sync"
	"sync/atomic"
)

// Table is a concurrency-safe, grow-only map from identifier to path.
type Table struct {
	paths sync.Map // Key: entry identifier, Value: resolved path string
	size  atomic.Int64
}

// New creates an empty table.
func New() *Table {
	return &Table{}
}

// Load returns the cached path for id.
func (t *Table) Load(id string) (string, bool) {
	v, ok := t.paths.Load(id)
	if !ok {
		return "", false
	}
	return v.(string), true
}

// LoadOrStore stores path under id unless a value is already present. It
// returns the value that is in the table afterwards and whether it was already
// there.
func (t *Table) LoadOrStore(id, path string) (actual string, loaded bool) {
	v, loaded := t.paths.LoadOrStore(id, path)
	if !loaded {
		t.size.Add(1)
	}
	return v.(string), loaded
}

// Len returns the number of stored identifiers.
func (t *Table) Len() int {
	return int(t.size.Load())
}

// Range calls fn for every stored pair until fn returns false.
func (t *Table) Range(fn func(id, path string) bool) {
	t.paths.Range(func(k, v any) bool {
		return fn(k.(string), v.(string))
	})
}

// Snapshot copies the current contents into a plain map.
func (t *Table) Snapshot() map[string]string {
	out := make(map[string]string, t.Len())
	t.Range(func(id, path string) bool {
		out[id] = path
		return true
	})
	return out
}
