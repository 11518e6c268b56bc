// Package memo provides the memoization table that maps entry identifiers to
// resolved paths.
//
// # Characteristics
//
//   - **Monotonic:** entries are only ever added; nothing is evicted or
//     invalidated because the declaration tree never changes.
//   - **First writer wins:** when two goroutines store the same key, the value
//     stored first is kept and returned to both.
//   - **Lock-free reads:** backed by sync.Map, which suits a key space that is
//     written once per key and read many times afterwards.
//
// The table lives for the whole process and is rebuilt from scratch on every
// start; nothing is persisted.
package memo
