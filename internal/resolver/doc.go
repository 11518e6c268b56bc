// Package resolver turns an entry identifier into a fully qualified asset URL
// and memoizes the answer.
//
// On the first request for an identifier the resolver looks the entry up in
// the catalog, walks its enclosing groups from leaf to root, derives one
// segment from every group that participates in the path, reverses the
// segments so the root comes first, joins them with "/", and appends the
// entry's filename to the base URL:
//
//	base + "moviestarplanet-components/login" + "/" + "citybackground.svg"
//
// The result is stored in a memo.Table keyed by identifier. Later calls are a
// single map read. Concurrent misses for the same identifier are collapsed
// with singleflight, and the table keeps the first stored value, so every
// caller observes the same string.
//
// An unknown identifier fails with catalog.ErrNotFound and leaves the table
// untouched.
package resolver
