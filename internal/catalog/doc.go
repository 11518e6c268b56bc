// Package catalog is the metadata model of the asset hierarchy.
//
// A catalog is a tree of Groups rooted at a fixed, unnamed root. Groups may
// contain further Groups and Entries. A Group marked as participating in the
// path contributes one segment to every entry below it; a non-participating
// Group only organizes declarations. Entries are the leaves and carry the
// filename that ends a resolved path.
//
// Trees are assembled once through a Builder and are read-only afterwards, so
// they can be shared between goroutines without synchronization. The package
// performs no path computation itself; it only indexes the declared structure
// for the resolver.
package catalog
