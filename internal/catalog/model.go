package catalog

import "github.com/specialistvlad/assetpath/internal/assetid"

// Group is an organizational node of the tree.
type Group struct {
	Name string
	// InPath reports whether the group contributes a path segment.
	InPath bool

	pathSet bool
	parent  *Group
	groups  []*Group
	entries []*Entry
}

// Parent returns the enclosing group, or nil for the root.
func (g *Group) Parent() *Group {
	return g.parent
}

// IsRoot reports whether g is the unnamed root of a tree.
func (g *Group) IsRoot() bool {
	return g.parent == nil
}

// Groups returns the direct child groups in declaration order.
func (g *Group) Groups() []*Group {
	return g.groups
}

// Entries returns the direct child entries in declaration order.
func (g *Group) Entries() []*Entry {
	return g.entries
}

// Address returns the qualified address of the group. The root has a nil
// address.
func (g *Group) Address() *assetid.Address {
	if g == nil || g.IsRoot() {
		return nil
	}
	return g.parent.Address().Child(g.Name)
}

// Entry is a terminal declaration.
type Entry struct {
	ID string
	// File is the leaf filename; empty for namespace-only declarations.
	File string

	group *Group
}

// Group returns the group that declares the entry.
func (e *Entry) Group() *Group {
	return e.group
}

// HasFile reports whether the entry declares a filename.
func (e *Entry) HasFile() bool {
	return e.File != ""
}

// Address returns the qualified address of the entry.
func (e *Entry) Address() *assetid.Address {
	return e.group.Address().Child(e.ID)
}
