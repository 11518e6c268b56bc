package catalog

import (
	"fmt"
	"slices"
	"strings"
)

// Tree is the immutable declaration tree with an identifier index.
type Tree struct {
	root  *Group
	index map[string]*Entry
}

// Root returns the unnamed root group.
func (t *Tree) Root() *Group {
	return t.root
}

// Len returns the number of declared entries.
func (t *Tree) Len() int {
	return len(t.index)
}

// Lookup returns the entry declared under id.
func (t *Tree) Lookup(id string) (*Entry, error) {
	e, ok := t.index[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return e, nil
}

// Ancestors returns the groups enclosing e ordered leaf to root. The root
// itself is never included.
func (t *Tree) Ancestors(e *Entry) []*Group {
	var chain []*Group
	for g := e.group; g != nil && !g.IsRoot(); g = g.parent {
		chain = append(chain, g)
	}
	return chain
}

// Entries returns every entry sorted by qualified address.
func (t *Tree) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.index))
	for _, e := range t.index {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b *Entry) int {
		return strings.Compare(a.Address().String(), b.Address().String())
	})
	return out
}

// Visitor is called for every group (entry == nil) and entry during Walk.
// Returning false from a group visit skips that group's children.
type Visitor func(g *Group, entry *Entry) bool

// Walk traverses the tree depth first in declaration order, starting with the
// children of the root.
func (t *Tree) Walk(fn Visitor) {
	var walk func(g *Group)
	walk = func(g *Group) {
		for _, e := range g.entries {
			fn(g, e)
		}
		for _, child := range g.groups {
			if fn(child, nil) {
				walk(child)
			}
		}
	}
	walk(t.root)
}
