// internal/assetid/types.go
package assetid

// Address is the structured form of a qualified declaration name. The last
// element of Path is the declaration itself, the rest are its enclosing groups
// ordered root first.
type Address struct {
	Path []string
}

// New builds an Address from already validated segments.
func New(segments ...string) *Address {
	path := make([]string, len(segments))
	copy(path, segments)
	return &Address{Path: path}
}

// Leaf returns the final segment of the address, or "" for an empty address.
func (a *Address) Leaf() string {
	if a == nil || len(a.Path) == 0 {
		return ""
	}
	return a.Path[len(a.Path)-1]
}

// Parent returns the address of the enclosing group. The parent of a
// single-segment address is nil, which stands for the catalog root.
func (a *Address) Parent() *Address {
	if a == nil || len(a.Path) < 2 {
		return nil
	}
	return New(a.Path[:len(a.Path)-1]...)
}

// Child returns a new address with name appended.
func (a *Address) Child(name string) *Address {
	if a == nil {
		return New(name)
	}
	return New(append(a.Path[:len(a.Path):len(a.Path)], name)...)
}
