package catalog

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/assetpath/internal/assetid"
)

// GroupOption configures a group at declaration time.
type GroupOption func(*groupOptions)

type groupOptions struct {
	inPath *bool
}

// WithPath states explicitly whether a group contributes a path segment.
// Groups that never receive it participate.
func WithPath(inPath bool) GroupOption {
	return func(o *groupOptions) {
		o.inPath = &inPath
	}
}

// WithoutPath marks a group as organizational only: it nests declarations
// without adding a path segment.
func WithoutPath() GroupOption {
	return WithPath(false)
}

// Builder registers groups and entries with explicit parents. A Builder is not
// safe for concurrent use; the Tree it produces is. Declaring anything through
// a Builder or its GroupBuilders after Build panics.
type Builder struct {
	root  *Group
	built bool
	errs  []error
}

// GroupBuilder declares children of one group.
type GroupBuilder struct {
	b     *Builder
	group *Group
}

// NewBuilder creates an empty declaration builder.
func NewBuilder() *Builder {
	return &Builder{root: &Group{}}
}

// Root returns a GroupBuilder for the unnamed root group.
func (b *Builder) Root() *GroupBuilder {
	return &GroupBuilder{b: b, group: b.root}
}

// Group declares a top-level group. Declaring the same name twice returns the
// existing group so that several sources can contribute to it.
func (b *Builder) Group(name string, opts ...GroupOption) *GroupBuilder {
	return b.Root().Group(name, opts...)
}

// Entry declares an entry directly under the root.
func (b *Builder) Entry(id, file string) *Builder {
	b.Root().Entry(id, file)
	return b
}

// Group declares a child group. Groups participate in the path unless
// WithoutPath is given. Redeclaring a group with a different explicit
// WithPath than before makes Build fail with ErrConflictingGroup.
func (gb *GroupBuilder) Group(name string, opts ...GroupOption) *GroupBuilder {
	gb.b.mustBeOpen()

	var o groupOptions
	for _, opt := range opts {
		opt(&o)
	}

	for _, existing := range gb.group.groups {
		if existing.Name == name {
			gb.b.mergePath(existing, o.inPath)
			return &GroupBuilder{b: gb.b, group: existing}
		}
	}

	g := &Group{Name: name, InPath: true, parent: gb.group}
	if o.inPath != nil {
		g.InPath = *o.inPath
		g.pathSet = true
	}
	gb.group.groups = append(gb.group.groups, g)
	return &GroupBuilder{b: gb.b, group: g}
}

func (b *Builder) mergePath(g *Group, inPath *bool) {
	if inPath == nil {
		return
	}
	if g.pathSet && g.InPath != *inPath {
		b.errs = append(b.errs, fmt.Errorf("%w: %s declared with in_path %t and %t", ErrConflictingGroup, g.Address(), g.InPath, *inPath))
		return
	}
	g.InPath = *inPath
	g.pathSet = true
}

func (b *Builder) mustBeOpen() {
	if b.built {
		panic("catalog: declaration after Build")
	}
}

// Entry declares an entry with a filename in this group.
func (gb *GroupBuilder) Entry(id, file string) *GroupBuilder {
	gb.b.mustBeOpen()
	gb.group.entries = append(gb.group.entries, &Entry{ID: id, File: file, group: gb.group})
	return gb
}

// Namespace declares an entry without a filename.
func (gb *GroupBuilder) Namespace(id string) *GroupBuilder {
	return gb.Entry(id, "")
}

// Build validates the declarations and returns the immutable tree. Every
// violation is reported; the builder must not be used afterwards.
func (b *Builder) Build() (*Tree, error) {
	if b.built {
		return nil, errors.New("catalog: builder already used")
	}
	b.built = true

	t := &Tree{root: b.root, index: make(map[string]*Entry)}
	errs := b.errs

	var visit func(g *Group)
	visit = func(g *Group) {
		for _, child := range g.groups {
			if err := assetid.ValidateSegment(child.Name); err != nil {
				errs = append(errs, fmt.Errorf("%w: group under %q: %v", ErrInvalidName, g.Address().String(), err))
			}
			visit(child)
		}
		for _, e := range g.entries {
			if err := assetid.ValidateSegment(e.ID); err != nil {
				errs = append(errs, fmt.Errorf("%w: entry under %q: %v", ErrInvalidName, g.Address().String(), err))
				continue
			}
			if prev, exists := t.index[e.ID]; exists {
				errs = append(errs, fmt.Errorf("%w: %q declared at %s and %s", ErrDuplicateEntry, e.ID, prev.Address(), e.Address()))
				continue
			}
			t.index[e.ID] = e
		}
	}
	visit(b.root)

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return t, nil
}
