package resolver

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/specialistvlad/assetpath/internal/catalog"
	"github.com/specialistvlad/assetpath/internal/memo"
)

// Resolver resolves entry identifiers to URLs. It is safe for concurrent use.
type Resolver struct {
	tree    *catalog.Tree
	baseURL string
	namer   Namer
	table   *memo.Table
	sf      singleflight.Group
	logger  *slog.Logger
	metrics *Metrics
}

// New creates a resolver over tree. baseURL is prepended verbatim, so it
// normally ends in "/".
func New(tree *catalog.Tree, baseURL string, opts ...Option) *Resolver {
	r := &Resolver{
		tree:    tree,
		baseURL: baseURL,
		namer:   KebabNamer,
		table:   memo.New(),
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the URL of the entry declared under id. The first call per
// identifier walks the catalog; every later call returns the memoized string.
// Unknown identifiers fail with an error wrapping catalog.ErrNotFound.
func (r *Resolver) Resolve(id string) (string, error) {
	if path, ok := r.table.Load(id); ok {
		r.metrics.hit()
		return path, nil
	}
	r.metrics.miss()

	v, err, shared := r.sf.Do(id, func() (any, error) {
		// Another flight may have finished between the Load above and Do.
		if path, ok := r.table.Load(id); ok {
			return path, nil
		}
		path, err := r.compute(id)
		if err != nil {
			return nil, err
		}
		actual, _ := r.table.LoadOrStore(id, path)
		r.logger.Debug("Resolved asset path.", "id", id, "path", actual)
		return actual, nil
	})
	if shared {
		r.metrics.share()
	}
	if err != nil {
		r.metrics.missing()
		r.logger.Warn("Asset resolution failed.", "id", id, "error", err)
		return "", err
	}
	return v.(string), nil
}

// MustResolve is like Resolve but panics on error. It is meant for
// identifiers that are bound at compile time, where a failure is a bug.
func (r *Resolver) MustResolve(id string) string {
	path, err := r.Resolve(id)
	if err != nil {
		panic(fmt.Sprintf("resolver: %v", err))
	}
	return path
}

// Segments returns the path segments of id ordered root first. It does not
// consult or fill the memoization table.
func (r *Resolver) Segments(id string) ([]string, error) {
	e, err := r.tree.Lookup(id)
	if err != nil {
		return nil, err
	}
	return r.segments(e), nil
}

// Cached returns the memoized path for id without resolving it.
func (r *Resolver) Cached(id string) (string, bool) {
	return r.table.Load(id)
}

// Len returns the number of memoized identifiers.
func (r *Resolver) Len() int {
	return r.table.Len()
}

// Snapshot copies the memoization table.
func (r *Resolver) Snapshot() map[string]string {
	return r.table.Snapshot()
}

func (r *Resolver) compute(id string) (string, error) {
	e, err := r.tree.Lookup(id)
	if err != nil {
		return "", err
	}
	return r.baseURL + strings.Join(r.segments(e), "/") + "/" + e.File, nil
}

func (r *Resolver) segments(e *catalog.Entry) []string {
	var segments []string
	for _, g := range r.tree.Ancestors(e) {
		if g.InPath {
			segments = append(segments, r.namer.Segment(g.Name))
		}
	}
	slices.Reverse(segments)
	return segments
}
