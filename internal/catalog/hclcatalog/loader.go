package hclcatalog

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/specialistvlad/assetpath/internal/assetid"
	"github.com/specialistvlad/assetpath/internal/catalog"
	"github.com/specialistvlad/assetpath/internal/ctxlog"
	"github.com/specialistvlad/assetpath/internal/fsutil"
)

// Extension is the file extension of catalog files.
const Extension = ".hcl"

// Result is a loaded catalog.
type Result struct {
	Tree *catalog.Tree
	// BaseURL is the base_url declared by the files, or "" when none is.
	BaseURL string
	Files   []string
}

// Loader reads catalog files into a catalog.Tree.
type Loader struct {
	env map[string]string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithEnv replaces the process environment exposed to expressions as `env`.
func WithEnv(env map[string]string) LoaderOption {
	return func(l *Loader) {
		l.env = env
	}
}

// NewLoader creates a new HCL catalog loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.env == nil {
		l.env = environ()
	}
	return l
}

// source is one parsed catalog file.
type source struct {
	name string
	file *hcl.File
}

// Load discovers every catalog file under paths and merges them into a single
// tree.
func (l *Loader) Load(ctx context.Context, paths ...string) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL catalog loader started.", "path_count", len(paths))

	files, err := fsutil.FindFiles(Extension, paths...)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no %s catalog files found in %s", Extension, strings.Join(paths, ", "))
	}
	logger.Debug("Discovered catalog files.", "count", len(files))

	parser := hclparse.NewParser()
	sources := make([]source, 0, len(files))
	for _, name := range files {
		f, diags := parser.ParseHCLFile(name)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse catalog file %s: %w", name, diags)
		}
		sources = append(sources, source{name: name, file: f})
	}
	return l.build(ctx, sources)
}

// LoadSource loads a single in-memory catalog. name is only used in messages.
func (l *Loader) LoadSource(ctx context.Context, name string, src []byte) (*Result, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", name, diags)
	}
	return l.build(ctx, []source{{name: name, file: f}})
}

func (l *Loader) build(ctx context.Context, sources []source) (*Result, error) {
	logger := ctxlog.FromContext(ctx)
	evalCtx := l.evalContext()
	b := catalog.NewBuilder()
	res := &Result{}

	var baseFrom string
	paths := make(map[string]pathDecl)
	for _, src := range sources {
		fileLogger := ctxlog.FromContext(ctxlog.With(ctx, "file", src.name))

		var root fileRoot
		if diags := gohcl.DecodeBody(src.file.Body, nil, &root); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode catalog file %s: %w", src.name, diags)
		}

		base, err := evalBaseURL(root.BaseURL, evalCtx)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: %w", src.name, err)
		}
		if base != "" {
			if res.BaseURL != "" && res.BaseURL != base {
				return nil, fmt.Errorf("catalog file %s: base_url %q conflicts with %q from %s", src.name, base, res.BaseURL, baseFrom)
			}
			res.BaseURL = base
			baseFrom = src.name
		}

		d := &declarer{file: src.name, paths: paths}
		if err := d.declare(b.Root(), nil, root.Groups, root.Entries); err != nil {
			return nil, err
		}
		fileLogger.Debug("Declared catalog file.", "groups", len(root.Groups), "entries", len(root.Entries))
		res.Files = append(res.Files, src.name)
	}

	tree, err := b.Build()
	if err != nil {
		return nil, err
	}
	res.Tree = tree

	logger.Debug("HCL catalog loading complete.", "files", len(res.Files), "entries", tree.Len(), "base_url", res.BaseURL)
	return res, nil
}

// pathDecl records the first explicit in_path of a group and where it was set.
type pathDecl struct {
	inPath bool
	file   string
}

// declarer registers the blocks of one file.
type declarer struct {
	file  string
	paths map[string]pathDecl // Key: qualified group address
}

// declare registers blocks under parent, recursing into nested groups.
func (d *declarer) declare(parent *catalog.GroupBuilder, at *assetid.Address, groups []*groupBlock, entries []*entryBlock) error {
	for _, e := range entries {
		file := ""
		if e.File != nil {
			file = *e.File
		}
		parent.Entry(e.ID, file)
	}
	for _, g := range groups {
		addr := at.Child(g.Name)
		var opts []catalog.GroupOption
		if g.InPath != nil {
			key := addr.String()
			prev, seen := d.paths[key]
			if seen && prev.inPath != *g.InPath {
				return fmt.Errorf("catalog file %s: %w: group %s sets in_path = %t but %s sets in_path = %t",
					d.file, catalog.ErrConflictingGroup, key, *g.InPath, prev.file, prev.inPath)
			}
			if !seen {
				d.paths[key] = pathDecl{inPath: *g.InPath, file: d.file}
			}
			opts = append(opts, catalog.WithPath(*g.InPath))
		}
		if err := d.declare(parent.Group(g.Name, opts...), addr, g.Groups, g.Entries); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(l.env))
	for k, v := range l.env {
		vars[k] = cty.StringVal(v)
	}
	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

func evalBaseURL(expr hcl.Expression, evalCtx *hcl.EvalContext) (string, error) {
	if expr == nil {
		return "", nil
	}
	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", fmt.Errorf("invalid base_url: %w", diags)
	}
	if val.IsNull() {
		return "", nil
	}
	val, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("invalid base_url: %w", err)
	}
	if !val.IsKnown() {
		return "", fmt.Errorf("invalid base_url: value is not known")
	}
	return val.AsString(), nil
}

func environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
