package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/specialistvlad/assetpath/internal/assetid"
	"github.com/specialistvlad/assetpath/internal/assets"
	"github.com/specialistvlad/assetpath/internal/catalog"
	"github.com/specialistvlad/assetpath/internal/catalog/hclcatalog"
	"github.com/specialistvlad/assetpath/internal/ctxlog"
	"github.com/specialistvlad/assetpath/internal/resolver"
)

// CatalogLoader loads declaration files into a catalog.
type CatalogLoader interface {
	Load(ctx context.Context, paths ...string) (*hclcatalog.Result, error)
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	tree     *catalog.Tree
	resolver *resolver.Resolver
	registry *prometheus.Registry

	httpServer *http.Server
}

// NewApp loads the catalog selected by cfg and builds the resolver over it.
// Results are written to outW and logs to logW.
func NewApp(ctx context.Context, outW, logW io.Writer, cfg *Config, loader CatalogLoader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	tree, baseURL, err := loadCatalog(ctx, cfg, loader)
	if err != nil {
		return nil, err
	}
	if cfg.BaseURL != "" {
		baseURL = cfg.BaseURL
	}
	if baseURL == "" {
		return nil, errors.New("no base URL: set base_url in the catalog or pass --base-url")
	}
	logger.Debug("Catalog loaded.", "entries", tree.Len(), "base_url", baseURL)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())

	res := resolver.New(tree, baseURL,
		resolver.WithLogger(logger.With("component", "resolver")),
		resolver.WithMetrics(resolver.NewMetrics(registry)),
	)

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		tree:     tree,
		resolver: res,
		registry: registry,
	}, nil
}

func loadCatalog(ctx context.Context, cfg *Config, loader CatalogLoader) (*catalog.Tree, string, error) {
	if cfg.CatalogPath == "" {
		ctxlog.FromContext(ctx).Debug("Using built-in catalog.")
		tree, err := assets.Tree()
		if err != nil {
			return nil, "", err
		}
		return tree, assets.BaseURL, nil
	}

	res, err := loader.Load(ctx, cfg.CatalogPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load catalog: %w", err)
	}
	return res.Tree, res.BaseURL, nil
}

// Resolver returns the application's resolver. This is primarily for testing.
func (a *App) Resolver() *resolver.Resolver {
	return a.resolver
}

// Logger returns the application logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

// lookup accepts either a bare entry identifier or a qualified address such
// as "MoviestarplanetSwf.SchoolYard" and returns the entry it names.
func (a *App) lookup(ref string) (*catalog.Entry, error) {
	if !strings.Contains(ref, ".") {
		return a.tree.Lookup(ref)
	}

	addr, err := assetid.Parse(ref)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", catalog.ErrNotFound, err)
	}
	e, err := a.tree.Lookup(addr.Leaf())
	if err != nil {
		return nil, err
	}
	if !e.Address().Equal(addr) {
		return nil, fmt.Errorf("%w: %q is declared as %q", catalog.ErrNotFound, ref, e.Address().String())
	}
	return e, nil
}

// ResolveRef resolves a bare identifier or qualified address.
func (a *App) ResolveRef(ref string) (string, error) {
	e, err := a.lookup(ref)
	if err != nil {
		return "", err
	}
	return a.resolver.Resolve(e.ID)
}

// Resolve writes one URL per reference to the output, in order. It stops at
// the first reference that cannot be resolved.
func (a *App) Resolve(ctx context.Context, refs ...string) error {
	a.logger.Debug("Resolving references.", "count", len(refs))
	for _, ref := range refs {
		if err := ctx.Err(); err != nil {
			return err
		}
		url, err := a.ResolveRef(ref)
		if err != nil {
			return err
		}
		fmt.Fprintln(a.outW, url)
	}
	return nil
}
