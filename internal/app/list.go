package app

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// ListOptions selects and formats the entries printed by List.
type ListOptions struct {
	// Match is a glob over qualified addresses. "*" stays within one level,
	// "**" crosses levels. Empty matches everything.
	Match string
	// Output is one of "text", "json" or "yaml".
	Output string
}

// Listing is one resolved entry.
type Listing struct {
	ID      string `json:"id" yaml:"id"`
	Address string `json:"address" yaml:"address"`
	URL     string `json:"url" yaml:"url"`
}

// Entries resolves every entry whose qualified address matches pattern. It
// stops early when ctx is cancelled.
func (a *App) Entries(ctx context.Context, pattern string) ([]Listing, error) {
	var g glob.Glob
	if pattern != "" {
		compiled, err := glob.Compile(pattern, '.')
		if err != nil {
			return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
		}
		g = compiled
	}

	var out []Listing
	for _, e := range a.tree.Entries() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		addr := e.Address().String()
		if g != nil && !g.Match(addr) {
			continue
		}
		url, err := a.resolver.Resolve(e.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, Listing{ID: e.ID, Address: addr, URL: url})
	}
	return out, nil
}

// List writes the matching entries to the output.
func (a *App) List(ctx context.Context, opts ListOptions) error {
	listings, err := a.Entries(ctx, opts.Match)
	if err != nil {
		return err
	}
	a.logger.Debug("Listing entries.", "matched", len(listings), "pattern", opts.Match)

	switch opts.Output {
	case "", "text":
		tw := tabwriter.NewWriter(a.outW, 0, 4, 2, ' ', 0)
		for _, l := range listings {
			fmt.Fprintf(tw, "%s\t%s\n", l.Address, l.URL)
		}
		return tw.Flush()
	case "json":
		enc := json.NewEncoder(a.outW)
		enc.SetIndent("", "  ")
		if listings == nil {
			listings = []Listing{}
		}
		return enc.Encode(listings)
	case "yaml":
		enc := yaml.NewEncoder(a.outW)
		enc.SetIndent(2)
		if err := enc.Encode(listings); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output %q: must be 'text', 'json' or 'yaml'", opts.Output)
	}
}
