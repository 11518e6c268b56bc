package cli

import (
	"github.com/spf13/cobra"

	"github.com/specialistvlad/assetpath/internal/app"
)

func (c *command) newResolveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve ID...",
		Short: "Print the URL of each asset identifier.",
		Long: `Print the URL of each asset identifier, one per line.

An identifier is either the bare entry name (SchoolYard) or its qualified
address (MoviestarplanetSwf.SchoolYard). Unknown identifiers exit with code 3.`,
		Args: minArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Resolve(cmd.Context(), args...)
		},
	}
}

func (c *command) newListCommand() *cobra.Command {
	var opts app.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List declared assets and their URLs.",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Match, "match", "m", "", "Glob over qualified addresses, e.g. 'MoviestarplanetComponents.**'.")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format. Options: 'text', 'json' or 'yaml'.")
	return cmd
}

func (c *command) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolutions over HTTP.",
		Long: `Serve resolutions over HTTP until interrupted.

Endpoints:
  GET /health         liveness probe
  GET /resolve/{id}   JSON {"id", "address", "url"}
  GET /assets/{id}    302 redirect to the asset URL
  GET /metrics        Prometheus metrics`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Serve(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&c.cfg.Addr, "addr", ":8080", "Listen address.")
	cmd.Flags().IntVar(&c.cfg.WarmLimit, "warm-limit", 8, "Concurrent resolutions while warming the cache. 0 is unlimited.")
	return cmd
}
